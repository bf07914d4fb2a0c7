// Package notifier provides notification interfaces and implementations for
// weather reports.
//
// The notifier package posts current-conditions summaries to Twitter. It
// handles OAuth authentication, rate limiting between posts, and message
// formatting, and includes a dry-run implementation for previewing posts.
package notifier
