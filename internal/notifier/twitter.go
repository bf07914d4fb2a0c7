package notifier

import (
	"fmt"
	"os"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/dghubble/go-twitter/twitter" //nolint:staticcheck // Using stable v1.1 API
	"github.com/dghubble/oauth1"
	"github.com/pfrederiksen/weather-cli/internal/report"
)

// TwitterNotifier posts weather reports to Twitter
type TwitterNotifier struct {
	client *twitter.Client
}

// NewTwitterNotifier creates a new Twitter notifier using environment variables
// Required environment variables:
// - TWITTER_API_KEY
// - TWITTER_API_SECRET
// - TWITTER_ACCESS_TOKEN
// - TWITTER_ACCESS_SECRET
func NewTwitterNotifier() (*TwitterNotifier, error) {
	apiKey := os.Getenv("TWITTER_API_KEY")
	apiSecret := os.Getenv("TWITTER_API_SECRET")
	accessToken := os.Getenv("TWITTER_ACCESS_TOKEN")
	accessSecret := os.Getenv("TWITTER_ACCESS_SECRET")

	if apiKey == "" || apiSecret == "" || accessToken == "" || accessSecret == "" {
		return nil, fmt.Errorf("missing required Twitter credentials in environment variables")
	}

	config := oauth1.NewConfig(apiKey, apiSecret)
	token := oauth1.NewToken(accessToken, accessSecret)
	httpClient := config.Client(oauth1.NoContext, token)
	client := twitter.NewClient(httpClient)

	return &TwitterNotifier{client: client}, nil
}

// Notify posts one tweet per report
func (n *TwitterNotifier) Notify(reports []*report.Report) error {
	for i, rep := range reports {
		tweet := formatTweet(rep)

		_, _, err := n.client.Statuses.Update(tweet, nil)
		if err != nil {
			return fmt.Errorf("failed to post tweet for %s: %w", rep.City, err)
		}

		// Rate limiting: wait between tweets
		if i < len(reports)-1 {
			time.Sleep(2 * time.Second)
		}
	}

	return nil
}

// formatTweet formats a weather report as a tweet
func formatTweet(rep *report.Report) string {
	location := titleCase(rep.City)
	if rep.Country != "" {
		location += ", " + rep.Country
	}

	tweet := fmt.Sprintf("Current weather in %s\n\n", location)
	tweet += fmt.Sprintf("%.1f %s (feels like %.1f %s)\n",
		rep.Temperature, rep.Units.TempSymbol(), rep.FeelsLike, rep.Units.TempSymbol())

	if rep.Description != "" {
		tweet += rep.Description + "\n"
	}

	tweet += fmt.Sprintf("\n#weather #%s", strings.ReplaceAll(titleCase(rep.City), " ", ""))

	// Twitter limit is 280 characters
	if runes := []rune(tweet); len(runes) > 280 {
		tweet = string(runes[:277]) + "..."
	}

	return tweet
}

// titleCase uppercases the first letter of each word
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		first, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(first)) + w[size:]
	}
	return strings.Join(words, " ")
}
