package notifier

import (
	"fmt"

	"github.com/pfrederiksen/weather-cli/internal/report"
)

// DryRunNotifier prints what would be tweeted without actually posting
type DryRunNotifier struct{}

// NewDryRunNotifier creates a new dry-run notifier
func NewDryRunNotifier() *DryRunNotifier {
	return &DryRunNotifier{}
}

// Notify prints the tweets that would be posted
func (n *DryRunNotifier) Notify(reports []*report.Report) error {
	for i, rep := range reports {
		tweet := formatTweet(rep)
		fmt.Printf("--- Tweet %d/%d ---\n", i+1, len(reports))
		fmt.Println(tweet)
		fmt.Printf("\n(Length: %d characters)\n\n", len(tweet))
	}
	return nil
}
