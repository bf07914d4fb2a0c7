package notifier

import (
	"github.com/pfrederiksen/weather-cli/internal/report"
)

// Notifier defines the interface for posting weather notifications
type Notifier interface {
	// Notify posts notifications for the given reports
	Notify(reports []*report.Report) error
}
