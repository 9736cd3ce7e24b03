package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the header drops labels.
	LayoutCompactWidth = 100

	// LayoutWideWidth is the threshold above which the film list narrows.
	LayoutWideWidth = 160
)

// Log pane limits.
const (
	// LogPaneHeight is the height of the log pane including its borders.
	LogPaneHeight = 10

	// LogTailLines is the number of log lines read from the log file.
	LogTailLines = 200

	// LogRefreshInterval is the delay between log file reads while the pane is open.
	LogRefreshInterval = 2 * time.Second
)

// filmPaneWidth returns the width of the film list for a terminal width.
func filmPaneWidth(total int) int {
	if total >= LayoutWideWidth {
		return total * 30 / 100
	}
	return max(total*40/100, 24)
}
