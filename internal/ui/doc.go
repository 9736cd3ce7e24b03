// Package ui implements the swcrawl terminal interface on Bubble Tea.
//
// The screen has a header, a movie list on the left, the character pane on
// the right, an optional log pane and a command bar:
//
//   - films.go: movie selector with loading and error states
//   - characters.go, table.go: character table, sorting, gender filter and footers
//   - commands.go: messages and commands bridging the film loader and the
//     character aggregator into the update loop
//   - header.go, help.go, logs.go: status bar, command hints, help overlay
//     and the log file tail
//   - theme.go, style_helpers.go: palettes and background-safe rendering
//
// All session data lives in a state.Store; the model keeps a snapshot and
// re-reads it after every transition. Each movie selection starts a new
// aggregation generation; events from older generations are dropped and
// their fetches cancelled.
package ui
