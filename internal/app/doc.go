// Package app is the composition root of swcrawl.
//
// It loads configuration, builds the logger and the API client, and then
// either starts the TUI (Run) or performs one headless operation (Films,
// Characters) for the CLI. Both paths drive the same state.Store
// transitions and the same crawl.Aggregator.
//
// Fatal setup problems (invalid config, bad API base, unwritable log file)
// are returned to the caller. Catalog and character failures are returned
// wrapped in state.ErrFilmsLoad or state.ErrCharactersLoad.
package app
