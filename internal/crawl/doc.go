// Package crawl holds the film-selection workflow that sits between the
// catalog client and the UI: loading and ordering the catalog, aggregating a
// film's characters, and converting the height total.
//
// # Catalog
//
// LoadCatalog fetches the film list once and orders it by release date
// (SortFilms). There is no retry; the caller surfaces the error.
//
// # Aggregation
//
// Aggregator.Run fans out one fetch per character reference using an
// errgroup. Each success is published in arrival order together with the
// running count and height sum, so a table can grow row by row. Row.Index
// keeps the reference position for callers that want film order instead.
//
// A run is a cancellable task group:
//
//   - cancelling the parent context (a new selection) stops in-flight fetches
//   - the first failed fetch cancels its siblings and nothing is published
//     after it, so rows already published stay and no stale rows follow
//
// # Heights
//
// FeetAndInches renders the total the way the table footer always has:
// centimeters * 0.032808, fixed to two decimals, split on the point.
package crawl
