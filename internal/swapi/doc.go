// Package swapi provides an HTTP client for SWAPI-compatible movie catalogs.
//
// # Overview
//
// The client covers the two read-only calls swcrawl needs:
//
//   - GET {base}/films/: the film listing (first page only)
//   - GET <character url>: a single character record
//
// Character references arrive as absolute URLs inside each film. They are
// fetched as-is; relative references resolve against the configured base.
//
// # Usage
//
//	client, err := swapi.NewClient("https://swapi.dev/api/", 15*time.Second)
//	if err != nil {
//		return err
//	}
//	films, err := client.FetchFilms(ctx)
//
// # Error Handling
//
// Every call returns wrapped errors: request construction, transport
// failures, HTTP status >= 400 ("api /api/films/ returned status 500") and
// JSON decode failures ("decode response: ..."). Context cancellation is
// passed through so callers can test it with errors.Is.
//
// # Heights
//
// Character heights are strings. Character.HeightCM converts them, treating
// the "unknown" literal (and anything else non-numeric) as zero.
package swapi
