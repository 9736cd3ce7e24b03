package swapi

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const releaseDateLayout = "2006-01-02"

// UnknownHeight is the literal the catalog uses for characters without a height.
const UnknownHeight = "unknown"

// FilmListResponse mirrors the payload returned by /films/.
type FilmListResponse struct {
	Count   int    `json:"count"`
	Next    string `json:"next"`
	Results []Film `json:"results"`
}

// Film describes a catalog entry and the characters that appear in it.
type Film struct {
	Title       string   `json:"title"`
	EpisodeID   int      `json:"episode_id"`
	Director    string   `json:"director"`
	Producer    string   `json:"producer"`
	ReleaseDate string   `json:"release_date"`
	Characters  []string `json:"characters"`
	URL         string   `json:"url"`
}

// ParsedReleaseDate returns the release date, or the zero time when it
// cannot be parsed.
func (f Film) ParsedReleaseDate() time.Time {
	t, err := time.Parse(releaseDateLayout, strings.TrimSpace(f.ReleaseDate))
	if err != nil {
		return time.Time{}
	}
	return t
}

// Year returns the four digit release year or an empty string.
func (f Film) Year() string {
	t := f.ParsedReleaseDate()
	if t.IsZero() {
		return ""
	}
	return strconv.Itoa(t.Year())
}

// Character is a person record referenced by a film.
type Character struct {
	Name   string `json:"name"`
	Gender string `json:"gender"`
	Height string `json:"height"`
	Mass   string `json:"mass"`
	URL    string `json:"url"`
}

// HeightCM returns the numeric height in centimeters. "unknown" and any
// other non-numeric value count as zero; ok reports whether the value parsed.
// Only plain decimals are accepted, so NaN, Inf, exponents and hex floats
// count as non-numeric.
func (c Character) HeightCM() (cm float64, ok bool) {
	raw := strings.ReplaceAll(strings.TrimSpace(c.Height), ",", "")
	if raw == "" || !isPlainDecimal(raw) {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func isPlainDecimal(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return false
	}
	digits := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits = true
		case r == '.':
		default:
			return false
		}
	}
	return digits
}
