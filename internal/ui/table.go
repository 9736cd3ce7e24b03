package ui

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/five82/swcrawl/internal/crawl"
	"github.com/five82/swcrawl/internal/swapi"
)

// SortMode selects the column the character table is ordered by.
type SortMode int

const (
	SortArrival SortMode = iota
	SortName
	SortGender
	SortHeight
	SortFilm
)

var sortModeNames = [...]string{"arrival", "name", "gender", "height", "film"}

// String returns the persisted name of the mode.
func (s SortMode) String() string {
	if s < 0 || int(s) >= len(sortModeNames) {
		return sortModeNames[SortArrival]
	}
	return sortModeNames[s]
}

// Label returns the display label of the mode.
func (s SortMode) Label() string {
	switch s {
	case SortName:
		return "Name"
	case SortGender:
		return "Gender"
	case SortHeight:
		return "Height"
	case SortFilm:
		return "Film order"
	default:
		return "Arrival"
	}
}

// Next returns the following mode in the cycle.
func (s SortMode) Next() SortMode {
	return SortMode((int(s) + 1) % len(sortModeNames))
}

// ParseSortMode maps a persisted name back to a mode. Unknown names select
// arrival order.
func ParseSortMode(name string) SortMode {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range sortModeNames {
		if n == name {
			return SortMode(i)
		}
	}
	return SortArrival
}

// visibleRows filters rows by gender prefix and orders them by mode. The
// input slice is not modified.
func visibleRows(rows []crawl.Row, mode SortMode, desc bool, filter string) []crawl.Row {
	out := make([]crawl.Row, 0, len(rows))
	for _, row := range rows {
		if matchesGender(row.Character.Gender, filter) {
			out = append(out, row)
		}
	}

	var less func(a, b crawl.Row) int
	switch mode {
	case SortName:
		col := collate.New(language.English, collate.IgnoreCase)
		less = func(a, b crawl.Row) int {
			return col.CompareString(a.Character.Name, b.Character.Name)
		}
	case SortGender:
		less = func(a, b crawl.Row) int {
			return strings.Compare(strings.ToLower(a.Character.Gender), strings.ToLower(b.Character.Gender))
		}
	case SortHeight:
		less = compareHeight
	case SortFilm:
		less = func(a, b crawl.Row) int { return a.Index - b.Index }
	default:
		less = func(a, b crawl.Row) int { return a.Arrival - b.Arrival }
	}

	sort.SliceStable(out, func(i, j int) bool {
		c := less(out[i], out[j])
		if c == 0 {
			c = out[i].Arrival - out[j].Arrival
			return c < 0
		}
		if desc {
			return c > 0
		}
		return c < 0
	})
	return out
}

// compareHeight orders numeric heights ascending with unknown heights last.
func compareHeight(a, b crawl.Row) int {
	ha, okA := a.Character.HeightCM()
	hb, okB := b.Character.HeightCM()
	switch {
	case okA && !okB:
		return -1
	case !okA && okB:
		return 1
	case ha < hb:
		return -1
	case ha > hb:
		return 1
	default:
		return 0
	}
}

// matchesGender reports whether gender starts with filter, ignoring case.
func matchesGender(gender, filter string) bool {
	filter = strings.ToLower(strings.TrimSpace(filter))
	if filter == "" {
		return true
	}
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(gender)), filter)
}

// displayGender title-cases a gender value for the table.
func displayGender(gender string) string {
	gender = strings.TrimSpace(gender)
	if gender == "" {
		return "-"
	}
	return cases.Title(language.English).String(gender)
}

// displayHeight renders the raw height with its unit when numeric.
func displayHeight(c swapi.Character) string {
	raw := strings.TrimSpace(c.Height)
	if raw == "" {
		return "-"
	}
	if _, ok := c.HeightCM(); !ok {
		return raw
	}
	return raw + "cm"
}

// footerTotal is the Name column footer.
func footerTotal(count int) string {
	return fmt.Sprintf("Total: %d", count)
}

// footerSum is the Height column footer.
func footerSum(totalCM float64) string {
	return fmt.Sprintf("Sum: %scm (%s)", crawl.FormatCM(totalCM), crawl.FeetAndInches(totalCM))
}

// columnWidths splits the table width across Name, Gender and Height.
func columnWidths(width int) (name, gender, height int) {
	const gaps = 2
	usable := max(width-gaps*2, 12)
	height = max(usable*30/100, 8)
	gender = max(usable*25/100, 6)
	name = max(usable-height-gender, 4)
	return name, gender, height
}
