package crawl

import (
	"strconv"
	"strings"
)

// cmToFeet is the conversion factor used for the height footer.
const cmToFeet = 0.032808

// FeetAndInches renders a centimeter total as "<feet>ft/<inches>in".
//
// The value is converted to feet, fixed to two decimals and split on the
// decimal point, so the "inches" part is hundredths of a foot rather than
// true inches: 100cm renders as "3ft/28in". Existing output depends on this
// arithmetic.
func FeetAndInches(cm float64) string {
	fixed := strconv.FormatFloat(cm*cmToFeet, 'f', 2, 64)
	feet, inches, _ := strings.Cut(fixed, ".")
	return feet + "ft/" + inches + "in"
}

// FormatCM renders a centimeter total without trailing zeros.
func FormatCM(cm float64) string {
	return strconv.FormatFloat(cm, 'f', -1, 64)
}
