package domain

import "strconv"

// FormatUnits renders a unit count with the shortest exact decimal form.
func FormatUnits(units float64) string {
	return strconv.FormatFloat(units, 'f', -1, 64)
}
