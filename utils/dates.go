// utils/dates.go
package utils

import "time"

// FormatDate renders a date the way the storefront displays it, e.g. 8/30/2026.
func FormatDate(t time.Time) string {
	return t.Format("1/2/2006")
}
