// Package mask hides sensitive identifiers for display.
package mask

import "strings"

const visibleSuffix = 4

// Sensitive keeps the last four characters and stars the rest. Values of
// four characters or fewer are fully starred.
func Sensitive(v string) string {
	if strings.TrimSpace(v) == "" {
		return ""
	}
	r := []rune(v)
	if len(r) <= visibleSuffix {
		return strings.Repeat("*", len(r))
	}
	return strings.Repeat("*", len(r)-visibleSuffix) + string(r[len(r)-visibleSuffix:])
}
