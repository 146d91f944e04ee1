package note

import "strings"

// CanonicalTag is the normalized form tags are matched by: lower cased and
// without the leading '#'
func CanonicalTag(tag string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(tag), "#"))
}
