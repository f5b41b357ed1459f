package utils

import (
	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeText strips all HTML from user-supplied text. Applied to thread
// titles, post bodies and author names before persistence.
func SanitizeText(s string) string {
	return strictPolicy.Sanitize(s)
}
