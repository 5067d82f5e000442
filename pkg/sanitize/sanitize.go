package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// Strict strips all HTML from user supplied text and trims surrounding
// whitespace.
func Strict(input string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(input))
}
