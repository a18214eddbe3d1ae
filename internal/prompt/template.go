package prompt

import (
	"fmt"
	"strings"
)

// ValidateTemplate checks that tmpl contains Placeholder exactly once.
func ValidateTemplate(tmpl string) error {
	if n := strings.Count(tmpl, Placeholder); n != 1 {
		return fmt.Errorf("%w: found %d", ErrInvalidTemplate, n)
	}
	return nil
}

// Render substitutes input for the placeholder. Braces inside input are
// copied literally; the input is never re-scanned.
func Render(tmpl, input string) string {
	return strings.Replace(tmpl, Placeholder, input, 1)
}
