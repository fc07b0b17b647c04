package domain

import (
	"fmt"
	"regexp"
)

var graphName = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]{0,127}$`)

// ValidateGraphName checks that name can be used as a store key and as a
// file name on every backend.
func ValidateGraphName(name string) error {
	if !graphName.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidGraphName, name)
	}
	return nil
}
