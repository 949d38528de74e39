// internal/common/ids.go
package common

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedAccession marks an accession that carries no component id.
var ErrMalformedAccession = errors.New("malformed accession")

// AccessionError describes why a component id could not be derived.
type AccessionError struct {
	Accession string
	Reason    string
}

func (e *AccessionError) Error() string {
	return fmt.Sprintf("%v %q: %s", ErrMalformedAccession, e.Accession, e.Reason)
}

func (e *AccessionError) Unwrap() error { return ErrMalformedAccession }

// ComponentFromAccession extracts the component id from an accession of the
// form "<prefix>_<id>[_...]". Empty tokens are skipped, so "c__12" yields 12.
func ComponentFromAccession(acc string) (int, error) {
	parts := strings.FieldsFunc(acc, func(r rune) bool { return r == '_' })
	if len(parts) < 2 {
		return 0, &AccessionError{Accession: acc, Reason: "no '_'-separated component id token"}
	}
	id, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, &AccessionError{Accession: acc, Reason: fmt.Sprintf("component id token %q is not an integer", parts[1])}
	}
	return id, nil
}
