package wordnet

import (
	"fmt"
	"strings"

	"github.com/lexgraph/mwn/errors"
)

// DisambiguationError reports a uniqueness-required lookup that matched more
// than one candidate. It carries the conflicting keys so the caller can
// re-query with a disambiguating field (an explicit part of speech, a
// morphological tag, or a semfield code).
type DisambiguationError struct {
	Key        string
	Candidates []string
}

func (e *DisambiguationError) Error() string {
	return fmt.Sprintf("cannot disambiguate %q between %s",
		e.Key, strings.Join(e.Candidates, ", "))
}

// Unwrap ties the error into the module's sentinel hierarchy so that
// errors.IsAmbiguous works across wrapping.
func (e *DisambiguationError) Unwrap() error {
	return errors.ErrAmbiguous
}
