package cli

import (
	"errors"
	"io"

	"github.com/kgalang/ledgerbook/book"
)

// reportValidation prints every validation problem wrapped in err, one line
// per field, and reports whether err was a validation error at all.
func reportValidation(w io.Writer, err error) bool {
	problems := validationErrors(err)
	if len(problems) == 0 {
		return false
	}
	for _, p := range problems {
		printError(w, p.Error())
	}
	return true
}

// validationErrors unwraps err (including errors.Join trees) into the
// individual validation errors it carries.
func validationErrors(err error) []*book.ValidationError {
	if err == nil {
		return nil
	}

	var verr *book.ValidationError
	if errors.As(err, &verr) {
		// Joined errors expose their parts through Unwrap() []error;
		// collect all of them, not just the first match.
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			var all []*book.ValidationError
			for _, part := range joined.Unwrap() {
				all = append(all, validationErrors(part)...)
			}
			return all
		}
		return []*book.ValidationError{verr}
	}

	return nil
}
