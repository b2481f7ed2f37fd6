package validation

import (
	"fmt"

	"decoflow/internal/pkg/errs"
)

// Result collects the problems found for one entity. Errors make the entity
// invalid; warnings are informational.
type Result struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func newResult() Result {
	return Result{Errors: []string{}, Warnings: []string{}}
}

// Valid reports whether no errors were found.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// Err returns the errors as an errs.ValidationError, or nil.
func (r Result) Err(entity string) error {
	if r.Valid() {
		return nil
	}
	return errs.NewValidationError(entity, r.Errors)
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// merge adds other's problems, prefixed with the path of the nested entity.
func (r *Result) merge(path string, other Result) {
	for _, e := range other.Errors {
		r.Errors = append(r.Errors, path+": "+e)
	}
	for _, w := range other.Warnings {
		r.Warnings = append(r.Warnings, path+": "+w)
	}
}

func (r *Result) check(field string, err error) {
	if err != nil {
		r.errorf("%s: %v", field, err)
	}
}
