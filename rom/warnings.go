package rom

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Warnings accumulates non-fatal, per-entry problems encountered while
// converting a run of segments or a MapFS archive: a decompression failure
// on one entry, a dispatch name with no matching rule, an out-of-range MapFS
// TOC entry or sprite slot. None of these abort the
// run (spec.md §7); they are collected here and handed back to the caller
// alongside the converted output.
//
// This adapts the accumulate-and-keep-going shape of the teacher's
// cmd/internal/errors.List onto github.com/hashicorp/go-multierror, the
// library other archive/firmware-format tools in this genre use for the same
// "one bad component shouldn't fail the whole image" role.
type Warnings struct {
	err *multierror.Error
}

// Addf records a warning for entry, formatted like fmt.Errorf.
func (w *Warnings) Addf(entry, format string, args ...any) {
	w.err = multierror.Append(w.err, fmt.Errorf("%s: "+format, append([]any{entry}, args...)...))
}

// Empty reports whether no warnings were recorded.
func (w *Warnings) Empty() bool {
	return w == nil || w.err == nil || w.err.Len() == 0
}

// Err returns the accumulated warnings as a single error, or nil if none
// were recorded. Callers that want per-run success/failure reporting (spec.md
// §7: "the overall run reports a non-zero exit iff any transformer aborts a
// buffer mid-flight") use this only for display; warnings alone never cause
// Dispatch to report failure.
func (w *Warnings) Err() error {
	if w.Empty() {
		return nil
	}
	return w.err.ErrorOrNil()
}
