package typeset

import "errors"

// ErrStale is reported by a job whose region changed before its output
// could be applied.
var ErrStale = errors.New("typeset: region changed before output was applied")
