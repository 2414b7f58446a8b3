package compress

import "github.com/oakenshield/nbt/errs"

// errCompressionFailure is the sentinel every codec wraps its
// container-specific errors in, so callers can match with
// errors.Is(err, errs.ErrCompressionFailure) regardless of which
// scheme produced the failure.
var errCompressionFailure = errs.ErrCompressionFailure
