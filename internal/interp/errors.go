package interp

import "errors"

// ErrMalformedNumber is returned by readNumber when the line isn't a valid
// signed decimal integer. It is deliberately left to propagate out of Run
// and tear down the process: the partial snapshot already saved in storage
// will be replayed verbatim (and will fail the same parse again) on the
// next start. Not handled here on purpose.
var ErrMalformedNumber = errors.New("interp: malformed number")
