package submission

import "errors"

// ErrSubmitInFlight is returned by Submit when a request is already pending.
var ErrSubmitInFlight = errors.New("submission: submit already in flight")
