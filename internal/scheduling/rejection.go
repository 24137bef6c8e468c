package scheduling

import "errors"

// Rejection is the single failure kind the scheduling core surfaces for
// business-rule and referential-integrity violations. The delivery layer
// shows Reason to the caller verbatim; infrastructure errors are never
// wrapped in a Rejection.
type Rejection struct {
	Reason string
}

func (r *Rejection) Error() string {
	return r.Reason
}

// Reject builds a Rejection for the given reason.
func Reject(reason string) error {
	return &Rejection{Reason: reason}
}

// AsRejection unwraps err into a Rejection when it is one.
func AsRejection(err error) (*Rejection, bool) {
	var rej *Rejection
	if errors.As(err, &rej) {
		return rej, true
	}
	return nil, false
}

// ErrNoDoctorAvailable is the selector's internal not-found signal. The
// scheduler converts it to a Rejection before it reaches a caller.
var ErrNoDoctorAvailable = errors.New("no doctor available")
