package catalog

const unknownFailure = "unknown data store failure"

// QueryFailure reports that a catalog query against the data store failed.
// Message always holds a description; transient and permanent causes are not
// distinguished.
type QueryFailure struct {
	Message string
	Err     error
}

func NewQueryFailure(err error) *QueryFailure {
	msg := unknownFailure
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return &QueryFailure{Message: msg, Err: err}
}

func (e *QueryFailure) Error() string {
	return e.Message
}

func (e *QueryFailure) Unwrap() error {
	return e.Err
}
