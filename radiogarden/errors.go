package radiogarden

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned before any request is sent when a
	// required argument is blank.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsuccessful marks an absent result: the service answered with a
	// non-2xx status.
	ErrUnsuccessful = errors.New("unsuccessful response")

	// ErrDecode marks a 2xx response whose body could not be decoded.
	ErrDecode = errors.New("decode response")
)

// StatusError carries the status of a non-2xx response.
type StatusError struct {
	Op   string
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: code %d", e.Op, e.Code)
	}
	return fmt.Sprintf("%s: code %d: %s", e.Op, e.Code, e.Body)
}

func (e *StatusError) Is(target error) bool { return target == ErrUnsuccessful }

// DecodeError wraps a JSON decoding failure of a successful response.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("%s: decode: %v", e.Op, e.Err) }

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// TransportError wraps a network level failure (DNS, refused connection,
// timeout, cancelled context).
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("%s: transport: %v", e.Op, e.Err) }

func (e *TransportError) Unwrap() error { return e.Err }

// IsAbsent reports whether err means the service had no data for the request.
func IsAbsent(err error) bool { return errors.Is(err, ErrUnsuccessful) }

func invalidArgument(op, name string) error {
	return fmt.Errorf("%s: %w: %s must be non-empty", op, ErrInvalidArgument, name)
}
