// Package backend holds what the two external collaborators (menu
// recognition and order submission) share: the transport failure type
// for anything that goes wrong before a well-formed reply is decoded.
package backend

import "fmt"

// TransportError wraps a network or decode failure talking to a backend.
// A server that answered with success=false is NOT a transport error;
// the owning client reports that with its own type.
type TransportError struct {
	Op  string // "recognition" or "order"
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s backend unreachable or returned garbage: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
