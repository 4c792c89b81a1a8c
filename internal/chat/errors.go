package chat

import "fmt"

// TransportError is returned when the backend answers with a non-2xx status
type TransportError struct {
	StatusCode int
	Body       string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("HTTP error: %d %s", e.StatusCode, e.Body)
}

// DecodeError is returned when a response body does not have the expected shape
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "decode chat response: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
