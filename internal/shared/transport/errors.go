package transport

import (
	"fmt"
	"net/http"
)

// ResponseError is returned when the upstream API answered with a non-2xx status.
type ResponseError struct {
	Status     int
	StatusText string
	// Data holds the decoded error body (map, string or nil).
	Data    any
	URL     string
	Method  string
	Payload any
}

func (e *ResponseError) Error() string {
	text := e.StatusText
	if text == "" {
		text = http.StatusText(e.Status)
	}
	return fmt.Sprintf("upstream %s %s responded %d %s", e.Method, e.URL, e.Status, text)
}

// RequestError is returned when the request was sent but no response was received.
type RequestError struct {
	URL    string
	Method string
	Err    error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("upstream %s %s: no response: %v", e.Method, e.URL, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }
