package parseserver

import "fmt"

// FallbackMessage is shown whenever the backend fails without a parseable
// error body.
const FallbackMessage = "Failed to fetch booking data, make sure you have a valid booking URL"

// Error is the single failure shape the client reports. It is always
// returned as a value; the client never panics across the RPC boundary.
type Error struct {
	Endpoint   Endpoint `json:"endpoint"`
	Status     int      `json:"status"`
	StatusText string   `json:"statusText"`
	Message    string   `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("parseserver: %s failed (%d %s): %s", e.Endpoint, e.Status, e.StatusText, e.Message)
}

// errorBody is the backend's non-2xx envelope.
type errorBody struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}
