package kanpla

import "fmt"

// APIError is returned when the vendor answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	body := e.Body
	if len(body) > 200 {
		body = body[:200] + "..."
	}
	return fmt.Sprintf("vendor api error: status %d: %s", e.StatusCode, body)
}
