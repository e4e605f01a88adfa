package party

import (
	"fmt"
	"net/http"

	"route-service-fleetsync/internal/apperr"
)

// StatusError is a collaborator response with status >= 400.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("code %d: %s", e.Code, e.Body)
}

// Is lets errors.Is(err, apperr.ErrNotFound) match a 404 answer.
func (e *StatusError) Is(target error) bool {
	return target == apperr.ErrNotFound && e.Code == http.StatusNotFound
}
