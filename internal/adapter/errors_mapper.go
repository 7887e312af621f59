package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/techsolutions/horabank/models"
)

// APIError is a non-2xx response mapped into an error. Message carries the
// server-embedded `{"message": ...}` body field when the server sent one;
// Body is the raw (trimmed) response body kept for logs. APIError unwraps
// to the status sentinel so errors.Is keeps working across the store layer.
type APIError struct {
	Status  int
	Message string
	Body    string
}

func (e *APIError) Error() string {
	body := e.Body
	if body == "" {
		body = http.StatusText(e.Status)
	}
	return fmt.Sprintf("http %d: %s", e.Status, body)
}

func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusBadGateway:
		return ErrBadGateway
	default:
		return nil
	}
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	var msg models.APIMessage
	_ = json.Unmarshal(resp.Body(), &msg)

	return &APIError{
		Status:  resp.StatusCode(),
		Message: msg.Message,
		Body:    body,
	}
}

// ServerMessage returns the message the server embedded in an error
// response, or "" when err is not an [*APIError] or the body carried no
// message field. Stores use it to prefer server wording over their
// generic failure texts.
func ServerMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}
