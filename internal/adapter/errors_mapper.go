package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-map-places/models"
	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := errorMessage(resp.Body())

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrTooManyRequests, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// errorMessage extracts "mensagem" (and "campo" when set) from a JSON error
// body. Anything else is returned trimmed as is.
func errorMessage(raw []byte) string {
	var er models.ErrorResponse
	if err := json.Unmarshal(raw, &er); err == nil && er.Message != "" {
		if er.Field != "" {
			return er.Message + " (" + er.Field + ")"
		}
		return er.Message
	}

	return strings.TrimSpace(string(raw))
}
