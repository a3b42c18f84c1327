package api

import (
	"strconv"

	"github.com/danielgtaylor/huma/v2"

	domainerrors "github.com/slovar-dev/slovar/internal/errors"
	"github.com/slovar-dev/slovar/internal/http/response"
)

// EnvelopeTransformer wraps every huma response body in response.Envelope.
// Success bodies land in "data"; errors become "error", "code" and "details".
func EnvelopeTransformer(_ huma.Context, status string, v any) (any, error) {
	code, err := strconv.Atoi(status)
	if err != nil {
		code = 200
	}

	if code < 400 {
		return response.OK(v), nil
	}

	switch e := v.(type) {
	case *APIError:
		return response.Fail(e.Code, e.Message, e.Details), nil
	case *huma.ErrorModel:
		return response.Fail(string(domainerrors.CodeForStatus(e.Status)), e.Detail, nil), nil
	case error:
		return response.Fail(string(domainerrors.CodeForStatus(code)), e.Error(), nil), nil
	default:
		return response.Fail(string(domainerrors.CodeForStatus(code)), "request failed", v), nil
	}
}
