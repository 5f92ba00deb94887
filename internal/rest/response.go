package rest

import (
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/lawgdev/lawg-go/internal/schema"
	"github.com/lawgdev/lawg-go/pkg/types"
)

// envelope is the fixed wire wrapper around every API response.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

// apiErrorBody is the structured form of the error field. The service
// also emits the error as a bare string; both forms are accepted.
type apiErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// unwrap validates a raw response and returns the payload bytes.
// Non-2xx statuses map to *types.APIError. On 2xx the envelope must
// parse, carry a true success flag, and hold a payload matching the
// schema; any violation maps to *types.ValidationError. Operations
// without a response schema (deletes) return nil payload bytes.
func unwrap(resp *Response, s schema.Schema, many bool) (json.RawMessage, error) {
	if resp.StatusCode/100 != 2 {
		return nil, apiError(resp)
	}

	var env envelope
	if err := json.Unmarshal(resp.Body, &env); err != nil {
		return nil, envelopeIssue("malformed response envelope: " + err.Error())
	}
	if !env.Success {
		return nil, envelopeIssue("success flag is false on a 2xx response")
	}
	if s.Fields == nil {
		return nil, nil
	}

	var payload any
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return nil, envelopeIssue("malformed data payload: " + err.Error())
	}
	if many {
		if _, err := s.ValidateMany(payload); err != nil {
			return nil, err
		}
	} else {
		if _, err := s.ValidateAny(payload); err != nil {
			return nil, err
		}
	}
	return env.Data, nil
}

// apiError maps a non-2xx response to *types.APIError, pulling the
// server's message out of the error envelope when it parses and falling
// back to the HTTP status text when it does not.
func apiError(resp *Response) error {
	apiErr := &types.APIError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
	}

	var env envelope
	if err := json.Unmarshal(resp.Body, &env); err != nil || len(env.Error) == 0 {
		return apiErr
	}

	var msg string
	if err := json.Unmarshal(env.Error, &msg); err == nil {
		apiErr.Message = msg
		return apiErr
	}

	var body apiErrorBody
	if err := json.Unmarshal(env.Error, &body); err == nil {
		apiErr.Code = body.Code
		if body.Message != "" {
			apiErr.Message = body.Message
		} else if body.Code != "" {
			apiErr.Message = body.Code
		}
	}
	return apiErr
}

func envelopeIssue(reason string) error {
	return &types.ValidationError{
		Schema: "response.envelope",
		Issues: []types.Issue{{Code: types.CodeInvalidPayload, Reason: reason}},
	}
}
