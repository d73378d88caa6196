package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var errMalformedEnvelope = errors.New("malformed response envelope")

// envelope covers both response shapes:
//
//	{"success": bool, "data": {...}, "error": {"code", "type", "message", "details": [...]}}
//	{"status": "error", "message": "...", "errors": [{"path": [...], "message": "..."}]}
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *errorBody      `json:"error"`

	Status  string            `json:"status"`
	Message string            `json:"message"`
	Errors  []validationIssue `json:"errors"`
}

type errorBody struct {
	Code    any          `json:"code"`
	Type    string       `json:"type"`
	Message string       `json:"message"`
	Details []FieldError `json:"details"`
}

type validationIssue struct {
	Path    issuePath `json:"path"`
	Message string    `json:"message"`
}

// issuePath accepts a single string or an array of path segments
// (strings or array indices).
type issuePath []string

func (p *issuePath) UnmarshalJSON(b []byte) error {
	var single string
	if err := json.Unmarshal(b, &single); err == nil {
		*p = issuePath{single}
		return nil
	}

	var parts []any
	if err := json.Unmarshal(b, &parts); err != nil {
		return err
	}
	out := make(issuePath, 0, len(parts))
	for _, part := range parts {
		out = append(out, fmt.Sprint(part))
	}
	*p = out
	return nil
}

// decodeEnvelope turns an HTTP status and body into either a populated out
// value or an *APIError. When out is nil any 2xx response counts as success
// unless the body explicitly says "success": false.
func decodeEnvelope(status int, body []byte, out any) error {
	ok2xx := status >= 200 && status < 300

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		if ok2xx && out == nil && len(bytes.TrimSpace(body)) == 0 {
			return nil
		}
		return &APIError{Kind: classify(status, "", false), Status: status, Err: fmt.Errorf("%w: %v", errMalformedEnvelope, err)}
	}

	if ok2xx && (env.Success == nil || *env.Success) && env.Error == nil && env.Status != "error" {
		if out == nil {
			return nil
		}
		if env.Success == nil || len(env.Data) == 0 || string(env.Data) == "null" {
			return &APIError{Kind: KindTransport, Status: status, Err: errMalformedEnvelope}
		}
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &APIError{Kind: KindTransport, Status: status, Err: fmt.Errorf("%w: %v", errMalformedEnvelope, err)}
		}
		return nil
	}

	apiErr := &APIError{Status: status}
	structured := false

	switch {
	case env.Error != nil:
		structured = true
		apiErr.Type = env.Error.Type
		apiErr.Message = env.Error.Message
		apiErr.Details = env.Error.Details
	case env.Status == "error" || len(env.Errors) > 0:
		structured = true
		apiErr.Message = env.Message
		for _, issue := range env.Errors {
			apiErr.Details = append(apiErr.Details, FieldError{
				Field:   strings.Join(issue.Path, "."),
				Message: issue.Message,
			})
		}
	}

	apiErr.Kind = classify(status, apiErr.Type, structured)
	return apiErr
}

// classify maps a failed response onto the error taxonomy. A structured
// envelope upgrades an otherwise unknown failure to a validation failure.
func classify(status int, errType string, structured bool) Kind {
	switch strings.ToUpper(errType) {
	case "FORBIDDEN", "PERMISSION_DENIED":
		return KindPermission
	case "UNAUTHORIZED", "UNAUTHENTICATED":
		return KindUnauthorized
	}

	switch status {
	case http.StatusForbidden:
		return KindPermission
	case http.StatusUnauthorized:
		return KindUnauthorized
	}

	if structured {
		return KindValidation
	}
	return KindTransport
}
