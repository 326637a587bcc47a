package api

import (
	"github.com/danielgtaylor/huma/v2"
)

// envelopeVersion is bumped when the envelope structure changes incompatibly.
// The editor client checks this field before parsing the rest of the body.
const envelopeVersion = 1

// Envelope is the response wrapper shared by all endpoints.
// Success responses carry Data; error responses carry Error plus optional
// Code and Details from the underlying APIError.
type Envelope struct {
	V       int    `json:"v"`
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// EnvelopeTransformer wraps every response body in the shared envelope.
// Registered on the huma config so handlers return plain bodies.
func EnvelopeTransformer(_ huma.Context, _ string, v any) (any, error) {
	if apiErr, ok := v.(*APIError); ok {
		return &Envelope{
			V:       envelopeVersion,
			Success: false,
			Error:   apiErr.Message,
			Code:    apiErr.Code,
			Message: apiErr.Message,
			Details: apiErr.Details,
		}, nil
	}

	return &Envelope{
		V:       envelopeVersion,
		Success: true,
		Data:    v,
	}, nil
}
