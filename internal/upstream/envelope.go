package upstream

import (
	"bytes"
	"encoding/json"
)

// envelope is the outer wrapper every RPC response arrives in.
type envelope struct {
	Message json.RawMessage `json:"message"`
}

// probe is the generic shape sniffed once per response.  The backend emits
// two envelope variants: the payload directly under "message", or doubly
// nested as {"message": {"message": "...", "data": {...}}}.  Success and
// the human message ride along in either variant.
type probe struct {
	Success *bool           `json:"success"`
	Message json.RawMessage `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// decodeEnvelope normalizes a response body into payload bytes, an
// optional success flag and a human-readable message.  This is the only
// place envelope shapes are inspected; call sites receive the normalized
// payload and never re-guess.  Malformed bodies degrade to an empty
// payload rather than an error.
func decodeEnvelope(body []byte) (payload json.RawMessage, success *bool, msg string) {
	payload = bytes.TrimSpace(body)

	var env envelope
	if err := json.Unmarshal(payload, &env); err == nil && env.Message != nil {
		payload = env.Message
	}

	var p probe
	if err := json.Unmarshal(payload, &p); err != nil {
		// Payload is a bare string, number or array; pass it through.
		return payload, nil, ""
	}
	success = p.Success
	if p.Message != nil {
		var s string
		if json.Unmarshal(p.Message, &s) == nil {
			msg = s
		}
	}
	if p.Data != nil {
		// Nested variant: the real payload lives under "data".
		payload = p.Data
	}
	return payload, success, msg
}
