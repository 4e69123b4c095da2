package request

import "encoding/json"

// Outcome is the normalized result of one executed request: either a
// decoded JSON body or a typed error record, never both and never a panic.
type Outcome struct {
	// Status is the HTTP status of the final attempt, or 0 when no
	// response was received.
	Status int

	// Data is the raw JSON body on success. It is nil on failure and on
	// successful responses with an empty body.
	Data json.RawMessage

	failure *Error
}

func succeed(status int, body json.RawMessage) Outcome {
	return Outcome{Status: status, Data: body}
}

func fail(e *Error) Outcome {
	return Outcome{Status: e.StatusCode, failure: e}
}

// OK reports whether the request succeeded.
func (o Outcome) OK() bool {
	return o.failure == nil
}

// Err returns the normalized failure, or nil on success.
func (o Outcome) Err() error {
	if o.failure == nil {
		return nil
	}
	return o.failure
}

// Failure returns the typed error record, or nil on success.
func (o Outcome) Failure() *Error {
	return o.failure
}

// Decode unmarshals the success body into v. On a failed outcome it
// returns the failure instead of decoding.
func (o Outcome) Decode(v any) error {
	if o.failure != nil {
		return o.failure
	}
	if len(o.Data) == 0 {
		return nil
	}
	return json.Unmarshal(o.Data, v)
}
