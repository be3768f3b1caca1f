package goalsapi

import "encoding/json"

// goalEnvelope is the response shape of create (and of services that wrap
// updates the same way): { "goal": Goal }.
type goalEnvelope struct {
	Goal json.RawMessage `json:"goal"`
}

// Ack is the acknowledgment body returned by delete.
type Ack struct {
	OK      bool   `json:"ok,omitempty"`
	Message string `json:"message,omitempty"`
}
