package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrStepsParse reports a steps field that could not be decoded.
var ErrStepsParse = errors.New("model: steps are not valid JSON")

// Step is one sub-item of a goal.
type Step struct {
	Title string `json:"title" yaml:"title"`
	Done  bool   `json:"done" yaml:"done"`
}

// Steps is the ordered checklist of a goal. The service persists it as
// serialized text, so on the wire it travels as a JSON string holding a
// JSON array.
type Steps []Step

// ParseSteps decodes the transport form of a steps field: a JSON string
// containing an array, a bare array, or null.
func ParseSteps(raw []byte) (Steps, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	switch raw[0] {
	case '"':
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrStepsParse, err)
		}
		if len(bytes.TrimSpace([]byte(text))) == 0 {
			return nil, nil
		}
		return ParseSteps([]byte(text))
	case '[':
		var steps []Step
		if err := json.Unmarshal(raw, &steps); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrStepsParse, err)
		}
		return steps, nil
	default:
		return nil, fmt.Errorf("%w: unexpected %q", ErrStepsParse, raw[0])
	}
}

// Text returns the serialized form the service stores.
func (s Steps) Text() string {
	if s == nil {
		return "[]"
	}
	data, err := json.Marshal([]Step(s))
	if err != nil {
		return "[]"
	}
	return string(data)
}

// MarshalJSON encodes the steps as serialized text.
func (s Steps) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Text())
}

// UnmarshalJSON accepts every form ParseSteps does.
func (s *Steps) UnmarshalJSON(data []byte) error {
	steps, err := ParseSteps(data)
	if err != nil {
		return err
	}
	*s = steps
	return nil
}

// Progress returns the number of finished steps and the total.
func (s Steps) Progress() (done, total int) {
	for _, st := range s {
		if st.Done {
			done++
		}
	}
	return done, len(s)
}

// ParseStepLine reads one step in checklist form. A "[x] " or "[X] "
// prefix marks it done, "[ ] " or no prefix leaves it open. ok is false
// when no title remains.
func ParseStepLine(line string) (step Step, ok bool) {
	line = strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(line, "[x]"), strings.HasPrefix(line, "[X]"):
		step = Step{Title: strings.TrimSpace(line[3:]), Done: true}
	case strings.HasPrefix(line, "[ ]"):
		step = Step{Title: strings.TrimSpace(line[3:])}
	default:
		step = Step{Title: line}
	}
	return step, step.Title != ""
}

// String renders the step in the form ParseStepLine reads.
func (s Step) String() string {
	if s.Done {
		return "[x] " + s.Title
	}
	return "[ ] " + s.Title
}
