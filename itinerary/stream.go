package itinerary

import (
	"encoding/json"
	"strings"
)

// fragmentEnvelope is the JSON shape the generator emits per stream event.
// Plain text fragments without an envelope are also accepted (see Append).
type fragmentEnvelope struct {
	Delta *string `json:"delta"`
	Done  bool    `json:"done"`
}

// Session accumulates the streamed text of one generation run. It only
// buffers and tracks termination; parsing the buffered text is Parse's job.
//
// A Session is not safe for concurrent use. Fragments must be applied in
// arrival order since each delta is concatenated onto the buffer.
type Session struct {
	buf  strings.Builder
	done bool
}

// NewSession returns an empty session ready to accept fragments.
func NewSession() *Session {
	return &Session{}
}

// Start resets the session for a new generation run, discarding any
// previous buffer and completion state.
func (s *Session) Start() {
	s.buf.Reset()
	s.done = false
}

// Append folds one fragment into the buffer. A JSON object with done=true
// marks the session complete and appends nothing; a JSON object with a
// string delta appends that delta; anything that does not parse as a JSON
// object is appended verbatim. Malformed JSON is not an error, it is the
// fallback for generators that emit plain text chunks.
func (s *Session) Append(fragment string) {
	if trimmed := strings.TrimSpace(fragment); strings.HasPrefix(trimmed, "{") {
		var env fragmentEnvelope
		if err := json.Unmarshal([]byte(trimmed), &env); err == nil {
			if env.Done {
				s.done = true
				return
			}
			if env.Delta != nil {
				s.buf.WriteString(*env.Delta)
			}
			return
		}
	}
	s.buf.WriteString(fragment)
}

// Text returns the buffered text so far. Safe to call while the session is
// still open; callers re-render partial itineraries from it.
func (s *Session) Text() string {
	return s.buf.String()
}

// Done reports whether the generator signaled completion.
func (s *Session) Done() bool {
	return s.done
}
