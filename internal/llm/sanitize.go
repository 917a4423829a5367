package llm

import (
	"errors"
	"strings"
)

// SanitizeReplyPayload trims the junk models wrap around a JSON reply:
// markdown code fences, leading prose, trailing commentary. It returns the
// outermost {...} object found in the text. The reply content itself is not
// rewritten; if no object can be located, the caller treats the reply as
// malformed.
func SanitizeReplyPayload(raw []byte) ([]byte, error) {
	s := strings.TrimSpace(string(raw))

	// drop ```json ... ``` fences if present
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
		s = strings.TrimSpace(s)
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end < 0 || end < start {
		return nil, errors.New("no JSON object in model reply")
	}
	return []byte(s[start : end+1]), nil
}
