package memory

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
)

// StateFileName is where the finalized financial state object lands inside
// the state directory.
const StateFileName = "financial_state.json"

// CaptureStateObject scans assistant text for a finalized financial state
// object and persists it when found. The collector ends a session by printing
// a fenced JSON object; anything that is not a valid JSON object is ignored
// and (false, nil) is returned.
func CaptureStateObject(stateDir, assistantText string) (bool, error) {
	obj := extractJSONObject(assistantText)
	if obj == "" {
		return false, nil
	}
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return false, err
	}
	path := filepath.Join(stateDir, StateFileName)
	if err := os.WriteFile(path, []byte(obj), 0o644); err != nil {
		return false, err
	}
	return true, nil
}

// extractJSONObject returns the first valid top-level JSON object embedded in
// text, preferring fenced ```json blocks, or "" when none is present.
func extractJSONObject(text string) string {
	if fenced := insideFence(text); fenced != "" {
		if v := gjson.Parse(fenced); v.IsObject() && gjson.Valid(fenced) {
			return fenced
		}
	}

	start := strings.Index(text, "{")
	if start < 0 {
		return ""
	}
	// Walk to the matching close brace, respecting strings.
	depth := 0
	inStr := false
	esc := false
	for i := start; i < len(text); i++ {
		c := text[i]
		switch {
		case esc:
			esc = false
		case inStr && c == '\\':
			esc = true
		case c == '"':
			inStr = !inStr
		case inStr:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				cand := text[start : i+1]
				if gjson.Valid(cand) && gjson.Parse(cand).IsObject() {
					return cand
				}
				return ""
			}
		}
	}
	return ""
}

// insideFence returns the body of the first ```json fenced block, or "".
func insideFence(text string) string {
	const open = "```json"
	i := strings.Index(text, open)
	if i < 0 {
		return ""
	}
	rest := text[i+len(open):]
	j := strings.Index(rest, "```")
	if j < 0 {
		return ""
	}
	return strings.TrimSpace(rest[:j])
}
