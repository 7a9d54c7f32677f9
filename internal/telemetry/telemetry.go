// Package telemetry emits line-delimited JSON diagnostics for parse and
// agent activity. Emission is off unless explicitly enabled; events carry
// sizes, counts, and outcome codes, never raw user input.
package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Enabled reports whether JSONL emission is on (FSO_OBSERVE_JSON=1).
// Read live so tests and the config loader can flip it at any point.
func Enabled() bool {
	return os.Getenv("FSO_OBSERVE_JSON") == "1"
}

// StateDir returns the directory holding events, transcripts, and captured
// state objects: FSO_STATE_DIR when set, otherwise ".agent".
func StateDir() string {
	if dir := os.Getenv("FSO_STATE_DIR"); dir != "" {
		return dir
	}
	return ".agent"
}

// Emit appends one JSON line to events.jsonl under the state dir when
// observation is enabled. The event name and an RFC3339Nano timestamp are
// added to a copy of fields; the caller's map is never mutated. Failures are
// reported to stderr and otherwise ignored: telemetry must not break a turn.
func Emit(name string, fields map[string]any) {
	if !Enabled() {
		return
	}

	m := make(map[string]any, len(fields)+2)
	for k, v := range fields {
		m[k] = v
	}
	m["time"] = time.Now().UTC().Format(time.RFC3339Nano)
	m["event"] = name

	b, err := json.Marshal(m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "telemetry: marshal: %v\n", err)
		return
	}

	dir := StateDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "telemetry: mkdir %s: %v\n", dir, err)
		return
	}

	path := filepath.Join(dir, "events.jsonl")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "telemetry: open %s: %v\n", path, err)
		return
	}
	defer f.Close()

	if _, err := f.Write(append(b, '\n')); err != nil {
		fmt.Fprintf(os.Stderr, "telemetry: write %s: %v\n", path, err)
	}
}
