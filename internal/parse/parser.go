package parse

// Events receives diagnostic parse events. It matches telemetry.Emit so the
// tools layer can wire the JSONL sink straight in; a nil sink keeps the
// parser silent. Raw input values are never passed to the sink, only sizes
// and outcome codes.
type Events func(name string, fields map[string]any)

// Parser groups the parsing operations around an injected event sink.
// The zero value is a fully working, silent parser.
type Parser struct {
	Events Events
}

func (p Parser) emit(name string, fields map[string]any) {
	if p.Events != nil {
		p.Events(name, fields)
	}
}

// outcome reports one parse result to the event sink.
func (p Parser) outcome(kind string, inputLen int, err error) {
	if p.Events == nil {
		return
	}
	fields := map[string]any{
		"kind":       kind,
		"input_size": inputLen,
		"ok":         err == nil,
	}
	if code := CodeOf(err); code != "" {
		fields["code"] = code
	}
	p.emit("parse_outcome", fields)
}
