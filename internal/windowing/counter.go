package windowing

import (
	"unicode/utf8"

	"github.com/anthropics/anthropic-sdk-go"
)

// Counter estimates input-token cost for messages or spans.
type Counter interface {
	Message(m anthropic.MessageParam) int
	Span(s Span, all []anthropic.MessageParam) int
}

// RuneCounter is the default deterministic estimator: rune counts for text
// and tool_result payloads plus a fixed per-block overhead. Deliberately
// conservative and model-independent so window decisions are reproducible.
type RuneCounter struct{}

// blockOverhead approximates the serialization cost of one content block.
// Changing it changes every window decision; the counter tests pin it.
const blockOverhead = 4

func (RuneCounter) Message(m anthropic.MessageParam) int {
	total := 0
	for _, blk := range m.Content {
		total += countBlock(blk)
	}
	return total
}

func (rc RuneCounter) Span(s Span, all []anthropic.MessageParam) int {
	total := 0
	for i := s.Start; i < s.End && i < len(all); i++ {
		total += rc.Message(all[i])
	}
	return total
}

func countBlock(blk anthropic.ContentBlockParamUnion) int {
	if tb := blk.OfText; tb != nil {
		return utf8.RuneCountInString(tb.Text) + blockOverhead
	}

	if tr := blk.OfToolResult; tr != nil {
		if nested, ok := any(tr.Content).([]anthropic.ToolResultBlockParamContentUnion); ok {
			subtotal := 0
			for _, nb := range nested {
				if nt := nb.OfText; nt != nil {
					subtotal += utf8.RuneCountInString(nt.Text)
				}
			}
			return subtotal + blockOverhead
		}
		if s, ok := any(tr.Content).(string); ok {
			return utf8.RuneCountInString(s) + blockOverhead
		}
		vlogf("counter: unsupported tool_result payload type=%T", tr.Content)
		return blockOverhead
	}

	// tool_use, thinking, images: overhead only under this heuristic.
	return blockOverhead
}
