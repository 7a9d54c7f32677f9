// Package windowing trims a conversation transcript to an input-token budget
// before each model call. Messages are never split mid-pair: an assistant
// tool_use message and the user tool_result message answering it travel as one
// atomic span, so a trimmed window never orphans a tool exchange.
//
// Includes:
//   - SplitSpans: transcript -> atomic spans (lone messages or tool pairs)
//   - Counter / RuneCounter: deterministic token estimation
//   - Fit: newest-first span selection within a budget
package windowing

import (
	"fmt"
	"os"

	"github.com/anthropics/anthropic-sdk-go"
)

// SpanKind distinguishes lone messages from validated tool pairs.
type SpanKind int

const (
	SpanLone SpanKind = iota
	SpanToolPair
)

// Span is a contiguous run of messages [Start, End) in the source slice that
// must be kept or dropped as a unit.
type Span struct {
	Kind  SpanKind
	Start int
	End   int
}

// SplitSpans walks msgs oldest to newest and returns the atomic spans.
//
// Two adjacent messages form a SpanToolPair only when all of the following
// hold; anything else degrades to lone spans:
//   - the first is an assistant message containing at least one tool_use block
//   - the second is a user message whose tool_result blocks all come before
//     any other block
//   - the leading tool_result ids cover exactly the assistant's tool_use ids,
//     no more and no fewer
//
// tool_result blocks with is_error set pair the same as successful ones.
func SplitSpans(msgs []anthropic.MessageParam) []Span {
	spans := make([]Span, 0, len(msgs))
	for i := 0; i < len(msgs); {
		useIDs := toolUseIDs(msgs[i])
		if msgs[i].Role == anthropic.MessageParamRoleAssistant && len(useIDs) > 0 {
			if i+1 < len(msgs) && msgs[i+1].Role == anthropic.MessageParamRoleUser {
				ordered, resultIDs := leadingResultIDs(msgs[i+1])
				if ordered && idsMatch(resultIDs, useIDs) {
					spans = append(spans, Span{Kind: SpanToolPair, Start: i, End: i + 2})
					i += 2
					continue
				}
				switch {
				case !ordered:
					vlogf("pair rejected: reason=ordering idx=%d", i)
				default:
					vlogf("pair rejected: reason=id_mismatch idx=%d", i)
				}
			} else {
				vlogf("pair rejected: reason=no_following_user idx=%d", i)
			}
		}
		spans = append(spans, Span{Kind: SpanLone, Start: i, End: i + 1})
		i++
	}
	return spans
}

// toolUseIDs collects the tool_use ids present in a message.
func toolUseIDs(m anthropic.MessageParam) map[string]struct{} {
	ids := make(map[string]struct{})
	for _, blk := range m.Content {
		if tu := blk.OfToolUse; tu != nil && tu.ID != "" {
			ids[tu.ID] = struct{}{}
		}
	}
	return ids
}

// leadingResultIDs returns the ids of the tool_result blocks that open a user
// message. ordered is false when a tool_result appears after some other block;
// trailing non-result blocks are fine and ignored.
func leadingResultIDs(m anthropic.MessageParam) (ordered bool, ids map[string]struct{}) {
	ids = make(map[string]struct{})
	boundary := false
	for _, blk := range m.Content {
		tr := blk.OfToolResult
		if tr == nil {
			boundary = true
			continue
		}
		if boundary {
			return false, ids
		}
		if tr.ToolUseID != "" {
			ids[tr.ToolUseID] = struct{}{}
		}
	}
	return true, ids
}

// idsMatch reports whether the two id sets are equal. Strict equality keeps
// partially-answered and over-answered tool turns out of pairs.
func idsMatch(got, want map[string]struct{}) bool {
	if len(got) != len(want) {
		return false
	}
	for id := range want {
		if _, ok := got[id]; !ok {
			return false
		}
	}
	return true
}

// Stats summarizes one Fit call.
//
// Total counts only the spans that made the window. NewestOverBudget is set
// when even the newest span alone exceeds the budget, which callers should
// treat as a hard stop rather than sending a truncated turn.
type Stats struct {
	Total            int
	Budget           int
	IncludedSpans    int
	DroppedSpans     int
	NewestOverBudget bool
}

// Fit returns the longest suffix of msgs (oldest to newest order preserved)
// whose spans fit within budget under the given Counter. Spans are admitted
// newest first; the scan stops at the first span that no longer fits, so the
// window is always contiguous.
func Fit(msgs []anthropic.MessageParam, budget int, c Counter) ([]anthropic.MessageParam, Stats) {
	if len(msgs) == 0 {
		return nil, Stats{Budget: budget}
	}

	spans := SplitSpans(msgs)

	if budget <= 0 {
		return nil, Stats{Budget: budget, DroppedSpans: len(spans), NewestOverBudget: true}
	}

	total := 0
	included := 0
	start := len(spans)
	for si := len(spans) - 1; si >= 0; si-- {
		cost := c.Span(spans[si], msgs)
		if included == 0 && cost > budget {
			vlogf("newest span over budget: budget=%d cost=%d", budget, cost)
			return nil, Stats{Budget: budget, DroppedSpans: len(spans), NewestOverBudget: true}
		}
		if total+cost > budget {
			break
		}
		total += cost
		included++
		start = si
	}

	if included == 0 {
		return nil, Stats{Budget: budget, DroppedSpans: len(spans)}
	}

	return msgs[spans[start].Start:], Stats{
		Total:         total,
		Budget:        budget,
		IncludedSpans: included,
		DroppedSpans:  len(spans) - included,
	}
}

// vlogf prints diagnostic lines when FSO_VERBOSE_WINDOW_LOGS=1. The env var
// is read per call so tests can flip it with t.Setenv.
func vlogf(format string, args ...any) {
	if os.Getenv("FSO_VERBOSE_WINDOW_LOGS") == "1" {
		fmt.Printf("[windowing] "+format+"\n", args...)
	}
}
