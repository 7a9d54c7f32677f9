package telemetry

import (
	"context"

	"github.com/finsight/fincollect/internal/metrics"
)

// EmitInputFeatures records shape features of one raw user input. Only
// counts leave this function; the text itself never reaches the event log.
func EmitInputFeatures(ctx context.Context, user string) {
	if !Enabled() {
		return
	}
	turnID, _ := TurnIDFromContext(ctx)
	f := metrics.CountFeatures(user)
	Emit("input_features", map[string]any{
		"turn_id":          turnID,
		"features_version": "1",
		"user": map[string]any{
			"bytes":  f.Bytes,
			"runes":  f.Runes,
			"words":  f.Words,
			"lines":  f.Lines,
			"digits": f.Digits,
		},
	})
}
