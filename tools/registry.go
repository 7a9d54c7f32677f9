package tools

import (
	"github.com/finsight/fincollect/internal/telemetry"
	"github.com/finsight/fincollect/internal/validate"
)

// validator is shared by all tool handlers; parse diagnostics flow into the
// JSONL event sink.
var validator = validate.New(telemetry.Emit)

// Registry returns all tool definitions wired for the agent
func Registry() []ToolDefinition {
	return []ToolDefinition{ValidateAllDefinition, ValidateFieldDefinition, ParseAmountDefinition}
}
