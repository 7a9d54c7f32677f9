package tools

import (
	"encoding/json"

	"github.com/finsight/fincollect/internal/envelope"
	"github.com/finsight/fincollect/internal/parse"
	"github.com/finsight/fincollect/internal/telemetry"
)

type ParseAmountInput struct {
	Value string `json:"value" jsonschema_description:"A single amount in free form, e.g. '₹1,200.50', '5k', '1.2M'."`
}

var ParseAmountDefinition = ToolDefinition{
	Name: "parse_amount",
	Description: `Parse a single free-form amount into a normalized number without applying any field rule.

Useful for echoing a cleaned figure back to the user before committing it to a field.`,
	InputSchema: ParseAmountInputSchema,
	Function:    ParseAmount,
}

var ParseAmountInputSchema = GenerateSchema[ParseAmountInput]()

func ParseAmount(input json.RawMessage) (string, error) {
	var in ParseAmountInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", err
	}
	p := parse.Parser{Events: telemetry.Emit}
	val, err := p.Number(in.Value)
	if err != nil {
		return envelope.Error(err.Error()).Encode()
	}
	return envelope.Success(map[string]any{"amount": parse.Round2(val)}).Encode()
}
