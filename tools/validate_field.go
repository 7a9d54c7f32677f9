package tools

import (
	"encoding/json"
	"strings"
)

type ValidateFieldInput struct {
	Field string `json:"field" jsonschema_description:"Field name to validate, e.g. monthly_net_income, annual_income, bonus_variable_income, total_outstanding_debt, assets, dependents_expense, monthly_pension_or_drawdown, has_life_insurance."`
	Value string `json:"value" jsonschema_description:"Raw user-supplied value for the field."`
}

var ValidateFieldDefinition = ToolDefinition{
	Name: "validate_field",
	Description: `Validate and normalize a single financial field by name.

Applies the field's own rule: strictly positive for income fields, non-negative for amounts, multi-item list parsing for commitment/EMI/investment/asset/expense lists, and strict Yes/No for insurance flags. Returns the same success/error envelope as validate_all_essential_data.`,
	InputSchema: ValidateFieldInputSchema,
	Function:    ValidateField,
}

var ValidateFieldInputSchema = GenerateSchema[ValidateFieldInput]()

func ValidateField(input json.RawMessage) (string, error) {
	var in ValidateFieldInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", err
	}
	return validator.Field(strings.TrimSpace(in.Field), in.Value).Encode()
}
