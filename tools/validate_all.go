package tools

import (
	"encoding/json"

	"github.com/finsight/fincollect/internal/validate"
)

type ValidateAllInput struct {
	MonthlyNetIncome        string `json:"monthly_net_income" jsonschema_description:"Raw net monthly income. Supports commas, currency symbols, and k/M suffixes."`
	MonthlyCommitments      string `json:"monthly_commitments" jsonschema_description:"Recurring monthly obligations (rent, school fees, ...) as a JSON object, label:amount pairs, or a delimited list. May be empty."`
	MonthlyEMIPerDebtType   string `json:"monthly_emi_per_debt_type" jsonschema_description:"EMIs per debt type, same flexible list format as commitments. May be empty."`
	InvestmentContributions string `json:"investment_contributions" jsonschema_description:"Monthly investment contributions (SIPs, RDs, ...), same flexible list format. May be empty."`
	SavingsPerMonth         string `json:"savings_per_month" jsonschema_description:"Amount actually saved per month."`
	EmergencyFundAmount     string `json:"emergency_fund_amount" jsonschema_description:"Current total emergency fund corpus."`
	HasLifeInsurance        string `json:"has_life_insurance" jsonschema_description:"Yes/No style answer for life insurance cover."`
	HasHealthInsurance      string `json:"has_health_insurance" jsonschema_description:"Yes/No style answer for health insurance cover."`
}

var ValidateAllDefinition = ToolDefinition{
	Name: "validate_all_essential_data",
	Description: `Validate and normalize all essential financial inputs in a single call.

On success returns {"status":"success","data":"<json>"} with the normalized structure. On failure returns {"status":"error","error_message":"..."} where the message embeds a JSON mapping of each failing field to its specific problem; re-ask the user for exactly those fields and call again.`,
	InputSchema: ValidateAllInputSchema,
	Function:    ValidateAll,
}

var ValidateAllInputSchema = GenerateSchema[ValidateAllInput]()

// ValidateAll runs the fail-all batch validation over the eight essential
// fields. Validation problems are reported inside the envelope, never as a
// Go error.
func ValidateAll(input json.RawMessage) (string, error) {
	var in ValidateAllInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", err
	}
	res := validator.All(validate.Inputs{
		MonthlyNetIncome:        in.MonthlyNetIncome,
		MonthlyCommitments:      in.MonthlyCommitments,
		MonthlyEMIPerDebtType:   in.MonthlyEMIPerDebtType,
		InvestmentContributions: in.InvestmentContributions,
		SavingsPerMonth:         in.SavingsPerMonth,
		EmergencyFundAmount:     in.EmergencyFundAmount,
		HasLifeInsurance:        in.HasLifeInsurance,
		HasHealthInsurance:      in.HasHealthInsurance,
	})
	return res.Encode()
}
