package validate

import (
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/finsight/fincollect/internal/envelope"
	"github.com/finsight/fincollect/internal/parse"
)

// Inputs carries the raw strings for one batch validation call, as collected
// from the user conversation.
type Inputs struct {
	MonthlyNetIncome        string
	MonthlyCommitments      string
	MonthlyEMIPerDebtType   string
	InvestmentContributions string
	SavingsPerMonth         string
	EmergencyFundAmount     string
	HasLifeInsurance        string
	HasHealthInsurance      string
}

// All validates every essential field independently and aggregates failures.
// Unlike the item-list parser this never stops at the first problem: one bad
// field must not hide the rest, so a single error envelope can name every
// field the user still has to fix.
//
// On success the data mapping uses the downstream pipeline's keys:
// monthly_net_income, commitments/total_commitments, emis/total_emi,
// investments/total_investment_contributions, savings_per_month,
// emergency_fund_amount, has_life_insurance, has_health_insurance.
func (v Validator) All(in Inputs) envelope.Result {
	data := map[string]any{}
	errJSON := "{}"
	failures := 0
	fail := func(field, msg string) {
		// sjson keeps insertion order, so the error mapping reads in the
		// same order the fields are checked.
		errJSON, _ = sjson.Set(errJSON, field, msg)
		failures++
	}

	if val, err := v.parser.Number(in.MonthlyNetIncome); err != nil {
		fail("monthly_net_income", err.Error())
	} else if val <= 0 {
		fail("monthly_net_income", "Monthly net income must be greater than 0.")
	} else {
		data["monthly_net_income"] = parse.Round2(val)
	}

	if items, total, err := v.parser.ItemList(in.MonthlyCommitments, true); err != nil {
		fail("monthly_commitments", err.Error())
	} else {
		data["commitments"] = items
		data["total_commitments"] = total
	}

	if items, total, err := v.parser.ItemList(in.MonthlyEMIPerDebtType, true); err != nil {
		fail("monthly_emi_per_debt_type", err.Error())
	} else {
		data["emis"] = items
		data["total_emi"] = total
	}

	if items, total, err := v.parser.ItemList(in.InvestmentContributions, true); err != nil {
		fail("investment_contributions", err.Error())
	} else {
		data["investments"] = items
		data["total_investment_contributions"] = total
	}

	if val, err := v.parser.Number(in.SavingsPerMonth); err != nil {
		fail("savings_per_month", err.Error())
	} else if val < 0 {
		fail("savings_per_month", "Savings per month cannot be negative.")
	} else {
		data["savings_per_month"] = parse.Round2(val)
	}

	if val, err := v.parser.Number(in.EmergencyFundAmount); err != nil {
		fail("emergency_fund_amount", err.Error())
	} else if val < 0 {
		fail("emergency_fund_amount", "Emergency fund total cannot be negative.")
	} else {
		data["emergency_fund_amount"] = parse.Round2(val)
	}

	if flag, err := v.parser.YesNo(in.HasLifeInsurance, "has_life_insurance"); err != nil {
		fail("has_life_insurance", err.Error())
	} else {
		data["has_life_insurance"] = flag
	}

	if flag, err := v.parser.YesNo(in.HasHealthInsurance, "has_health_insurance"); err != nil {
		fail("has_health_insurance", err.Error())
	} else {
		data["has_health_insurance"] = flag
	}

	if ev := v.parser.Events; ev != nil {
		ev("validation_summary", map[string]any{"ok": failures == 0, "failed_fields": failures})
	}
	if failures > 0 {
		indented := string(pretty.PrettyOptions([]byte(errJSON), &pretty.Options{Indent: "  "}))
		return envelope.Errorf("Validation failed for some fields. Errors: %s", trimTrailingNewline(indented))
	}
	return envelope.Success(data)
}

func trimTrailingNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
