package validate_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/finsight/fincollect/internal/validate"
)

func goodInputs() validate.Inputs {
	return validate.Inputs{
		MonthlyNetIncome:        "₹85,000",
		MonthlyCommitments:      "rent:15000, groceries:8000",
		MonthlyEMIPerDebtType:   `{"home_loan": 25000, "car_loan": "7.5k"}`,
		InvestmentContributions: "sip_equity:10000; nps:5000",
		SavingsPerMonth:         "5000",
		EmergencyFundAmount:     "1.2M",
		HasLifeInsurance:        "Yes",
		HasHealthInsurance:      "no",
	}
}

// embeddedErrors extracts the field->message mapping out of a batch error
// envelope message.
func embeddedErrors(t *testing.T, msg string) map[string]string {
	t.Helper()
	i := strings.Index(msg, "{")
	if i < 0 {
		t.Fatalf("no embedded JSON in %q", msg)
	}
	out := map[string]string{}
	if err := json.Unmarshal([]byte(msg[i:]), &out); err != nil {
		t.Fatalf("embedded mapping is not valid JSON: %v\nmsg=%s", err, msg)
	}
	return out
}

func TestAll_Success_NormalizedData(t *testing.T) {
	v := validate.New(nil)
	res := v.All(goodInputs())
	if !res.IsSuccess() {
		t.Fatalf("unexpected error: %s", res.Message())
	}
	data := res.Data()

	if data["monthly_net_income"] != 85000.0 {
		t.Errorf("monthly_net_income = %v", data["monthly_net_income"])
	}
	if data["total_commitments"] != 23000.0 {
		t.Errorf("total_commitments = %v", data["total_commitments"])
	}
	if data["total_emi"] != 32500.0 {
		t.Errorf("total_emi = %v", data["total_emi"])
	}
	if data["total_investment_contributions"] != 15000.0 {
		t.Errorf("total_investment_contributions = %v", data["total_investment_contributions"])
	}
	if data["savings_per_month"] != 5000.0 {
		t.Errorf("savings_per_month = %v", data["savings_per_month"])
	}
	if data["emergency_fund_amount"] != 1200000.0 {
		t.Errorf("emergency_fund_amount = %v", data["emergency_fund_amount"])
	}
	if data["has_life_insurance"] != true || data["has_health_insurance"] != false {
		t.Errorf("insurance flags = %v / %v", data["has_life_insurance"], data["has_health_insurance"])
	}
}

func TestAll_EmptyLists_AreValid(t *testing.T) {
	in := goodInputs()
	in.MonthlyCommitments = ""
	in.MonthlyEMIPerDebtType = "   "
	v := validate.New(nil)
	res := v.All(in)
	if !res.IsSuccess() {
		t.Fatalf("unexpected error: %s", res.Message())
	}
	if res.Data()["total_commitments"] != 0.0 || res.Data()["total_emi"] != 0.0 {
		t.Fatalf("totals = %v / %v", res.Data()["total_commitments"], res.Data()["total_emi"])
	}
}

func TestAll_FailAll_CollectsEveryBrokenField(t *testing.T) {
	in := goodInputs()
	in.MonthlyNetIncome = "abc"       // malformed
	in.EmergencyFundAmount = "-10000" // semantic violation
	v := validate.New(nil)

	res := v.All(in)
	if res.IsSuccess() {
		t.Fatal("expected error")
	}
	errs := embeddedErrors(t, res.Message())
	if len(errs) != 2 {
		t.Fatalf("expected exactly 2 failing fields, got %v", errs)
	}
	if !strings.Contains(errs["monthly_net_income"], "Unrecognized numeric format: 'abc'") {
		t.Errorf("monthly_net_income error = %q", errs["monthly_net_income"])
	}
	if errs["emergency_fund_amount"] != "Emergency fund total cannot be negative." {
		t.Errorf("emergency_fund_amount error = %q", errs["emergency_fund_amount"])
	}
}

func TestAll_ListFailure_NamesItemInsideField(t *testing.T) {
	in := goodInputs()
	in.InvestmentContributions = `{"sip":5000,"nps":-100}`
	v := validate.New(nil)

	res := v.All(in)
	if res.IsSuccess() {
		t.Fatal("expected error")
	}
	errs := embeddedErrors(t, res.Message())
	if len(errs) != 1 {
		t.Fatalf("errs = %v", errs)
	}
	if !strings.Contains(errs["investment_contributions"], "'nps'") {
		t.Errorf("error should name the negative item: %q", errs["investment_contributions"])
	}
}

func TestAll_MissingFlags_Reported(t *testing.T) {
	in := goodInputs()
	in.HasLifeInsurance = ""
	in.HasHealthInsurance = "dunno"
	v := validate.New(nil)

	res := v.All(in)
	errs := embeddedErrors(t, res.Message())
	if errs["has_life_insurance"] != "'has_life_insurance' is required and must be Yes or No." {
		t.Errorf("has_life_insurance error = %q", errs["has_life_insurance"])
	}
	if !strings.Contains(errs["has_health_insurance"], "'dunno'") {
		t.Errorf("has_health_insurance error = %q", errs["has_health_insurance"])
	}
}

func TestAll_EmitsValidationSummary(t *testing.T) {
	var summaries []map[string]any
	v := validate.New(func(name string, fields map[string]any) {
		if name == "validation_summary" {
			summaries = append(summaries, fields)
		}
	})

	v.All(goodInputs())
	in := goodInputs()
	in.SavingsPerMonth = "oops"
	v.All(in)

	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}
	if summaries[0]["ok"] != true || summaries[1]["ok"] != false {
		t.Fatalf("summaries = %v", summaries)
	}
	if summaries[1]["failed_fields"] != 1 {
		t.Fatalf("failed_fields = %v", summaries[1]["failed_fields"])
	}
}
