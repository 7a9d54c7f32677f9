package validate

import (
	"sort"

	"github.com/finsight/fincollect/internal/envelope"
	"github.com/finsight/fincollect/internal/parse"
)

// Kind classifies how a field's raw string is parsed and constrained.
type Kind int

const (
	// Positive numbers must parse and be strictly greater than zero.
	Positive Kind = iota
	// NonNegative numbers must parse and be zero or more.
	NonNegative
	// ItemList fields hold multi-item lists whose amounts must all be
	// non-negative.
	ItemList
	// YesNo fields hold strict boolean flags.
	YesNo
)

// rules maps every known field to its kind. The reference pipeline carried a
// near-duplicate parser per field; they all collapse into this table.
var rules = map[string]Kind{
	"monthly_net_income":          Positive,
	"annual_income":               Positive,
	"monthly_pension_or_drawdown": Positive,

	"bonus_variable_income":  NonNegative,
	"total_outstanding_debt": NonNegative,
	"savings_per_month":      NonNegative,
	"emergency_fund_amount":  NonNegative,

	"monthly_commitments":       ItemList,
	"monthly_emi_per_debt_type": ItemList,
	"investment_contributions":  ItemList,
	"assets":                    ItemList,
	"dependents_expense":        ItemList,

	"has_life_insurance":   YesNo,
	"has_health_insurance": YesNo,
}

// Fields returns the names of all known fields, sorted.
func Fields() []string {
	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validator runs field rules with an injected event sink.
type Validator struct {
	parser parse.Parser
}

// New returns a Validator whose parsers report through events. A nil sink
// disables diagnostics.
func New(events parse.Events) Validator {
	return Validator{parser: parse.Parser{Events: events}}
}

// Field validates one raw value against the named field's rule and returns
// the envelope directly; there is no intermediate unwrapped form.
//
// Numbers are rounded to 2 decimal places. Item-list fields return the items
// under the field name plus a "total" key.
func (v Validator) Field(name, raw string) envelope.Result {
	kind, known := rules[name]
	if !known {
		return envelope.Errorf("Unknown field: '%s'", name)
	}

	switch kind {
	case Positive, NonNegative:
		val, err := v.parser.Number(raw)
		if err != nil {
			return envelope.Error(err.Error())
		}
		if kind == Positive && val <= 0 {
			return envelope.Errorf("'%s' must be greater than 0.", name)
		}
		if kind == NonNegative && val < 0 {
			return envelope.Errorf("'%s' cannot be negative.", name)
		}
		return envelope.Success(map[string]any{name: parse.Round2(val)})

	case ItemList:
		items, total, err := v.parser.ItemList(raw, true)
		if err != nil {
			return envelope.Error(err.Error())
		}
		return envelope.Success(map[string]any{name: items, "total": total})

	default: // YesNo
		flag, err := v.parser.YesNo(raw, name)
		if err != nil {
			return envelope.Error(err.Error())
		}
		return envelope.Success(map[string]any{name: flag})
	}
}
