package parse

import "strings"

var (
	trueTokens  = map[string]bool{"yes": true, "y": true, "true": true, "1": true}
	falseTokens = map[string]bool{"no": true, "n": true, "false": true, "0": true}
)

// YesNo parses a Yes/No-style answer into a strict boolean. Comparison is
// case-insensitive after trimming. fieldLabel names the field in error
// messages (e.g. "has_life_insurance").
func (p Parser) YesNo(raw, fieldLabel string) (bool, error) {
	token := strings.ToLower(strings.TrimSpace(raw))
	if token == "" {
		err := errf(ErrCodeNoValue, "'%s' is required and must be Yes or No.", fieldLabel)
		p.outcome("yes_no", len(raw), err)
		return false, err
	}
	if trueTokens[token] {
		p.outcome("yes_no", len(raw), nil)
		return true, nil
	}
	if falseTokens[token] {
		p.outcome("yes_no", len(raw), nil)
		return false, nil
	}
	err := errf(ErrCodeBadFlag, "'%s' must be Yes/No (accepted: yes/y/true/1 or no/n/false/0). Got: '%s'", fieldLabel, raw)
	p.outcome("yes_no", len(raw), err)
	return false, err
}
