package parse

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// numberPattern matches the cleaned numeric grammar: optional sign, decimal
// digits with an optional fraction, and an optional thousands/millions suffix.
var numberPattern = regexp.MustCompile(`^([-+]?[0-9]*\.?[0-9]+)([kKmM])?$`)

// symbolStripper removes thousands separators, common currency symbols, and
// interior spaces before the grammar check.
var symbolStripper = strings.NewReplacer(",", "", "₹", "", "$", "", "€", "", "£", "", " ", "")

// Number parses a loosely formatted numeric string into a float64.
//
// Accepted inputs include plain numbers ("5000", "-12000.50"), currency
// formats ("₹5,000", "$12,000.50"), and suffixed shorthand ("5k" -> 5000,
// "1.2M" -> 1200000). Empty or whitespace-only input is a distinct failure
// from an unparseable format. The returned value is unrounded; callers apply
// their own rounding policy.
func (p Parser) Number(raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		err := errf(ErrCodeNoValue, "No value provided")
		p.outcome("number", len(raw), err)
		return 0, err
	}

	cleaned := symbolStripper.Replace(trimmed)
	m := numberPattern.FindStringSubmatch(cleaned)
	if m == nil {
		err := errf(ErrCodeBadFormat, "Unrecognized numeric format: '%s'", raw)
		p.outcome("number", len(raw), err)
		return 0, err
	}

	val, convErr := strconv.ParseFloat(m[1], 64)
	if convErr != nil {
		err := errf(ErrCodeBadFormat, "Could not parse number part: %v", convErr)
		p.outcome("number", len(raw), err)
		return 0, err
	}

	switch strings.ToLower(m[2]) {
	case "k":
		val *= 1_000
	case "m":
		val *= 1_000_000
	}

	// Suffix multiplication on extreme inputs is the only way to get here.
	if math.IsNaN(val) || math.IsInf(val, 0) {
		err := errf(ErrCodeNotFinite, "Parsed value is not finite")
		p.outcome("number", len(raw), err)
		return 0, err
	}

	p.outcome("number", len(raw), nil)
	return val, nil
}

// Round2 rounds an amount to 2 decimal places. Decimal arithmetic keeps
// per-item rounding and totals consistent with each other.
func Round2(x float64) float64 {
	return decimal.NewFromFloat(x).Round(2).InexactFloat64()
}
