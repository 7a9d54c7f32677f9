package parse

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

// LineItem is one labeled amount within a multi-item list. Duplicate labels
// are allowed and kept as separate entries.
type LineItem struct {
	Type   string  `json:"type"`
	Amount float64 `json:"amount"`
}

// itemSeparators splits delimited lists on runs of commas, semicolons, and
// newlines.
var itemSeparators = regexp.MustCompile(`[,\n;]+`)

// ItemList parses a multi-item financial list into labeled line items and a
// total.
//
// Accepted surface forms:
//  1. JSON object: {"rent": 15000, "groceries": "8k"}; keys become labels.
//  2. Key-value pairs: "rent:15000, groceries:8000" (comma, semicolon, or
//     newline separated; the first colon splits label from amount).
//  3. Bare amounts: "15000, 8000", auto-labeled item_0, item_1, ...
//
// Empty or whitespace-only input means "nothing to report": an empty list
// and a zero total, not an error. Parsing is fail-fast: the first bad item
// aborts the call naming that item. When nonNegative is set, negative
// amounts are rejected the same way.
//
// Every kept amount is rounded to 2 decimal places; the total is the sum of
// the rounded amounts, itself rounded to 2 decimal places.
func (p Parser) ItemList(raw string, nonNegative bool) ([]LineItem, float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return []LineItem{}, 0, nil
	}

	var (
		items []LineItem
		err   error
	)
	if strings.HasPrefix(trimmed, "{") {
		items, err = p.jsonItems(trimmed, nonNegative)
	} else {
		items, err = p.delimitedItems(trimmed, nonNegative)
	}
	if err != nil {
		p.outcome("item_list", len(raw), err)
		return nil, 0, err
	}

	total := decimal.Zero
	for _, it := range items {
		total = total.Add(decimal.NewFromFloat(it.Amount))
	}
	p.outcome("item_list", len(raw), nil)
	p.emit("item_list_parsed", map[string]any{"items": len(items)})
	return items, total.Round(2).InexactFloat64(), nil
}

// jsonItems handles the JSON-object form. gjson iterates keys in document
// order, which keeps output order equal to input order.
func (p Parser) jsonItems(trimmed string, nonNegative bool) ([]LineItem, error) {
	if !gjson.Valid(trimmed) {
		// Re-parse with encoding/json purely to name the syntax problem.
		var v any
		jerr := json.Unmarshal([]byte(trimmed), &v)
		return nil, errf(ErrCodeBadJSON, "Invalid JSON format: %v", jerr)
	}
	parsed := gjson.Parse(trimmed)
	if !parsed.IsObject() {
		return nil, errf(ErrCodeNotObject, "JSON must be a key-value object.")
	}

	items := []LineItem{}
	var itemErr *Error
	parsed.ForEach(func(key, value gjson.Result) bool {
		label := key.String()
		amt, err := p.Number(strings.TrimSpace(value.String()))
		if err != nil {
			itemErr = errf(ErrCodeBadItem, "Invalid amount for '%s': %v", label, err)
			return false
		}
		if nonNegative && amt < 0 {
			itemErr = errf(ErrCodeNegative, "Value for '%s' must be non-negative.", label)
			return false
		}
		items = append(items, LineItem{Type: label, Amount: Round2(amt)})
		return true
	})
	if itemErr != nil {
		return nil, itemErr
	}
	return items, nil
}

// delimitedItems handles the label:amount and bare-amount forms.
func (p Parser) delimitedItems(trimmed string, nonNegative bool) ([]LineItem, error) {
	parts := make([]string, 0, 4)
	for _, frag := range itemSeparators.Split(trimmed, -1) {
		if s := strings.TrimSpace(frag); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return nil, errf(ErrCodeNoItems, "No items provided.")
	}

	items := make([]LineItem, 0, len(parts))
	for idx, part := range parts {
		label := ""
		amtRaw := part
		if i := strings.Index(part, ":"); i >= 0 {
			label = strings.TrimSpace(part[:i])
			amtRaw = part[i+1:]
		}

		amt, err := p.Number(amtRaw)
		if err != nil {
			name := label
			if name == "" {
				name = part
			}
			return nil, errf(ErrCodeBadItem, "Invalid value for '%s': %v", name, err)
		}
		if nonNegative && amt < 0 {
			name := label
			if name == "" {
				name = fmt.Sprintf("item_%d", idx)
			}
			return nil, errf(ErrCodeNegative, "Value for '%s' must be non-negative.", name)
		}

		// Bare amounts are labeled by running item count, not split index.
		if label == "" {
			label = fmt.Sprintf("item_%d", len(items))
		}
		items = append(items, LineItem{Type: label, Amount: Round2(amt)})
	}
	return items, nil
}
