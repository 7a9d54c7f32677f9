package parse_test

import (
	"strings"
	"testing"

	"github.com/finsight/fincollect/internal/parse"
)

func mustItems(t *testing.T, raw string, nonNegative bool) ([]parse.LineItem, float64) {
	t.Helper()
	var p parse.Parser
	items, total, err := p.ItemList(raw, nonNegative)
	if err != nil {
		t.Fatalf("ItemList(%q): unexpected err: %v", raw, err)
	}
	return items, total
}

func TestItemList_KeyValuePairs(t *testing.T) {
	items, total := mustItems(t, "rent:15000, groceries:8000", true)
	want := []parse.LineItem{{Type: "rent", Amount: 15000}, {Type: "groceries", Amount: 8000}}
	if len(items) != len(want) {
		t.Fatalf("items = %+v", items)
	}
	for i := range want {
		if items[i] != want[i] {
			t.Fatalf("item %d = %+v, want %+v", i, items[i], want[i])
		}
	}
	if total != 23000 {
		t.Fatalf("total = %v, want 23000", total)
	}
}

func TestItemList_BareAmounts_AutoLabeled(t *testing.T) {
	items, total := mustItems(t, "15000, 8000", true)
	if len(items) != 2 || items[0].Type != "item_0" || items[1].Type != "item_1" {
		t.Fatalf("items = %+v", items)
	}
	if items[0].Amount != 15000 || items[1].Amount != 8000 || total != 23000 {
		t.Fatalf("amounts/total wrong: %+v total=%v", items, total)
	}
}

func TestItemList_MixedSeparatorsAndFormats(t *testing.T) {
	items, total := mustItems(t, "emi1:2.5k; emi2:4500\n₹1000", true)
	if len(items) != 3 {
		t.Fatalf("items = %+v", items)
	}
	if items[0] != (parse.LineItem{Type: "emi1", Amount: 2500}) ||
		items[1] != (parse.LineItem{Type: "emi2", Amount: 4500}) ||
		items[2] != (parse.LineItem{Type: "item_2", Amount: 1000}) {
		t.Fatalf("items = %+v", items)
	}
	if total != 8000 {
		t.Fatalf("total = %v", total)
	}
}

func TestItemList_JSONObject_PreservesKeyOrder(t *testing.T) {
	items, total := mustItems(t, `{"zz_last": 1, "aa_first": "2k", "zz_last": 3}`, true)
	// Duplicate labels are kept, not merged; order follows the document.
	if len(items) != 3 {
		t.Fatalf("items = %+v", items)
	}
	if items[0].Type != "zz_last" || items[1].Type != "aa_first" || items[2].Type != "zz_last" {
		t.Fatalf("key order not preserved: %+v", items)
	}
	if items[1].Amount != 2000 || total != 2004 {
		t.Fatalf("amounts/total wrong: %+v total=%v", items, total)
	}
}

func TestItemList_JSONObject_NegativeNamesField(t *testing.T) {
	var p parse.Parser
	_, _, err := p.ItemList(`{"sip":5000,"nps":-100}`, true)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "'nps'") {
		t.Fatalf("error should name 'nps': %v", err)
	}
	if parse.CodeOf(err) != parse.ErrCodeNegative {
		t.Fatalf("code = %q", parse.CodeOf(err))
	}
}

func TestItemList_NegativeAllowed_WhenNotRestricted(t *testing.T) {
	items, total := mustItems(t, `{"adjustment": -100, "fee": 50}`, false)
	if len(items) != 2 || items[0].Amount != -100 {
		t.Fatalf("items = %+v", items)
	}
	if total != -50 {
		t.Fatalf("total = %v", total)
	}
}

func TestItemList_MalformedJSON(t *testing.T) {
	var p parse.Parser
	for _, in := range []string{`{"rent": 15000`, `{not json}`, `{`} {
		_, _, err := p.ItemList(in, true)
		if err == nil || parse.CodeOf(err) != parse.ErrCodeBadJSON {
			t.Fatalf("ItemList(%q): expected bad JSON error, got %v", in, err)
		}
		if !strings.Contains(err.Error(), "Invalid JSON format") {
			t.Fatalf("ItemList(%q): message = %v", in, err)
		}
	}
}

func TestItemList_EmptyInput_IsSuccess(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\t "} {
		items, total := mustItems(t, in, true)
		if len(items) != 0 || total != 0 {
			t.Fatalf("ItemList(%q): items=%+v total=%v", in, items, total)
		}
	}
}

func TestItemList_OnlyDelimiters_NoItems(t *testing.T) {
	var p parse.Parser
	_, _, err := p.ItemList(",,;\n,", true)
	if err == nil || parse.CodeOf(err) != parse.ErrCodeNoItems {
		t.Fatalf("expected no-items error, got %v", err)
	}
	if err.Error() != "No items provided." {
		t.Fatalf("message = %q", err.Error())
	}
}

func TestItemList_FailFast_NamesFirstBadItem(t *testing.T) {
	var p parse.Parser
	_, _, err := p.ItemList("rent:15000, groceries:abc, tuition:2000", true)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "'groceries'") {
		t.Fatalf("error should name the bad item: %v", err)
	}
	if !strings.Contains(err.Error(), "Unrecognized numeric format") {
		t.Fatalf("error should carry the underlying parse error: %v", err)
	}
}

func TestItemList_BareNegative_ReportsPositionalLabel(t *testing.T) {
	var p parse.Parser
	_, _, err := p.ItemList("100, -200", true)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "'item_1'") {
		t.Fatalf("error should name item_1: %v", err)
	}
}

func TestItemList_RoundThenSum(t *testing.T) {
	// Each item rounds to 2 dp first; the total sums the rounded values.
	items, total := mustItems(t, "a:10.006, b:10.006", true)
	if items[0].Amount != 10.01 || items[1].Amount != 10.01 {
		t.Fatalf("items not rounded: %+v", items)
	}
	if total != 20.02 {
		t.Fatalf("total = %v, want 20.02 (sum of rounded items)", total)
	}
}

func TestItemList_LabelWhitespaceTrimmed(t *testing.T) {
	items, _ := mustItems(t, "  home loan : 25000 ;  car : 7.5k ", true)
	if items[0].Type != "home loan" || items[0].Amount != 25000 {
		t.Fatalf("items = %+v", items)
	}
	if items[1].Type != "car" || items[1].Amount != 7500 {
		t.Fatalf("items = %+v", items)
	}
}
