package envelope_test

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/finsight/fincollect/internal/envelope"
)

func TestEncode_SuccessShape(t *testing.T) {
	r := envelope.Success(map[string]any{"monthly_net_income": 85000.0})
	s, err := r.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	var w map[string]any
	if err := json.Unmarshal([]byte(s), &w); err != nil {
		t.Fatalf("envelope is not valid JSON: %v", err)
	}
	if w["status"] != "success" {
		t.Fatalf("status = %v", w["status"])
	}
	// data is itself a JSON-encoded string
	data, ok := w["data"].(string)
	if !ok {
		t.Fatalf("data should be a string, got %T", w["data"])
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(data), &payload); err != nil {
		t.Fatalf("data is not embedded JSON: %v", err)
	}
	if payload["monthly_net_income"] != 85000.0 {
		t.Fatalf("payload = %v", payload)
	}
	if _, present := w["error_message"]; present {
		t.Fatal("success envelope must not carry error_message")
	}
}

func TestEncode_ErrorShape(t *testing.T) {
	s, err := envelope.Errorf("Invalid value for '%s'", "rent").Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	var w map[string]any
	if err := json.Unmarshal([]byte(s), &w); err != nil {
		t.Fatalf("envelope is not valid JSON: %v", err)
	}
	if w["status"] != "error" || w["error_message"] != "Invalid value for 'rent'" {
		t.Fatalf("envelope = %v", w)
	}
	if _, present := w["data"]; present {
		t.Fatal("error envelope must not carry data")
	}
}

func TestRoundTrip_SuccessDataIdempotent(t *testing.T) {
	in := map[string]any{
		"savings_per_month":  5000.0,
		"has_life_insurance": true,
		"commitments": []any{
			map[string]any{"type": "rent", "amount": 15000.0},
		},
	}
	s, err := envelope.Success(in).Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	out, err := envelope.Decode(s)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !out.IsSuccess() {
		t.Fatal("expected success")
	}
	if !reflect.DeepEqual(out.Data(), in) {
		t.Fatalf("round-trip mismatch:\n got %#v\nwant %#v", out.Data(), in)
	}
}

func TestRoundTrip_Error(t *testing.T) {
	out, err := envelope.Decode(envelope.Error("boom").MustEncode())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.IsSuccess() || out.Message() != "boom" {
		t.Fatalf("round-trip mismatch: %+v", out)
	}
	if out.Data() != nil {
		t.Fatal("error result must have nil data")
	}
}

func TestDecode_RejectsUnknownStatus(t *testing.T) {
	if _, err := envelope.Decode(`{"status":"weird"}`); err == nil || !strings.Contains(err.Error(), "weird") {
		t.Fatalf("expected unknown status error, got %v", err)
	}
	if _, err := envelope.Decode(`not json`); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestSuccess_NilDataBecomesEmptyObject(t *testing.T) {
	out, err := envelope.Decode(envelope.Success(nil).MustEncode())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !out.IsSuccess() || len(out.Data()) != 0 {
		t.Fatalf("got %+v", out)
	}
}
