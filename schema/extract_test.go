package schema

import (
	"testing"
)

func TestExtractJSONPlain(t *testing.T) {
	in := `{"flights": [{"airline": "Vueling"}]}`
	out, err := ExtractJSON(in)
	if err != nil {
		t.Fatalf("ExtractJSON failed: %v", err)
	}
	if string(out) != in {
		t.Errorf("Expect %s, but got %s", in, out)
	}
}

func TestExtractJSONFenced(t *testing.T) {
	in := "```json\n{\"hotels\": []}\n```"
	out, err := ExtractJSON(in)
	if err != nil {
		t.Fatalf("ExtractJSON failed: %v", err)
	}
	if string(out) != `{"hotels": []}` {
		t.Errorf("unexpected extraction: %s", out)
	}
}

func TestExtractJSONProse(t *testing.T) {
	in := `Here are the results you asked for: {"items": [{"title": "Sunset Sailing Tour"}]} hope that helps!`
	out, err := ExtractJSON(in)
	if err != nil {
		t.Fatalf("ExtractJSON failed: %v", err)
	}
	if string(out) != `{"items": [{"title": "Sunset Sailing Tour"}]}` {
		t.Errorf("unexpected extraction: %s", out)
	}
}

func TestExtractJSONArray(t *testing.T) {
	in := `[{"name": "Hotel Central"}, {"name": "Hotel Mundial"}]`
	out, err := ExtractJSON(in)
	if err != nil {
		t.Fatalf("ExtractJSON failed: %v", err)
	}
	if string(out) != in {
		t.Errorf("unexpected extraction: %s", out)
	}
}

func TestExtractJSONNestedBraces(t *testing.T) {
	in := `prefix {"a": {"b": "}"}, "c": [1, 2]} suffix`
	out, err := ExtractJSON(in)
	if err != nil {
		t.Fatalf("ExtractJSON failed: %v", err)
	}
	if string(out) != `{"a": {"b": "}"}, "c": [1, 2]}` {
		t.Errorf("unexpected extraction: %s", out)
	}
}

func TestExtractJSONNone(t *testing.T) {
	if _, err := ExtractJSON("no json here"); err == nil {
		t.Error("expected error for input without JSON")
	}
}

func TestDecodeLoose(t *testing.T) {
	var v struct {
		Flights []struct {
			Airline string `json:"airline"`
		} `json:"flights"`
	}
	if err := DecodeLoose("```json\n{\"flights\": [{\"airline\": \"easyJet\"}]}\n```", &v); err != nil {
		t.Fatalf("DecodeLoose failed: %v", err)
	}
	if len(v.Flights) != 1 || v.Flights[0].Airline != "easyJet" {
		t.Errorf("unexpected decode result: %+v", v)
	}
}
