package object

import "testing"

func TestDictGettersReturnZeroValueForWrongType(t *testing.T) {
	d := Dict{
		"Name":  Name("Foo"),
		"Count": int64(3),
		"Float": 2.5,
		"Dict":  Dict{"A": int64(1)},
		"Array": Array{int64(1), int64(2)},
		"Ref":   Ref{Num: 5, Gen: 0},
	}

	if got := d.GetName("Name"); got != "Foo" {
		t.Errorf("GetName: got %q", got)
	}
	if got := d.GetName("Count"); got != "" {
		t.Errorf("GetName on wrong type: got %q, want empty", got)
	}
	if got := d.GetInt("Count"); got != 3 {
		t.Errorf("GetInt: got %d", got)
	}
	if got := d.GetInt("Float"); got != 2 {
		t.Errorf("GetInt on float64: got %d, want 2", got)
	}
	if got := d.GetInt("Missing"); got != 0 {
		t.Errorf("GetInt on missing key: got %d, want 0", got)
	}
	if got := d.GetDict("Dict"); got == nil || got["A"] != int64(1) {
		t.Errorf("GetDict: got %v", got)
	}
	if got := d.GetDict("Ref"); got != nil {
		t.Errorf("GetDict on wrong type: got %v, want nil", got)
	}
	if got := d.GetArray("Array"); len(got) != 2 {
		t.Errorf("GetArray: got %v", got)
	}
	ref, ok := d.GetRef("Ref")
	if !ok || ref.Num != 5 {
		t.Errorf("GetRef: got %v, %v", ref, ok)
	}
	if _, ok := d.GetRef("Name"); ok {
		t.Error("GetRef on wrong type: expected ok=false")
	}
}

func TestRefString(t *testing.T) {
	r := Ref{Num: 12, Gen: 3}
	if got := r.String(); got != "12 3 R" {
		t.Errorf("got %q, want %q", got, "12 3 R")
	}
}

func TestStreamFiltersSingleName(t *testing.T) {
	s := &Stream{Dict: Dict{
		"Filter":      Name("FlateDecode"),
		"DecodeParms": Dict{"Predictor": int64(2)},
	}}
	names, parms := s.Filters()
	if len(names) != 1 || names[0] != "FlateDecode" {
		t.Fatalf("got names %v", names)
	}
	if parms[0] == nil || parms[0].GetInt("Predictor") != 2 {
		t.Fatalf("got parms %v", parms)
	}
}

func TestStreamFiltersArrayChain(t *testing.T) {
	s := &Stream{Dict: Dict{
		"Filter":      Array{Name("ASCII85Decode"), Name("FlateDecode")},
		"DecodeParms": Array{nil, Dict{"Predictor": int64(12)}},
	}}
	names, parms := s.Filters()
	if len(names) != 2 || names[0] != "ASCII85Decode" || names[1] != "FlateDecode" {
		t.Fatalf("got names %v", names)
	}
	if parms[0] != nil {
		t.Errorf("expected nil parms for first filter, got %v", parms[0])
	}
	if parms[1] == nil || parms[1].GetInt("Predictor") != 12 {
		t.Errorf("got parms[1] %v", parms[1])
	}
}

func TestStreamFiltersAbsent(t *testing.T) {
	s := &Stream{Dict: Dict{}}
	names, parms := s.Filters()
	if len(names) != 0 || len(parms) != 0 {
		t.Fatalf("expected no filters, got %v %v", names, parms)
	}
}
