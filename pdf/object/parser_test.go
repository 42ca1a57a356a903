package object

import (
	"reflect"
	"testing"
)

func parseOne(t *testing.T, src string) Object {
	t.Helper()
	p := NewParser([]byte(src), 0)
	obj, err := p.ParseObject()
	if err != nil {
		t.Fatalf("ParseObject(%q): %v", src, err)
	}
	return obj
}

func TestParseObjectScalars(t *testing.T) {
	cases := []struct {
		src  string
		want Object
	}{
		{"null", nil},
		{"true", true},
		{"false", false},
		{"42", int64(42)},
		{"-17", int64(-17)},
		{"3.14", 3.14},
		{"/Type", Name("Type")},
		{"(hi)", "hi"},
		{"<48656C6C6F>", "Hello"},
	}
	for _, c := range cases {
		got := parseOne(t, c.src)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("%q: got %#v, want %#v", c.src, got, c.want)
		}
	}
}

func TestParseObjectDisambiguatesRefFromBareIntegers(t *testing.T) {
	got := parseOne(t, "12 0 R")
	want := Ref{Num: 12, Gen: 0}
	if got != want {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestParseObjectTwoBareIntegersAreNotARef(t *testing.T) {
	p := NewParser([]byte("12 0 34"), 0)
	first, err := p.ParseObject()
	if err != nil {
		t.Fatal(err)
	}
	if first != int64(12) {
		t.Fatalf("first: got %#v", first)
	}
	second, err := p.ParseObject()
	if err != nil {
		t.Fatal(err)
	}
	if second != int64(0) {
		t.Fatalf("second: got %#v", second)
	}
}

func TestParseObjectArray(t *testing.T) {
	got := parseOne(t, "[1 2 /Foo (bar)]")
	want := Array{int64(1), int64(2), Name("Foo"), "bar"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestParseObjectNestedArrayOfRefs(t *testing.T) {
	got := parseOne(t, "[1 0 R 2 0 R]")
	want := Array{Ref{Num: 1, Gen: 0}, Ref{Num: 2, Gen: 0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestParseObjectDict(t *testing.T) {
	got := parseOne(t, "<< /Type /Catalog /Pages 3 0 R >>")
	want := Dict{
		"Type":  Name("Catalog"),
		"Pages": Ref{Num: 3, Gen: 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestParseObjectStreamWithDirectLength(t *testing.T) {
	src := "<< /Length 5 >>\nstream\nHELLOendstream"
	p := NewParser([]byte(src), 0)
	obj, err := p.ParseObject()
	if err != nil {
		t.Fatal(err)
	}
	s, ok := obj.(*Stream)
	if !ok {
		t.Fatalf("expected *Stream, got %T", obj)
	}
	if string(s.Raw) != "HELLO" {
		t.Errorf("got raw %q", s.Raw)
	}
}

func TestParseObjectStreamScansForEndstreamWithoutLength(t *testing.T) {
	src := "<< /Length 99 0 R >>\nstream\nHELLO\nendstream"
	p := NewParser([]byte(src), 0)
	obj, err := p.ParseObject()
	if err != nil {
		t.Fatal(err)
	}
	s, ok := obj.(*Stream)
	if !ok {
		t.Fatalf("expected *Stream, got %T", obj)
	}
	if string(s.Raw) != "HELLO\n" {
		t.Errorf("got raw %q", s.Raw)
	}
}

func TestParseIndirectObject(t *testing.T) {
	src := "7 0 obj\n<< /Type /Page >>\nendobj"
	p := NewParser([]byte(src), 0)
	num, gen, obj, err := p.ParseIndirectObject()
	if err != nil {
		t.Fatal(err)
	}
	if num != 7 || gen != 0 {
		t.Errorf("got num=%d gen=%d", num, gen)
	}
	d, ok := obj.(Dict)
	if !ok || d.GetName("Type") != "Page" {
		t.Errorf("got obj %#v", obj)
	}
}

func TestParserSeekResetsLookahead(t *testing.T) {
	p := NewParser([]byte("/A /B /C"), 0)
	p.lookahead()
	p.Seek(3)
	got := parseFromFresh(t, p)
	if got != Name("B") {
		t.Errorf("got %#v, want /B", got)
	}
}

func parseFromFresh(t *testing.T, p *Parser) Object {
	t.Helper()
	obj, err := p.ParseObject()
	if err != nil {
		t.Fatal(err)
	}
	return obj
}
