package pick

import (
	"reflect"
	"strings"
	"testing"
)

func TestFormatEntitiesLastWins(t *testing.T) {
	shapes := []Shape{
		{Points: Rect(0, 0, 1, 1), Label: "total", Transcript: "10"},
		{Points: Rect(0, 0, 1, 1), Label: "total", Transcript: "20"},
	}

	got, err := FormatEntities(shapes)
	if err != nil {
		t.Fatalf("FormatEntities failed: %v", err)
	}
	if want := `{"total": "20"}`; got != want {
		t.Errorf("FormatEntities = %s, want %s", got, want)
	}
}

func TestFormatEntitiesOrderAndEscaping(t *testing.T) {
	shapes := []Shape{
		{Label: "company", Transcript: `ACME "East" & Co`},
		{Label: "date", Transcript: "2020-01-01"},
		{Label: "company", Transcript: "Café <Nord>"},
	}

	got, err := FormatEntities(shapes)
	if err != nil {
		t.Fatalf("FormatEntities failed: %v", err)
	}
	want := `{"company": "Café <Nord>", "date": "2020-01-01"}`
	if got != want {
		t.Errorf("FormatEntities = %s, want %s", got, want)
	}
}

func TestFormatEntitiesEmpty(t *testing.T) {
	got, err := FormatEntities(nil)
	if err != nil {
		t.Fatalf("FormatEntities failed: %v", err)
	}
	if got != "{}" {
		t.Errorf("FormatEntities(nil) = %s", got)
	}
}

func TestParseEntities(t *testing.T) {
	got, err := ParseEntities(strings.NewReader(`{"date": "2020", "company": "A, \"B\"", "date": "2021"}`))
	if err != nil {
		t.Fatalf("ParseEntities failed: %v", err)
	}

	want := []Entity{{"date", "2021"}, {"company", `A, "B"`}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseEntities = %v, want %v", got, want)
	}
}

func TestParseEntitiesRejectsNonObject(t *testing.T) {
	for _, in := range []string{`["a"]`, `{"a": 1}`, `{"a": "b"`, ``, `{"a": null}`, `{"a": "b"} {"c": "d"}`, `{"a": "b"}x`} {
		if _, err := ParseEntities(strings.NewReader(in)); err == nil {
			t.Errorf("ParseEntities(%q) succeeded", in)
		}
	}
}

func TestParseEntitiesTrailingWhitespace(t *testing.T) {
	got, err := ParseEntities(strings.NewReader("{\"a\": \"b\"}\n"))
	if err != nil {
		t.Fatalf("ParseEntities failed: %v", err)
	}
	if len(got) != 1 || got[0].Transcript != "b" {
		t.Errorf("ParseEntities = %v", got)
	}
}

func TestEntityMap(t *testing.T) {
	m := EntityMap(sampleShapes())
	if m["total"] != "1,234.00, USD" || m["company"] != "ACME Corp" {
		t.Errorf("EntityMap = %v", m)
	}
}
