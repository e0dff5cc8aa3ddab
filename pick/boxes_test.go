package pick

import (
	"errors"
	"strings"
	"testing"
)

func TestFormatBoxes(t *testing.T) {
	got, err := FormatBoxes(sampleShapes())
	if err != nil {
		t.Fatalf("FormatBoxes failed: %v", err)
	}

	want := "1,10,10,50,10,50,30,10,30,ACME Corp,company\n" +
		"1,60,13,121,12,120,30,60,31,1,234.00, USD,total\n" +
		"1,0,40,20,40,20,60,0,60,,\n"
	if got != want {
		t.Errorf("FormatBoxes =\n%s\nwant\n%s", got, want)
	}
}

func TestFormatBoxesRejectsBadShapes(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
	}{
		{"three points", Shape{Points: []Point{{0, 0}, {1, 0}, {1, 1}}, Label: "x"}},
		{"five points", Shape{Points: append(Rect(0, 0, 1, 1), Point{2, 2}), Label: "x"}},
		{"newline in transcript", Shape{Points: Rect(0, 0, 1, 1), Transcript: "a\nb"}},
		{"comma in label", Shape{Points: Rect(0, 0, 1, 1), Label: "a,b"}},
		{"huge coordinate", Shape{Points: Rect(0, 0, 1e30, 1), Label: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shapes := []Shape{{Points: Rect(0, 0, 1, 1)}, tt.shape}
			_, err := FormatBoxes(shapes)

			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Index != 1 {
				t.Errorf("Index = %d, want 1", ve.Index)
			}
		})
	}
}

func TestParseBoxes(t *testing.T) {
	in := "1,10,10,50,10,50,30,10,30,ACME Corp,company\r\n" +
		"\n" +
		"1,60,13,121,12,120,30,60,31,1,234.00, USD,total\n" +
		"1,0,40,20,40,20,60,0,60,other\n"

	shapes, err := ParseBoxes(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseBoxes failed: %v", err)
	}

	if len(shapes) != 3 {
		t.Fatalf("got %d shapes, want 3", len(shapes))
	}

	if shapes[0].Label != "company" || shapes[0].Transcript != "ACME Corp" {
		t.Errorf("shape 0 = %+v", shapes[0])
	}
	if shapes[1].Transcript != "1,234.00, USD" || shapes[1].Label != "total" {
		t.Errorf("shape 1 transcript = %q, label = %q", shapes[1].Transcript, shapes[1].Label)
	}
	if shapes[1].Points[1] != (Point{121, 12}) {
		t.Errorf("shape 1 point 1 = %v", shapes[1].Points[1])
	}
	// ten fields: no transcript, last field is the label
	if shapes[2].Transcript != "" || shapes[2].Label != "other" {
		t.Errorf("shape 2 = %+v", shapes[2])
	}
}

func TestParseBoxesFloatCoordinates(t *testing.T) {
	shapes, err := ParseBoxes(strings.NewReader("1,10.6,10,50,10,50,30,10,30,a,b\n"))
	if err != nil {
		t.Fatalf("ParseBoxes failed: %v", err)
	}
	if shapes[0].Points[0].X != 11 {
		t.Errorf("X = %v, want 11", shapes[0].Points[0].X)
	}
}

func TestParseBoxesErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		line int
	}{
		{"too few fields", "1,10,10,50,10,50,30,10,30,a,b\n1,2,3,4,5,6,7,8,9\n", 2},
		{"non-numeric coordinate", "1,10,x,50,10,50,30,10,30,a,b\n", 1},
		{"truncated", "1,10,10,50\n", 1},
		{"huge coordinate", "1,10,1e30,50,10,50,30,10,30,a,b\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shapes, err := ParseBoxes(strings.NewReader(tt.in))
			if shapes != nil {
				t.Errorf("expected no shapes, got %v", shapes)
			}

			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected ParseError, got %v", err)
			}
			if pe.Line != tt.line {
				t.Errorf("Line = %d, want %d", pe.Line, tt.line)
			}
		})
	}
}
