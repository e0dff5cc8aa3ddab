package pick

import (
	"image"
	"math"
	"strconv"
	"strings"
)

// PointsPerShape is the number of corners of every shape.
const PointsPerShape = 4

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Shape is one labeled quadrilateral with its recognized text.
type Shape struct {
	Points     []Point `json:"points"`
	Transcript string  `json:"transcript"`
	Label      string  `json:"label"`
}

// Document is everything saved for one source file.
type Document struct {
	FileName string
	Shapes   []Shape
	Image    image.Image
}

// Rect returns the clockwise rectangle starting at the top-left corner.
func Rect(xmin, ymin, xmax, ymax float64) []Point {
	return []Point{{xmin, ymin}, {xmax, ymin}, {xmax, ymax}, {xmin, ymax}}
}

func (s Shape) Validate() error {
	if len(s.Points) != PointsPerShape {
		return &ValidationError{Index: -1, Reason: "expected 4 points, got " + strconv.Itoa(len(s.Points))}
	}

	for _, p := range s.Points {
		if !inCoordRange(p.X) || !inCoordRange(p.Y) {
			return &ValidationError{Index: -1, Reason: "coordinate not finite or out of range"}
		}
	}

	if strings.ContainsAny(s.Transcript, "\r\n") {
		return &ValidationError{Index: -1, Reason: "transcript contains a line break"}
	}

	if strings.ContainsAny(s.Label, "\r\n,") {
		return &ValidationError{Index: -1, Reason: "label contains a comma or line break"}
	}

	return nil
}

// MaxCoord bounds the magnitude of any coordinate read or written.
const MaxCoord = math.MaxInt32

func inCoordRange(v float64) bool {
	return !math.IsNaN(v) && v >= -MaxCoord && v <= MaxCoord
}

// ValidateShapes checks every shape and reports the first bad one by index.
func ValidateShapes(shapes []Shape) error {
	for i, s := range shapes {
		if err := s.Validate(); err != nil {
			ve := err.(*ValidationError)
			ve.Index = i
			return ve
		}
	}

	return nil
}

// Rounded returns the points rounded to the nearest integer, halves away from zero.
func (s Shape) Rounded() (r []image.Point) {
	r = make([]image.Point, len(s.Points))
	for i, p := range s.Points {
		r[i] = image.Point{X: int(math.Round(p.X)), Y: int(math.Round(p.Y))}
	}

	return
}
