package region

import (
	"image"
	"image/color"
	"testing"

	"github.com/model-collapse/pick-io/pick"
)

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestBounds(t *testing.T) {
	tests := []struct {
		pts  []pick.Point
		want image.Rectangle
	}{
		{pick.Rect(10, 10, 50, 30), image.Rect(10, 10, 50, 30)},
		{[]pick.Point{{X: 1.5, Y: 2.2}, {X: 9.1, Y: 0.5}, {X: 8, Y: 7.9}, {X: 2, Y: 6}}, image.Rect(1, 0, 10, 8)},
		{nil, image.Rectangle{}},
	}

	for _, tt := range tests {
		if got := Bounds(tt.pts); got != tt.want {
			t.Errorf("Bounds(%v) = %v, want %v", tt.pts, got, tt.want)
		}
	}
}

func TestCropRectangle(t *testing.T) {
	img := solid(60, 40, color.RGBA{200, 100, 50, 255})

	patch, err := Crop(img, pick.Rect(10, 10, 50, 30))
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}

	if b := patch.Bounds(); b.Dx() != 40 || b.Dy() != 20 {
		t.Fatalf("patch bounds = %v", b)
	}

	c := patch.NRGBAAt(20, 10)
	if c.R != 200 || c.G != 100 || c.B != 50 || c.A != 255 {
		t.Errorf("center pixel = %v", c)
	}
}

func TestCropDiamondMasksCorners(t *testing.T) {
	img := solid(30, 30, color.White)
	diamond := []pick.Point{{X: 10, Y: 0}, {X: 20, Y: 10}, {X: 10, Y: 20}, {X: 0, Y: 10}}

	patch, err := Crop(img, diamond)
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}

	if a := patch.NRGBAAt(10, 10).A; a != 255 {
		t.Errorf("center alpha = %d, want 255", a)
	}
	for _, p := range []image.Point{{0, 0}, {19, 0}, {0, 19}, {19, 19}} {
		if a := patch.NRGBAAt(p.X, p.Y).A; a != 0 {
			t.Errorf("corner %v alpha = %d, want 0", p, a)
		}
	}
}

func TestCropOutOfScope(t *testing.T) {
	img := solid(20, 20, color.White)
	if _, err := Crop(img, pick.Rect(10, 10, 50, 30)); err == nil {
		t.Error("expected an error for a region outside the image")
	}
	if _, err := Crop(img, []pick.Point{{X: 1, Y: 1}, {X: 2, Y: 2}}); err == nil {
		t.Error("expected an error for a degenerate polygon")
	}
}

func TestCropShapeValidates(t *testing.T) {
	img := solid(20, 20, color.White)
	if _, err := CropShape(img, pick.Shape{Points: []pick.Point{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 5, Y: 5}}}); err == nil {
		t.Error("expected a validation error for a three point shape")
	}
}
