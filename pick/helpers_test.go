package pick

import (
	"image"
	"image/color"
	"os"
	"testing"
)

func testImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{uint8(x * 3), uint8(y * 5), 128, 255})
		}
	}
	return img
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func sampleShapes() []Shape {
	return []Shape{
		{Points: Rect(10, 10, 50, 30), Transcript: "ACME Corp", Label: "company"},
		{Points: []Point{{60.4, 12.6}, {120.5, 12.4}, {119.6, 30.49}, {59.5, 31}}, Transcript: "1,234.00, USD", Label: "total"},
		{Points: Rect(0, 40, 20, 60), Transcript: "", Label: ""},
	}
}
