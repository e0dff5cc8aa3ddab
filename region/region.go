// Package region cuts annotated quadrilaterals out of document images.
package region

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/llgcode/draw2d/draw2dimg"

	"github.com/model-collapse/pick-io/pick"
)

// Bounds returns the smallest integer rectangle holding every point.
func Bounds(pts []pick.Point) (r image.Rectangle) {
	if len(pts) == 0 {
		return
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	r.Min = image.Point{X: int(math.Floor(minX)), Y: int(math.Floor(minY))}
	r.Max = image.Point{X: int(math.Ceil(maxX)), Y: int(math.Ceil(maxY))}
	return
}

// Crop copies the bounding box of pts out of img. Pixels outside the polygon
// get zero alpha.
func Crop(img image.Image, pts []pick.Point) (*image.NRGBA, error) {
	if len(pts) < 3 {
		return nil, fmt.Errorf("region: polygon needs at least 3 points, got %d", len(pts))
	}

	bnd := Bounds(pts)
	if bnd.Empty() {
		return nil, fmt.Errorf("region: empty boundary %v", bnd)
	}

	if !bnd.In(img.Bounds()) {
		return nil, fmt.Errorf("region: boundary %v out of image scope %v", bnd, img.Bounds())
	}

	nbnd := image.Rectangle{Max: bnd.Size()}
	mask := image.NewRGBA(nbnd)
	gc := draw2dimg.NewGraphicContext(mask)
	gc.SetFillColor(color.RGBA{0, 0, 0, 255})

	last := pts[len(pts)-1]
	gc.MoveTo(last.X-float64(bnd.Min.X), last.Y-float64(bnd.Min.Y))
	for _, p := range pts {
		gc.LineTo(p.X-float64(bnd.Min.X), p.Y-float64(bnd.Min.Y))
	}
	gc.Close()
	gc.Fill()

	patch := image.NewNRGBA(nbnd)
	for y := 0; y < nbnd.Max.Y; y++ {
		for x := 0; x < nbnd.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x+bnd.Min.X, y+bnd.Min.Y)).(color.NRGBA)
			c.A = uint8(uint32(c.A) * uint32(mask.RGBAAt(x, y).A) / 255)
			patch.SetNRGBA(x, y, c)
		}
	}

	return patch, nil
}

// CropShape crops one annotated shape.
func CropShape(img image.Image, s pick.Shape) (*image.NRGBA, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return Crop(img, s.Points)
}
