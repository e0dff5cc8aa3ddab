package main

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/model-collapse/pick-io/pick"
)

var (
	boxColor   = color.RGBA{255, 255, 0, 0}
	labelColor = color.RGBA{255, 0, 0, 255}
)

func drawShapesOnImage(img *gocv.Mat, shapes []pick.Shape) {
	for _, s := range shapes {
		pts := s.Rounded()
		if len(pts) != pick.PointsPerShape {
			continue
		}

		for i := range pts {
			gocv.Line(img, pts[i], pts[(i+1)%len(pts)], boxColor, 1)
		}

		if s.Label != "" {
			gocv.PutText(img, s.Label, image.Point{X: pts[0].X, Y: pts[0].Y - 2}, gocv.FontHersheyComplex, 0.5, labelColor, 1)
		}
	}
}
