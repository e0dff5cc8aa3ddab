package ocr

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"strings"

	"github.com/model-collapse/pick-io/pick"
	"github.com/model-collapse/pick-io/region"
)

// ErrOCRNotEnabled is returned when OCR support was not compiled in.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

type recognizer interface {
	RecognizeImage(imageData []byte) (string, error)
}

func recognizeRegion(rc recognizer, img image.Image, s pick.Shape) (string, error) {
	patch, err := region.CropShape(img, s)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, patch); err != nil {
		return "", err
	}

	text, err := rc.RecognizeImage(buf.Bytes())
	if err != nil {
		return "", err
	}
	return flatten(text), nil
}

// flatten joins recognized lines with spaces; a transcript is one line.
func flatten(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func fillTranscripts(rc recognizer, img image.Image, shapes []pick.Shape) (n int, err error) {
	for i := range shapes {
		if shapes[i].Transcript != "" {
			continue
		}

		text, err := recognizeRegion(rc, img, shapes[i])
		if err != nil {
			return n, err
		}
		shapes[i].Transcript = text
		n++
	}

	return
}
