//go:build !ocr

package ocr

import (
	"image"

	"github.com/model-collapse/pick-io/pick"
)

// Client is a stub whose methods return ErrOCRNotEnabled.
type Client struct{}

// New returns ErrOCRNotEnabled. Rebuild with -tags ocr.
func New() (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close is safe to call on a nil client.
func (c *Client) Close() error {
	return nil
}

func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	return "", ErrOCRNotEnabled
}

func (c *Client) RecognizeRegion(img image.Image, s pick.Shape) (string, error) {
	return "", ErrOCRNotEnabled
}

func (c *Client) FillTranscripts(img image.Image, shapes []pick.Shape) (int, error) {
	return 0, ErrOCRNotEnabled
}

func (c *Client) SetLanguage(lang string) error {
	return ErrOCRNotEnabled
}

func (c *Client) SetSingleLine() error {
	return ErrOCRNotEnabled
}
