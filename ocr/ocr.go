//go:build ocr

package ocr

import (
	"fmt"
	"image"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/model-collapse/pick-io/pick"
)

// Client wraps Tesseract. It is not safe for concurrent use.
type Client struct {
	client *gosseract.Client
}

// New creates a client; close it when done.
func New() (*Client, error) {
	return &Client{client: gosseract.NewClient()}, nil
}

func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// RecognizeImage performs OCR on encoded image data (PNG, JPEG, TIFF...).
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// RecognizeRegion crops a shape out of img and returns its text on one line.
func (c *Client) RecognizeRegion(img image.Image, s pick.Shape) (string, error) {
	return recognizeRegion(c, img, s)
}

// FillTranscripts recognizes every shape that has no transcript yet and
// returns how many were filled.
func (c *Client) FillTranscripts(img image.Image, shapes []pick.Shape) (int, error) {
	return fillTranscripts(c, img, shapes)
}

// SetLanguage takes "+" separated Tesseract languages such as "eng+deu".
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(strings.Split(lang, "+")...)
}

// SetSingleLine makes Tesseract treat every region as one text line.
func (c *Client) SetSingleLine() error {
	return c.client.SetPageSegMode(gosseract.PSM_SINGLE_LINE)
}
