// Package ocr fills in transcripts by running Tesseract over annotated
// regions.
//
// Recognition is compiled in only with the "ocr" build tag:
//
//	go build -tags ocr ./...
//
// which needs Tesseract and its headers installed (apt-get install
// libtesseract-dev tesseract-ocr). Without the tag every call returns
// ErrOCRNotEnabled.
package ocr
