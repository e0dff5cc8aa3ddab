// Command voc2pick converts labelImg Pascal VOC annotations and their source
// images into a PICK folder.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/model-collapse/pick-io/pick"
)

func main() {
	xmlDir := flag.String("xml", ".", "directory of labelImg .xml files")
	imgDir := flag.String("images", "", "directory of source images (default: the xml directory)")
	out := flag.String("out", "pick", "output PICK folder")
	encoding := flag.String("encoding", pick.DefaultEncoding, "text encoding of the written files")
	quality := flag.Int("quality", pick.DefaultJPEGQuality, "JPEG quality")
	useOCR := flag.Bool("ocr", false, "fill transcripts with Tesseract (needs -tags ocr)")
	lang := flag.String("lang", "eng", "Tesseract languages, '+' separated")
	workers := flag.Int("workers", 4, "documents converted in parallel")
	flag.Parse()

	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatal(err)
	}

	opts := pick.DefaultOptions()
	opts.Encoding = *encoding
	opts.JPEGQuality = *quality

	paths, err := ListAnnotations(*xmlDir)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("#annotations = %d", len(paths))

	cv := &Converter{Opts: opts, ImageDir: *imgDir, Out: *out, Workers: *workers, OCR: *useOCR, Lang: *lang}
	n, err := cv.Run(context.Background(), paths)
	log.Printf("converted %d of %d", n, len(paths))
	if err != nil {
		log.Fatal(err)
	}
}
