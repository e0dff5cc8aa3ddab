package main

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"

	"github.com/model-collapse/pick-io/ocr"
	"github.com/model-collapse/pick-io/pick"
)

// Converter turns labelImg XML annotations into a PICK folder.
type Converter struct {
	Opts     pick.Options
	ImageDir string
	Out      string
	Workers  int

	// OCR fills empty transcripts when set.
	OCR  bool
	Lang string
}

type job struct {
	xmlPath   string
	imagePath string
	fileName  string
	name      string
	voc       *pick.VOCDocument
}

// ListAnnotations returns the sorted .xml files of dir.
func ListAnnotations(dir string) (ret []string, err error) {
	lst, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for _, f := range lst {
		if !f.IsDir() && strings.EqualFold(filepath.Ext(f.Name()), ".xml") {
			ret = append(ret, filepath.Join(dir, f.Name()))
		}
	}

	sort.Strings(ret)
	return
}

// plan parses every annotation and rejects inputs whose output names
// collide, before anything is written.
func (cv *Converter) plan(xmlPaths []string) (jobs []*job, err error) {
	w := pick.NewWriter(cv.Out, cv.Opts)
	owners := make(map[string]string, len(xmlPaths))

	for _, p := range xmlPaths {
		voc, err := pick.ReadVOC(p, cv.Opts)
		if err != nil {
			return nil, err
		}

		fileName := sourceFileName(p, voc)
		j := &job{xmlPath: p, voc: voc, fileName: fileName, name: w.Name(fileName), imagePath: cv.imagePath(p, voc)}
		if prev, ok := owners[j.name]; ok {
			return nil, fmt.Errorf("%s and %s both save as %q", prev, p, j.name)
		}
		owners[j.name] = p
		jobs = append(jobs, j)
	}

	return
}

// sourceFileName is the document file name saved for an annotation: the
// base of <filename>, or the xml file's stem when that is empty.
func sourceFileName(xmlPath string, voc *pick.VOCDocument) string {
	name := filepath.Base(strings.ReplaceAll(voc.Filename, `\`, "/"))
	if voc.Filename == "" || name == "." || name == "/" {
		name = strings.TrimSuffix(filepath.Base(xmlPath), filepath.Ext(xmlPath))
	}
	return name
}

func (cv *Converter) imagePath(xmlPath string, voc *pick.VOCDocument) string {
	dir := cv.ImageDir
	if dir == "" {
		dir = filepath.Dir(xmlPath)
	}

	if voc.Filename != "" {
		p := filepath.Join(dir, filepath.Base(voc.Filename))
		if _, err := os.Stat(p); err == nil || voc.Path == "" {
			return p
		}
	}

	return voc.Path
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	log.Printf("decoded %s (%s, %v)", path, format, img.Bounds().Size())
	return img, nil
}

func (cv *Converter) convert(j *job) error {
	img, err := decodeImage(j.imagePath)
	if err != nil {
		return err
	}

	shapes := j.voc.Shapes()
	if cv.OCR {
		client, err := ocr.New()
		if err != nil {
			return err
		}
		defer client.Close()

		if cv.Lang != "" {
			if err := client.SetLanguage(cv.Lang); err != nil {
				return err
			}
		}
		if err := client.SetSingleLine(); err != nil {
			return err
		}

		n, err := client.FillTranscripts(img, shapes)
		if err != nil {
			return fmt.Errorf("%s: %w", j.xmlPath, err)
		}
		log.Printf("%s: recognized %d regions", j.name, n)
	}

	doc := pick.Document{FileName: j.fileName, Shapes: shapes, Image: img}

	if _, err := pick.NewWriter(cv.Out, cv.Opts).Save(doc); err != nil {
		return fmt.Errorf("%s: %w", j.xmlPath, err)
	}

	return nil
}

// Run converts every annotation, at most Workers at a time. The first
// failure cancels documents not yet started.
func (cv *Converter) Run(ctx context.Context, xmlPaths []string) (n int, err error) {
	jobs, err := cv.plan(xmlPaths)
	if err != nil {
		return
	}

	if err = (pick.Layout{Folder: cv.Out}).Ensure(); err != nil {
		return
	}

	workers := cv.Workers
	if workers <= 0 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	done := make([]bool, len(jobs))
	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := cv.convert(j); err != nil {
				return err
			}
			done[i] = true
			return nil
		})
	}

	err = g.Wait()
	for _, d := range done {
		if d {
			n++
		}
	}
	return
}
