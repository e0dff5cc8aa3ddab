// Command region_extr crops every annotated region of a PICK folder into
// its own PNG, transparent outside the quadrilateral.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"sync"

	"github.com/model-collapse/pick-io/pick"
	"github.com/model-collapse/pick-io/region"
)

// imageCache keeps the decoded image of the document a worker is on.
type imageCache struct {
	folder string
	doc    string
	img    image.Image
}

func (c *imageCache) get(doc string) (image.Image, error) {
	if c.img != nil && c.doc == doc {
		return c.img, nil
	}

	f, err := os.Open(pick.Layout{Folder: c.folder}.ImagePath(doc))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := jpeg.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", doc, err)
	}

	c.doc, c.img = doc, img
	return img, nil
}

func extractRegion(cache *imageCache, outDir string, b *Boundary) (err error) {
	defer func() {
		if e := recover(); e != nil {
			log.Printf("Panic = %v, stack = %s", e, debug.Stack())
			err = fmt.Errorf("%s: panic: %v", b.FileName(), e)
		}
	}()

	img, err := cache.get(b.Doc)
	if err != nil {
		return err
	}

	patch, err := region.CropShape(img, b.Shape)
	if err != nil {
		return fmt.Errorf("%s: %w", b.FileName(), err)
	}

	fw, err := os.OpenFile(filepath.Join(outDir, b.FileName()), os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0o644)
	if err != nil {
		return err
	}
	defer fw.Close()

	return png.Encode(fw, patch)
}

// run crops all boundaries with n workers, at least one, and returns how
// many failed.
func run(folder, outDir string, bnds []*Boundary, n int) int {
	if n < 1 {
		n = 1
	}

	chBnd := make(chan *Boundary, 100)
	go func() {
		for _, b := range bnds {
			chBnd <- b
		}

		close(chBnd)
	}()

	var mu sync.Mutex
	failed := 0

	wg := sync.WaitGroup{}
	wg.Add(n)

	for i := 0; i < n; i++ {
		go func() {
			cache := &imageCache{folder: folder}
			for b := range chBnd {
				if err := extractRegion(cache, outDir, b); err != nil {
					log.Print(err)
					mu.Lock()
					failed++
					mu.Unlock()
				}
			}

			wg.Done()
		}()
	}

	wg.Wait()
	return failed
}

func main() {
	folder := flag.String("data", ".", "PICK folder")
	outDir := flag.String("out", "regions", "output directory")
	encoding := flag.String("encoding", pick.DefaultEncoding, "text encoding of the boxes files")
	workers := flag.Int("workers", 10, "number of workers")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal(err)
	}

	opts := pick.DefaultOptions()
	opts.Encoding = *encoding

	bnds, err := LoadBoundaries(*folder, opts)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("#boundaries = %d", len(bnds))

	if failed := run(*folder, *outDir, bnds, *workers); failed > 0 {
		log.Fatalf("%d of %d regions failed", failed, len(bnds))
	}
}
