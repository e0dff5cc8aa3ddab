package main

import (
	"fmt"
	"log"

	"github.com/model-collapse/pick-io/pick"
)

// Boundary is one shape of one document, queued for cropping.
type Boundary struct {
	Doc   string
	Index int
	Shape pick.Shape
}

func (b *Boundary) FileName() string {
	return fmt.Sprintf("%s_%d.png", b.Doc, b.Index)
}

// LoadBoundaries reads every document under folder. Documents that fail to
// parse are logged and skipped.
func LoadBoundaries(folder string, opts pick.Options) (ret []*Boundary, err error) {
	docs, err := pick.ListDocuments(folder)
	if err != nil {
		return
	}

	for _, doc := range docs {
		r := pick.Read(folder, doc, opts)
		if !r.OK() {
			log.Printf("skip %s: %v", doc, r.Err)
			continue
		}

		for i, s := range r.Shapes {
			ret = append(ret, &Boundary{Doc: doc, Index: i, Shape: s})
		}
	}

	return
}
