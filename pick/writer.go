package pick

import (
	"bytes"
	"errors"
	"fmt"
	"image/jpeg"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Writer saves documents under one folder.
type Writer struct {
	layout Layout
	opts   Options
}

func NewWriter(folder string, opts Options) *Writer {
	return &Writer{layout: Layout{Folder: folder}, opts: opts.withDefaults()}
}

// Save writes a document with a fresh Writer.
func Save(folder string, doc Document, opts Options) (string, error) {
	return NewWriter(folder, opts).Save(doc)
}

func (w *Writer) Layout() Layout { return w.layout }

// Name returns the base name a source file is saved under.
func (w *Writer) Name(fileName string) string { return w.opts.Namer(fileName) }

type output struct {
	path string
	data []byte
	tmp  string
}

// Save writes the boxes, entities and image files of doc and returns the base
// name they were written under. All three are encoded and staged next to
// their targets before any is renamed into place, so a failure while
// encoding or staging leaves the previous outputs untouched. A failure
// between renames returns a *CommitError.
func (w *Writer) Save(doc Document) (name string, err error) {
	name = w.opts.Namer(doc.FileName)
	if err = checkName(name); err != nil {
		return
	}

	if doc.Image == nil {
		err = fmt.Errorf("pick: %s: no image", doc.FileName)
		return
	}

	outs, err := w.encode(name, doc)
	if err != nil {
		return
	}

	if err = w.layout.Ensure(); err != nil {
		return
	}

	if err = stage(outs); err != nil {
		return
	}

	if err = commit(name, outs); err != nil {
		return
	}

	for _, d := range w.layout.dirs() {
		if err = syncDir(d); err != nil {
			err = fmt.Errorf("pick: sync %s: %w", d, err)
			return
		}
	}

	log.Printf("Image saved at %s", w.layout.ImagePath(name))
	return
}

func (w *Writer) encode(name string, doc Document) (outs []*output, err error) {
	enc, err := LookupEncoding(w.opts.Encoding)
	if err != nil {
		return
	}

	boxes, err := FormatBoxes(doc.Shapes)
	if err != nil {
		return
	}

	entities, err := FormatEntities(doc.Shapes)
	if err != nil {
		return
	}

	boxesData, err := encodeText(enc, boxes)
	if err != nil {
		err = fmt.Errorf("pick: encode boxes as %s: %w", w.opts.Encoding, err)
		return
	}

	entitiesData, err := encodeText(enc, entities)
	if err != nil {
		err = fmt.Errorf("pick: encode entities as %s: %w", w.opts.Encoding, err)
		return
	}

	var img bytes.Buffer
	if err = jpeg.Encode(&img, doc.Image, &jpeg.Options{Quality: w.opts.JPEGQuality}); err != nil {
		err = fmt.Errorf("pick: encode image: %w", err)
		return
	}

	outs = []*output{
		{path: w.layout.BoxesPath(name), data: boxesData},
		{path: w.layout.EntitiesPath(name), data: entitiesData},
		{path: w.layout.ImagePath(name), data: img.Bytes()},
	}
	return
}

func checkName(name string) error {
	if name == "" || name == "." || name == ".." {
		return fmt.Errorf("pick: invalid document name %q", name)
	}
	if strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, os.PathSeparator) {
		return fmt.Errorf("pick: document name %q contains a path separator", name)
	}
	return nil
}

func stage(outs []*output) (err error) {
	defer func() {
		if err != nil {
			discard(outs)
		}
	}()

	for _, o := range outs {
		if o.tmp, err = writeTemp(o.path, o.data); err != nil {
			return
		}
	}

	return
}

func writeTemp(path string, data []byte) (tmp string, err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("pick: stage %s: %w", path, err)
	}
	tmp = f.Name()

	if _, err = f.Write(data); err == nil {
		err = f.Sync()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Chmod(tmp, 0o644)
	}
	if err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("pick: stage %s: %w", path, err)
	}

	return
}

func discard(outs []*output) {
	for _, o := range outs {
		if o.tmp != "" {
			os.Remove(o.tmp)
			o.tmp = ""
		}
	}
}

func commit(name string, outs []*output) error {
	for i, o := range outs {
		if err := os.Rename(o.tmp, o.path); err != nil {
			err = fmt.Errorf("pick: commit %s: %w", o.path, err)
			pending := outs[i:]
			discard(pending)
			if i == 0 {
				return err
			}
			return &CommitError{Name: name, Committed: paths(outs[:i]), Pending: paths(pending), Err: err}
		}
		o.tmp = ""
	}

	return nil
}

func paths(outs []*output) (ret []string) {
	for _, o := range outs {
		ret = append(ret, o.path)
	}
	return
}

// IsPartialSave reports whether err means a document was left half written.
func IsPartialSave(err error) bool {
	var ce *CommitError
	return errors.As(err, &ce)
}
