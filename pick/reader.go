package pick

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Status tells apart the outcomes of reading a document.
type Status int

const (
	StatusOK Status = iota
	StatusNotFound
	StatusParseError
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNotFound:
		return "not_found"
	case StatusParseError:
		return "parse_error"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Result is the outcome of reading one document's boxes file. Shapes is
// empty unless Status is StatusOK.
type Result struct {
	Name   string  `json:"name"`
	Path   string  `json:"path"`
	Status Status  `json:"status"`
	Shapes []Shape `json:"shapes"`
	Err    error   `json:"-"`
}

// OK reports whether the document was read.
func (r Result) OK() bool { return r.Status == StatusOK }

// Read loads the boxes file of document name (no extension) under folder.
func Read(folder, name string, opts Options) (r Result) {
	opts = opts.withDefaults()
	r.Name = name
	r.Path = Layout{Folder: folder}.BoxesPath(name)
	r.Shapes = []Shape{}

	enc, err := LookupEncoding(opts.Encoding)
	if err != nil {
		r.Status = StatusParseError
		r.Err = err
		return
	}

	f, err := os.Open(r.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.Status = StatusNotFound
			r.Err = fmt.Errorf("%w: %s", ErrNotFound, r.Path)
		} else {
			r.Status = StatusParseError
			r.Err = &ParseError{Path: r.Path, Reason: "open", Err: err}
		}
		return
	}
	defer f.Close()

	shapes, err := ParseBoxes(decodingReader(enc, f))
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = r.Path
		}
		r.Status = StatusParseError
		r.Err = err
		return
	}

	if shapes != nil {
		r.Shapes = shapes
	}
	r.Status = StatusOK
	return
}

// Reader parses one document when it is created.
type Reader struct {
	result Result
}

func NewReader(folder, name string, opts Options) *Reader {
	return &Reader{result: Read(folder, name, opts)}
}

// Shapes returns the parsed shapes, empty when the read failed.
func (r *Reader) Shapes() []Shape { return r.result.Shapes }

func (r *Reader) Result() Result { return r.result }

func (r *Reader) Err() error { return r.result.Err }

// ReadEntities loads the entities file of document name.
func ReadEntities(folder, name string, opts Options) (ret []Entity, err error) {
	opts = opts.withDefaults()
	enc, err := LookupEncoding(opts.Encoding)
	if err != nil {
		return
	}

	path := Layout{Folder: folder}.EntitiesPath(name)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return
	}
	defer f.Close()

	ret, err = ParseEntities(decodingReader(enc, f))
	var pe *ParseError
	if errors.As(err, &pe) {
		pe.Path = path
	}
	return
}
