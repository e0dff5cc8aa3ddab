package pick

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"
)

// VOCDocument is a labelImg Pascal VOC annotation.
type VOCDocument struct {
	Filename string
	Path     string
	Verified bool
	Width    int
	Height   int
	Objects  []VOCObject
}

// VOCObject is one <object> element. Difficult is carried alongside the
// shape since the boxes format has no place for it.
type VOCObject struct {
	Shape     Shape
	Difficult bool
}

// Shapes drops the VOC-only metadata.
func (d *VOCDocument) Shapes() []Shape {
	ret := make([]Shape, 0, len(d.Objects))
	for _, o := range d.Objects {
		ret = append(ret, o.Shape)
	}
	return ret
}

type vocAnnotation struct {
	XMLName  xml.Name `xml:"annotation"`
	Verified string   `xml:"verified,attr"`
	Filename string   `xml:"filename"`
	Path     string   `xml:"path"`
	Size     struct {
		Width  string `xml:"width"`
		Height string `xml:"height"`
	} `xml:"size"`
	Objects []vocObject `xml:"object"`
}

type vocObject struct {
	Name      *string `xml:"name"`
	Difficult string  `xml:"difficult"`
	BndBox    *struct {
		XMin string `xml:"xmin"`
		YMin string `xml:"ymin"`
		XMax string `xml:"xmax"`
		YMax string `xml:"ymax"`
	} `xml:"bndbox"`
}

// ReadVOC parses the XML annotation at path.
func ReadVOC(path string, opts Options) (*VOCDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := ParseVOC(f, opts)
	if pe, ok := err.(*ParseError); ok {
		pe.Path = path
	}
	return doc, err
}

// xmlDecl matches an encoding declared in the XML prolog.
var xmlDecl = regexp.MustCompile(`^(?:\x{FEFF})?\s*<\?xml[^>]*?\sencoding\s*=\s*["']([^"']+)["']`)

// declaredCharset returns the encoding label of the prolog, if any.
func declaredCharset(br *bufio.Reader) string {
	head, _ := br.Peek(prologPeek)
	if m := xmlDecl.FindSubmatch(head); m != nil {
		return string(m[1])
	}
	return ""
}

const prologPeek = 512

// ParseVOC decodes a VOC annotation. A charset declared in the XML prolog is
// honoured; otherwise the content is read as opts.Encoding.
func ParseVOC(r io.Reader, opts Options) (*VOCDocument, error) {
	opts = opts.withDefaults()
	enc, err := LookupEncoding(opts.Encoding)
	if err != nil {
		return nil, err
	}

	br := bufio.NewReaderSize(r, prologPeek)
	var in io.Reader = br
	if declaredCharset(br) == "" {
		in = decodingReader(enc, br)
	}

	dec := xml.NewDecoder(in)
	dec.CharsetReader = charset.NewReaderLabel

	var ann vocAnnotation
	if err := dec.Decode(&ann); err != nil {
		return nil, &ParseError{Reason: "xml", Err: err}
	}

	doc := &VOCDocument{
		Filename: strings.TrimSpace(ann.Filename),
		Path:     strings.TrimSpace(ann.Path),
		Verified: strings.TrimSpace(ann.Verified) == "yes",
	}
	if ann.Size.Width != "" {
		if doc.Width, err = vocInt(ann.Size.Width); err != nil {
			return nil, &ParseError{Reason: "size width", Err: err}
		}
	}
	if ann.Size.Height != "" {
		if doc.Height, err = vocInt(ann.Size.Height); err != nil {
			return nil, &ParseError{Reason: "size height", Err: err}
		}
	}

	for i, o := range ann.Objects {
		obj, err := o.convert()
		if err != nil {
			return nil, &ParseError{Reason: fmt.Sprintf("object %d", i), Err: err}
		}
		doc.Objects = append(doc.Objects, obj)
	}

	return doc, nil
}

func (o vocObject) convert() (obj VOCObject, err error) {
	if o.Name == nil {
		err = fmt.Errorf("missing name")
		return
	}
	if o.BndBox == nil {
		err = fmt.Errorf("missing bndbox")
		return
	}

	var c [4]int
	for i, s := range []string{o.BndBox.XMin, o.BndBox.YMin, o.BndBox.XMax, o.BndBox.YMax} {
		if c[i], err = vocInt(s); err != nil {
			return
		}
	}

	if d := strings.TrimSpace(o.Difficult); d != "" {
		v, derr := strconv.Atoi(d)
		if derr != nil {
			err = fmt.Errorf("difficult: %w", derr)
			return
		}
		obj.Difficult = v != 0
	}

	obj.Shape = Shape{
		Points: Rect(float64(c[0]), float64(c[1]), float64(c[2]), float64(c[3])),
		Label:  strings.TrimSpace(*o.Name),
	}
	return
}

// vocInt truncates like labelImg does, so "10.7" is 10.
func vocInt(s string) (int, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !inCoordRange(v) {
		return 0, fmt.Errorf("invalid coordinate %q", s)
	}
	return int(v), nil
}
