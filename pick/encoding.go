package pick

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// LookupEncoding resolves a charset name such as "utf-8", "gbk" or
// "windows-1252".
func LookupEncoding(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return unicode.UTF8, nil
	}

	if enc, err := ianaindex.IANA.Encoding(name); err == nil && enc != nil {
		return enc, nil
	}

	if enc, err := htmlindex.Get(name); err == nil {
		return enc, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
}

func isUTF8(enc encoding.Encoding) bool {
	return enc == unicode.UTF8 || enc == encoding.Nop
}

func encodeText(enc encoding.Encoding, s string) ([]byte, error) {
	if isUTF8(enc) {
		return []byte(s), nil
	}

	out, err := enc.NewEncoder().String(s)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

func decodingReader(enc encoding.Encoding, r io.Reader) io.Reader {
	if isUTF8(enc) {
		return r
	}
	return transform.NewReader(r, enc.NewDecoder())
}
