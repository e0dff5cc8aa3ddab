package pick

import (
	"errors"
	"strings"
	"testing"
)

func TestLookupEncoding(t *testing.T) {
	for _, name := range []string{"", "utf-8", "UTF-8", "windows-1252", "gbk", "shift_jis"} {
		if _, err := LookupEncoding(name); err != nil {
			t.Errorf("LookupEncoding(%q) failed: %v", name, err)
		}
	}

	if _, err := LookupEncoding("no-such-charset"); !errors.Is(err, ErrUnknownEncoding) {
		t.Errorf("expected ErrUnknownEncoding, got %v", err)
	}
}

func TestEncodeDecodeWindows1252(t *testing.T) {
	enc, err := LookupEncoding("windows-1252")
	if err != nil {
		t.Fatal(err)
	}

	data, err := encodeText(enc, "café")
	if err != nil {
		t.Fatalf("encodeText failed: %v", err)
	}
	if string(data) != "caf\xe9" {
		t.Errorf("encoded = %q", data)
	}

	var sb strings.Builder
	buf := make([]byte, 16)
	r := decodingReader(enc, strings.NewReader(string(data)))
	for {
		n, err := r.Read(buf)
		sb.Write(buf[:n])
		if err != nil {
			break
		}
	}
	if sb.String() != "café" {
		t.Errorf("decoded = %q", sb.String())
	}
}

func TestEncodeUnsupportedRune(t *testing.T) {
	enc, err := LookupEncoding("windows-1252")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := encodeText(enc, "日本"); err == nil {
		t.Error("expected an error for runes outside windows-1252")
	}
}
