package pick

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Entity is one label→transcript pair of the entities mapping.
type Entity struct {
	Label      string `json:"label"`
	Transcript string `json:"transcript"`
}

// Entities reduces shapes to one entry per label. A label keeps the position
// of its first shape and the transcript of its last.
func Entities(shapes []Shape) (ret []Entity) {
	pos := make(map[string]int, len(shapes))
	for _, s := range shapes {
		if i, ok := pos[s.Label]; ok {
			ret[i].Transcript = s.Transcript
			continue
		}
		pos[s.Label] = len(ret)
		ret = append(ret, Entity{Label: s.Label, Transcript: s.Transcript})
	}

	return
}

// EntityMap is Entities as a plain map.
func EntityMap(shapes []Shape) map[string]string {
	m := make(map[string]string, len(shapes))
	for _, s := range shapes {
		m[s.Label] = s.Transcript
	}
	return m
}

// FormatEntities renders the entities file: a JSON object such as
// {"company": "ACME", "total": "20"}.
func FormatEntities(shapes []Shape) (string, error) {
	var b strings.Builder
	b.WriteByte('{')
	for i, e := range Entities(shapes) {
		if i > 0 {
			b.WriteString(", ")
		}
		k, err := jsonString(e.Label)
		if err != nil {
			return "", err
		}
		v, err := jsonString(e.Transcript)
		if err != nil {
			return "", err
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
	}
	b.WriteByte('}')
	return b.String(), nil
}

func jsonString(s string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// ParseEntities decodes an entities file, keeping the key order of the file.
func ParseEntities(r io.Reader) (ret []Entity, err error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, &ParseError{Reason: "entities", Err: err}
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, &ParseError{Reason: fmt.Sprintf("entities: expected object, got %v", tok)}
	}

	pos := make(map[string]int)
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return nil, &ParseError{Reason: "entities", Err: err}
		}
		label, _ := tok.(string)

		var value *string
		if err = dec.Decode(&value); err != nil {
			return nil, &ParseError{Reason: fmt.Sprintf("entities: value of %q", label), Err: err}
		}
		if value == nil {
			return nil, &ParseError{Reason: fmt.Sprintf("entities: value of %q is null", label)}
		}
		transcript := *value

		if i, ok := pos[label]; ok {
			ret[i].Transcript = transcript
			continue
		}
		pos[label] = len(ret)
		ret = append(ret, Entity{Label: label, Transcript: transcript})
	}

	if _, err = dec.Token(); err != nil {
		return nil, &ParseError{Reason: "entities", Err: err}
	}

	if tok, err = dec.Token(); err != io.EOF {
		if err != nil {
			return nil, &ParseError{Reason: "entities", Err: err}
		}
		return nil, &ParseError{Reason: fmt.Sprintf("entities: trailing data %v", tok)}
	}

	return ret, nil
}
