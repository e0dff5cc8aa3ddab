package pick

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// rowMarker leads every boxes line. It only means "row present".
const rowMarker = "1"

// minBoxFields is the marker, eight coordinates and a label.
const minBoxFields = 1 + 2*PointsPerShape + 1

// FormatBoxes renders shapes as boxes file content, one line per shape.
func FormatBoxes(shapes []Shape) (string, error) {
	if err := ValidateShapes(shapes); err != nil {
		return "", err
	}

	var b strings.Builder
	for _, s := range shapes {
		writeBoxLine(&b, s)
	}
	return b.String(), nil
}

func writeBoxLine(b *strings.Builder, s Shape) {
	b.WriteString(rowMarker)
	for _, p := range s.Rounded() {
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(p.X))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(p.Y))
	}
	b.WriteByte(',')
	b.WriteString(s.Transcript)
	b.WriteByte(',')
	b.WriteString(s.Label)
	b.WriteByte('\n')
}

// ParseBoxes decodes boxes file content. Any bad line fails the whole read;
// no partial shape list is returned.
func ParseBoxes(r io.Reader) (ret []Shape, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSuffix(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		s, perr := parseBoxLine(line)
		if perr != nil {
			perr.Line = lineNo
			return nil, perr
		}
		ret = append(ret, s)
	}

	if err = sc.Err(); err != nil {
		return nil, &ParseError{Line: lineNo + 1, Reason: "read failed", Err: err}
	}

	return
}

func parseBoxLine(line string) (s Shape, perr *ParseError) {
	fields := strings.Split(line, ",")
	if len(fields) < minBoxFields {
		perr = &ParseError{Reason: fmt.Sprintf("expected at least %d fields, got %d", minBoxFields, len(fields))}
		return
	}

	s.Points = make([]Point, PointsPerShape)
	for i := 0; i < PointsPerShape; i++ {
		x, err := parseCoord(fields[1+2*i])
		if err != nil {
			perr = &ParseError{Reason: fmt.Sprintf("field %d", 1+2*i), Err: err}
			return
		}
		y, err := parseCoord(fields[2+2*i])
		if err != nil {
			perr = &ParseError{Reason: fmt.Sprintf("field %d", 2+2*i), Err: err}
			return
		}
		s.Points[i] = Point{X: float64(x), Y: float64(y)}
	}

	last := len(fields) - 1
	s.Transcript = strings.Join(fields[minBoxFields-1:last], ",")
	s.Label = fields[last]
	return
}

func parseCoord(f string) (int, error) {
	f = strings.TrimSpace(f)
	if v, err := strconv.Atoi(f); err == nil {
		return v, nil
	}

	v, err := strconv.ParseFloat(f, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid coordinate %q", f)
	}
	if !inCoordRange(v) {
		return 0, fmt.Errorf("invalid coordinate %q", f)
	}
	return int(math.Round(v)), nil
}
