package orbit

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Ext is the file extension used for saved orbits.
const Ext = ".turtle"

// maxField bounds every numeric field. Advance converts positions to int.
const maxField = 1e9

var (
	errFieldCount = errors.New("want 3 fields: pen angle length")
	errRange      = errors.New("value out of range")
)

// Marshal encodes strokes one per line as "<0|1> <angle> <length>".
func Marshal(strokes []Stroke) []byte {
	var buf bytes.Buffer
	Write(&buf, strokes)
	return buf.Bytes()
}

// Write encodes strokes to w. Floats use the shortest fixed-point form that
// parses back to the same value.
func Write(w io.Writer, strokes []Stroke) error {
	bw := bufio.NewWriter(w)
	for _, s := range strokes {
		pen := 0
		if s.PenDown {
			pen = 1
		}
		fmt.Fprintf(bw, "%d %s %s\n", pen,
			strconv.FormatFloat(s.Angle, 'f', -1, 64),
			strconv.FormatFloat(s.Length, 'f', -1, 64))
	}
	return bw.Flush()
}

// Unmarshal decodes the text format. Every line must hold a stroke, so a
// blank line is malformed; the last line may omit its newline. Fields after
// the third are ignored.
func Unmarshal(data []byte) ([]Stroke, error) {
	return Read(bytes.NewReader(data))
}

// Read decodes strokes from r. I/O failures wrap ErrRead; bad lines return a
// *MalformedError.
func Read(r io.Reader) ([]Stroke, error) {
	var strokes []Stroke
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		s, err := parseStroke(text)
		if err != nil {
			return nil, &MalformedError{Line: line, Text: text, Err: err}
		}
		strokes = append(strokes, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	return strokes, nil
}

func parseStroke(text string) (Stroke, error) {
	fields := strings.Fields(text)
	if len(fields) < 3 {
		return Stroke{}, errFieldCount
	}
	var v [3]float64
	for i := range v {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return Stroke{}, err
		}
		if math.IsNaN(f) || math.Abs(f) > maxField {
			return Stroke{}, fmt.Errorf("%w: %s", errRange, fields[i])
		}
		v[i] = f
	}
	return Stroke{PenDown: int(v[0]) != 0, Angle: v[1], Length: v[2]}, nil
}

// Load reads an orbit file from fsys.
func Load(fsys fs.FS, name string) ([]Stroke, error) {
	f, err := fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrRead, name, err)
	}
	defer f.Close()

	strokes, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return strokes, nil
}

// LoadFile reads an orbit file from the OS file system.
func LoadFile(path string) ([]Stroke, error) {
	return Load(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// SaveFile writes strokes to path, replacing any existing file.
func SaveFile(path string, strokes []Stroke) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(file, strokes); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
