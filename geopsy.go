package groundmodel

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Geopsy layered model text format. A file holds one or more blocks of
//
//	# Layered model <n>: value=<misfit>
//	<layer count>
//	<thickness> <vp> <vs> <density>
//	...
//
// Comment lines start with commentPrefix and are optional. Fields are
// separated by any run of spaces or tabs.
const (
	commentPrefix  = "#"
	modelHeaderFmt = "# Layered model %d: value=%s\n"

	fieldsPerLayer = 4
	fieldThickness = 0
	fieldVp        = 1
	fieldVs        = 2
	fieldDensity   = 3
)

// FromGeopsy reads the first model of a Geopsy layered model file. Any
// further models in the file are ignored.
func FromGeopsy(path string) (*GroundModel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	defer f.Close()

	gm, err := readGeopsy(f, path)
	if err != nil {
		return nil, err
	}
	return gm, nil
}

// ReadGeopsy is FromGeopsy for an already open reader.
func ReadGeopsy(r io.Reader) (*GroundModel, error) {
	return readGeopsy(r, "")
}

type geopsyScanner struct {
	sc   *bufio.Scanner
	path string
	line int
}

// next returns the next line that is neither blank nor a comment.
func (s *geopsyScanner) next() ([]string, bool) {
	for s.sc.Scan() {
		s.line++
		text := strings.TrimSpace(s.sc.Text())
		if text == "" || strings.HasPrefix(text, commentPrefix) {
			continue
		}
		return strings.Fields(text), true
	}
	return nil, false
}

func (s *geopsyScanner) fail(format string, args ...any) error {
	return &ParseError{Path: s.path, Line: s.line, Err: fmt.Errorf(format, args...)}
}

func readGeopsy(r io.Reader, path string) (*GroundModel, error) {
	s := &geopsyScanner{sc: bufio.NewScanner(r), path: path}

	header, ok := s.next()
	if err := s.sc.Err(); err != nil {
		return nil, s.fail("read: %w", err)
	}
	if !ok {
		return nil, s.fail("no layered model found")
	}
	if len(header) != 1 {
		return nil, s.fail("expected layer count, got %d fields", len(header))
	}
	count, err := strconv.Atoi(header[0])
	if err != nil || count <= 0 {
		return nil, s.fail("invalid layer count %q", header[0])
	}
	headerLine := s.line

	// The count is untrusted, so layers grow with the data actually read.
	var layers [][fieldsPerLayer]float64
	var lines []int
	for len(layers) < count {
		fields, ok := s.next()
		if !ok {
			if err := s.sc.Err(); err != nil {
				return nil, s.fail("read: %w", err)
			}
			return nil, s.fail("header announces %d layers, found %d", count, len(layers))
		}
		if len(fields) == 1 {
			// Next block header before this block is complete.
			return nil, s.fail("header announces %d layers, found %d", count, len(layers))
		}
		layer, err := parseLayer(fields)
		if err != nil {
			return nil, s.fail("%w", err)
		}
		layers = append(layers, layer)
		lines = append(lines, s.line)
	}

	// Only a further block header (or the end of input) may follow.
	if fields, ok := s.next(); ok && len(fields) != 1 {
		return nil, s.fail("header announces %d layers, found more", count)
	}

	n := len(layers)
	tk := make([]float64, n)
	vp := make([]float64, n)
	vs := make([]float64, n)
	rh := make([]float64, n)
	for i, l := range layers {
		tk[i], vp[i], vs[i], rh[i] = l[fieldThickness], l[fieldVp], l[fieldVs], l[fieldDensity]
	}
	gm, err := New(tk, vp, vs, rh)
	if err != nil {
		line := headerLine
		for i, l := range layers {
			if badLayer(l, i == n-1) {
				line = lines[i]
				break
			}
		}
		return nil, &ParseError{Path: path, Line: line, Err: err}
	}
	return gm, nil
}

// badLayer reports whether a single parsed layer breaks the construction
// rules on its own.
func badLayer(l [fieldsPerLayer]float64, halfSpace bool) bool {
	tk := l[fieldThickness]
	if (halfSpace && tk != 0) || (!halfSpace && (!finite(tk) || tk <= 0)) {
		return true
	}
	for _, v := range []float64{l[fieldVp], l[fieldVs], l[fieldDensity]} {
		if !finite(v) || v <= 0 {
			return true
		}
	}
	return l[fieldVs] > l[fieldVp]
}

func parseLayer(fields []string) ([fieldsPerLayer]float64, error) {
	var layer [fieldsPerLayer]float64
	if len(fields) != fieldsPerLayer {
		return layer, fmt.Errorf("expected %d fields, got %d", fieldsPerLayer, len(fields))
	}
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			var numErr *strconv.NumError
			if errors.As(err, &numErr) {
				err = numErr.Err
			}
			return layer, fmt.Errorf("field %d %q: %w", i+1, f, err)
		}
		layer[i] = v
	}
	return layer, nil
}

// WriteModel appends gm to w in the Geopsy layered model format, labelled
// with a model number and misfit. The output reads back with ReadGeopsy.
func (gm *GroundModel) WriteModel(w io.Writer, modelNum int, misfit float64) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, modelHeaderFmt, modelNum, formatFloat(misfit))
	fmt.Fprintf(bw, "%d\n", gm.Len())
	for i := range gm.tk {
		fmt.Fprintf(bw, "%s %s %s %s\n",
			formatFloat(gm.tk[i]), formatFloat(gm.vp[i]), formatFloat(gm.vs[i]), formatFloat(gm.rh[i]))
	}
	return bw.Flush()
}

// WriteToFile writes gm as the only model of a new Geopsy text file.
func (gm *GroundModel) WriteToFile(path string, modelNum int, misfit float64) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return gm.WriteModel(f, modelNum, misfit)
}

// MarshalText returns the Geopsy text of gm as model 1 with a zero misfit.
func (gm *GroundModel) MarshalText() ([]byte, error) {
	var b strings.Builder
	if err := gm.WriteModel(&b, 1, 0); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
