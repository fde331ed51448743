package sdf

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// section separator line
const separator = "*"

// maxLine bounds a single line; some writers put a whole profile on one.
const maxLine = 16 << 20

// maxPrealloc caps the data slice capacity taken from the header.
const maxPrealloc = 1 << 20

// ReadFile opens and reads the surface data file at path.
func ReadFile(path string) (*Raster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return r, nil
}

// Read parses one ASCII surface data file from rd.
func Read(rd io.Reader) (*Raster, error) {
	sc := bufio.NewScanner(rd)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	p := &parser{sc: sc}

	if line, ok := p.next(); !ok || line != Signature {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, ErrSignature
	}

	h, err := p.header()
	if err != nil {
		return nil, err
	}
	if err := h.validate(); err != nil {
		return nil, err
	}
	data, err := p.data(h.NumPoints * h.NumProfiles)
	if err != nil {
		return nil, err
	}
	r := &Raster{Header: h, data: data}
	if err := p.trailer(r); err != nil {
		return nil, err
	}

	return r, sc.Err()
}

type parser struct {
	sc   *bufio.Scanner
	line int
}

// next returns the next non-blank line, trimmed.
func (p *parser) next() (string, bool) {
	for p.sc.Scan() {
		p.line++
		if s := strings.TrimSpace(p.sc.Text()); s != "" {
			return s, true
		}
	}

	return "", false
}

// keyValue splits "Key = value".
func keyValue(s string) (key, value string, ok bool) {
	key, value, ok = strings.Cut(s, "=")
	return strings.TrimSpace(key), strings.TrimSpace(value), ok
}

func (p *parser) header() (Header, error) {
	var h Header
	for {
		line, ok := p.next()
		if !ok {
			return h, fmt.Errorf("unterminated header: %w", ErrHeader)
		}
		if line == separator {
			return h, nil
		}
		key, value, ok := keyValue(line)
		if !ok {
			return h, fmt.Errorf("line %d %q: %w", p.line, line, ErrHeader)
		}
		if err := h.set(key, value); err != nil {
			return h, fmt.Errorf("line %d: %w", p.line, err)
		}
	}
}

// set assigns one header field. Keys are matched case-insensitively.
func (h *Header) set(key, value string) error {
	var err error
	switch strings.ToLower(key) {
	case "manufacid":
		h.ManufacID = value
	case "createdate":
		h.CreateDate = value
	case "moddate":
		h.ModDate = value
	case "numpoints":
		h.NumPoints, err = strconv.Atoi(value)
	case "numprofiles":
		h.NumProfiles, err = strconv.Atoi(value)
	case "xscale":
		h.XScale, err = strconv.ParseFloat(value, 64)
	case "yscale":
		h.YScale, err = strconv.ParseFloat(value, 64)
	case "zscale":
		h.ZScale, err = strconv.ParseFloat(value, 64)
	case "zresolution":
		h.ZResolution, err = strconv.ParseFloat(value, 64)
	case "compression":
		h.Compression, err = strconv.Atoi(value)
	case "datatype":
		h.DataType, err = strconv.Atoi(value)
	case "checktype":
		h.CheckType, err = strconv.Atoi(value)
	default:
		if h.Extra == nil {
			h.Extra = make(map[string]string)
		}
		h.Extra[key] = value
	}
	if err != nil {
		return fmt.Errorf("%s = %q: %w", key, value, ErrHeader)
	}

	return nil
}

// data reads exactly n values followed by the separator line.
func (p *parser) data(n int) ([]float64, error) {
	data := make([]float64, 0, min(n, maxPrealloc))
	for {
		line, ok := p.next()
		if !ok {
			// a file may end right after the data
			break
		}
		if line == separator {
			break
		}
		for _, tok := range strings.Fields(line) {
			v, err := parseValue(tok)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", p.line, err)
			}
			data = append(data, v)
		}
		if len(data) > n {
			return nil, fmt.Errorf("more than %d values: %w", n, ErrDataCount)
		}
	}
	if len(data) != n {
		return nil, fmt.Errorf("got %d, want %d: %w", len(data), n, ErrDataCount)
	}

	return data, nil
}

func parseValue(tok string) (float64, error) {
	if strings.EqualFold(tok, "BAD") || strings.EqualFold(tok, "NaN") {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", tok, ErrValue)
	}

	return v, nil
}

// trailer reads the optional trailer up to the closing separator or EOF.
func (p *parser) trailer(r *Raster) error {
	for {
		line, ok := p.next()
		if !ok || line == separator {
			return nil
		}
		key, value, ok := keyValue(line)
		if !ok {
			continue // free text is allowed in the trailer
		}
		var dst *float64
		switch strings.ToLower(key) {
		case "xoffset":
			dst = &r.xOffset
		case "yoffset":
			dst = &r.yOffset
		case "zoffset":
			dst = &r.zOffset
		default:
			if r.Trailer == nil {
				r.Trailer = make(map[string]string)
			}
			r.Trailer[key] = value
			continue
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("line %d %s = %q: %w", p.line, key, value, ErrValue)
		}
		*dst = v
	}
}
