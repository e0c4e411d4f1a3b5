package io

import (
	"bytes"
	"encoding/json"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/plotlib/pkg/errors"
	"github.com/matzehuels/plotlib/pkg/plot"
	"github.com/matzehuels/plotlib/pkg/series"
	"github.com/matzehuels/plotlib/pkg/theme"
)

// Document formats.
const (
	FormatTOML = "toml"
	FormatJSON = "json"
)

// FormatForPath maps a file extension to a document format.
func FormatForPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.New(errors.ErrCodeUnsupportedFormat,
			"cannot infer document format from %q (use .toml or .json)", path)
	}
}

// Decode reads a document in format from r. Unknown keys are an error.
func Decode(r io.Reader, format string) (*Document, error) {
	var doc Document
	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&doc)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return nil, errors.New(errors.ErrCodeInvalidInput, "unknown keys: %s", strings.Join(keys, ", "))
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode json")
		}
	default:
		return nil, errors.New(errors.ErrCodeUnsupportedFormat, "unknown document format %q", format)
	}
	return &doc, nil
}

// DecodeBytes is Decode over an in-memory buffer.
func DecodeBytes(data []byte, format string) (*Document, error) {
	return Decode(bytes.NewReader(data), format)
}

// ReadFile loads the document at path, choosing the format by extension.
func ReadFile(path string) (*Document, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()

	doc, err := Decode(f, format)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "%s", path)
	}
	return doc, nil
}

// Encode writes doc to w in format.
func Encode(w io.Writer, doc *Document, format string) error {
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "encode toml")
		}
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "encode json")
		}
	default:
		return errors.New(errors.ErrCodeUnsupportedFormat, "unknown document format %q", format)
	}
	return nil
}

// WriteFile encodes doc to path, choosing the format by extension.
func WriteFile(doc *Document, path string) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, doc, format); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	return nil
}

// FromPlot captures p as a document. Theme overrides are not recoverable
// from a built theme, so only the theme name is kept.
func FromPlot(p *plot.Plot, width, height int) *Document {
	doc := &Document{
		Title:  p.Title(),
		XLabel: p.XLabel(),
		YLabel: p.YLabel(),
		Theme:  p.Theme().Name(),
		Width:  width,
		Height: height,
	}
	for _, s := range p.Series() {
		doc.Series = append(doc.Series, seriesDoc(s))
	}
	return doc
}

func seriesDoc(s *series.Series) Series {
	sd := Series{Name: s.Name(), X: s.X(), Y: s.Y()}
	if s.HasBand() {
		sd.YLower = make([]float64, s.Len())
		sd.YUpper = make([]float64, s.Len())
		for i := range sd.YLower {
			sd.YLower[i], sd.YUpper[i] = s.Band(i)
		}
	}
	st, ok := s.Style()
	if !ok {
		return sd
	}
	if st.Color != nil {
		sd.Color = theme.FormatColor(color.NRGBAModel.Convert(st.Color).(color.NRGBA))
	}
	sd.LineWidth = &st.LineWidth
	sd.ShowPoints = &st.ShowPoints
	sd.PointRadius = &st.PointRadius
	sd.HideLine = &st.HideLine
	return sd
}
