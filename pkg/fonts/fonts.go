// Package fonts provides the embedded Go font family for text rendering.
//
// The fonts ship with golang.org/x/image/font/gofont, so they are compiled
// into the binary and measurement is identical on every machine. Parsed
// fonts are cached and shared; faces are not, because a font.Face keeps
// per-call scratch buffers and is not safe for concurrent use.
package fonts

import (
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Family names understood by [Resolve].
const (
	SansSerif = "SansSerif"
	Serif     = "Serif"
	Monospace = "Monospace"
)

// CSS font-family stacks for SVG output, keyed by canonical family. Serif
// names the Go sans cut first because that is what layout measured.
var cssFamilies = map[string]string{
	SansSerif: `'Go', 'Helvetica Neue', Arial, sans-serif`,
	Serif:     `'Go', Georgia, serif`,
	Monospace: `'Go Mono', Menlo, Consolas, monospace`,
}

// Canonical maps a user-facing family name to one of the family constants.
// Unknown names fall back to [SansSerif].
func Canonical(family string) string {
	switch strings.ToLower(strings.ReplaceAll(family, "-", "")) {
	case "serif", "times", "georgia":
		return Serif
	case "monospace", "mono", "monospaced", "courier":
		return Monospace
	default:
		return SansSerif
	}
}

// CSSFamily returns a font-family value for family.
func CSSFamily(family string) string {
	return cssFamilies[Canonical(family)]
}

type key struct {
	family string
	bold   bool
}

var (
	parsed     map[key]*opentype.Font
	parsedErr  error
	parsedOnce sync.Once
)

func load() {
	sources := map[key][]byte{
		{SansSerif, false}: goregular.TTF,
		{SansSerif, true}:  gobold.TTF,
		{Monospace, false}: gomono.TTF,
		{Monospace, true}:  gomonobold.TTF,
	}
	parsed = make(map[key]*opentype.Font, len(sources))
	for k, data := range sources {
		f, err := opentype.Parse(data)
		if err != nil {
			parsedErr = err
			return
		}
		parsed[k] = f
	}
	// The Go family has no serif cut; serif text uses the sans outlines.
	parsed[key{Serif, false}] = parsed[key{SansSerif, false}]
	parsed[key{Serif, true}] = parsed[key{SansSerif, true}]
}

// Resolve returns the parsed font for family and weight.
func Resolve(family string, bold bool) (*opentype.Font, error) {
	parsedOnce.Do(load)
	if parsedErr != nil {
		return nil, parsedErr
	}
	return parsed[key{Canonical(family), bold}], nil
}

// NewFace creates a face at size pixels (72 DPI, so points equal pixels).
// The caller owns the face and must not share it across goroutines.
func NewFace(family string, bold bool, size float64) (font.Face, error) {
	f, err := Resolve(family, bold)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}
