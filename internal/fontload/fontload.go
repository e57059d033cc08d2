package fontload

import (
	"fmt"
	"os"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/sfnt"
)

// tracer writes to trace with key 'otfinfo'
func tracer() tracing.Trace {
	return tracing.Select("otfinfo")
}

// ScalableFont is a font file loaded completely into memory.
//
// The font's SFNT view from golang.org/x/image is created on first use only.
// x/image requires tables beyond those decoded by package ot, so a font may
// be loadable here without having a valid SFNT view.
type ScalableFont struct {
	Filepath string // file path, empty for fonts from memory
	Binary   []byte // raw data

	once sync.Once
	sfnt *sfnt.Font
	err  error
}

// LoadOpenTypeFont loads an OpenType font (TTF or OTF) from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, fmt.Errorf("loading font: %w", err)
	}
	tracer().Debugf("loaded %d bytes from %s", len(bytez), fontfile)
	f := FromBinary(bytez)
	f.Filepath = fontfile
	return f, nil
}

// FromBinary wraps font data already in memory.
func FromBinary(fbytes []byte) *ScalableFont {
	return &ScalableFont{Binary: fbytes}
}

// SFNT returns the golang.org/x/image view of the font, parsing it on the
// first call. It is safe for concurrent use.
func (f *ScalableFont) SFNT() (*sfnt.Font, error) {
	f.once.Do(func() {
		f.sfnt, f.err = sfnt.Parse(f.Binary)
		if f.err != nil {
			tracer().Infof("x/image cannot parse font %s: %v", f.Filepath, f.err)
		}
	})
	return f.sfnt, f.err
}

// FullName returns the full font name (name ID 4) as found by x/image.
// Clients use it to cross-check the naming table decoded by package ot.
func (f *ScalableFont) FullName() (string, error) {
	sf, err := f.SFNT()
	if err != nil {
		return "", err
	}
	return sf.Name(nil, sfnt.NameIDFull)
}

// NumGlyphs returns the number of glyphs as found by x/image.
func (f *ScalableFont) NumGlyphs() (int, error) {
	sf, err := f.SFNT()
	if err != nil {
		return 0, err
	}
	return sf.NumGlyphs(), nil
}
