/*
Package otfinfo reads the metadata of OpenType and TrueType fonts.

A font file starts with a table directory, followed by tables identified by
4-letter tags. otfinfo decodes the directory and the tables

▪︎ 'head', the font header with global information like units per em,
creation date and bounding box

▪︎ 'name', the naming table with family names, copyright notices and the like

▪︎ 'cmap', the encodings the font supports (subtables are identified by
format only)

All other tables are listed in the directory but not decoded.

The decoding itself lives in package ot; package otquery translates decoded
values into human readable descriptions. This package is the front door for
clients which simply need a decoded font from a file or a byte slice.

# Status

Does not handle font collections (*.ttc).

# Links

OpenType explained:
https://docs.microsoft.com/en-us/typography/opentype/

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otfinfo

import (
	"github.com/npillmayer/otfinfo/internal/fontload"
	"github.com/npillmayer/otfinfo/ot"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'otfinfo'
func tracer() tracing.Trace {
	return tracing.Select("otfinfo")
}

// LoadFont reads a font file (TTF or OTF) completely into memory and decodes it.
func LoadFont(fontfile string, opts ...ot.ParseOption) (*ot.Font, error) {
	f, err := fontload.LoadOpenTypeFont(fontfile)
	if err != nil {
		return nil, err
	}
	otf, err := FromBinary(f.Binary, opts...)
	if err != nil {
		tracer().Errorf("cannot decode font %s: %v", fontfile, err)
		return nil, err
	}
	tracer().Infof("decoded font %s with %d tables", fontfile, otf.Directory.NumTables)
	return otf, nil
}
