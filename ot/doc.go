/*
Package ot decodes the table directory of an OpenType/TrueType font and three
of its tables: 'head' (font header), 'name' (naming table) and 'cmap'
(character to glyph index mapping).

Intended audience for this package are tools needing metadata from a font
file (name strings, header geometry, encoding records) without a full
font-rendering stack.

Package `ot` will not interpret the decoded values, but rather expose them as
structured values. Descriptive strings for platform, encoding, language and
name IDs are homed in the sister package `otquery`, which is kept out of the
decode path.

A font file is interpreted through several layers of relative offsets:

▪︎ table offsets, relative to the start of the font file

▪︎ subtable offsets, relative to the start of a table (cmap)

▪︎ string offsets, relative to a storage area inside a table (name)

Every offset is bounds-checked against the buffer it is relative to before
it is followed. A table either decodes completely or Parse fails; there are no
half-decoded tables.

Tables a font may or may not contain are held in an Option container, as are
the version-1-only fields of the naming table.

# Status

Subtables of 'cmap' are resolved up to their format discriminator only.
Decoding the segment and range data of the individual formats is not
implemented.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package ot

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'font.opentype'
func tracer() tracing.Trace {
	return tracing.Select("font.opentype")
}
