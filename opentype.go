package otfinfo

import (
	"github.com/npillmayer/otfinfo/ot"
	"github.com/npillmayer/otfinfo/otquery"
	"golang.org/x/image/font/sfnt"
)

// FromBinary parses raw OpenType bytes and returns a decoded font.
//
// The input is expected to contain a complete single-font SFNT stream.
// The font returned holds copies of all decoded values, so data may be
// reused after FromBinary returns.
func FromBinary(data []byte, opts ...ot.ParseOption) (*ot.Font, error) {
	return ot.Parse(data, opts...)
}

// FamilyName extracts family and subfamily names from a font's `name` table.
//
// Returned values are empty if no matching records of the Unicode or Windows
// platform exist. If a name ID occurs more than once, the last record wins.
func FamilyName(f *ot.Font) (family, subfamily string) {
	for nameID, stringValue := range otquery.NamesRange(f) {
		switch nameID {
		case sfnt.NameIDFamily:
			family = stringValue
		case sfnt.NameIDSubfamily:
			subfamily = stringValue
		}
	}
	return
}
