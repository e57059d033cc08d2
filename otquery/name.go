package otquery

import (
	"iter"

	"github.com/npillmayer/otfinfo/ot"
	"golang.org/x/image/font/sfnt"
)

// NamesRange yields `(nameID, value)` pairs from a font's naming table, in
// record order.
//
// Only Unicode-encoded records of the Unicode and Windows platforms are yielded;
// Macintosh records are skipped, as their content depends on how the font was
// parsed (see ot.MacintoshNames). Empty strings are skipped as well.
func NamesRange(otf *ot.Font) iter.Seq2[sfnt.NameID, string] {
	return func(yield func(sfnt.NameID, string) bool) {
		if otf == nil {
			return
		}
		names, ok := otf.Name.Unwrap()
		if !ok {
			tracer().Debugf("no name table found in font")
			return
		}
		for _, rec := range names.Records {
			if !isUnicodeNameEncoding(rec) || rec.Content == "" {
				continue
			}
			if !yield(rec.NameID, rec.Content) {
				return
			}
		}
	}
}

func isUnicodeNameEncoding(rec ot.NameRecord) bool {
	switch rec.PlatformID {
	case ot.PlatformUnicode:
		return rec.EncodingID == ot.EncodingUnicodeBMP || rec.EncodingID == ot.EncodingUnicodeFull
	case ot.PlatformWindows:
		return rec.EncodingID == ot.EncodingWindowsBMP || rec.EncodingID == ot.EncodingWindowsFull
	}
	return false
}

// FamilyName returns the family name of a font. The typographic family name
// (name ID 16) takes precedence over the legacy family name (name ID 1).
func FamilyName(otf *ot.Font) (string, bool) {
	if otf == nil {
		return "", false
	}
	names, ok := otf.Name.Unwrap()
	if !ok {
		return "", false
	}
	if fam, ok := names.Lookup(sfnt.NameIDTypographicFamily); ok && fam != "" {
		return fam, true
	}
	return names.Lookup(sfnt.NameIDFamily)
}

var nameInfoKeys = map[sfnt.NameID]string{
	sfnt.NameIDCopyright:            "copyright",
	sfnt.NameIDFamily:               "family",
	sfnt.NameIDSubfamily:            "subfamily",
	sfnt.NameIDUniqueIdentifier:     "id",
	sfnt.NameIDFull:                 "fullname",
	sfnt.NameIDVersion:              "version",
	sfnt.NameIDPostScript:           "postscript",
	sfnt.NameIDTrademark:            "trademark",
	sfnt.NameIDManufacturer:         "manufacturer",
	sfnt.NameIDDesigner:             "designer",
	sfnt.NameIDDescription:          "description",
	sfnt.NameIDLicense:              "license",
	sfnt.NameIDTypographicFamily:    "typo-family",
	sfnt.NameIDTypographicSubfamily: "typo-subfamily",
}

// NameInfo returns a map of selected name strings, keyed by short keys like
// "family" or "version". The first string found for a name ID wins.
func NameInfo(otf *ot.Font) map[string]string {
	info := make(map[string]string)
	for id, s := range NamesRange(otf) {
		key, ok := nameInfoKeys[id]
		if !ok {
			continue
		}
		if _, seen := info[key]; !seen {
			info[key] = s
		}
	}
	return info
}
