package otquery

import (
	"fmt"

	"github.com/npillmayer/otfinfo/ot"
)

// The functions in this file turn decoded tables into rows of strings.
// The first row of every result is a header row.

// DirectoryRows lists the table records of a font's directory.
func DirectoryRows(otf *ot.Font) [][]string {
	rows := [][]string{{"Tag", "Offset", "Length", "Checksum", "Decoded"}}
	if otf == nil {
		return rows
	}
	for _, rec := range otf.Directory.Records {
		decoded := "no"
		if ot.KindOf(rec.Tag) != ot.KindIgnored {
			decoded = "yes"
		}
		rows = append(rows, []string{
			rec.Tag.String(),
			fmt.Sprintf("%d", rec.Offset),
			fmt.Sprintf("%d", rec.Length),
			fmt.Sprintf("0x%08x", rec.Checksum),
			decoded,
		})
	}
	return rows
}

// HeadRows lists the fields of a 'head' table.
func HeadRows(h ot.HeadTable) [][]string {
	xmin, ymin, xmax, ymax := h.BoundingBox()
	magic := fmt.Sprintf("0x%08X", h.MagicNumber)
	if !h.MagicOK() {
		magic += " (invalid)"
	}
	return [][]string{
		{"Field", "Value"},
		{"Version", fmt.Sprintf("%d.%d", h.MajorVersion, h.MinorVersion)},
		{"Font revision", fmt.Sprintf("%.3f", h.FontRevision)},
		{"Checksum adjustment", fmt.Sprintf("0x%08X", h.CheckSumAdjustment)},
		{"Magic number", magic},
		{"Flags", fmt.Sprintf("0b%016b", h.Flags)},
		{"Units per em", fmt.Sprintf("%d", h.UnitsPerEm)},
		{"Created", h.Created.String()},
		{"Modified", h.Modified.String()},
		{"Bounding box", fmt.Sprintf("(%d, %d) – (%d, %d)", xmin, ymin, xmax, ymax)},
		{"Mac style", fmt.Sprintf("0b%016b", h.MacStyle)},
		{"Lowest rec. PPEM", fmt.Sprintf("%d", h.LowestRecPPEM)},
		{"Font direction hint", fmt.Sprintf("%d", h.FontDirectionHint)},
		{"Index to loc format", fmt.Sprintf("%d", h.IndexToLocFormat)},
		{"Glyph data format", fmt.Sprintf("%d", h.GlyphDataFormat)},
	}
}

// NameRows lists the records of a naming table, with platform, encoding,
// language and name IDs spelled out.
func NameRows(nt ot.NameTable) [][]string {
	rows := [][]string{{"Platform", "Encoding", "Language", "Name", "Content"}}
	for _, rec := range nt.Records {
		lang := LanguageName(rec.PlatformID, rec.LanguageID)
		if tag, ok := nt.LanguageTag(rec); ok {
			lang = tag
		}
		rows = append(rows, []string{
			fmt.Sprintf("%s(%d)", PlatformName(rec.PlatformID), rec.PlatformID),
			fmt.Sprintf("%s(%d)", EncodingName(rec.PlatformID, rec.EncodingID), rec.EncodingID),
			fmt.Sprintf("%s(%d)", lang, rec.LanguageID),
			fmt.Sprintf("%s(%d)", NameIDName(rec.NameID), rec.NameID),
			rec.Content,
		})
	}
	return rows
}

// CMapRows lists the encoding records of a 'cmap' table together with the
// format of the subtable each record refers to.
func CMapRows(cm ot.CMapTable) [][]string {
	rows := [][]string{{"Platform", "Encoding", "Offset", "Format"}}
	for _, rec := range cm.EncodingRecords {
		format := "–"
		if rec.Subtable != nil {
			format = fmt.Sprintf("%s(%d)", rec.Subtable.Format, uint16(rec.Subtable.Format))
		}
		rows = append(rows, []string{
			fmt.Sprintf("%s(%d)", PlatformName(rec.PlatformID), rec.PlatformID),
			fmt.Sprintf("%s(%d)", EncodingName(rec.PlatformID, rec.EncodingID), rec.EncodingID),
			fmt.Sprintf("%d", rec.SubtableOffset),
			format,
		})
	}
	return rows
}

// WarningRows lists the warnings collected while parsing a font.
func WarningRows(otf *ot.Font) [][]string {
	rows := [][]string{{"Table", "Offset", "Issue"}}
	if otf == nil {
		return rows
	}
	for _, w := range otf.Warnings() {
		table := w.Table.String()
		if w.Table == 0 { // font-level, e.g. the table directory
			table = "sfnt"
		}
		rows = append(rows, []string{table, fmt.Sprintf("%d", w.Offset), w.Issue})
	}
	return rows
}
