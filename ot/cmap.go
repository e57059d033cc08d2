package ot

import "fmt"

// CMapFormat is the 2-byte discriminator at the start of a cmap subtable,
// selecting the subtable's layout.
type CMapFormat uint16

const (
	CMapFormatByteEncoding    CMapFormat = 0  // Byte encoding table
	CMapFormatHighByte        CMapFormat = 2  // High byte mapping through table
	CMapFormatSegmentDelta    CMapFormat = 4  // Segment mapping to delta values
	CMapFormatTrimmedTable    CMapFormat = 6  // Trimmed table mapping
	CMapFormatMixed16And32    CMapFormat = 8  // mixed 16-bit and 32-bit coverage
	CMapFormatTrimmedArray    CMapFormat = 10 // Trimmed array
	CMapFormatSegmented       CMapFormat = 12 // Segmented coverage
	CMapFormatManyToOne       CMapFormat = 13 // Many-to-one range mappings
	CMapFormatUnicodeVariants CMapFormat = 14 // Unicode variation sequences
)

// Known reports whether f is one of the subtable formats defined by OpenType.
func (f CMapFormat) Known() bool {
	switch f {
	case 0, 2, 4, 6, 8, 10, 12, 13, 14:
		return true
	}
	return false
}

// String returns a descriptive label for a format. Unrecognized formats are
// labelled "error format".
func (f CMapFormat) String() string {
	switch f {
	case CMapFormatByteEncoding:
		return "Byte encoding table"
	case CMapFormatHighByte:
		return "High byte mapping through table"
	case CMapFormatSegmentDelta:
		return "Segment mapping to delta values"
	case CMapFormatTrimmedTable:
		return "Trimmed table mapping"
	case CMapFormatMixed16And32:
		return "mixed 16-bit and 32-bit coverage"
	case CMapFormatTrimmedArray:
		return "Trimmed array"
	case CMapFormatSegmented:
		return "Segmented coverage"
	case CMapFormatManyToOne:
		return "Many-to-one range mappings"
	case CMapFormatUnicodeVariants:
		return "Unicode variation sequences"
	}
	return "error format"
}

const (
	cmapHeaderSize         = 4
	cmapEncodingRecordSize = 8
)

// CMapTable is the character to glyph index mapping table 'cmap'.
//
// This table defines mapping of character codes to a default glyph index. Different
// subtables may be defined that each contain mappings for different character encoding
// schemes. The table header indicates the character encodings for which subtables are
// present.
type CMapTable struct {
	Version         uint16
	NumTables       uint16
	EncodingRecords []EncodingRecord
}

// EncodingRecord links a platform/encoding pair to a subtable. Records with
// the same subtable offset share a single *CMapSubtable.
type EncodingRecord struct {
	PlatformID     PlatformID
	EncodingID     EncodingID
	SubtableOffset Offset32 // from beginning of the cmap table
	Subtable       *CMapSubtable
}

// CMapSubtable is a cmap subtable, resolved up to its format discriminator.
// The mapping data following the format field is not decoded.
type CMapSubtable struct {
	Offset Offset32 // from beginning of the cmap table
	Format CMapFormat
}

// Subtables returns the distinct subtables of the table, in order of first
// reference.
func (cm CMapTable) Subtables() []*CMapSubtable {
	seen := make(map[*CMapSubtable]bool)
	subs := make([]*CMapSubtable, 0, len(cm.EncodingRecords))
	for _, rec := range cm.EncodingRecords {
		if rec.Subtable != nil && !seen[rec.Subtable] {
			seen[rec.Subtable] = true
			subs = append(subs, rec.Subtable)
		}
	}
	return subs
}

// Encoding returns the first encoding record for a platform/encoding pair.
func (cm CMapTable) Encoding(pid PlatformID, eid EncodingID) (EncodingRecord, bool) {
	for _, rec := range cm.EncodingRecords {
		if rec.PlatformID == pid && rec.EncodingID == eid {
			return rec, true
		}
	}
	return EncodingRecord{}, false
}

// parseCMap decodes the header and encoding records of table 'cmap', and
// resolves every record's subtable offset against b, the complete table segment.
//
// OpenType says: “Apart from a format 14 subtable, all other subtables are exclusive:
// applications should select and use one and ignore the others.”
// Selecting a subtable is left to clients.
func parseCMap(tag Tag, b binarySegm, offset, size uint32, ec *errorCollector) (CMapTable, error) {
	cm := CMapTable{}
	r := newReader(b)
	var err error
	if cm.Version, err = r.u16(); err != nil {
		return CMapTable{}, ec.wrap(err, tag, "Header", offset)
	}
	if cm.NumTables, err = r.u16(); err != nil {
		return CMapTable{}, ec.wrap(err, tag, "Header", offset+2)
	}
	tracer().Debugf("font cmap has %d sub-tables in %d bytes", cm.NumTables, size)
	if need := cmapHeaderSize + cmapEncodingRecordSize*int(cm.NumTables); need > len(b) {
		return CMapTable{}, ec.addError(tag, "EncodingRecord",
			fmt.Sprintf("%d encoding records need %d bytes, table has %d", cm.NumTables, need, size),
			ErrMalformedInput, offset)
	}
	shared := make(map[Offset32]*CMapSubtable)
	cm.EncodingRecords = make([]EncodingRecord, 0, cm.NumTables)
	for i := 0; i < int(cm.NumTables); i++ {
		at := offset + uint32(r.Pos())
		rec, err := parseEncodingRecord(r)
		if err != nil {
			return CMapTable{}, ec.wrap(err, tag, "EncodingRecord", at)
		}
		if sub, ok := shared[rec.SubtableOffset]; ok {
			rec.Subtable = sub
		} else {
			sub, err := parseCMapSubtable(b, rec.SubtableOffset)
			if err != nil {
				return CMapTable{}, ec.wrap(fmt.Errorf("encoding record %d: %w", i, err),
					tag, "Subtable", at)
			}
			if !sub.Format.Known() {
				tracer().Infof("cmap sub-table at %d has unrecognized format %d", sub.Offset, sub.Format)
				ec.addWarning(tag, fmt.Sprintf("%v: sub-table format %d", ErrUnrecognizedVariant,
					sub.Format), offset+sub.Offset)
			}
			shared[rec.SubtableOffset] = sub
			rec.Subtable = sub
		}
		tracer().Debugf("cmap encoding (%d,%d) -> format %d", rec.PlatformID, rec.EncodingID, rec.Subtable.Format)
		cm.EncodingRecords = append(cm.EncodingRecords, rec)
	}
	return cm, nil
}

func parseEncodingRecord(r *reader) (rec EncodingRecord, err error) {
	var pid, eid uint16
	if pid, err = r.u16(); err != nil {
		return
	}
	if eid, err = r.u16(); err != nil {
		return
	}
	rec.PlatformID, rec.EncodingID = PlatformID(pid), EncodingID(eid)
	rec.SubtableOffset, err = r.offset32()
	return
}

// parseCMapSubtable reads the format discriminator of the subtable at a
// table-relative offset and stops there.
func parseCMapSubtable(b binarySegm, at Offset32) (*CMapSubtable, error) {
	if uint64(at) > uint64(len(b)) {
		return nil, fmt.Errorf("%w: sub-table offset %d beyond table of size %d", ErrInvalidOffset, at, len(b))
	}
	format, err := b.u16(int(at))
	if err != nil {
		return nil, err
	}
	return &CMapSubtable{Offset: at, Format: CMapFormat(format)}, nil
}
