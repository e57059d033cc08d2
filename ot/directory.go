package ot

import "fmt"

// Known values of TableDirectory.SfntVersion.
//
// OpenType fonts that contain TrueType outlines should use the value of 0x00010000
// for the sfnt version. OpenType fonts containing CFF data (version 1 or 2) should
// use 0x4F54544F ('OTTO', when re-interpreted as a Tag).
// The Apple specification for TrueType fonts allows for 'true' and 'typ1',
// but these version tags should not be used for OpenType fonts.
const (
	SfntVersionTrueType = 0x00010000
	SfntVersionCFF      = 0x4f54544f // OTTO
	SfntVersionApple    = 0x74727565 // true
	SfntVersionType1    = 0x74797031 // typ1
	sfntCollection      = 0x74746366 // ttcf
)

const (
	directoryHeaderSize = 12
	tableRecordSize     = 16
)

// TableDirectory is a directory of the top-level tables in a font. If the font file
// contains only one font, the table directory will begin at byte 0 of the file.
//
// SearchRange, EntrySelector and RangeShift are hints for a binary search over
// the table records. They are kept for completeness, but lookup by tag does not
// use them.
type TableDirectory struct {
	SfntVersion   uint32
	NumTables     uint16
	SearchRange   uint16
	EntrySelector uint16
	RangeShift    uint16
	Records       []TableRecord // in on-disk order, len(Records) == NumTables
}

// TableRecord locates one table within the font file.
type TableRecord struct {
	Tag      Tag
	Checksum uint32
	Offset   Offset32 // from beginning of font file
	Length   uint32
}

// End returns the file offset of the first byte after the table, or an error
// if offset plus length overflows.
func (rec TableRecord) End() (uint32, error) {
	return checkedAddUint32(rec.Offset, rec.Length)
}

// Record returns the table record for tag. If more than one record carries the
// tag, the last one is returned.
func (td TableDirectory) Record(tag Tag) (TableRecord, bool) {
	for i := len(td.Records) - 1; i >= 0; i-- {
		if td.Records[i].Tag == tag {
			return td.Records[i], true
		}
	}
	return TableRecord{}, false
}

// parseTableDirectory reads the 12-byte directory header and the table records
// following it. It does not check the records' offsets against the font size;
// this is left to the caller.
func parseTableDirectory(b binarySegm, ec *errorCollector) (TableDirectory, error) {
	td := TableDirectory{}
	r := newReader(b)
	var err error
	if td.SfntVersion, err = r.u32(); err != nil {
		return td, ec.wrap(err, 0, "Header", 0)
	}
	if td.SfntVersion == sfntCollection {
		return td, ec.addError(0, "Header", "font collections are not supported",
			ErrUnrecognizedVariant, 0)
	}
	if !knownSfntVersion(td.SfntVersion) {
		tracer().Infof("unknown sfnt version %x", td.SfntVersion)
		ec.addWarning(0, fmt.Sprintf("unknown sfnt version 0x%08x", td.SfntVersion), 0)
	}
	if td.NumTables, err = r.u16(); err != nil {
		return td, ec.wrap(err, 0, "Header", 4)
	}
	// searchRange, entrySelector, rangeShift
	for _, hint := range []*uint16{&td.SearchRange, &td.EntrySelector, &td.RangeShift} {
		if *hint, err = r.u16(); err != nil {
			return td, ec.wrap(err, 0, "Header", uint32(r.Pos()))
		}
	}
	if need := directoryHeaderSize + tableRecordSize*int(td.NumTables); need > len(b) {
		return td, ec.addError(0, "TableRecords",
			fmt.Sprintf("%d table records need %d bytes, font has %d", td.NumTables, need, len(b)),
			ErrMalformedInput, directoryHeaderSize)
	}
	tracer().Debugf("table directory has %d records", td.NumTables)
	td.Records = make([]TableRecord, 0, td.NumTables)
	for i := 0; i < int(td.NumTables); i++ {
		rec, err := parseTableRecord(r)
		if err != nil {
			return td, ec.wrap(err, 0, "TableRecords", uint32(r.Pos()))
		}
		td.Records = append(td.Records, rec)
	}
	return td, nil
}

func parseTableRecord(r *reader) (rec TableRecord, err error) {
	if rec.Tag, err = r.tag(); err != nil {
		return
	}
	if rec.Checksum, err = r.u32(); err != nil {
		return
	}
	if rec.Offset, err = r.offset32(); err != nil {
		return
	}
	rec.Length, err = r.u32()
	return
}

func knownSfntVersion(v uint32) bool {
	switch v {
	case SfntVersionTrueType, SfntVersionCFF, SfntVersionApple, SfntVersionType1:
		return true
	}
	return false
}

// --- Checksums -------------------------------------------------------------

// CalcTableChecksum sums up a table's data as a sequence of big-endian uint32
// values. A trailing partial word is padded with zeros.
func CalcTableChecksum(b []byte) uint32 {
	var sum uint32
	for len(b) >= 4 {
		sum += u32(b)
		b = b[4:]
	}
	if len(b) > 0 {
		var last [4]byte
		copy(last[:], b)
		sum += u32(last[:])
	}
	return sum
}

// headChecksum computes the checksum of a 'head' table, for which the
// checkSumAdjustment field at byte 8 counts as zero.
func headChecksum(b []byte) uint32 {
	sum := CalcTableChecksum(b)
	if len(b) >= 12 {
		sum -= u32(b[8:12])
	}
	return sum
}
