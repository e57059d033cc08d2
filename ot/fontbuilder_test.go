package ot

import (
	"encoding/binary"
	"unicode/utf16"
)

// Helpers to assemble synthetic font binaries for tests.

func putU16(b []byte, at int, v uint16) {
	binary.BigEndian.PutUint16(b[at:at+2], v)
}

func putU32(b []byte, at int, v uint32) {
	binary.BigEndian.PutUint32(b[at:at+4], v)
}

func utf16be(s string) []byte {
	units := utf16.Encode([]rune(s))
	b := make([]byte, 2*len(units))
	for i, u := range units {
		putU16(b, 2*i, u)
	}
	return b
}

type testTable struct {
	tag  string
	data []byte
}

// buildFont lays out a TrueType-flavoured font with the given tables, in
// order. Table data is 4-byte aligned and checksums are correct.
func buildFont(tables ...testTable) []byte {
	return buildFontVersion(SfntVersionTrueType, tables...)
}

func buildFontVersion(version uint32, tables ...testTable) []byte {
	size := directoryHeaderSize + tableRecordSize*len(tables)
	offsets := make([]int, len(tables))
	for i, t := range tables {
		offsets[i] = size
		size += (len(t.data) + 3) &^ 3
	}
	font := make([]byte, size)
	putU32(font, 0, version)
	putU16(font, 4, uint16(len(tables)))
	putU16(font, 6, 16)
	putU16(font, 8, 0)
	putU16(font, 10, 0)
	for i, t := range tables {
		at := directoryHeaderSize + tableRecordSize*i
		copy(font[at:], t.tag)
		sum := CalcTableChecksum(t.data)
		if t.tag == "head" {
			sum = headChecksum(t.data)
		}
		putU32(font, at+4, sum)
		putU32(font, at+8, uint32(offsets[i]))
		putU32(font, at+12, uint32(len(t.data)))
		copy(font[offsets[i]:], t.data)
	}
	return font
}

type testName struct {
	pid, eid, lid, nid uint16
	str                []byte
}

// nameTable builds a 'name' table. Language-tag records are written for
// version 1 only.
func nameTable(version uint16, names []testName, langTags ...string) []byte {
	storage := nameHeaderSize + nameRecordSize*len(names)
	if version >= 1 {
		storage += 2 + langTagRecordSize*len(langTags)
	}
	b := make([]byte, storage)
	putU16(b, 0, version)
	putU16(b, 2, uint16(len(names)))
	putU16(b, 4, uint16(storage))
	var strs []byte
	for i, n := range names {
		at := nameHeaderSize + nameRecordSize*i
		putU16(b, at, n.pid)
		putU16(b, at+2, n.eid)
		putU16(b, at+4, n.lid)
		putU16(b, at+6, n.nid)
		putU16(b, at+8, uint16(len(n.str)))
		putU16(b, at+10, uint16(len(strs)))
		strs = append(strs, n.str...)
	}
	if version >= 1 {
		at := nameHeaderSize + nameRecordSize*len(names)
		putU16(b, at, uint16(len(langTags)))
		for i, lt := range langTags {
			raw := utf16be(lt)
			putU16(b, at+2+langTagRecordSize*i, uint16(len(raw)))
			putU16(b, at+4+langTagRecordSize*i, uint16(len(strs)))
			strs = append(strs, raw...)
		}
	}
	return append(b, strs...)
}

// headTable builds a 'head' table with a valid magic number.
func headTable(unitsPerEm uint16, created, modified int64) []byte {
	b := make([]byte, headTableSize)
	putU16(b, 0, 1)
	putU16(b, 2, 0)
	putU32(b, 4, 0x00018000) // revision 1.5
	putU32(b, 12, headMagicNumber)
	putU16(b, 16, 0x000b)
	putU16(b, 18, unitsPerEm)
	binary.BigEndian.PutUint64(b[20:28], uint64(created))
	binary.BigEndian.PutUint64(b[28:36], uint64(modified))
	putU16(b, 36, uint16(0xff9c)) // xMin = -100
	putU16(b, 38, uint16(0xff38)) // yMin = -200
	putU16(b, 40, 1000)
	putU16(b, 42, 900)
	putU16(b, 44, 0x0001) // bold
	putU16(b, 46, 8)
	putU16(b, 48, 2)
	putU16(b, 50, 1)
	putU16(b, 52, 0)
	return b
}

type testEncoding struct {
	pid, eid uint16
	offset   uint32
}

// cmapTable builds a 'cmap' header with encoding records, followed by tail.
// Subtable offsets are taken as given.
func cmapTable(encodings []testEncoding, tail []byte) []byte {
	b := make([]byte, cmapHeaderSize+cmapEncodingRecordSize*len(encodings))
	putU16(b, 0, 0)
	putU16(b, 2, uint16(len(encodings)))
	for i, e := range encodings {
		at := cmapHeaderSize + cmapEncodingRecordSize*i
		putU16(b, at, e.pid)
		putU16(b, at+2, e.eid)
		putU32(b, at+4, e.offset)
	}
	return append(b, tail...)
}

// cmapSubtableStub returns the first bytes of a subtable of a given format.
// Only the format field is meaningful.
func cmapSubtableStub(format uint16) []byte {
	b := make([]byte, 8)
	putU16(b, 0, format)
	return b
}
