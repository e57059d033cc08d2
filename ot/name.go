package ot

import (
	"fmt"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/language"
)

// PlatformID identifies the platform of a name record or cmap encoding record.
type PlatformID uint16

const (
	PlatformUnicode   PlatformID = 0
	PlatformMacintosh PlatformID = 1
	PlatformISO       PlatformID = 2 // deprecated
	PlatformWindows   PlatformID = 3
	PlatformCustom    PlatformID = 4
)

// EncodingID is a platform-specific encoding identifier.
type EncodingID uint16

const (
	EncodingUnicodeBMP     EncodingID = 3  // platform Unicode
	EncodingUnicodeFull    EncodingID = 4  // platform Unicode
	EncodingWindowsSymbol  EncodingID = 0  // platform Windows
	EncodingWindowsBMP     EncodingID = 1  // platform Windows
	EncodingWindowsFull    EncodingID = 10 // platform Windows
	EncodingMacintoshRoman EncodingID = 0  // platform Macintosh
)

const (
	nameHeaderSize    = 6
	nameRecordSize    = 12
	langTagRecordSize = 4
)

// NameTable is the naming table 'name'. It associates multilingual strings
// with the font, e.g., copyright notices, font names, family names and style names.
//
// LangTags is present for version 1 tables only. A version 1 table without
// language-tag records has an empty, not absent, list.
type NameTable struct {
	Version       uint16
	Count         uint16
	StorageOffset Offset16 // offset to start of string storage, from start of table
	Records       []NameRecord
	LangTags      Option[[]LangTagRecord]
}

// NameRecord references one string of the storage area. Content holds the
// decoded string.
type NameRecord struct {
	PlatformID   PlatformID
	EncodingID   EncodingID
	LanguageID   uint16
	NameID       sfnt.NameID
	Length       uint16   // string length in bytes
	StringOffset Offset16 // from start of storage area
	Content      string
}

// LangTagRecord references a language-tag string of the storage area.
// Language-tag strings are IETF BCP 47 tags, encoded in UTF-16BE.
type LangTagRecord struct {
	Length        uint16
	LangTagOffset Offset16 // from start of storage area
	Content       string
}

// Language parses the language tag. Name records with language IDs of 0x8000
// and above refer to language-tag record (languageID - 0x8000).
func (ltr LangTagRecord) Language() (language.Tag, error) {
	return language.Parse(ltr.Content)
}

// LangTagCount returns the number of language-tag records, if the table is
// of version 1.
func (nt NameTable) LangTagCount() (uint16, bool) {
	tags, ok := nt.LangTags.Unwrap()
	return uint16(len(tags)), ok
}

// Lookup returns the first string for a name ID. Records of the Windows
// platform are preferred over Unicode records, which in turn are preferred
// over records of any other platform.
func (nt NameTable) Lookup(id sfnt.NameID) (string, bool) {
	best, rank := -1, 99
	for i, rec := range nt.Records {
		if rec.NameID != id {
			continue
		}
		r := 2
		switch rec.PlatformID {
		case PlatformWindows:
			r = 0
		case PlatformUnicode:
			r = 1
		}
		if r < rank {
			best, rank = i, r
		}
	}
	if best < 0 {
		return "", false
	}
	return nt.Records[best].Content, true
}

// LanguageTag returns the language-tag string a name record refers to, if its
// language ID is 0x8000 or above and the table carries language-tag records.
func (nt NameTable) LanguageTag(rec NameRecord) (string, bool) {
	if rec.LanguageID < 0x8000 {
		return "", false
	}
	tags, ok := nt.LangTags.Unwrap()
	if !ok {
		return "", false
	}
	inx := int(rec.LanguageID - 0x8000)
	if inx >= len(tags) {
		return "", false
	}
	return tags[inx].Content, true
}

// parseName decodes table 'name'. Strings are resolved by re-slicing b, the
// table's complete segment, at storageOffset + stringOffset.
func parseName(tag Tag, b binarySegm, offset, size uint32, conf parseConfig, ec *errorCollector) (NameTable, error) {
	nt := NameTable{}
	r := newReader(b)
	var err error
	if nt.Version, err = r.u16(); err != nil {
		return NameTable{}, ec.wrap(err, tag, "Header", offset)
	}
	if nt.Version > 1 {
		return NameTable{}, ec.addError(tag, "Header",
			fmt.Sprintf("name table version %d", nt.Version), ErrUnrecognizedVariant, offset)
	}
	if nt.Count, err = r.u16(); err != nil {
		return NameTable{}, ec.wrap(err, tag, "Header", offset+2)
	}
	if nt.StorageOffset, err = r.offset16(); err != nil {
		return NameTable{}, ec.wrap(err, tag, "Header", offset+4)
	}
	tracer().Debugf("name table v%d has %d strings, storage at %d", nt.Version, nt.Count, nt.StorageOffset)
	if need := nameHeaderSize + nameRecordSize*int(nt.Count); need > len(b) {
		return NameTable{}, ec.addError(tag, "NameRecord",
			fmt.Sprintf("%d name records need %d bytes, table has %d", nt.Count, need, size),
			ErrMalformedInput, offset)
	}
	nt.Records = make([]NameRecord, 0, nt.Count)
	for i := 0; i < int(nt.Count); i++ {
		at := offset + uint32(r.Pos())
		rec, err := parseNameRecord(r)
		if err != nil {
			return NameTable{}, ec.wrap(err, tag, "NameRecord", at)
		}
		raw, err := b.view(int(nt.StorageOffset)+int(rec.StringOffset), int(rec.Length))
		if err != nil {
			return NameTable{}, ec.wrap(fmt.Errorf("record %d: %w", i, err), tag, "NameRecord", at)
		}
		if conf.macNames && rec.PlatformID == PlatformMacintosh {
			rec.Content, err = decodeMacintosh(rec.EncodingID, raw)
		} else {
			rec.Content, err = decodeUTF16BE(raw)
		}
		if err != nil {
			return NameTable{}, ec.wrap(err, tag, "NameRecord", at)
		}
		nt.Records = append(nt.Records, rec)
	}
	if nt.Version == 0 {
		return nt, nil
	}
	var langTagCount uint16
	if langTagCount, err = r.u16(); err != nil {
		return NameTable{}, ec.wrap(err, tag, "LangTagCount", offset+uint32(r.Pos()))
	}
	tracer().Debugf("name table has %d language-tag records", langTagCount)
	if need := r.Pos() + langTagRecordSize*int(langTagCount); need > len(b) {
		return NameTable{}, ec.addError(tag, "LangTagRecord",
			fmt.Sprintf("%d language-tag records need %d bytes, table has %d", langTagCount, need, size),
			ErrMalformedInput, offset+uint32(r.Pos()))
	}
	langTags := make([]LangTagRecord, 0, langTagCount)
	for i := 0; i < int(langTagCount); i++ {
		at := offset + uint32(r.Pos())
		ltr, err := parseLangTagRecord(r)
		if err != nil {
			return NameTable{}, ec.wrap(err, tag, "LangTagRecord", at)
		}
		raw, err := b.view(int(nt.StorageOffset)+int(ltr.LangTagOffset), int(ltr.Length))
		if err != nil {
			return NameTable{}, ec.wrap(err, tag, "LangTagRecord", at)
		}
		if ltr.Content, err = decodeUTF16BE(raw); err != nil {
			return NameTable{}, ec.wrap(err, tag, "LangTagRecord", at)
		}
		langTags = append(langTags, ltr)
	}
	nt.LangTags = Some(langTags)
	return nt, nil
}

func parseNameRecord(r *reader) (NameRecord, error) {
	var fields [6]uint16
	for i := range fields {
		n, err := r.u16()
		if err != nil {
			return NameRecord{}, err
		}
		fields[i] = n
	}
	return NameRecord{
		PlatformID:   PlatformID(fields[0]),
		EncodingID:   EncodingID(fields[1]),
		LanguageID:   fields[2],
		NameID:       sfnt.NameID(fields[3]),
		Length:       fields[4],
		StringOffset: fields[5],
	}, nil
}

func parseLangTagRecord(r *reader) (ltr LangTagRecord, err error) {
	if ltr.Length, err = r.u16(); err != nil {
		return
	}
	ltr.LangTagOffset, err = r.offset16()
	return
}

// --- String decoding -------------------------------------------------------

// decodeUTF16BE decodes UTF-16BE bytes. Odd byte counts and unpaired
// surrogates are rejected with ErrInvalidEncoding; the decoder of x/text
// would silently replace them.
func decodeUTF16BE(str []byte) (string, error) {
	if len(str)%2 != 0 {
		return "", fmt.Errorf("%w: UTF-16 string of odd length %d", ErrInvalidEncoding, len(str))
	}
	for i := 0; i < len(str); i += 2 {
		c := u16(str[i:])
		switch {
		case c >= 0xD800 && c < 0xDC00: // high surrogate, needs a low one next
			if i+4 > len(str) {
				return "", fmt.Errorf("%w: unpaired high surrogate at byte %d", ErrInvalidEncoding, i)
			}
			if lo := u16(str[i+2:]); lo < 0xDC00 || lo > 0xDFFF {
				return "", fmt.Errorf("%w: unpaired high surrogate at byte %d", ErrInvalidEncoding, i)
			}
			i += 2
		case c >= 0xDC00 && c <= 0xDFFF:
			return "", fmt.Errorf("%w: unpaired low surrogate at byte %d", ErrInvalidEncoding, i)
		}
	}
	enc := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	s, err := enc.NewDecoder().Bytes(str)
	if err != nil {
		return "", fmt.Errorf("%w: decoding UTF-16 error: %v", ErrInvalidEncoding, err)
	}
	return string(s), nil
}

// Legacy encodings of the Macintosh platform, by encoding ID. Scripts not
// listed here are decoded as Mac OS Roman.
var macEncodings = map[EncodingID]encoding.Encoding{
	0:  charmap.Macintosh,
	1:  japanese.ShiftJIS,
	2:  traditionalchinese.Big5,
	3:  korean.EUCKR,
	7:  charmap.MacintoshCyrillic,
	25: simplifiedchinese.GBK,
}

func decodeMacintosh(eid EncodingID, str []byte) (string, error) {
	enc, ok := macEncodings[eid]
	if !ok {
		tracer().Debugf("no decoder for Macintosh encoding %d, using Mac OS Roman", eid)
		enc = charmap.Macintosh
	}
	s, err := enc.NewDecoder().Bytes(str)
	if err != nil {
		return "", fmt.Errorf("%w: decoding Macintosh encoding %d: %v", ErrInvalidEncoding, eid, err)
	}
	return string(s), nil
}
