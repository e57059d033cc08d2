package ot

// Font represents the decoded structure of an OpenType font: its table
// directory and the tables this package knows how to decode.
//
// A table is None if no table record in the directory carries its tag.
// All values are copied out of the font's binary data during Parse, so a Font
// does not depend on the input buffer after Parse returns.
type Font struct {
	Directory     TableDirectory
	Head          Option[HeadTable] // font header table 'head'
	Name          Option[NameTable] // naming table 'name'
	CMap          Option[CMapTable] // character to glyph index mapping table 'cmap'
	parseWarnings []FontWarning     // Warnings accumulated during parsing
}

// ParseOption guides and influences the parsing of the font.
type ParseOption int

const (
	// MacintoshNames decodes name strings of the Macintosh platform with their
	// legacy encoding (Mac OS Roman, Shift JIS, Big5, …) instead of UTF-16BE.
	MacintoshNames ParseOption = iota
	// DecodeConcurrently decodes the recognized tables in parallel. Results and
	// error reporting are identical to sequential decoding.
	DecodeConcurrently
	// VerifyChecksums compares each table's checksum with its table record and
	// reports mismatches as warnings.
	VerifyChecksums
)

type parseConfig struct {
	macNames   bool
	concurrent bool
	checksums  bool
}

func configure(opts []ParseOption) parseConfig {
	var conf parseConfig
	for _, opt := range opts {
		switch opt {
		case MacintoshNames:
			conf.macNames = true
		case DecodeConcurrently:
			conf.concurrent = true
		case VerifyChecksums:
			conf.checksums = true
		}
	}
	return conf
}

// HasTable reports whether the font's table directory contains a record for tag.
func (otf *Font) HasTable(tag Tag) bool {
	_, ok := otf.Directory.Record(tag)
	return ok
}

// TableTags returns the tags of all table records, in directory order.
func (otf *Font) TableTags() []Tag {
	tags := make([]Tag, 0, len(otf.Directory.Records))
	for _, rec := range otf.Directory.Records {
		tags = append(tags, rec.Tag)
	}
	return tags
}

// Warnings returns all warnings encountered during font parsing.
// Warnings indicate potential issues that are generally safe to ignore.
func (otf *Font) Warnings() []FontWarning {
	if otf.parseWarnings == nil {
		return []FontWarning{}
	}
	return otf.parseWarnings
}

// --- Tag -------------------------------------------------------------------

// OpenType defines Tag as:
// Array of four uint8s (length = 32 bits) used to identify a table, design-variation axis,
// script, language system, feature, or baseline.
//
// Tags are compared by exact value only.
type Tag uint32

// MakeTag creates a Tag from 4 bytes, e.g.,
// If b is shorter or longer, it will be silently extended or cut as appropriate
//
//	MakeTag([]byte("cmap"))
func MakeTag(b []byte) Tag {
	if b == nil {
		b = []byte{0, 0, 0, 0}
	} else if len(b) > 4 {
		b = b[:4]
	} else if len(b) < 4 {
		b = append([]byte{0, 0, 0, 0}[:4-len(b)], b...)
	}
	return Tag(u32(b))
}

// T returns a Tag from a (4-letter) string.
// If t is shorter or longer, it will be silently extended or cut as appropriate
func T(t string) Tag {
	t = (t + "    ")[:4]
	return Tag(u32([]byte(t)))
}

func (t Tag) String() string {
	bytes := []byte{
		byte(t >> 24 & 0xff),
		byte(t >> 16 & 0xff),
		byte(t >> 8 & 0xff),
		byte(t & 0xff),
	}
	return string(bytes)
}

// --- Table kinds -----------------------------------------------------------

// TableKind enumerates the tables this package decodes.
type TableKind int

const (
	KindIgnored TableKind = iota // table is kept in the directory, but not decoded
	KindHead                     // 'head'
	KindName                     // 'name'
	KindCMap                     // 'cmap'
)

var kindForTag = map[Tag]TableKind{
	T("head"): KindHead,
	T("name"): KindName,
	T("cmap"): KindCMap,
}

// KindOf returns the kind of table a tag names. Unknown tags map to KindIgnored.
func KindOf(tag Tag) TableKind {
	if k, ok := kindForTag[tag]; ok {
		return k
	}
	return KindIgnored
}

func (k TableKind) String() string {
	switch k {
	case KindHead:
		return "head"
	case KindName:
		return "name"
	case KindCMap:
		return "cmap"
	}
	return "ignored"
}
