package otquery

import (
	"encoding/binary"
	"testing"
	"unicode/utf16"

	"github.com/npillmayer/otfinfo/ot"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
	"golang.org/x/image/font/sfnt"
)

// --- Test Suite Preparation ------------------------------------------------

type InfoTestEnviron struct {
	suite.Suite
	otf *ot.Font
}

// listen for 'go test' command --> run test methods
func TestInfoFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otfinfo.query")
	defer teardown()
	suite.Run(t, new(InfoTestEnviron))
}

// run once, before test suite methods
func (env *InfoTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("font.opentype").SetTraceLevel(tracing.LevelError)
	otf, err := ot.Parse(makeTestFont())
	env.Require().NoError(err)
	env.otf = otf
}

// run once, after test suite methods
func (env *InfoTestEnviron) TearDownSuite() {
	env.T().Log("Tearing down test suite")
}

// --- Tests -----------------------------------------------------------------

func (env *InfoTestEnviron) TestFontTypeInfo() {
	env.Equal("TrueType", FontType(env.otf), "expected font type of test font to be TrueType")
	env.Equal("", FontType(nil))
}

func (env *InfoTestEnviron) TestGeneralInfo() {
	info := NameInfo(env.otf)
	env.T().Logf("info = %v", info)
	fam, ok := info["family"]
	env.Require().True(ok, "font familiy identifier not found in font info")
	env.Equal("Otfinfo Sans", fam, "expected font family name 'Otfinfo Sans'")
	env.Equal("Bold", info["subfamily"])
	_, ok = info["license"]
	env.False(ok)
}

func (env *InfoTestEnviron) TestFamilyName() {
	fam, ok := FamilyName(env.otf)
	env.True(ok)
	env.Equal("Otfinfo Sans", fam)
	_, ok = FamilyName(&ot.Font{})
	env.False(ok)
}

func (env *InfoTestEnviron) TestNamesRange() {
	var ids []sfnt.NameID
	for id, s := range NamesRange(env.otf) {
		env.NotEmpty(s)
		ids = append(ids, id)
	}
	// the Macintosh record is skipped
	env.Equal([]sfnt.NameID{sfnt.NameIDFamily, sfnt.NameIDSubfamily}, ids)
	n := 0
	for range NamesRange(env.otf) {
		n++
		break
	}
	env.Equal(1, n, "expected iteration to stop on break")
}

func (env *InfoTestEnviron) TestDescriptions() {
	env.Equal("Windows", PlatformName(ot.PlatformWindows))
	env.Equal("ISO [deprecated]", PlatformName(ot.PlatformISO))
	env.Equal("error platform id", PlatformName(7))
	env.Equal("Unicode BMP", EncodingName(ot.PlatformWindows, 1))
	env.Equal("Unicode full repertoire", EncodingName(ot.PlatformWindows, 10))
	env.Equal("Uninterpreted", EncodingName(ot.PlatformMacintosh, 32))
	env.Equal("error encoding id", EncodingName(ot.PlatformMacintosh, 33))
	env.Equal("error platform id", EncodingName(ot.PlatformCustom, 0))
	env.Equal("English(en-US)", LanguageName(ot.PlatformWindows, 0x0409))
	env.Equal("Armenian", LanguageName(ot.PlatformMacintosh, 51))
	env.Equal("None", LanguageName(ot.PlatformUnicode, 0))
	env.Equal("error language id", LanguageName(ot.PlatformWindows, 0x0001))
	env.Equal("Font Family name", NameIDName(sfnt.NameIDFamily))
	env.Equal("Variations PostScript Name Prefix", NameIDName(25))
	env.Equal("reserved for future standard names", NameIDName(26))
	env.Equal("reserved for font-specific names", NameIDName(256))
	env.Equal("error name id", NameIDName(40000))
}

func (env *InfoTestEnviron) TestRows() {
	dir := DirectoryRows(env.otf)
	env.Len(dir, 5)
	env.Equal([]string{"Tag", "Offset", "Length", "Checksum", "Decoded"}, dir[0])
	env.Equal("OS/2", dir[1][0])
	env.Equal("no", dir[1][4])
	env.Equal("yes", dir[3][4])
	//
	head := HeadRows(env.otf.Head.MustUnwrap())
	env.Equal([]string{"Units per em", "1000"}, head[6])
	env.Equal("1904-01-01T01:00:00Z", head[7][1])
	//
	names := NameRows(env.otf.Name.MustUnwrap())
	env.Len(names, 4)
	env.Equal("Windows(3)", names[1][0])
	env.Equal("English(en-US)(1033)", names[1][2])
	env.Equal("Font Family name(1)", names[1][3])
	env.Equal("Otfinfo Sans", names[1][4])
	//
	cmap := CMapRows(env.otf.CMap.MustUnwrap())
	env.Len(cmap, 2)
	env.Equal("Segment mapping to delta values(4)", cmap[1][3])
	//
	env.Len(WarningRows(env.otf), 1, "expected header row only")
}

// --- Helpers ---------------------------------------------------------------

func putU16(b []byte, at int, v uint16) {
	binary.BigEndian.PutUint16(b[at:at+2], v)
}

func putU32(b []byte, at int, v uint32) {
	binary.BigEndian.PutUint32(b[at:at+4], v)
}

// makeTestFont assembles a font with tables 'OS/2' (empty, not decoded),
// 'cmap', 'head' and 'name'. Checksums are not set.
func makeTestFont() []byte {
	type rec struct {
		pid, eid, lid, nid uint16
		str                []byte
	}
	utf16be := func(s string) []byte {
		units := utf16.Encode([]rune(s))
		b := make([]byte, 2*len(units))
		for i, u := range units {
			putU16(b, 2*i, u)
		}
		return b
	}
	records := []rec{
		{3, 1, 0x0409, 1, utf16be("Otfinfo Sans")},
		{3, 1, 0x0409, 2, utf16be("Bold")},
		{1, 0, 0, 1, []byte("Mac Sans")},
	}
	name := make([]byte, 6+12*len(records))
	putU16(name, 2, uint16(len(records)))
	putU16(name, 4, uint16(len(name)))
	var storage []byte
	for i, r := range records {
		at := 6 + 12*i
		putU16(name, at, r.pid)
		putU16(name, at+2, r.eid)
		putU16(name, at+4, r.lid)
		putU16(name, at+6, r.nid)
		putU16(name, at+8, uint16(len(r.str)))
		putU16(name, at+10, uint16(len(storage)))
		storage = append(storage, r.str...)
	}
	name = append(name, storage...)
	//
	head := make([]byte, 54)
	putU16(head, 0, 1)
	putU32(head, 12, 0x5F0F3CF5)
	putU16(head, 18, 1000)
	binary.BigEndian.PutUint64(head[20:28], 3600)
	//
	cmap := make([]byte, 4+8+4)
	putU16(cmap, 2, 1)
	putU16(cmap, 4, 3)
	putU16(cmap, 6, 1)
	putU32(cmap, 8, 12)
	putU16(cmap, 12, 4)
	//
	tables := []struct {
		tag  string
		data []byte
	}{{"OS/2", make([]byte, 4)}, {"cmap", cmap}, {"head", head}, {"name", name}}
	offset := 12 + 16*len(tables)
	font := make([]byte, offset)
	putU32(font, 0, 0x00010000)
	putU16(font, 4, uint16(len(tables)))
	for i, t := range tables {
		at := 12 + 16*i
		copy(font[at:], t.tag)
		putU32(font, at+8, uint32(len(font)))
		putU32(font, at+12, uint32(len(t.data)))
		font = append(font, t.data...)
		for len(font)%4 != 0 {
			font = append(font, 0)
		}
	}
	return font
}
