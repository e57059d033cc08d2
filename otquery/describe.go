package otquery

import (
	"github.com/npillmayer/otfinfo/ot"
	"golang.org/x/image/font/sfnt"
)

// PlatformName returns a description of a platform ID.
func PlatformName(pid ot.PlatformID) string {
	switch pid {
	case ot.PlatformUnicode:
		return "Unicode"
	case ot.PlatformMacintosh:
		return "Macintosh"
	case ot.PlatformISO:
		return "ISO [deprecated]"
	case ot.PlatformWindows:
		return "Windows"
	case ot.PlatformCustom:
		return "Custom"
	}
	return "error platform id"
}

var unicodeEncodings = []string{
	"Unicode 1.0 semantics—deprecated",
	"Unicode 1.1 semantics—deprecated",
	"ISO/IEC 10646 semantics—deprecated",
	"Unicode 2.0 and onwards semantics, Unicode BMP only",
	"Unicode 2.0 and onwards semantics, Unicode full repertoire",
	"Unicode variation sequences—for use with subtable format 14",
	"Unicode full repertoire—for use with subtable format 13",
}

// Macintosh script manager codes
var macintoshEncodings = []string{
	"Roman", "Japanese", "Chinese (Traditional)", "Korean", "Arabic", "Hebrew",
	"Greek", "Russian", "RSymbol", "Devanagari", "Gurmukhi", "Gujarati", "Odia",
	"Bangla", "Tamil", "Telugu", "Kannada", "Malayalam", "Sinhalese", "Burmese",
	"Khmer", "Thai", "Laotian", "Georgian", "Armenian", "Chinese (Simplified)",
	"Tibetan", "Mongolian", "Geez", "Slavic", "Vietnamese", "Sindhi", "Uninterpreted",
}

var windowsEncodings = []string{
	"Symbol", "Unicode BMP", "ShiftJIS", "PRC", "Big5", "Wansung", "Johab",
	"Reserved", "Reserved", "Reserved", "Unicode full repertoire",
}

// EncodingName returns a description of an encoding ID. Encoding IDs are
// platform specific. Platforms ISO and Custom have no descriptions.
func EncodingName(pid ot.PlatformID, eid ot.EncodingID) string {
	var names []string
	switch pid {
	case ot.PlatformUnicode:
		names = unicodeEncodings
	case ot.PlatformMacintosh:
		names = macintoshEncodings
	case ot.PlatformWindows:
		names = windowsEncodings
	default:
		return "error platform id"
	}
	if int(eid) < len(names) {
		return names[eid]
	}
	return "error encoding id"
}

var macintoshLanguages = map[uint16]string{
	0:  "English",
	1:  "French",
	2:  "German",
	3:  "Italian",
	4:  "Dutch",
	5:  "Swedish",
	6:  "Spanish",
	11: "Japanese",
	19: "Chinese (traditional)",
	23: "Korean",
	32: "Russian",
	33: "Chinese (simplified)",
	51: "Armenian",
}

var windowsLanguages = map[uint16]string{
	0x0009: "English(en)",
	0x0409: "English(en-US)",
	0x0809: "English(en-GB)",
	0x0407: "German(de-DE)",
	0x040C: "French(fr-FR)",
	0x0410: "Italian(it-IT)",
	0x0C0A: "Spanish(es-ES)",
	0x0411: "Japanese(ja-JP)",
	0x0412: "Korean(ko-KR)",
	0x0419: "Russian(ru-RU)",
	0x0004: "Chinese (Simplified)(zh-Hans)",
	0x7804: "Chinese (Simplified)(zh)",
	0x0804: "Chinese (Simplified)(zh-CN)",
	0x1004: "Chinese (Simplified)(zh-SG)",
	0x7C04: "Chinese (Traditional)(zh-Hant)",
	0x0C04: "Chinese (Traditional)(zh-HK)",
	0x1404: "Chinese (Traditional)(zh-MO)",
	0x0404: "Chinese (Traditional)(zh-TW)",
}

// LanguageName returns a description of a name record's language ID.
// Unicode platform records carry no language. Only a selection of Macintosh
// and Windows language IDs is known; IDs from 0x8000 refer to language-tag
// records, see ot.NameTable.LanguageTag.
func LanguageName(pid ot.PlatformID, lid uint16) string {
	var names map[uint16]string
	switch pid {
	case ot.PlatformUnicode:
		return "None"
	case ot.PlatformMacintosh:
		names = macintoshLanguages
	case ot.PlatformWindows:
		names = windowsLanguages
	default:
		return "error platform id"
	}
	if lid >= 0x8000 {
		return "language-tag record"
	}
	if name, ok := names[lid]; ok {
		return name
	}
	return "error language id"
}

var nameIDs = []string{
	"Copyright notice",
	"Font Family name",
	"Font Subfamily name",
	"Unique font identifier",
	"Full font name",
	"Version string",
	"PostScript name",
	"Trademark",
	"Manufacturer Name",
	"Designer",
	"Description",
	"URL of Vendor",
	"URL of Designer",
	"License Description",
	"License Info URL",
	"Reserved",
	"Typographic Family name",
	"Typographic Subfamily name",
	"Compatible Full (Macintosh only)",
	"Sample text",
	"PostScript CID findfont name",
	"WWS Family Name",
	"WWS Subfamily Name",
	"Light Background Palette",
	"Dark Background Palette",
	"Variations PostScript Name Prefix",
}

// NameIDName returns a description of a name ID.
func NameIDName(id sfnt.NameID) string {
	switch {
	case int(id) < len(nameIDs):
		return nameIDs[id]
	case id <= 255:
		return "reserved for future standard names"
	case id <= 32767:
		return "reserved for font-specific names"
	}
	return "error name id"
}

// FontType returns a description of the outline flavour of a font, as
// indicated by its sfnt version.
func FontType(otf *ot.Font) string {
	if otf == nil {
		return ""
	}
	switch otf.Directory.SfntVersion {
	case ot.SfntVersionTrueType, ot.SfntVersionApple:
		return "TrueType"
	case ot.SfntVersionCFF:
		return "OpenType (CFF)"
	case ot.SfntVersionType1:
		return "PostScript Type 1"
	}
	return "unknown"
}
