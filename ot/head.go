package ot

import "fmt"

const (
	headTableSize   = 54
	headMagicNumber = 0x5F0F3CF5
)

// HeadTable is the font header table 'head'. It gives global information
// about the font. All fields are read in on-disk order.
type HeadTable struct {
	MajorVersion       uint16
	MinorVersion       uint16
	FontRevision       float64 // 16.16 fixed-point, set by font manufacturer
	CheckSumAdjustment uint32
	MagicNumber        uint32 // 0x5F0F3CF5
	Flags              uint16
	UnitsPerEm         uint16
	Created            LongDateTime
	Modified           LongDateTime
	XMin, YMin         int16 // for all glyph bounding boxes, in font units
	XMax, YMax         int16
	MacStyle           uint16
	LowestRecPPEM      uint16 // smallest readable size in pixels
	FontDirectionHint  int16  // deprecated, set to 2
	IndexToLocFormat   int16  // 0 for short offsets (Offset16), 1 for long (Offset32)
	GlyphDataFormat    int16  // 0 for current format
}

// MagicOK reports whether the table carries the expected magic number.
func (h HeadTable) MagicOK() bool {
	return h.MagicNumber == headMagicNumber
}

// BoundingBox returns the union of all glyph bounding boxes.
func (h HeadTable) BoundingBox() (xmin, ymin, xmax, ymax int16) {
	return h.XMin, h.YMin, h.XMax, h.YMax
}

// parseHead is a plain sequential read of the 18 fields of table 'head'.
func parseHead(tag Tag, b binarySegm, offset, size uint32, ec *errorCollector) (HeadTable, error) {
	h := HeadTable{}
	if size < headTableSize {
		return h, ec.addError(tag, "Size",
			fmt.Sprintf("head table too small: %d bytes (need %d)", size, headTableSize),
			ErrMalformedInput, offset)
	}
	r := newReader(b)
	var err error
	u16s := func(dst ...*uint16) {
		for _, d := range dst {
			if err == nil {
				*d, err = r.u16()
			}
		}
	}
	i16s := func(dst ...*int16) {
		for _, d := range dst {
			if err == nil {
				*d, err = r.i16()
			}
		}
	}
	u16s(&h.MajorVersion, &h.MinorVersion)
	if err == nil {
		h.FontRevision, err = r.fixed()
	}
	if err == nil {
		h.CheckSumAdjustment, err = r.u32()
	}
	if err == nil {
		h.MagicNumber, err = r.u32()
	}
	u16s(&h.Flags, &h.UnitsPerEm)
	if err == nil {
		h.Created, err = r.longDateTime()
	}
	if err == nil {
		h.Modified, err = r.longDateTime()
	}
	i16s(&h.XMin, &h.YMin, &h.XMax, &h.YMax)
	u16s(&h.MacStyle, &h.LowestRecPPEM)
	i16s(&h.FontDirectionHint, &h.IndexToLocFormat, &h.GlyphDataFormat)
	if err != nil {
		return HeadTable{}, ec.wrap(err, tag, "Fields", offset+uint32(r.Pos()))
	}
	if !h.MagicOK() {
		tracer().Infof("head table has magic number %x", h.MagicNumber)
		ec.addWarning(tag, fmt.Sprintf("unexpected magic number 0x%08x", h.MagicNumber), offset+12)
	}
	tracer().Debugf("head: version %d.%d, %d units per em", h.MajorVersion, h.MinorVersion, h.UnitsPerEm)
	return h, nil
}
