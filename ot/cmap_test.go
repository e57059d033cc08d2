package ot

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCMapFormatString(t *testing.T) {
	tests := []struct {
		format CMapFormat
		label  string
	}{
		{0, "Byte encoding table"},
		{2, "High byte mapping through table"},
		{4, "Segment mapping to delta values"},
		{6, "Trimmed table mapping"},
		{8, "mixed 16-bit and 32-bit coverage"},
		{10, "Trimmed array"},
		{12, "Segmented coverage"},
		{13, "Many-to-one range mappings"},
		{14, "Unicode variation sequences"},
		{99, "error format"},
	}
	for _, tt := range tests {
		if s := tt.format.String(); s != tt.label {
			t.Errorf("format %d: expected label %q, have %q", tt.format, tt.label, s)
		}
		if tt.format.Known() != (tt.format != 99) {
			t.Errorf("format %d: Known() = %v", tt.format, tt.format.Known())
		}
	}
}

func TestParseCMap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	// three records, two of them sharing the format 4 subtable
	hdr := uint32(cmapHeaderSize + 3*cmapEncodingRecordSize)
	tail := append(cmapSubtableStub(4), cmapSubtableStub(12)...)
	b := cmapTable([]testEncoding{
		{pid: 0, eid: 3, offset: hdr},
		{pid: 3, eid: 1, offset: hdr},
		{pid: 3, eid: 10, offset: hdr + 8},
	}, tail)
	ec := &errorCollector{}
	cm, err := parseCMap(T("cmap"), b, 0, uint32(len(b)), ec)
	require.NoError(t, err)
	assert.Equal(t, uint16(0), cm.Version)
	assert.Equal(t, uint16(3), cm.NumTables)
	require.Len(t, cm.EncodingRecords, 3)
	assert.Equal(t, PlatformUnicode, cm.EncodingRecords[0].PlatformID)
	assert.Equal(t, EncodingUnicodeBMP, cm.EncodingRecords[0].EncodingID)
	assert.Equal(t, CMapFormatSegmentDelta, cm.EncodingRecords[0].Subtable.Format)
	assert.Equal(t, "Segment mapping to delta values", cm.EncodingRecords[1].Subtable.Format.String())
	if cm.EncodingRecords[0].Subtable != cm.EncodingRecords[1].Subtable {
		t.Errorf("expected records with equal offsets to share a subtable")
	}
	assert.Equal(t, CMapFormatSegmented, cm.EncodingRecords[2].Subtable.Format)
	subs := cm.Subtables()
	require.Len(t, subs, 2)
	assert.Equal(t, Offset32(hdr+8), subs[1].Offset)
	rec, ok := cm.Encoding(PlatformWindows, EncodingWindowsFull)
	assert.True(t, ok)
	assert.Equal(t, Offset32(hdr+8), rec.SubtableOffset)
	_, ok = cm.Encoding(PlatformMacintosh, EncodingMacintoshRoman)
	assert.False(t, ok)
	assert.False(t, ec.hasWarnings())
}

func TestParseCMapUnknownFormat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	b := cmapTable([]testEncoding{{pid: 3, eid: 1, offset: 12}}, cmapSubtableStub(99))
	ec := &errorCollector{}
	cm, err := parseCMap(T("cmap"), b, 0, uint32(len(b)), ec)
	require.NoError(t, err)
	assert.Equal(t, "error format", cm.EncodingRecords[0].Subtable.Format.String())
	require.Len(t, ec.warnings, 1)
	assert.True(t, strings.Contains(ec.warnings[0].Issue, ErrUnrecognizedVariant.Error()))
}

func TestParseCMapErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	b := cmapTable([]testEncoding{{pid: 3, eid: 1, offset: 500}}, cmapSubtableStub(4))
	_, err := parseCMap(T("cmap"), b, 0, uint32(len(b)), &errorCollector{})
	assert.ErrorIs(t, err, ErrInvalidOffset)
	// format field would straddle the end of the table
	b = cmapTable([]testEncoding{{pid: 3, eid: 1, offset: 12}}, []byte{0})
	_, err = parseCMap(T("cmap"), b, 0, uint32(len(b)), &errorCollector{})
	assert.ErrorIs(t, err, ErrInvalidOffset)
	//
	b = cmapTable([]testEncoding{{pid: 3, eid: 1, offset: 12}}, nil)
	putU16(b, 2, 4) // numTables
	_, err = parseCMap(T("cmap"), b, 0, uint32(len(b)), &errorCollector{})
	assert.ErrorIs(t, err, ErrMalformedInput)
	_, err = parseCMap(T("cmap"), b[:3], 0, 3, &errorCollector{})
	assert.ErrorIs(t, err, ErrMalformedInput)
}
