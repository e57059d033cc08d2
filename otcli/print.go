package main

import (
	"fmt"

	"github.com/npillmayer/otfinfo/internal/fontload"
	"github.com/npillmayer/otfinfo/ot"
	"github.com/npillmayer/otfinfo/otquery"
	"github.com/pterm/pterm"
	"golang.org/x/image/font/sfnt"
)

// dump prints everything we know about the font.
func (intp *Intp) dump() {
	printDirectory(intp.font)
	if h, ok := intp.font.Head.Unwrap(); ok {
		printHead(h)
	}
	if nt, ok := intp.font.Name.Unwrap(); ok {
		printNames(nt)
	}
	if cm, ok := intp.font.CMap.Unwrap(); ok {
		printCMap(cm)
	}
	if len(intp.font.Warnings()) > 0 {
		printWarnings(intp.font)
	}
}

func printDirectory(otf *ot.Font) {
	td := otf.Directory
	pterm.DefaultSection.Println("Table Directory")
	pterm.Printf("%s font, sfnt version 0x%08x, %d tables\n", otquery.FontType(otf),
		td.SfntVersion, td.NumTables)
	pterm.Printf("search range %d, entry selector %d, range shift %d\n",
		td.SearchRange, td.EntrySelector, td.RangeShift)
	render(otquery.DirectoryRows(otf))
}

func printHead(h ot.HeadTable) {
	pterm.DefaultSection.Println("Font Header 'head'")
	render(otquery.HeadRows(h))
}

func printNames(nt ot.NameTable) {
	pterm.DefaultSection.Println("Naming Table 'name'")
	pterm.Printf("version %d, %d records, storage at offset %d\n", nt.Version, nt.Count, nt.StorageOffset)
	render(otquery.NameRows(nt))
	if tags, ok := nt.LangTags.Unwrap(); ok {
		pterm.Printf("%d language-tag records\n", len(tags))
		data := [][]string{{"Index", "Language ID", "Tag"}}
		for i, lt := range tags {
			data = append(data, []string{
				fmt.Sprintf("%d", i),
				fmt.Sprintf("0x%04X", 0x8000+i),
				lt.Content,
			})
		}
		render(data)
	}
}

func filterNames(nt ot.NameTable, id sfnt.NameID) ot.NameTable {
	records := make([]ot.NameRecord, 0, 4)
	for _, rec := range nt.Records {
		if rec.NameID == id {
			records = append(records, rec)
		}
	}
	nt.Records = records
	return nt
}

func printCMap(cm ot.CMapTable) {
	pterm.DefaultSection.Println("Character Map 'cmap'")
	pterm.Printf("version %d, %d encoding records, %d distinct subtables\n",
		cm.Version, cm.NumTables, len(cm.Subtables()))
	render(otquery.CMapRows(cm))
}

func printWarnings(otf *ot.Font) {
	rows := otquery.WarningRows(otf)
	if len(rows) == 1 {
		pterm.Info.Println("no warnings")
		return
	}
	pterm.Warning.Printf("%d warnings\n", len(rows)-1)
	render(rows)
}

// printSFNT prints what golang.org/x/image/font/sfnt finds in the font, next to
// our own results.
func printSFNT(otf *ot.Font, src *fontload.ScalableFont) {
	pterm.DefaultSection.Println("x/image/font/sfnt")
	fullname, err := src.FullName()
	if err != nil {
		pterm.Error.Printf("x/image cannot read font: %v\n", err)
		return
	}
	data := [][]string{{"Property", "otfinfo", "x/image"}}
	own := "–"
	if nt, ok := otf.Name.Unwrap(); ok {
		if s, ok := nt.Lookup(sfnt.NameIDFull); ok {
			own = s
		}
	}
	data = append(data, []string{"Full name", own, fullname})
	if n, err := src.NumGlyphs(); err == nil {
		data = append(data, []string{"Glyphs", "–", fmt.Sprintf("%d", n)})
	}
	if sf, err := src.SFNT(); err == nil {
		upem := "–"
		if h, ok := otf.Head.Unwrap(); ok {
			upem = fmt.Sprintf("%d", h.UnitsPerEm)
		}
		data = append(data, []string{"Units per em", upem, fmt.Sprintf("%d", sf.UnitsPerEm())})
	}
	render(data)
}

func render(data [][]string) {
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		tracer().Errorf("rendering table: %v", err)
	}
}
