package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "dir", "directory":
		pterm.Info.Println("Table Directory")
		pterm.Println(`
	The table directory starts the font file. A 12-byte header is followed by
	one 16-byte record per table:
	+-----+----------+--------+--------+
	| Tag | Checksum | Offset | Length |
	+-----+----------+--------+--------+
	Offsets are relative to the start of the file. Only tables 'head', 'name'
	and 'cmap' are decoded.
	`)
	case "name", "names":
		pterm.Info.Println("Naming Table")
		pterm.Println(`
	The naming table consists of name records, each pointing into a string storage:
	+----------+----------+----------+---------+--------+--------+
	| Platform | Encoding | Language | Name ID | Length | Offset |
	+----------+----------+----------+---------+--------+--------+
	Version 1 tables add language-tag records for language IDs from 0x8000.
	'name:<id>' prints the records for a single name ID, e.g. 'name:1' for
	the family name.
	`)
	case "cmap":
		pterm.Info.Println("Character to Glyph Index Mapping")
		pterm.Println(`
	The cmap table consists of encoding records, each linking a platform and
	encoding to a subtable:
	+----------+----------+-----------------+
	| Platform | Encoding | Subtable Offset |
	+----------+----------+-----------------+
	Encoding records may share subtables. Subtables are shown with their format.
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	dir         print the table directory
	head        print the font header
	name[:id]   print the naming table, or records for one name ID
	cmap        print the cmap encoding records
	warnings    print warnings collected while decoding
	sfnt        compare with golang.org/x/image/font/sfnt
	help[:cmd]  print help, e.g. 'help:name'
	quit        leave
	`)
	}
}
