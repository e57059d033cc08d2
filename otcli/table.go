package main

import (
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/image/font/sfnt"
)

var errNoTable = errors.New("font has no such table")

func dirOp(intp *Intp, op *Op) (error, bool) {
	printDirectory(intp.font)
	return nil, false
}

func headOp(intp *Intp, op *Op) (error, bool) {
	h, ok := intp.font.Head.Unwrap()
	if !ok {
		return fmt.Errorf("head: %w", errNoTable), false
	}
	printHead(h)
	return nil, false
}

// nameOp prints the naming table. With an argument, only records for the
// given name ID are printed.
func nameOp(intp *Intp, op *Op) (error, bool) {
	nt, ok := intp.font.Name.Unwrap()
	if !ok {
		return fmt.Errorf("name: %w", errNoTable), false
	}
	if op.arg == "" {
		printNames(nt)
		return nil, false
	}
	id, err := strconv.ParseUint(op.arg, 10, 16)
	if err != nil {
		return fmt.Errorf("name ID not numeric: %v", op.arg), false
	}
	tracer().Infof("name: looking for ID %d", id)
	printNames(filterNames(nt, sfnt.NameID(id)))
	return nil, false
}

func cmapOp(intp *Intp, op *Op) (error, bool) {
	cm, ok := intp.font.CMap.Unwrap()
	if !ok {
		return fmt.Errorf("cmap: %w", errNoTable), false
	}
	printCMap(cm)
	return nil, false
}

func warningsOp(intp *Intp, op *Op) (error, bool) {
	printWarnings(intp.font)
	return nil, false
}

// sfntOp compares with the view of golang.org/x/image/font/sfnt.
func sfntOp(intp *Intp, op *Op) (error, bool) {
	if intp.src == nil {
		return errors.New("no font loaded"), false
	}
	printSFNT(intp.font, intp.src)
	return nil, false
}
