package ot

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Code comment often will cite passage from the
// OpenType specification version 1.8.4;
// see https://docs.microsoft.com/en-us/typography/opentype/spec/.

// ---------------------------------------------------------------------------

// Parse decodes an OpenType font from a byte slice.
//
// Parse reads the table directory, checks every table record against the size
// of font, and decodes each table whose tag is 'head', 'name' or 'cmap'. Tables
// with other tags are ignored. If a tag occurs more than once, the last table
// carrying it wins.
//
// The first error encountered, in directory order, is returned and no Font is
// produced. Returned errors are of type FontError and wrap one of ErrMalformedInput,
// ErrInvalidOffset, ErrInvalidEncoding or ErrUnrecognizedVariant.
//
// The Font returned does not reference font.
func Parse(font []byte, opts ...ParseOption) (*Font, error) {
	conf := configure(opts)
	ec := &errorCollector{}
	src := binarySegm(font)
	td, err := parseTableDirectory(src, ec)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("sfnt version = %x, %d tables", td.SfntVersion, td.NumTables)
	otf := &Font{Directory: td}

	jobs := make([]decodeJob, 0, 3)
	for _, rec := range td.Records {
		end, err := rec.End()
		if err != nil || end > uint32(len(src)) {
			return nil, ec.addError(rec.Tag, "Bounds",
				fmt.Sprintf("bounds [%d:+%d] exceed font size %d", rec.Offset, rec.Length, len(src)),
				ErrInvalidOffset, rec.Offset)
		}
		seg := src[rec.Offset:end]
		if conf.checksums {
			verifyChecksum(rec, seg, ec)
		}
		kind := KindOf(rec.Tag)
		if kind == KindIgnored {
			tracer().Infof("font contains table (%s), will not be interpreted", rec.Tag)
			continue
		}
		jobs = append(jobs, decodeJob{rec: rec, kind: kind, seg: seg})
	}

	results := make([]decodeResult, len(jobs))
	if conf.concurrent {
		var g errgroup.Group
		for i := range jobs {
			g.Go(func() error {
				results[i] = jobs[i].run(conf)
				return results[i].err
			})
		}
		if err := g.Wait(); err != nil {
			tracer().Debugf("concurrent decoding failed: %v", err)
		}
	} else {
		for i := range jobs {
			if results[i] = jobs[i].run(conf); results[i].err != nil {
				break
			}
		}
	}

	// Collect in directory order, so the outcome does not depend on scheduling.
	seen := make(map[TableKind]bool)
	for i, job := range jobs {
		res := results[i]
		ec.merge(res.ec)
		if res.err != nil {
			tracer().Errorf("decoding table %s: %v", job.rec.Tag, res.err)
			return nil, res.err
		}
		if seen[job.kind] {
			ec.addWarning(job.rec.Tag, "duplicate table record, earlier table replaced", job.rec.Offset)
		}
		seen[job.kind] = true
		switch t := res.table.(type) {
		case HeadTable:
			otf.Head = Some(t)
		case NameTable:
			otf.Name = Some(t)
		case CMapTable:
			otf.CMap = Some(t)
		}
	}
	otf.parseWarnings = ec.warnings
	return otf, nil
}

// tableDecoder decodes the segment of one table.
type tableDecoder func(rec TableRecord, b binarySegm, conf parseConfig, ec *errorCollector) (any, error)

var decoders = map[TableKind]tableDecoder{
	KindHead: func(rec TableRecord, b binarySegm, _ parseConfig, ec *errorCollector) (any, error) {
		return parseHead(rec.Tag, b, rec.Offset, rec.Length, ec)
	},
	KindName: func(rec TableRecord, b binarySegm, conf parseConfig, ec *errorCollector) (any, error) {
		return parseName(rec.Tag, b, rec.Offset, rec.Length, conf, ec)
	},
	KindCMap: func(rec TableRecord, b binarySegm, _ parseConfig, ec *errorCollector) (any, error) {
		return parseCMap(rec.Tag, b, rec.Offset, rec.Length, ec)
	},
}

type decodeJob struct {
	rec  TableRecord
	kind TableKind
	seg  binarySegm
}

type decodeResult struct {
	table any
	ec    *errorCollector
	err   error
}

// run decodes a job's table with a private error collector, so jobs may run
// in parallel.
func (job decodeJob) run(conf parseConfig) decodeResult {
	res := decodeResult{ec: &errorCollector{}}
	res.table, res.err = decoders[job.kind](job.rec, job.seg, conf, res.ec)
	return res
}

func verifyChecksum(rec TableRecord, seg binarySegm, ec *errorCollector) {
	var sum uint32
	if rec.Tag == T("head") {
		sum = headChecksum(seg)
	} else {
		sum = CalcTableChecksum(seg)
	}
	if sum != rec.Checksum {
		tracer().Infof("table %s: checksum %x, record says %x", rec.Tag, sum, rec.Checksum)
		ec.addWarning(rec.Tag, fmt.Sprintf("checksum mismatch: computed 0x%08x, recorded 0x%08x",
			sum, rec.Checksum), rec.Offset)
	}
}
