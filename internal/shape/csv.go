package shape

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/jbeda/geom"
)

// ErrEmptyInput reports a fragment table with no records at all.
var ErrEmptyInput = errors.New("csv: no records")

// ParseError reports a malformed record in a fragment table.
type ParseError struct {
	Record int // 1-based record number
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("csv: record %d: %v", e.Record, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// row is one parsed record of a fragment table.
type row struct {
	shapeID   float64
	subPathID float64
	pt        geom.Coord
}

// Load reads a fragment table from path.
func Load(path string) (Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fragment table: %w", err)
	}
	defer f.Close()
	c, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Read parses fragment records and groups them into a Collection.
//
// Each record is "shapeId,subPathId,x,y" with no header row and all four
// fields numeric. Shapes are ordered by ascending distinct shapeId,
// sub-paths within a shape by ascending distinct subPathId, and points
// keep record order within their group. Grouping is by id value, so the
// records of one group do not have to be contiguous in the input.
func Read(r io.Reader) (Collection, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	var rows []row
	for n := 1; ; n++ {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ParseError{Record: n, Err: err}
		}
		if len(fields) != 4 {
			return nil, &ParseError{Record: n, Err: fmt.Errorf("want 4 fields, got %d", len(fields))}
		}
		var vals [4]float64
		for i, field := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, &ParseError{Record: n, Err: fmt.Errorf("field %d: %q is not a number", i+1, field)}
			}
			vals[i] = v
		}
		rows = append(rows, row{
			shapeID:   vals[0],
			subPathID: vals[1],
			pt:        geom.Coord{X: vals[2], Y: vals[3]},
		})
	}
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}
	return group(rows), nil
}

// group assembles rows into the Shape/SubPath hierarchy.
func group(rows []row) Collection {
	shapeIDs := []float64{}
	seen := map[float64]bool{}
	for _, r := range rows {
		if !seen[r.shapeID] {
			seen[r.shapeID] = true
			shapeIDs = append(shapeIDs, r.shapeID)
		}
	}
	sort.Float64s(shapeIDs)

	c := make(Collection, 0, len(shapeIDs))
	for _, sid := range shapeIDs {
		subIDs := []float64{}
		seenSub := map[float64]bool{}
		for _, r := range rows {
			if r.shapeID != sid {
				continue
			}
			if !seenSub[r.subPathID] {
				seenSub[r.subPathID] = true
				subIDs = append(subIDs, r.subPathID)
			}
		}
		sort.Float64s(subIDs)

		sh := make(Shape, 0, len(subIDs))
		for _, pid := range subIDs {
			var sp SubPath
			for _, r := range rows {
				if r.shapeID == sid && r.subPathID == pid {
					sp = append(sp, r.pt)
				}
			}
			sh = append(sh, sp)
		}
		c = append(c, sh)
	}
	return c
}
