package shape

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadGroupsByShapeThenSubPath(t *testing.T) {
	c, err := Read(strings.NewReader("0,0,1,1\n0,0,2,2\n1,0,5,5\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := Collection{
		Shape{SubPath{pt(1, 1), pt(2, 2)}},
		Shape{SubPath{pt(5, 5)}},
	}
	diff(t, want, c)
}

func TestReadOrdersGroupsByAscendingID(t *testing.T) {
	// Shape ids 2 and 0 arrive out of order, as do sub-path ids 1 and 0.
	in := "2,0,9,9\n0,1,3,3\n0,0,1,1\n0,1,4,4\n"
	c, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := Collection{
		Shape{
			SubPath{pt(1, 1)},
			SubPath{pt(3, 3), pt(4, 4)},
		},
		Shape{SubPath{pt(9, 9)}},
	}
	diff(t, want, c)
}

func TestReadCollectsNonContiguousGroups(t *testing.T) {
	// Rows of shape 0 are split around a shape 1 row; grouping is by id
	// value, so they still land in one sub-path in record order.
	in := "0,0,0,0\n1,0,9,9\n0,0,1,1\n"
	c, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := Collection{
		Shape{SubPath{pt(0, 0), pt(1, 1)}},
		Shape{SubPath{pt(9, 9)}},
	}
	diff(t, want, c)
}

func TestReadMergesEquivalentFloatIDs(t *testing.T) {
	// "0" and "0.0" are the same id value.
	c, err := Read(strings.NewReader("0,0,1,1\n0.0,0,2,2\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := Collection{
		Shape{SubPath{pt(1, 1), pt(2, 2)}},
	}
	diff(t, want, c)
}

func TestReadEmptyInput(t *testing.T) {
	_, err := Read(strings.NewReader(""))
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("got %v, want ErrEmptyInput", err)
	}
}

func TestReadMalformedRecords(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		record int
	}{
		{"non-numeric field", "0,0,1,x\n", 1},
		{"too few fields", "0,0,1\n", 1},
		{"too many fields", "0,0,1,2,3\n", 1},
		{"later record", "0,0,1,1\n0,0,2,2\n0,0,bad,3\n", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.in))
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("got %v, want *ParseError", err)
			}
			if pe.Record != tt.record {
				t.Errorf("record = %d, want %d", pe.Record, tt.record)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("testdata/definitely-not-there.csv")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("got %v, want fs.ErrNotExist", err)
	}
}

func TestLoadParseErrorKeepsRecordNumber(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	if err := os.WriteFile(path, []byte("0,0,1,1\nnope\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("got %v, want *ParseError", err)
	}
	if pe.Record != 2 {
		t.Errorf("record = %d, want 2", pe.Record)
	}
}
