package store

import (
	"io"
	"path/filepath"
	"testing"

	shake "github.com/LukaButskhrikidze/proteinshake"
)

func sample(id, seq string) *shake.Protein {
	return &shake.Protein{
		ID:       id,
		Sequence: seq,
		Residue: shake.ResidueTable{
			Number: []int{0, 1},
			X:      []float64{0.5, 1.5},
			Y:      []float64{0.25, 1.25},
			Z:      []float64{-1, -2},
		},
		Atom: shake.AtomTable{
			Number: []int{0, 1, 2},
			Type:   []string{"N", "C", "O"},
			X:      []float64{1, 2, 3},
			Y:      []float64{1, 2, 3},
			Z:      []float64{1, 2, 3},
		},
	}
}

func roundtrip(t *testing.T, name string) {
	w, err := NewWriter(name)
	if err != nil {
		t.Fatal(err)
	}
	ids := []string{"1abc", "2xyz", "3foo"}
	for _, id := range ids {
		if err := w.Put(sample(id, "GAV")); err != nil {
			t.Fatal(err)
		}
	}
	if w.Len() != 3 {
		t.Errorf("writer counted %d proteins, want 3", w.Len())
	}
	w.Close()

	r, err := NewReader(name)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	for _, id := range ids {
		p, err := r.Next()
		if err != nil {
			t.Fatal(err)
		}
		if p.ID != id {
			t.Errorf("got ID %s, want %s", p.ID, id)
		}
		if p.Atom.Len() != 3 || p.Atom.Type[2] != "O" {
			t.Errorf("atom table did not survive the roundtrip: %+v", p.Atom)
		}
	}
	if _, err := r.Next(); err != io.EOF {
		t.Errorf("expected io.EOF at end of stream, got %v", err)
	}
}

func TestRoundtripPlain(t *testing.T) {
	roundtrip(t, filepath.Join(t.TempDir(), "proteins.jsonl"))
}

func TestRoundtripGzip(t *testing.T) {
	roundtrip(t, filepath.Join(t.TempDir(), "proteins.jsonl.gz"))
}

func TestRoundtripZstd(t *testing.T) {
	roundtrip(t, filepath.Join(t.TempDir(), "proteins.jsonl.zst"))
}

func TestAllWithLimit(t *testing.T) {
	name := filepath.Join(t.TempDir(), "proteins.jsonl.gz")
	w, err := NewWriter(name)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		if err := w.Put(sample("p", "GA")); err != nil {
			t.Fatal(err)
		}
	}
	w.Close()
	r, err := NewReader(name)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	ps, err := r.All(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(ps) != 2 {
		t.Errorf("got %d proteins, want 2", len(ps))
	}
}

func TestCount(t *testing.T) {
	for _, ext := range []string{".jsonl", ".jsonl.gz", ".jsonl.zst"} {
		name := filepath.Join(t.TempDir(), "proteins"+ext)
		w, err := NewWriter(name)
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 4; i++ {
			if err := w.Put(sample("p", "GA")); err != nil {
				t.Fatal(err)
			}
		}
		w.Close()
		n, err := Count(name)
		if err != nil {
			t.Fatal(err)
		}
		if n != 4 {
			t.Errorf("%s: counted %d proteins, want 4", ext, n)
		}
	}
}

func TestCountEmpty(t *testing.T) {
	name := filepath.Join(t.TempDir(), "proteins.jsonl.gz")
	w, err := NewWriter(name)
	if err != nil {
		t.Fatal(err)
	}
	w.Close()
	n, err := Count(name)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("counted %d proteins in an empty store, want 0", n)
	}
}

func TestWriteAfterClose(t *testing.T) {
	name := filepath.Join(t.TempDir(), "proteins.jsonl")
	w, err := NewWriter(name)
	if err != nil {
		t.Fatal(err)
	}
	w.Close()
	if err := w.Put(sample("1abc", "GA")); err == nil {
		t.Error("expected an error writing to a closed store")
	}
}
