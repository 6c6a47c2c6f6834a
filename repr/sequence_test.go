package repr

import (
	"io"
	"testing"

	shake "github.com/LukaButskhrikidze/proteinshake"
)

//sliceSource streams proteins from a slice, io.EOF at the end.
type sliceSource struct {
	ps []*shake.Protein
	i  int
}

func (s *sliceSource) Next() (*shake.Protein, error) {
	if s.i >= len(s.ps) {
		return nil, io.EOF
	}
	p := s.ps[s.i]
	s.i++
	return p, nil
}

func TestSequenceTokens(t *testing.T) {
	s, err := New(&shake.Protein{ID: "1abc", Sequence: "GAV"})
	if err != nil {
		t.Fatal(err)
	}
	if s.Str != "GAV" {
		t.Errorf("got %s, want GAV", s.Str)
	}
	want := []int32{
		shake.Residues.Index('G'),
		shake.Residues.Index('A'),
		shake.Residues.Index('V'),
	}
	for i, v := range want {
		if s.Tokens[i] != v {
			t.Errorf("token %d: got %d, want %d", i, s.Tokens[i], v)
		}
	}
}

func TestSequenceNoSequence(t *testing.T) {
	if _, err := New(&shake.Protein{ID: "1abc"}); err == nil {
		t.Error("expected an error for a protein without a sequence")
	}
	if _, err := New(nil); err == nil {
		t.Error("expected an error for a nil protein")
	}
}

func TestDataset(t *testing.T) {
	src := &sliceSource{ps: []*shake.Protein{
		{ID: "1abc", Sequence: "GA"},
		{ID: "2xyz", Sequence: "WY"},
	}}
	D, err := NewDataset(src, 2, 0)
	if err != nil {
		t.Fatal(err)
	}
	if D.Len() != 2 {
		t.Fatalf("got %d sequences, want 2", D.Len())
	}
	if D.At(1).Protein.ID != "2xyz" {
		t.Errorf("got %s at index 1, want 2xyz", D.At(1).Protein.ID)
	}
	strs := D.Strings()
	if strs[0] != "GA" || strs[1] != "WY" {
		t.Errorf("Strings gave %v", strs)
	}
	toks := D.Tokens()
	if len(toks) != 2 || len(toks[0]) != 2 {
		t.Errorf("Tokens gave %v", toks)
	}
	//indexing must return the cached array, not re-tokenize
	if &D.At(0).Tokens[0] != &toks[0][0] {
		t.Error("Tokens must expose the cached arrays")
	}
}
