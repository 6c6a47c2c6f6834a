package shake

import (
	"testing"
)

func TestTokenize(t *testing.T) {
	tokens, err := Residues.Tokenize("ACDY")
	if err != nil {
		t.Fatal(err)
	}
	want := []int32{0, 1, 2, 19}
	for i, v := range want {
		if tokens[i] != v {
			t.Errorf("token %d: got %d, want %d", i, tokens[i], v)
		}
	}
}

func TestTokenizeUnknown(t *testing.T) {
	tokens, err := Residues.Tokenize("AJB") //J and B are not residues
	if err != nil {
		t.Fatal(err)
	}
	unk := Residues.Unknown()
	if tokens[1] != unk || tokens[2] != unk {
		t.Errorf("unknown residues should map to %d, got %v", unk, tokens)
	}
	if tokens[0] != 0 {
		t.Errorf("A should map to 0, got %d", tokens[0])
	}
}

func TestTokenizeEmpty(t *testing.T) {
	if _, err := Residues.Tokenize(""); err == nil {
		t.Error("expected an error for an empty sequence")
	}
}

func TestThree2One(t *testing.T) {
	if Three2OneLetter["GLY"] != 'G' {
		t.Errorf("GLY should be G")
	}
	if One2ThreeLetter['W'] != "TRP" {
		t.Errorf("W should be TRP, got %s", One2ThreeLetter['W'])
	}
}

func TestSymbolFromName(t *testing.T) {
	cases := map[string]string{
		"CA":   "C", //alpha carbon, not calcium
		"CB":   "C",
		"N":    "N",
		"OXT":  "O",
		"HG21": "H",
		"FE":   "Fe",
		"SD":   "S",
	}
	for name, want := range cases {
		got, err := SymbolFromName(name)
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if got != want {
			t.Errorf("%s: got %s, want %s", name, got, want)
		}
	}
	if _, err := SymbolFromName("QQ"); err == nil {
		t.Error("expected an error for an unguessable name")
	}
}

func TestCoords(t *testing.T) {
	tab := AtomTable{
		Number: []int{0, 1},
		Type:   []string{"C", "N"},
		X:      []float64{1, 4},
		Y:      []float64{2, 5},
		Z:      []float64{3, 6},
	}
	m := tab.Coords()
	r, c := m.Dims()
	if r != 2 || c != 3 {
		t.Fatalf("got %dx%d, want 2x3", r, c)
	}
	if m.At(1, 2) != 6 {
		t.Errorf("got %f at (1,2), want 6", m.At(1, 2))
	}
	//the matrix must not alias the table
	m.Set(0, 0, 42)
	if tab.X[0] != 1 {
		t.Error("Coords must copy, not alias")
	}
}

func TestCoordsEmpty(t *testing.T) {
	var tab AtomTable
	if m := tab.Coords(); m != nil {
		t.Errorf("empty table should give a nil matrix, got %v", m)
	}
	var res ResidueTable
	if m := res.Coords(); m != nil {
		t.Errorf("empty table should give a nil matrix, got %v", m)
	}
}

func TestCopy(t *testing.T) {
	p := &Protein{
		ID:       "1abc",
		Sequence: "GA",
		Residue:  ResidueTable{Number: []int{0, 1}, X: []float64{0, 1}, Y: []float64{0, 1}, Z: []float64{0, 1}},
	}
	p.SetScalar("kd", 7.5)
	q := p.Copy()
	q.Residue.X[0] = 99
	q.Scalars["kd"] = 1
	if p.Residue.X[0] != 0 || p.Scalars["kd"] != 7.5 {
		t.Error("Copy must be deep")
	}
}
