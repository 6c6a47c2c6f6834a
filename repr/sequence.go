//Package repr wraps parsed proteins into representations ready for
//tensor consumption. The only representation here is the linear one:
//the amino-acid string and its tokenized integer form.
package repr

import (
	"fmt"
	"io"

	shake "github.com/LukaButskhrikidze/proteinshake"
	"github.com/schollz/progressbar/v3"
)

//ProteinSource is anything that streams proteins, io.EOF marking the
//end. The store Reader satisfies it.
type ProteinSource interface {
	Next() (*shake.Protein, error)
}

//Sequence is the linear representation of one protein: the raw
//amino-acid string plus its token form, computed once at construction
//and never mutated.
type Sequence struct {
	Protein *shake.Protein
	Str     string
	Tokens  []int32
}

//New builds the sequence representation of a protein. A protein without
//a sequence (e.g. one parsed from a source that carries no amino-acid
//strings) is an error.
func New(p *shake.Protein) (*Sequence, error) {
	if p == nil {
		return nil, Error{NilProtein, "", []string{"New"}, true}
	}
	tokens, err := shake.Residues.Tokenize(p.Sequence)
	if err != nil {
		return nil, Error{NoSequence + " " + p.ID, p.ID, []string{"New"}, true}
	}
	return &Sequence{Protein: p, Str: p.Sequence, Tokens: tokens}, nil
}

//Dataset is an indexed collection of sequence representations.
type Dataset struct {
	seqs []*Sequence
}

//NewDataset drains a protein source into an indexed sequence dataset,
//tokenizing every protein up front so indexing never re-tokenizes. size
//is the expected number of proteins for the progress bar; pass 0 when
//unknown. At Verbosity below 2 no bar is shown.
func NewDataset(src ProteinSource, size int, verbosity int) (*Dataset, error) {
	D := new(Dataset)
	if size > 0 {
		D.seqs = make([]*Sequence, 0, size)
	}
	var bar *progressbar.ProgressBar
	if verbosity >= 2 {
		n := int64(size)
		if n == 0 {
			n = -1
		}
		bar = progressbar.Default(n, "Building sequence dataset")
	}
	for {
		p, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errDecorate(err, "NewDataset")
		}
		s, err := New(p)
		if err != nil {
			return nil, errDecorate(err, "NewDataset")
		}
		D.seqs = append(D.seqs, s)
		if bar != nil {
			bar.Add(1)
		}
	}
	return D, nil
}

//Len returns the number of sequences in the dataset.
func (D *Dataset) Len() int {
	return len(D.seqs)
}

//At returns the i-th sequence. It panics if i is out of range, as any
//indexed consumer is expected to respect Len.
func (D *Dataset) At(i int) *Sequence {
	return D.seqs[i]
}

//Strings returns all sequences as plain amino-acid strings.
func (D *Dataset) Strings() []string {
	ret := make([]string, len(D.seqs))
	for i, s := range D.seqs {
		ret[i] = s.Str
	}
	return ret
}

//Tokens returns all tokenized sequences. The inner slices are the cached
//token arrays themselves, not copies.
func (D *Dataset) Tokens() [][]int32 {
	ret := make([][]int32, len(D.seqs))
	for i, s := range D.seqs {
		ret[i] = s.Tokens
	}
	return ret
}

//Errors

//errDecorate is a helper function that asserts that the error implements
//shake.Error and decorates it with the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2, ok := err.(shake.Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}

//Error is the general structure for representation errors. It fulfills shake.Error.
type Error struct {
	message  string
	id       string //the protein the error refers to, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("representation error: %s", err.message)
}

//Decorate adds new information to the error
func (E Error) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//ID returns the protein ID associated to the error
func (err Error) ID() string { return err.id }

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

const (
	NilProtein = "Given nil protein"
	NoSequence = "Protein carries no amino-acid sequence:"
)
