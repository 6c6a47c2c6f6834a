/*
 * protein.go, part of proteinshake.
 *
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package shake

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

/*Note: some methods here panic instead of returning errors. These are "fundamental"
 * accessors; if something goes wrong in them the caller is way-most likely wrong
 * already and the program should crash.*/

//ResidueTable holds per-residue fields as flat parallel slices, one entry
//per residue. The parse stages fill it; everything downstream reads it.
type ResidueTable struct {
	Number []int     `json:"residue_number"`
	Name   []string  `json:"residue_name,omitempty"`
	X      []float64 `json:"x"`
	Y      []float64 `json:"y"`
	Z      []float64 `json:"z"`
}

//Len returns the number of residues in the table.
func (T *ResidueTable) Len() int {
	return len(T.Number)
}

//Coords returns the residue coordinates as a new Len()x3 dense matrix,
//or nil for an empty table (gonum matrices cannot have zero rows). The
//matrix does not alias the table's slices. It panics on a table with
//mismatched x/y/z lengths, as such a table can only be a bug.
func (T *ResidueTable) Coords() *mat.Dense {
	return coordsMatrix(T.X, T.Y, T.Z)
}

//AtomTable holds per-atom fields as flat parallel slices, one entry per
//atom. ResidueNumber maps each atom back to its residue, when the source
//format provides that.
type AtomTable struct {
	Number        []int     `json:"atom_number"`
	Type          []string  `json:"atom_type"`
	ResidueNumber []int     `json:"residue_number,omitempty"`
	X             []float64 `json:"x"`
	Y             []float64 `json:"y"`
	Z             []float64 `json:"z"`
}

//Len returns the number of atoms in the table.
func (T *AtomTable) Len() int {
	return len(T.Number)
}

//Coords returns the atom coordinates as a new Len()x3 dense matrix, or
//nil for an empty table. The matrix does not alias the table's slices.
func (T *AtomTable) Coords() *mat.Dense {
	return coordsMatrix(T.X, T.Y, T.Z)
}

func coordsMatrix(x, y, z []float64) *mat.Dense {
	if len(x) != len(y) || len(y) != len(z) {
		panic(fmt.Sprintf("shake: ragged coordinate table: %d/%d/%d", len(x), len(y), len(z)))
	}
	if len(x) == 0 {
		return nil
	}
	m := mat.NewDense(len(x), 3, nil)
	for i := range x {
		m.Set(i, 0, x[i])
		m.Set(i, 1, y[i])
		m.Set(i, 2, z[i])
	}
	return m
}

//Protein is the common representation passed between pipeline stages: a
//set of top-level scalars plus nested residue/atom tables. It mirrors the
//protein/residue/atom nesting of the serialized form. A Protein is built
//by a parse stage, optionally mutated once by the metadata join, and
//consumed immutably after that.
type Protein struct {
	ID       string `json:"ID"`
	Sequence string `json:"sequence,omitempty"`

	//Metadata attached by the CSV join. Zero values mean "not joined".
	Affinity     float64 `json:"affinity,omitempty"`
	Resolution   float64 `json:"resolution,omitempty"`
	LigandSMILES string  `json:"ligand_smiles,omitempty"`
	Year         int     `json:"year,omitempty"`

	//Any joined column that doesn't map to a typed field above lands here.
	Scalars map[string]float64 `json:"scalars,omitempty"`
	Labels  map[string]string  `json:"labels,omitempty"`

	Residue ResidueTable `json:"residue"`
	Atom    AtomTable    `json:"atom"`

	//Ligand is only set for protein-ligand datasets whose archives carry
	//SDF payloads next to the structures.
	Ligand *AtomTable `json:"ligand,omitempty"`

	//TrajectoryPath points at a companion trajectory file (e.g. .xtc)
	//discovered next to the structure. The trajectory itself is never
	//decoded by this library.
	TrajectoryPath string `json:"trajectory_path,omitempty"`
}

//SetScalar attaches a named numeric metadata field to the protein.
func (P *Protein) SetScalar(key string, v float64) {
	if P.Scalars == nil {
		P.Scalars = make(map[string]float64)
	}
	P.Scalars[key] = v
}

//SetLabel attaches a named string metadata field to the protein.
func (P *Protein) SetLabel(key, v string) {
	if P.Labels == nil {
		P.Labels = make(map[string]string)
	}
	P.Labels[key] = v
}

//Copy returns a deep copy of the protein.
func (P *Protein) Copy() *Protein {
	if P == nil {
		panic("Attempted to copy a nil protein")
	}
	ret := new(Protein)
	*ret = *P
	ret.Residue = ResidueTable{
		Number: append([]int(nil), P.Residue.Number...),
		Name:   append([]string(nil), P.Residue.Name...),
		X:      append([]float64(nil), P.Residue.X...),
		Y:      append([]float64(nil), P.Residue.Y...),
		Z:      append([]float64(nil), P.Residue.Z...),
	}
	ret.Atom = copyAtomTable(&P.Atom)
	if P.Ligand != nil {
		lig := copyAtomTable(P.Ligand)
		ret.Ligand = &lig
	}
	if P.Scalars != nil {
		ret.Scalars = make(map[string]float64, len(P.Scalars))
		for k, v := range P.Scalars {
			ret.Scalars[k] = v
		}
	}
	if P.Labels != nil {
		ret.Labels = make(map[string]string, len(P.Labels))
		for k, v := range P.Labels {
			ret.Labels[k] = v
		}
	}
	return ret
}

func copyAtomTable(T *AtomTable) AtomTable {
	return AtomTable{
		Number:        append([]int(nil), T.Number...),
		Type:          append([]string(nil), T.Type...),
		ResidueNumber: append([]int(nil), T.ResidueNumber...),
		X:             append([]float64(nil), T.X...),
		Y:             append([]float64(nil), T.Y...),
		Z:             append([]float64(nil), T.Z...),
	}
}
