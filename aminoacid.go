/*
 * aminoacid.go, part of proteinshake.
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

import "fmt"

//A map between 3-letter names for aminoacidic residues and the corresponding 1-letter names.
var Three2OneLetter = map[string]byte{
	"SER": 'S',
	"THR": 'T',
	"ASN": 'N',
	"GLN": 'Q',
	"SEC": 'U', //Selenocysteine!
	"PYL": 'O',
	"CYS": 'C',
	"GLY": 'G',
	"PRO": 'P',
	"ALA": 'A',
	"VAL": 'V',
	"ILE": 'I',
	"LEU": 'L',
	"MET": 'M',
	"PHE": 'F',
	"TYR": 'Y',
	"TRP": 'W',
	"ARG": 'R',
	"HIS": 'H',
	"LYS": 'K',
	"ASP": 'D',
	"GLU": 'E',
}

//One2ThreeLetter is the reverse of Three2OneLetter, built on init.
var One2ThreeLetter = map[byte]string{}

func init() {
	for k, v := range Three2OneLetter {
		One2ThreeLetter[v] = k
	}
}

//SymbolFromName tries to guess a chemical element symbol from a PDB atom
//name. Mostly based on AMBER names, and only for common bio-elements.
func SymbolFromName(name string) (string, error) {
	symbol := ""
	if len(name) == 4 || (len(name) > 0 && name[0] == 'H') { //I think only Hs can have 4-char names in AMBER.
		symbol = "H"
	} else if len(name) == 0 {
		return "", fmt.Errorf("Couldn't guess symbol from empty PDB name")
	} else {
		switch name[0] {
		case 'C':
			switch name {
			case "CU":
				symbol = "Cu"
			case "CO":
				symbol = "Co"
			case "CL":
				symbol = "Cl"
			//CA is the alpha carbon in ATOM records, so calcium is not considered here.
			default:
				symbol = "C"
			}
		case 'N':
			if name == "NA" {
				symbol = "Na"
			} else {
				symbol = "N"
			}
		case 'O':
			symbol = "O"
		case 'P':
			symbol = "P"
		case 'S':
			if name == "SE" {
				symbol = "Se"
			} else {
				symbol = "S"
			}
		case 'K':
			symbol = "K"
		case 'F':
			if name == "FE" {
				symbol = "Fe"
			} else {
				symbol = "F"
			}
		case 'Z':
			if name == "ZN" {
				symbol = "Zn"
			}
		case 'M':
			if name == "MG" {
				symbol = "Mg"
			} else if name == "MN" {
				symbol = "Mn"
			}
		}
	}
	if symbol == "" {
		return symbol, fmt.Errorf("Couldn't guess symbol from PDB name %s", name)
	}
	return symbol, nil
}

//Tokenization

//An Alphabet maps single-letter residues to small integer tokens: the
//token for a residue is its index in the alphabet.
type Alphabet []byte

//NewAlphabet returns an alphabet made of the given residues, in order.
func NewAlphabet(residues ...byte) Alphabet {
	return Alphabet(residues)
}

//Residues is the default amino-acid alphabet: the twenty standard
//residues plus selenocysteine, pyrrolysine and the 'X' unknown marker,
//which is always last.
var Residues = NewAlphabet(
	'A', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'K', 'L', 'M',
	'N', 'P', 'Q', 'R', 'S', 'T', 'V', 'W', 'Y', 'U', 'O', 'X',
)

//Len returns the number of residues in the alphabet.
func (a Alphabet) Len() int {
	return len(a)
}

//Index returns the token for residue r, or -1 if r is not in the alphabet.
func (a Alphabet) Index(r byte) int32 {
	for i, v := range a {
		if v == r {
			return int32(i)
		}
	}
	return -1
}

//Unknown returns the token of the last residue in the alphabet, which by
//convention is the unknown marker.
func (a Alphabet) Unknown() int32 {
	return int32(len(a) - 1)
}

//Tokenize converts an amino-acid string into its integer token form.
//Residues not in the alphabet get the unknown token. An empty sequence
//is an error, as it can only mean the parse stage never found one.
func (a Alphabet) Tokenize(sequence string) ([]int32, error) {
	if len(sequence) == 0 {
		return nil, fmt.Errorf("Tokenize: empty sequence")
	}
	tokens := make([]int32, len(sequence))
	for i := 0; i < len(sequence); i++ {
		t := a.Index(sequence[i])
		if t < 0 {
			t = a.Unknown()
		}
		tokens[i] = t
	}
	return tokens, nil
}
