package dataset

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	shake "github.com/LukaButskhrikidze/proteinshake"
	"github.com/klauspost/compress/gzip"
)

//ParsePDB reads the atomic entries of a PDB file into a protein. The
//sequence comes from the SEQRES records when present, otherwise it is
//rebuilt from the ATOM residues. Only the first model is read. Files
//ending in ".gz" are decompressed transparently.
func ParsePDB(path string) (*shake.Protein, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), path, []string{"ParsePDB"}, true}
	}
	defer f.Close()
	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, Error{err.Error(), path, []string{"ParsePDB"}, true}
		}
		defer gz.Close()
		r = gz
	}
	p := &shake.Protein{ID: IDFromFilename(path)}
	var seqres []byte
	var atomseq []byte
	lastres := -1 //residue number of the residue currently being filled
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < 6 {
			continue
		}
		switch strings.TrimSpace(line[0:6]) {
		case "SEQRES":
			//Residues sit in columns 19-21, 23-25, ..., 67-69.
			for i := 19; i+3 <= len(line); i += 4 {
				res := strings.TrimSpace(line[i : i+3])
				if single, ok := shake.Three2OneLetter[res]; ok {
					seqres = append(seqres, single)
				}
			}
		case "ATOM":
			if len(line) < 54 {
				return nil, Error{BadRecord + ": short ATOM line", path, []string{"ParsePDB"}, true}
			}
			err := make([]error, 5)
			var id, resnum int
			var x, y, z float64
			id, err[0] = strconv.Atoi(strings.TrimSpace(line[6:12]))
			name := strings.TrimSpace(line[12:16])
			resname := strings.TrimSpace(line[17:20])
			resnum, err[1] = strconv.Atoi(strings.TrimSpace(line[22:26]))
			x, err[2] = strconv.ParseFloat(strings.TrimSpace(line[30:38]), 64)
			y, err[3] = strconv.ParseFloat(strings.TrimSpace(line[38:46]), 64)
			z, err[4] = strconv.ParseFloat(strings.TrimSpace(line[46:54]), 64)
			for i := range err {
				if err[i] != nil {
					return nil, Error{BadRecord + ": " + err[i].Error(), path, []string{"ParsePDB"}, true}
				}
			}
			symbol, _ := shake.SymbolFromName(name) //empty symbol on a failed guess is fine
			p.Atom.Number = append(p.Atom.Number, id)
			p.Atom.Type = append(p.Atom.Type, symbol)
			p.Atom.ResidueNumber = append(p.Atom.ResidueNumber, resnum)
			p.Atom.X = append(p.Atom.X, x)
			p.Atom.Y = append(p.Atom.Y, y)
			p.Atom.Z = append(p.Atom.Z, z)
			if resnum != lastres {
				lastres = resnum
				p.Residue.Number = append(p.Residue.Number, resnum)
				p.Residue.Name = append(p.Residue.Name, resname)
				//first atom of the residue seeds its coordinates,
				//the CA below overrides them.
				p.Residue.X = append(p.Residue.X, x)
				p.Residue.Y = append(p.Residue.Y, y)
				p.Residue.Z = append(p.Residue.Z, z)
				if single, ok := shake.Three2OneLetter[resname]; ok {
					atomseq = append(atomseq, single)
				}
			}
			if name == "CA" {
				n := p.Residue.Len() - 1
				p.Residue.X[n] = x
				p.Residue.Y[n] = y
				p.Residue.Z[n] = z
			}
		case "ENDMDL":
			//atom data is the same in all models, so read only the first.
			goto done
		}
	}
done:
	if err := scanner.Err(); err != nil {
		return nil, Error{err.Error(), path, []string{"ParsePDB"}, true}
	}
	if len(seqres) > 0 {
		p.Sequence = string(seqres)
	} else {
		p.Sequence = string(atomseq)
	}
	return p, nil
}
