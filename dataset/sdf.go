package dataset

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	shake "github.com/LukaButskhrikidze/proteinshake"
)

//ParseSDF reads the first molecule of a V2000 SDF file into an atom
//table. Bond blocks and properties are skipped; the ingestion layer only
//needs ligand atom positions and elements.
func ParseSDF(path string) (*shake.AtomTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), path, []string{"ParseSDF"}, true}
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	//three header lines before the counts line
	for i := 0; i < 3; i++ {
		if !sc.Scan() {
			return nil, Error{BadRecord + ": unexpected EOF in header", path, []string{"ParseSDF"}, true}
		}
	}
	if !sc.Scan() {
		return nil, Error{BadRecord + ": missing counts line", path, []string{"ParseSDF"}, true}
	}
	counts := sc.Text()
	if len(counts) < 6 {
		return nil, Error{BadRecord + ": short counts line", path, []string{"ParseSDF"}, true}
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(counts[0:3]))
	if err != nil {
		return nil, Error{BadRecord + ": " + err.Error(), path, []string{"ParseSDF"}, true}
	}
	//the counts field is 3 columns wide, so anything outside 0..999 is corrupt
	if natoms < 0 || natoms > 999 {
		return nil, Error{BadRecord + ": atom count out of range: " + strconv.Itoa(natoms), path, []string{"ParseSDF"}, true}
	}
	tab := &shake.AtomTable{
		Number: make([]int, natoms),
		Type:   make([]string, natoms),
		X:      make([]float64, natoms),
		Y:      make([]float64, natoms),
		Z:      make([]float64, natoms),
	}
	for i := 0; i < natoms; i++ {
		if !sc.Scan() {
			return nil, Error{BadRecord + ": truncated atom block", path, []string{"ParseSDF"}, true}
		}
		line := sc.Text()
		if len(line) < 34 {
			return nil, Error{BadRecord + ": short atom line", path, []string{"ParseSDF"}, true}
		}
		errs := make([]error, 3)
		tab.Number[i] = i
		tab.X[i], errs[0] = strconv.ParseFloat(strings.TrimSpace(line[0:10]), 64)
		tab.Y[i], errs[1] = strconv.ParseFloat(strings.TrimSpace(line[10:20]), 64)
		tab.Z[i], errs[2] = strconv.ParseFloat(strings.TrimSpace(line[20:30]), 64)
		tab.Type[i] = strings.TrimSpace(line[31:34])
		for _, e := range errs {
			if e != nil {
				return nil, Error{BadRecord + ": " + e.Error(), path, []string{"ParseSDF"}, true}
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, Error{err.Error(), path, []string{"ParseSDF"}, true}
	}
	return tab, nil
}
