package dataset

import (
	"path/filepath"
	"sort"
	"strings"
)

//Discover enumerates the files in dir carrying the given extension (no
//leading dot), sorted by name so that parse order is stable across runs.
func Discover(dir, ext string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*."+ext))
	if err != nil {
		return nil, Error{err.Error(), dir, []string{"Discover"}, true}
	}
	sort.Strings(files)
	return files, nil
}

//roleSuffixes are the underscore-delimited role markers some revisions of
//the archives append to the bare ID (e.g. 1abc_ligand.sdf).
var roleSuffixes = []string{"protein", "ligand", "pocket", "MD", "QM"}

//IDFromFilename derives the canonical protein ID from a filename. The
//directory is stripped, then everything from the first dot, then a single
//trailing role suffix if one is present. Underscores that are part of the
//ID itself survive, so ProteinNet-style IDs like 1abc_1_A come through
//intact.
func IDFromFilename(name string) string {
	id := filepath.Base(name)
	if i := strings.IndexByte(id, '.'); i >= 0 {
		id = id[:i]
	}
	if i := strings.LastIndexByte(id, '_'); i >= 0 {
		for _, role := range roleSuffixes {
			if id[i+1:] == role {
				id = id[:i]
				break
			}
		}
	}
	return id
}
