package dataset

import (
	"math"
	"os"
	"strings"

	shake "github.com/LukaButskhrikidze/proteinshake"
	"github.com/go-gota/gota/dataframe"
)

//Metadata is a CSV table of per-protein annotations (binding affinities,
//experimental metrics, ligand SMILES) loaded into a dataframe, joined
//onto parsed proteins by substring match on the ID column.
type Metadata struct {
	df    dataframe.DataFrame
	idCol int
}

//idColumns are the header names recognized as the ID column, lowercased,
//in preference order.
var idColumns = []string{"pdbid", "pdb_code", "pdb", "id", "name"}

//typed columns recognized by the join. Everything else lands in the
//protein's Scalars or Labels maps.
var affinityColumns = map[string]bool{"affinity": true, "log_kd_ki": true, "-logkd/ki": true, "neglog_aff": true}
var smilesColumns = map[string]bool{"smiles": true, "ligand_smiles": true}

//LoadMetadata reads a CSV file into a Metadata table. The ID column is
//the first header matching a known ID name; pass idCol to override.
func LoadMetadata(path string, idCol ...string) (*Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), path, []string{"LoadMetadata"}, true}
	}
	defer f.Close()
	df := dataframe.ReadCSV(f)
	if df.Err != nil {
		return nil, Error{df.Err.Error(), path, []string{"LoadMetadata"}, true}
	}
	M := &Metadata{df: df, idCol: -1}
	names := df.Names()
	if len(idCol) > 0 {
		for i, n := range names {
			if n == idCol[0] {
				M.idCol = i
				break
			}
		}
	} else {
	outer:
		for _, want := range idColumns {
			for i, n := range names {
				if strings.ToLower(n) == want {
					M.idCol = i
					break outer
				}
			}
		}
	}
	if M.idCol < 0 {
		return nil, Error{BadRecord + ": no ID column among " + strings.Join(names, ","), path, []string{"LoadMetadata"}, true}
	}
	return M, nil
}

//Len returns the number of metadata rows.
func (M *Metadata) Len() int {
	return M.df.Nrow()
}

//Attach finds the first row whose ID is a case-insensitive substring of
//the protein's ID and copies its columns onto the protein: recognized
//columns go to the typed fields, numeric leftovers to Scalars, the rest
//to Labels. It reports whether a row matched; no match leaves the
//protein untouched and is not an error.
func (M *Metadata) Attach(p *shake.Protein) bool {
	pid := strings.ToLower(p.ID)
	names := M.df.Names()
	for r := 0; r < M.df.Nrow(); r++ {
		rid := strings.ToLower(strings.TrimSpace(M.df.Elem(r, M.idCol).String()))
		if rid == "" || !strings.Contains(pid, rid) {
			continue
		}
		for c, name := range names {
			if c == M.idCol {
				continue
			}
			elem := M.df.Elem(r, c)
			key := strings.ToLower(name)
			switch {
			case affinityColumns[key]:
				p.Affinity = elem.Float()
			case key == "resolution":
				p.Resolution = elem.Float()
			case smilesColumns[key]:
				p.LigandSMILES = elem.String()
			case key == "year" || key == "release_year":
				if y, err := elem.Int(); err == nil {
					p.Year = y
				}
			default:
				if v := elem.Float(); !math.IsNaN(v) {
					p.SetScalar(name, v)
				} else if s := elem.String(); s != "" {
					p.SetLabel(name, s)
				}
			}
		}
		return true
	}
	return false
}
