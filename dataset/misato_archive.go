package dataset

import (
	"fmt"
	"log"

	"github.com/LukaButskhrikidze/proteinshake/store"
	"github.com/schollz/progressbar/v3"
)

//Subset is one of the dataset's predefined partitions.
type Subset string

const (
	Train Subset = "train"
	Test  Subset = "test"
	Val   Subset = "val"
)

//MisatoArchiveDataset is the archive-backed Misato variant: per-subset
//.tar.gz archives of PDB structures with SDF ligands and, optionally,
//MD/QM trajectory archives, plus a CSV of binding affinities and
//experimental metrics joined onto every parsed protein.
type MisatoArchiveDataset struct {
	Config
	BaseURL     string //empty means the Zenodo record
	Subset      Subset
	WithMD      bool   //also fetch the molecular-dynamics trajectory archives
	WithQM      bool   //also fetch the quantum-mechanics trajectory archives
	MetadataCSV string //path of the affinity CSV; empty skips the join
}

//NewMisatoArchive returns an archive-backed Misato dataset for the given
//subset, rooted at cfg.Root.
func NewMisatoArchive(cfg Config, subset Subset) *MisatoArchiveDataset {
	return &MisatoArchiveDataset{Config: cfg, Subset: subset}
}

func (D *MisatoArchiveDataset) base() string {
	if D.BaseURL != "" {
		return D.BaseURL
	}
	return misatoZenodoBase
}

func (D *MisatoArchiveDataset) storeName() string {
	return fmt.Sprintf("misato_%s", D.Subset)
}

//ArchiveNames returns the named archive files to fetch for this subset.
func (D *MisatoArchiveDataset) ArchiveNames() []string {
	names := []string{fmt.Sprintf("misato_%s.tar.gz", D.Subset)}
	if D.WithMD {
		names = append(names, fmt.Sprintf("misato_%s_MD.tar.gz", D.Subset))
	}
	if D.WithQM {
		names = append(names, fmt.Sprintf("misato_%s_QM.tar.gz", D.Subset))
	}
	return names
}

//Download fetches the subset's archives with the bounded pool. Per-file
//failures are warnings and do not halt the batch; only a batch where
//nothing at all arrived is an error.
func (D *MisatoArchiveDataset) Download() error {
	if err := D.ensureLayout(); err != nil {
		return errDecorate(err, "Download")
	}
	got := fetchAll(D.base(), D.ArchiveNames(), D.RawDir(), D.workers(), D.Verbosity)
	if len(got) == 0 {
		return Error{NothingFetched, D.base(), []string{"Download"}, true}
	}
	return nil
}

//Extract flattens every downloaded .tar.gz into the files directory.
//A broken archive is logged as a warning and skipped.
func (D *MisatoArchiveDataset) Extract() error {
	if err := D.ensureLayout(); err != nil {
		return errDecorate(err, "Extract")
	}
	archives, err := Discover(D.RawDir(), "tar.gz")
	if err != nil {
		return errDecorate(err, "Extract")
	}
	for _, a := range archives {
		if err := Untar(a, D.FilesDir()); err != nil {
			if D.Verbosity >= Warnings {
				log.Printf("Warning: failed to extract %s: %v", a, err)
			}
		}
	}
	return nil
}

//Parse discovers the extracted structures, parses each PDB into a
//protein, attaches the matching SDF ligand and trajectory path, joins
//the metadata CSV and writes everything to the processed store. A file
//that fails to parse is logged as a warning and skipped. It returns the
//number of proteins parsed.
func (D *MisatoArchiveDataset) Parse() (int, error) {
	if err := D.ensureLayout(); err != nil {
		return 0, errDecorate(err, "Parse")
	}
	var meta *Metadata
	if D.MetadataCSV != "" {
		var err error
		meta, err = LoadMetadata(D.MetadataCSV)
		if err != nil {
			return 0, errDecorate(err, "Parse")
		}
	}
	pdbs, err := Discover(D.FilesDir(), "pdb")
	if err != nil {
		return 0, errDecorate(err, "Parse")
	}
	sdfs := byID(mustDiscover(D.FilesDir(), "sdf"))
	xtcs := byID(mustDiscover(D.FilesDir(), "xtc"))
	total := len(pdbs)
	if D.Limit > 0 && D.Limit < total {
		total = D.Limit
	}
	w, err := store.NewWriter(D.StorePath(D.storeName()))
	if err != nil {
		return 0, errDecorate(err, "Parse")
	}
	defer w.Close()
	var bar *progressbar.ProgressBar
	if D.Verbosity >= Info {
		bar = progressbar.Default(int64(total), "Parsing Misato proteins")
	}
	for _, path := range pdbs[:total] {
		p, err := ParsePDB(path)
		if err != nil {
			if D.Verbosity >= Warnings {
				log.Printf("Warning: failed to parse %s: %v", path, err)
			}
			continue
		}
		if sdf, ok := sdfs[p.ID]; ok {
			lig, err := ParseSDF(sdf)
			if err != nil {
				if D.Verbosity >= Warnings {
					log.Printf("Warning: failed to parse ligand %s: %v", sdf, err)
				}
			} else {
				p.Ligand = lig
			}
		}
		if xtc, ok := xtcs[p.ID]; ok {
			p.TrajectoryPath = xtc
		}
		if meta != nil {
			meta.Attach(p)
		}
		if err := w.Put(p); err != nil {
			return w.Len(), errDecorate(err, "Parse")
		}
		if bar != nil {
			bar.Add(1)
		}
	}
	return w.Len(), nil
}

//Proteins streams the parsed proteins back from the processed store,
//together with how many it holds.
func (D *MisatoArchiveDataset) Proteins() (*store.Reader, int, error) {
	return openStore(D.StorePath(D.storeName()))
}

//openStore opens a processed store for reading along with its protein
//count.
func openStore(path string) (*store.Reader, int, error) {
	n, err := store.Count(path)
	if err != nil {
		return nil, 0, errDecorate(err, "openStore")
	}
	r, err := store.NewReader(path)
	if err != nil {
		return nil, 0, errDecorate(err, "openStore")
	}
	return r, n, nil
}

//byID indexes discovered files by their canonical protein ID.
func byID(files []string) map[string]string {
	m := make(map[string]string, len(files))
	for _, f := range files {
		m[IDFromFilename(f)] = f
	}
	return m
}

//mustDiscover is Discover for companion files, where a glob error (which
//can only be a bad pattern) just means "none found".
func mustDiscover(dir, ext string) []string {
	files, err := Discover(dir, ext)
	if err != nil {
		return nil
	}
	return files
}
