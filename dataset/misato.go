package dataset

import (
	"path/filepath"

	shake "github.com/LukaButskhrikidze/proteinshake"
	"github.com/LukaButskhrikidze/proteinshake/store"
	"github.com/schollz/progressbar/v3"
	"gonum.org/v1/hdf5"
)

//misatoZenodoBase is the Zenodo record the Misato trajectory files live in.
const misatoZenodoBase = "https://zenodo.org/record/7711953/files"

//MisatoDataset is the HDF5-backed Misato protein-ligand dataset: one big
//MD.hdf5 file on Zenodo with a group per protein-ligand complex, holding
//residue and atom level structural data.
type MisatoDataset struct {
	Config
	BaseURL string //empty means the Zenodo record
	WithQM  bool   //also fetch the quantum-mechanics trajectory file
}

//NewMisato returns an HDF5-backed Misato dataset rooted at cfg.Root.
func NewMisato(cfg Config) *MisatoDataset {
	return &MisatoDataset{Config: cfg}
}

func (D *MisatoDataset) base() string {
	if D.BaseURL != "" {
		return D.BaseURL
	}
	return misatoZenodoBase
}

//RawFiles returns the raw files this dataset works from, downloaded or not.
func (D *MisatoDataset) RawFiles() []string {
	files := []string{filepath.Join(D.FilesDir(), "MD.hdf5")}
	if D.WithQM {
		files = append(files, filepath.Join(D.FilesDir(), "QM.hdf5"))
	}
	return files
}

//Download fetches MD.hdf5 (and QM.hdf5 when requested) into the files
//directory. Unlike the archive batches, a failed single-file download is
//an error: there is nothing to parse without it. Files already present
//are not fetched again.
func (D *MisatoDataset) Download() error {
	if err := D.ensureLayout(); err != nil {
		return errDecorate(err, "Download")
	}
	out := filepath.Join(D.FilesDir(), "MD.hdf5")
	if err := DownloadURL(D.base()+"/MD.hdf5", out, "Downloading Misato MD dataset", D.Verbosity); err != nil {
		return errDecorate(err, "Download")
	}
	if D.WithQM {
		out := filepath.Join(D.FilesDir(), "QM.hdf5")
		if err := DownloadURL(D.base()+"/QM.hdf5", out, "Downloading Misato QM dataset", D.Verbosity); err != nil {
			return errDecorate(err, "Download")
		}
	}
	return nil
}

//Parse iterates the per-protein groups of MD.hdf5, bounded by Limit,
//materializes each into a protein and writes it to the processed store.
//It returns the number of proteins parsed.
func (D *MisatoDataset) Parse() (int, error) {
	if err := D.ensureLayout(); err != nil {
		return 0, errDecorate(err, "Parse")
	}
	path := filepath.Join(D.FilesDir(), "MD.hdf5")
	f, err := hdf5.OpenFile(path, hdf5.F_ACC_RDONLY)
	if err != nil {
		return 0, Error{UnableToOpen + ": " + err.Error(), path, []string{"Parse"}, true}
	}
	defer f.Close()
	n, err := f.NumObjects()
	if err != nil {
		return 0, Error{err.Error(), path, []string{"Parse"}, true}
	}
	total := int(n)
	if D.Limit > 0 && D.Limit < total {
		total = D.Limit
	}
	w, err := store.NewWriter(D.StorePath("misato"))
	if err != nil {
		return 0, errDecorate(err, "Parse")
	}
	defer w.Close()
	var bar *progressbar.ProgressBar
	if D.Verbosity >= Info {
		bar = progressbar.Default(int64(total), "Parsing Misato proteins")
	}
	for i := 0; i < total; i++ {
		name, err := f.ObjectNameByIndex(uint(i))
		if err != nil {
			return w.Len(), Error{err.Error(), path, []string{"Parse"}, true}
		}
		p, err := parseMisatoGroup(f, name)
		if err != nil {
			return w.Len(), errDecorate(err, "Parse")
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
//together with how many it holds, so consumers that size their
//collections up front (the representation layer) don't need to have run
//Parse themselves.
func (D *MisatoDataset) Proteins() (*store.Reader, int, error) {
	return openStore(D.StorePath("misato"))
}

//parseMisatoGroup materializes one per-protein group into a protein:
//residue_coords and atom_coords are Nx3 float datasets, atom_types a
//string dataset. Residue and atom numbers are 0..N-1, as the source
//groups carry no numbering of their own.
func parseMisatoGroup(f *hdf5.File, name string) (*shake.Protein, error) {
	g, err := f.OpenGroup(name)
	if err != nil {
		return nil, Error{err.Error(), name, []string{"parseMisatoGroup"}, true}
	}
	defer g.Close()
	p := &shake.Protein{ID: name}
	p.Residue.X, p.Residue.Y, p.Residue.Z, err = readCoords(g, "residue_coords")
	if err != nil {
		return nil, errDecorate(err, "parseMisatoGroup")
	}
	p.Atom.X, p.Atom.Y, p.Atom.Z, err = readCoords(g, "atom_coords")
	if err != nil {
		return nil, errDecorate(err, "parseMisatoGroup")
	}
	p.Atom.Type, err = readStrings(g, "atom_types")
	if err != nil {
		return nil, errDecorate(err, "parseMisatoGroup")
	}
	p.Residue.Number = make([]int, len(p.Residue.X))
	for i := range p.Residue.Number {
		p.Residue.Number[i] = i
	}
	p.Atom.Number = make([]int, len(p.Atom.X))
	for i := range p.Atom.Number {
		p.Atom.Number[i] = i
	}
	return p, nil
}

//readCoords reads an Nx3 float dataset into x/y/z slices.
func readCoords(g *hdf5.Group, name string) (x, y, z []float64, err error) {
	d, err := g.OpenDataset(name)
	if err != nil {
		return nil, nil, nil, Error{err.Error(), name, []string{"readCoords"}, true}
	}
	defer d.Close()
	space := d.Space()
	defer space.Close()
	dims, _, err := space.SimpleExtentDims()
	if err != nil {
		return nil, nil, nil, Error{err.Error(), name, []string{"readCoords"}, true}
	}
	if len(dims) != 2 || dims[1] != 3 {
		return nil, nil, nil, Error{BadRecord + ": dataset is not Nx3", name, []string{"readCoords"}, true}
	}
	flat := make([]float64, dims[0]*3)
	if err := d.Read(&flat); err != nil {
		return nil, nil, nil, Error{err.Error(), name, []string{"readCoords"}, true}
	}
	n := int(dims[0])
	x = make([]float64, n)
	y = make([]float64, n)
	z = make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = flat[i*3]
		y[i] = flat[i*3+1]
		z[i] = flat[i*3+2]
	}
	return x, y, z, nil
}

//readStrings reads a 1-D string dataset.
func readStrings(g *hdf5.Group, name string) ([]string, error) {
	d, err := g.OpenDataset(name)
	if err != nil {
		return nil, Error{err.Error(), name, []string{"readStrings"}, true}
	}
	defer d.Close()
	space := d.Space()
	defer space.Close()
	dims, _, err := space.SimpleExtentDims()
	if err != nil {
		return nil, Error{err.Error(), name, []string{"readStrings"}, true}
	}
	if len(dims) != 1 {
		return nil, Error{BadRecord + ": dataset is not 1-D", name, []string{"readStrings"}, true}
	}
	out := make([]string, dims[0])
	if err := d.Read(&out); err != nil {
		return nil, Error{err.Error(), name, []string{"readStrings"}, true}
	}
	return out, nil
}
