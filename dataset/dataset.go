//Package dataset implements the per-dataset ingestion pipelines:
//download, archive extraction, file discovery, parsing into the shake
//protein representation, and the metadata join against CSV tables.
package dataset

import (
	"fmt"
	"os"
	"path/filepath"

	shake "github.com/LukaButskhrikidze/proteinshake"
)

//Verbosity levels. At Silent nothing is printed, at Warnings only
//warnings are logged, at Info progress bars and info lines appear too.
const (
	Silent   = 0
	Warnings = 1
	Info     = 2
)

//Config carries the file layout and the knobs every dataset shares.
//The zero value is not usable: Root is required.
type Config struct {
	Root      string //dataset root directory
	Limit     int    //max number of proteins to parse, 0 means all
	Verbosity int
	Workers   int //size of the download pool, <=1 means sequential
}

//RawDir returns the directory for raw downloads.
func (c *Config) RawDir() string {
	return filepath.Join(c.Root, "raw")
}

//FilesDir returns the flat directory archive payloads are extracted into.
func (c *Config) FilesDir() string {
	return filepath.Join(c.Root, "raw", "files")
}

//ProcessedDir returns the directory for parsed protein stores.
func (c *Config) ProcessedDir() string {
	return filepath.Join(c.Root, "processed")
}

//StorePath returns the processed store file for a dataset name.
func (c *Config) StorePath(name string) string {
	return filepath.Join(c.ProcessedDir(), name+".jsonl.gz")
}

func (c *Config) workers() int {
	if c.Workers <= 1 {
		return 1
	}
	return c.Workers
}

//ensureLayout creates the raw/files and processed directories.
func (c *Config) ensureLayout() error {
	if c.Root == "" {
		return Error{"empty dataset root", "", []string{"ensureLayout"}, true}
	}
	for _, dir := range []string{c.FilesDir(), c.ProcessedDir()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return Error{err.Error(), dir, []string{"ensureLayout"}, true}
		}
	}
	return nil
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

//Error is the general structure for dataset pipeline errors. It fulfills shake.Error.
type Error struct {
	message  string
	filename string //the file or URL that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("dataset %s error: %s", err.filename, err.message)
}

//Decorate adds new information to the error
func (E Error) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//FileName returns the file or URL associated to the error
func (err Error) FileName() string { return err.filename }

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

const (
	UnableToOpen   = "Unable to open file"
	BadStatus      = "Unexpected HTTP status"
	BadArchive     = "Malformed archive"
	BadRecord      = "Malformed record"
	NothingFetched = "No archive could be downloaded"
)
