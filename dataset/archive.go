package dataset

import (
	"archive/tar"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
)

//Untar extracts a .tar.gz archive into destDir, flattening any directory
//structure inside the archive: every regular file ends up directly under
//destDir by its base name. Directory entries are skipped, and entries
//whose name would escape destDir are rejected.
func Untar(archive, destDir string) error {
	f, err := os.Open(archive)
	if err != nil {
		return Error{UnableToOpen + ": " + err.Error(), archive, []string{"Untar"}, true}
	}
	defer f.Close()
	gz, err := gzip.NewReader(f)
	if err != nil {
		return Error{BadArchive + ": " + err.Error(), archive, []string{"Untar"}, true}
	}
	defer gz.Close()
	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return Error{BadArchive + ": " + err.Error(), archive, []string{"Untar"}, true}
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}
		name := filepath.Base(filepath.Clean(hdr.Name))
		if name == "." || name == ".." || strings.ContainsRune(name, os.PathSeparator) {
			return Error{BadArchive + ": unsafe entry " + hdr.Name, archive, []string{"Untar"}, true}
		}
		out, err := os.Create(filepath.Join(destDir, name))
		if err != nil {
			return Error{err.Error(), archive, []string{"Untar"}, true}
		}
		if _, err := io.Copy(out, tr); err != nil {
			out.Close()
			return Error{err.Error(), archive, []string{"Untar"}, true}
		}
		if err := out.Close(); err != nil {
			return Error{err.Error(), archive, []string{"Untar"}, true}
		}
	}
}
