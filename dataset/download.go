package dataset

import (
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Jeffail/tunny"
	"github.com/schollz/progressbar/v3"
)

//DownloadURL fetches url into outPath with a single-shot GET, no retries.
//A non-2xx response is an error. The body goes to a temp file in the
//target directory first and is renamed into place afterwards, so a failed
//download never leaves a half-written file behind. If outPath already
//exists the download is skipped. At Verbosity Info and above a byte
//progress bar labeled desc is shown.
func DownloadURL(url, outPath, desc string, verbosity int) error {
	if _, err := os.Stat(outPath); err == nil {
		return nil //already downloaded
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return Error{err.Error(), outPath, []string{"DownloadURL"}, true}
	}
	resp, err := http.Get(url)
	if err != nil {
		return Error{err.Error(), url, []string{"DownloadURL"}, true}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Error{BadStatus + ": " + resp.Status, url, []string{"DownloadURL"}, true}
	}
	f, err := os.CreateTemp(filepath.Dir(outPath), ".download-*")
	if err != nil {
		return Error{err.Error(), outPath, []string{"DownloadURL"}, true}
	}
	defer os.Remove(f.Name()) //no-op after a successful rename
	var w io.Writer = f
	if verbosity >= Info {
		bar := progressbar.DefaultBytes(resp.ContentLength, desc)
		w = io.MultiWriter(f, bar)
	}
	if _, err := io.Copy(w, resp.Body); err != nil {
		f.Close()
		return Error{err.Error(), url, []string{"DownloadURL"}, true}
	}
	if err := f.Close(); err != nil {
		return Error{err.Error(), outPath, []string{"DownloadURL"}, true}
	}
	if err := os.Rename(f.Name(), outPath); err != nil {
		return Error{err.Error(), outPath, []string{"DownloadURL"}, true}
	}
	return nil
}

//fetchAll downloads every named file under baseURL into destDir with a
//bounded worker pool. Individual failures are logged as warnings and do
//not halt the batch; the paths that did arrive are returned. baseURL and
//names are joined with a single slash.
func fetchAll(baseURL string, names []string, destDir string, workers, verbosity int) []string {
	base := strings.TrimRight(baseURL, "/")
	var (
		got  []string
		gotL sync.Mutex
		wg   sync.WaitGroup
	)
	pool := tunny.NewFunc(workers, func(payload interface{}) interface{} {
		name := payload.(string)
		out := filepath.Join(destDir, name)
		if err := DownloadURL(base+"/"+name, out, "Downloading "+name, verbosity); err != nil {
			if verbosity >= Warnings {
				log.Printf("Warning: failed to download %s: %v", name, err)
			}
			return nil
		}
		gotL.Lock()
		got = append(got, out)
		gotL.Unlock()
		return nil
	})
	defer pool.Close()
	for _, name := range names {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			pool.Process(name)
		}(name)
	}
	wg.Wait()
	return got
}
