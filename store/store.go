//Package store persists parsed proteins under a dataset's processed
//directory as JSON lines, one protein per line. The compressor is picked
//from the file extension: ".gz" for gzip, ".zst" for zstd, anything else
//is stored plain.
package store

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	shake "github.com/LukaButskhrikidze/proteinshake"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

//Write!
type Writer struct {
	f         *os.File
	h         io.WriteCloser
	enc       *json.Encoder
	filename  string
	writeable bool
	n         int
}

//NewWriter opens a protein store for writing. Only the first
//compressionLevel is read; it applies to gzip only (zstd picks its own).
func NewWriter(name string, compressionLevel ...int) (*Writer, error) {
	level := gzip.DefaultCompression
	if len(compressionLevel) > 0 {
		level = compressionLevel[0]
	}
	S := new(Writer)
	S.filename = name
	var err error
	S.f, err = os.Create(name)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"NewWriter"}, true}
	}
	switch {
	case strings.HasSuffix(name, ".gz"):
		S.h, err = gzip.NewWriterLevel(S.f, level)
		if err != nil {
			S.f.Close()
			return nil, Error{err.Error(), name, []string{"NewWriter"}, true}
		}
	case strings.HasSuffix(name, ".zst"):
		S.h, err = zstd.NewWriter(S.f)
		if err != nil {
			S.f.Close()
			return nil, Error{err.Error(), name, []string{"NewWriter"}, true}
		}
	default:
		S.h = nopWriteCloser{bufio.NewWriter(S.f)}
	}
	S.enc = json.NewEncoder(S.h)
	S.writeable = true
	return S, nil
}

//Put appends one protein to the store.
func (S *Writer) Put(p *shake.Protein) error {
	if !S.writeable {
		return Error{StoreUnIniWrite, S.filename, []string{"Put"}, true}
	}
	if p == nil {
		return Error{NilProtein, S.filename, []string{"Put"}, true}
	}
	if err := S.enc.Encode(p); err != nil {
		return Error{err.Error(), S.filename, []string{"Put"}, true}
	}
	S.n++
	return nil
}

//Len returns the number of proteins written so far.
func (S *Writer) Len() int {
	return S.n
}

//Close flushes and closes the store, and marks it as unwriteable.
func (S *Writer) Close() {
	if S == nil {
		return
	}
	if S.writeable {
		S.h.Close()
		S.f.Close()
	}
	S.writeable = false
}

type nopWriteCloser struct {
	*bufio.Writer
}

func (w nopWriteCloser) Close() error {
	return w.Flush()
}

//Read!
type Reader struct {
	f        *os.File
	h        io.ReadCloser
	dec      *json.Decoder
	filename string
	readable bool
}

//NewReader opens a protein store for reading. The compressor is inferred
//from the extension, the same way NewWriter picks it.
func NewReader(name string) (*Reader, error) {
	S := new(Reader)
	S.filename = name
	var err error
	S.f, err = os.Open(name)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"NewReader"}, true}
	}
	switch {
	case strings.HasSuffix(name, ".gz"):
		S.h, err = gzip.NewReader(S.f)
		if err != nil {
			S.f.Close()
			return nil, Error{err.Error(), name, []string{"NewReader"}, true}
		}
	case strings.HasSuffix(name, ".zst"):
		d, err := zstd.NewReader(S.f)
		if err != nil {
			S.f.Close()
			return nil, Error{err.Error(), name, []string{"NewReader"}, true}
		}
		S.h = d.IOReadCloser()
	default:
		S.h = io.NopCloser(bufio.NewReader(S.f))
	}
	S.dec = json.NewDecoder(S.h)
	S.readable = true
	return S, nil
}

//Next returns the next protein in the store, or io.EOF exactly at the
//end of the stream.
func (S *Reader) Next() (*shake.Protein, error) {
	if !S.readable {
		return nil, Error{StoreUnIniRead, S.filename, []string{"Next"}, true}
	}
	p := new(shake.Protein)
	err := S.dec.Decode(p)
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, Error{err.Error(), S.filename, []string{"Next"}, true}
	}
	return p, nil
}

//All reads up to limit proteins from the store (0 means all).
func (S *Reader) All(limit int) ([]*shake.Protein, error) {
	var ret []*shake.Protein
	for {
		if limit > 0 && len(ret) >= limit {
			return ret, nil
		}
		p, err := S.Next()
		if err == io.EOF {
			return ret, nil
		}
		if err != nil {
			return ret, errDecorate(err, "All")
		}
		ret = append(ret, p)
	}
}

//Count returns the number of proteins in a store without decoding them:
//the writer puts exactly one protein per line, so counting lines is
//enough.
func Count(name string) (int, error) {
	S, err := NewReader(name)
	if err != nil {
		return 0, errDecorate(err, "Count")
	}
	defer S.Close()
	br := bufio.NewReader(S.h)
	n := 0
	for {
		_, err := br.ReadSlice('\n')
		if err == io.EOF {
			return n, nil
		}
		if err == bufio.ErrBufferFull {
			continue //still inside a long line
		}
		if err != nil {
			return n, Error{err.Error(), name, []string{"Count"}, true}
		}
		n++
	}
}

//Close closes the store, and marks it as unreadable.
func (S *Reader) Close() {
	if S == nil || !S.readable {
		return
	}
	S.h.Close()
	S.f.Close()
	S.readable = false
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

//Error is the general structure for protein store errors. It fulfills shake.Error.
type Error struct {
	message  string
	filename string //the store file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("protein store %s error: %s", err.filename, err.message)
}

//Decorate adds new information to the error
func (E Error) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//FileName returns the store file associated to the error
func (err Error) FileName() string { return err.filename }

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

const (
	StoreUnIniRead  = "Store object uninitialized to read"
	StoreUnIniWrite = "Store object uninitialized to write"
	UnableToOpen    = "Unable to open file"
	NilProtein      = "Given nil protein"
)
