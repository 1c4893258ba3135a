// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cache reads dictionary API responses saved to disk.
//
// Responses are saved one file per looked up word. The file name without
// its extension is the word. Files may be plain JSON (".json") or
// compressed with gzip (".json.gz") or dictzip (".json.dz"). Dictzip files
// are gzip compatible and are read as such.
//
//	dir/
//	    run.json
//	    voluminous.json.dz
package cache

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-mwdict"
	"github.com/ianlewis/go-mwdict/internal/folding"
	"github.com/ianlewis/go-mwdict/internal/index"
)

// ErrUnsupported indicates that a file is not a saved response.
var ErrUnsupported = errors.New("unsupported file")

// exts are the supported file extensions and whether the file is
// compressed.
var exts = []struct {
	ext        string
	compressed bool
}{
	{".json.dz", true},
	{".json.gz", true},
	{".json", false},
}

// Response is a saved API response.
type Response struct {
	word string
	path string
	data []byte
}

// Word returns the word the response was saved for.
func (r *Response) Word() string {
	return r.word
}

// Path returns the path of the response file.
func (r *Response) Path() string {
	return r.path
}

// Data returns the uncompressed response body.
func (r *Response) Data() []byte {
	return r.data
}

// Entries parses the response with p. The default parser is used if p is
// nil.
func (r *Response) Entries(p *mwdict.Parser) ([]*mwdict.Entry, error) {
	if p == nil {
		p = mwdict.NewParser(nil)
	}
	entries, err := p.Parse(r.data)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", r.path, err)
	}
	return entries, nil
}

// splitExt returns the word and whether the file is compressed for the
// given file name. ok is false if the file is not a saved response.
func splitExt(name string) (word string, compressed, ok bool) {
	lower := strings.ToLower(name)
	for _, e := range exts {
		if strings.HasSuffix(lower, e.ext) {
			word = name[:len(name)-len(e.ext)]
			return word, e.compressed, word != ""
		}
	}
	return "", false, false
}

// Open reads the saved response at path.
func Open(path string) (*Response, error) {
	word, compressed, ok := splitExt(filepath.Base(path))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, path)
	}

	var r io.ReadCloser
	var err error
	r, err = os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening %q: %w", path, err)
	}
	defer r.Close()

	if compressed {
		r, err = gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("error opening %q: %w", path, err)
		}
		defer r.Close()
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}

	return &Response{
		word: word,
		path: path,
		data: data,
	}, nil
}

// OpenAll opens all saved responses under a directory. This function will
// return all successfully opened responses along with any errors that
// occurred. Files that are not saved responses are ignored.
func OpenAll(path string) ([]*Response, []error) {
	var responses []*Response
	var errs []error
	if err := filepath.WalkDir(path, func(path string, info fs.DirEntry, err error) error {
		// Walking the file path will ignore errors.
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if info.IsDir() {
			return nil
		}
		if _, _, ok := splitExt(info.Name()); !ok {
			return nil
		}
		r, err := Open(path)
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		responses = append(responses, r)
		return nil
	}); err != nil {
		errs = append(errs, err)
		return nil, errs
	}
	return responses, errs
}

// Index is an index of saved responses by word. Words are compared with
// case and whitespace folded and syllable markers removed.
type Index struct {
	idx *index.Index[*Response]
}

// NewIndex returns an index of the given responses.
func NewIndex(responses []*Response) *Index {
	return &Index{
		idx: index.New(responses, func(r *Response) string {
			return foldWord(r.word)
		}),
	}
}

// Len returns the number of responses in the index.
func (i *Index) Len() int {
	return i.idx.Len()
}

// Search returns the responses saved for the word.
func (i *Index) Search(word string) []*Response {
	return i.idx.Search(foldWord(word))
}

// Prefix returns the responses whose word starts with prefix.
func (i *Index) Prefix(prefix string) []*Response {
	return i.idx.Prefix(foldWord(prefix))
}

func foldWord(word string) string {
	return folding.String(folding.Query(), word)
}
