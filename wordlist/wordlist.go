// Package wordlist reads newline separated word lists and feeds them to a
// wordgraph.Builder.
//
// Files are memory-mapped, so opening a large lexicon costs no heap beyond
// the words currently being inserted.
package wordlist

import (
	"bufio"
	"io"
	"iter"
	"strings"

	"golang.org/x/exp/mmap"

	"github.com/milden6/wordgraph"
)

// maxWordLen bounds a single line. Longer lines make Words stop with an error.
const maxWordLen = 1 << 20

// List is a word list backed by an io.ReaderAt.
type List struct {
	r    io.ReaderAt
	size int64
	err  error
}

// Open memory-maps the file at filename. The caller must Close the list.
func Open(filename string) (*List, error) {
	f, err := mmap.Open(filename)
	if err != nil {
		return nil, wordgraph.WrapError(wordgraph.ErrCodeInvalidInput, err, "open word list %s", filename)
	}

	return Read(f, int64(f.Len())), nil
}

// Read returns a list over the first size bytes of r.
func Read(r io.ReaderAt, size int64) *List {
	return &List{r: r, size: size}
}

// Words yields one word per line. A trailing carriage return is dropped and
// empty lines are skipped; no other normalization is done. Each call reads
// the list from the start.
func (l *List) Words() iter.Seq[string] {
	return func(yield func(string) bool) {
		l.err = nil
		scanner := bufio.NewScanner(io.NewSectionReader(l.r, 0, l.size))
		scanner.Buffer(make([]byte, 0, 64*1024), maxWordLen)
		for scanner.Scan() {
			word := strings.TrimSuffix(scanner.Text(), "\r")
			if word == "" {
				continue
			}
			if !yield(word) {
				return
			}
		}
		l.err = scanner.Err()
	}
}

// Err returns the error, if any, that stopped the last Words iteration.
func (l *List) Err() error {
	if l.err == nil {
		return nil
	}
	return wordgraph.WrapError(wordgraph.ErrCodeInvalidInput, l.err, "read word list")
}

// Close releases the underlying reader if it is closable.
func (l *List) Close() error {
	if closer, ok := l.r.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// Load inserts every word into b and returns how many words were read,
// including repeats.
func Load(b wordgraph.Builder, words iter.Seq[string]) (int, error) {
	n := 0
	for word := range words {
		if err := b.Insert(word); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
