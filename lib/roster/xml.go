package roster

import (
	"bytes"
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/xerrors"
)

type xmlWorkers struct {
	XMLName xml.Name    `xml:"workers"`
	Workers []xmlWorker `xml:"worker"`
}

type xmlWorker struct {
	Name *string `xml:"name"`
	Post *string `xml:"post"`
	Year *string `xml:"year"`
}

// charsetReader accepts any WHATWG encoding label in the XML declaration,
// including the "utf8" spelling written by some tools.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, xerrors.Errorf("unsupported charset %q: %w", label, err)
	}
	return enc.NewDecoder().Reader(input), nil
}

// Decode reads a roster document. Any child of the root element is treated
// as a worker record; records without a name, post or year are skipped. A
// year that is present but not a number is an error.
func Decode(r io.Reader) ([]Worker, error) {
	var doc struct {
		Workers []xmlWorker `xml:",any"`
	}
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charsetReader
	if err := dec.Decode(&doc); err != nil {
		return nil, xerrors.Errorf("failed to decode roster: %w", err)
	}
	workers := make([]Worker, 0, len(doc.Workers))
	for _, w := range doc.Workers {
		if w.Name == nil || *w.Name == "" || w.Post == nil || *w.Post == "" || w.Year == nil {
			continue
		}
		yearText := strings.TrimSpace(*w.Year)
		if yearText == "" {
			continue
		}
		year, err := strconv.Atoi(yearText)
		if err != nil {
			return nil, xerrors.Errorf("invalid year %q for %s: %w", yearText, *w.Name, err)
		}
		workers = append(workers, Worker{Name: *w.Name, Post: *w.Post, Year: year})
	}
	return workers, nil
}

// Encode writes workers as an indented XML document with a declaration.
func Encode(w io.Writer, workers []Worker) error {
	doc := xmlWorkers{Workers: make([]xmlWorker, 0, len(workers))}
	for _, worker := range workers {
		year := strconv.Itoa(worker.Year)
		doc.Workers = append(doc.Workers, xmlWorker{
			Name: &worker.Name,
			Post: &worker.Post,
			Year: &year,
		})
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return xerrors.Errorf("failed to write xml header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return xerrors.Errorf("failed to encode roster: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return xerrors.Errorf("failed to write roster: %w", err)
	}
	return nil
}

// Load replaces the roster with the contents of filename. The roster is left
// untouched if the file cannot be read or parsed.
func (s *Staff) Load(filename string) error {
	data, err := afero.ReadFile(s.cfg.Fs, filename)
	if err != nil {
		return xerrors.Errorf("failed to read %s: %w", filename, err)
	}
	workers, err := Decode(bytes.NewReader(data))
	if err != nil {
		return xerrors.Errorf("failed to load %s: %w", filename, err)
	}
	s.workers = workers
	return nil
}

func (s *Staff) Save(filename string) error {
	var buf bytes.Buffer
	if err := Encode(&buf, s.workers); err != nil {
		return err
	}
	if err := afero.WriteFile(s.cfg.Fs, filename, buf.Bytes(), 0o644); err != nil {
		return xerrors.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
