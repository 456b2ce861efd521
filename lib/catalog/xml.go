package catalog

import (
	"bytes"
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

type xmlTracks struct {
	XMLName xml.Name   `xml:"tracks"`
	Tracks  []xmlTrack `xml:"track"`
}

type xmlTrack struct {
	Title    string  `xml:"title"`
	Artist   string  `xml:"artist"`
	Duration *string `xml:"duration"`
}

// parseDuration requires a non-negative whole number of seconds.
func parseDuration(t xmlTrack) (int, error) {
	if t.Duration == nil || strings.TrimSpace(*t.Duration) == "" {
		return 0, xerrors.Errorf("track %q has no duration", t.Title)
	}
	text := strings.TrimSpace(*t.Duration)
	seconds, err := strconv.Atoi(text)
	if err != nil {
		return 0, xerrors.Errorf("track %q has invalid duration %q: %w", t.Title, text, err)
	}
	if seconds < 0 {
		return 0, xerrors.Errorf("track %q has negative duration %d", t.Title, seconds)
	}
	return seconds, nil
}

// Load reads a catalog file of <tracks><track>...</track></tracks>.
func Load(fs afero.Fs, filename string) (*Catalog, error) {
	data, err := afero.ReadFile(fs, filename)
	if err != nil {
		return nil, xerrors.Errorf("failed to read %s: %w", filename, err)
	}
	var doc xmlTracks
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, xerrors.Errorf("failed to decode %s: %w", filename, err)
	}
	c := New()
	for _, t := range doc.Tracks {
		seconds, err := parseDuration(t)
		if err != nil {
			return nil, xerrors.Errorf("failed to load %s: %w", filename, err)
		}
		c.Add(Track{Title: t.Title, Artist: t.Artist, DurationSec: seconds})
	}
	return c, nil
}

func (c *Catalog) Save(fs afero.Fs, filename string) error {
	doc := xmlTracks{Tracks: make([]xmlTrack, 0, len(c.tracks))}
	for _, t := range c.tracks {
		duration := strconv.Itoa(t.DurationSec)
		doc.Tracks = append(doc.Tracks, xmlTrack{Title: t.Title, Artist: t.Artist, Duration: &duration})
	}
	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return xerrors.Errorf("failed to encode catalog: %w", err)
	}
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.Write(data)
	buf.WriteString("\n")
	if err := afero.WriteFile(fs, filename, buf.Bytes(), 0o644); err != nil {
		return xerrors.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
