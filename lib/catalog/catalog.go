package catalog

import (
	"fmt"
	"slices"
	"strings"
)

type Track struct {
	Title       string
	Artist      string
	DurationSec int
}

// DurationFormatted returns the duration as M:SS.
func (t Track) DurationFormatted() string {
	return fmt.Sprintf("%d:%02d", t.DurationSec/60, t.DurationSec%60)
}

func (t Track) String() string {
	return fmt.Sprintf("%s - %s (%s)", t.Artist, t.Title, t.DurationFormatted())
}

// Catalog is an ordered collection of tracks.
type Catalog struct {
	tracks []Track
}

func New(tracks ...Track) *Catalog {
	return &Catalog{tracks: slices.Clone(tracks)}
}

func (c *Catalog) Add(track Track) {
	c.tracks = append(c.tracks, track)
}

func (c *Catalog) Tracks() []Track {
	return slices.Clone(c.tracks)
}

func (c *Catalog) Len() int {
	return len(c.tracks)
}

// ShorterThan returns the tracks strictly shorter than maxMinutes.
func (c *Catalog) ShorterThan(maxMinutes int) []Track {
	maxSeconds := maxMinutes * 60
	return c.filter(func(t Track) bool {
		return t.DurationSec < maxSeconds
	})
}

// ByArtist returns the tracks whose artist matches, ignoring case.
func (c *Catalog) ByArtist(artist string) []Track {
	return c.filter(func(t Track) bool {
		return strings.EqualFold(t.Artist, artist)
	})
}

func (c *Catalog) filter(keep func(Track) bool) []Track {
	result := []Track{}
	for _, t := range c.tracks {
		if keep(t) {
			result = append(result, t)
		}
	}
	return result
}

// SampleTracks is the built-in demo catalog.
func SampleTracks() []Track {
	return []Track{
		{Title: "Bohemian Rhapsody", Artist: "Queen", DurationSec: 354},
		{Title: "Stairway to Heaven", Artist: "Led Zeppelin", DurationSec: 482},
		{Title: "Yesterday", Artist: "The Beatles", DurationSec: 125},
		{Title: "Smells Like Teen Spirit", Artist: "Nirvana", DurationSec: 301},
		{Title: "Blinding Lights", Artist: "The Weeknd", DurationSec: 200},
		{Title: "Take Five", Artist: "Dave Brubeck", DurationSec: 175},
	}
}
