package roster

import (
	"cmp"
	"slices"
	"time"

	"github.com/spf13/afero"
)

// Worker is a single staff record.
type Worker struct {
	Name string
	Post string
	// Year is the year the worker was hired.
	Year int
}

type StaffConfig struct {
	// Fs is where Load and Save read and write. Defaults to the OS filesystem.
	Fs afero.Fs
	// GetTime is used by Select to compute service length. Defaults to time.Now.
	GetTime func() time.Time
}

// Staff is a roster of workers kept sorted by name.
type Staff struct {
	cfg     StaffConfig
	workers []Worker
}

func NewStaff(cfg StaffConfig) *Staff {
	if cfg.Fs == nil {
		cfg.Fs = afero.NewOsFs()
	}
	if cfg.GetTime == nil {
		cfg.GetTime = time.Now
	}
	return &Staff{cfg: cfg}
}

// Add inserts a worker. Workers with equal names keep their insertion order.
func (s *Staff) Add(name, post string, year int) {
	s.workers = append(s.workers, Worker{Name: name, Post: post, Year: year})
	slices.SortStableFunc(s.workers, func(a, b Worker) int {
		return cmp.Compare(a.Name, b.Name)
	})
}

// Select returns the workers who have served at least period years as of
// the current calendar year.
func (s *Staff) Select(period int) []Worker {
	year := s.cfg.GetTime().Year()
	var result []Worker
	for _, w := range s.workers {
		if year-w.Year >= period {
			result = append(result, w)
		}
	}
	return result
}

func (s *Staff) Workers() []Worker {
	return slices.Clone(s.workers)
}

func (s *Staff) Len() int {
	return len(s.workers)
}
