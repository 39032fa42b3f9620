package history

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
	"time"
)

// Store is the run log backed by one JSON file. Every save rewrites the whole
// file. A failed save leaves the in-memory log ahead of the disk copy; the
// error is returned but the append is never rolled back.
type Store struct {
	mu   sync.Mutex
	path string
	runs []Record

	now func() time.Time
}

// Open loads the run log at path. A missing or unreadable file yields an
// empty log, never an error: losing history must not block a new run.
func Open(path string) *Store {
	s := &Store{path: path, now: time.Now}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("history: reading %s: %v (starting fresh)", path, err)
		}
		return s
	}
	var runs []Record
	if err := json.Unmarshal(data, &runs); err != nil {
		log.Printf("history: parsing %s: %v (starting fresh)", path, err)
		return s
	}
	for i := range runs {
		runs[i].normalize()
	}
	s.runs = runs
	return s
}

// Add stamps the record with the next run number and the current time,
// appends it, and saves. The returned run number is valid even when the save
// fails.
func (s *Store) Add(rec Record) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec.normalize()
	rec.RunNumber = len(s.runs) + 1
	rec.Timestamp = s.now().Format(time.RFC3339)
	s.runs = append(s.runs, rec)
	return rec.RunNumber, s.save()
}

// Save writes the whole log to disk.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save()
}

func (s *Store) save() error {
	data, err := json.MarshalIndent(s.runs, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding run log: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	return nil
}

// Export writes the log to another location, leaving the store's path alone.
func (s *Store) Export(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := json.MarshalIndent(s.runs, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding run log: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Import appends records from another log file and saves.
func (s *Store) Import(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	var runs []Record
	if err := json.Unmarshal(data, &runs); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range runs {
		runs[i].normalize()
		runs[i].RunNumber = len(s.runs) + 1
		s.runs = append(s.runs, runs[i])
	}
	return s.save()
}

// Clear wipes the log in memory and on disk.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs = nil
	return s.save()
}

// Len is the number of recorded runs.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.runs)
}

// Runs returns a copy of the full log in record order.
func (s *Store) Runs() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, len(s.runs))
	copy(out, s.runs)
	return out
}
