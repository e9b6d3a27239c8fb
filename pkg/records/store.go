package records

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
)

var (
	ErrSourceMissing = errors.New("data file not found")
	ErrNoHeader      = errors.New("data file has no header row")
	ErrNoRows        = errors.New("no valid rows found")
)

// Store holds the records of one entity kind, loaded from a CSV source.
// Load is performed once and cached; Reload picks up source changes.
// Safe for concurrent use.
type Store struct {
	kind Kind
	path string

	mu      sync.RWMutex
	loaded  bool
	records []Record
	byName  map[string]int // folded name -> index into records
	loadErr error
}

func NewStore(kind Kind, path string) *Store {
	return &Store{kind: kind, path: path}
}

// Reload re-parses the source, replacing the cached records. A failed reload
// keeps the error cached so callers see it on every access until fixed.
func (s *Store) Reload() error {
	records, byName, err := s.parse()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = true
	s.records = records
	s.byName = byName
	s.loadErr = err
	return err
}

// ensure loads the source on first access.
func (s *Store) ensure() error {
	s.mu.RLock()
	if s.loaded {
		err := s.loadErr
		s.mu.RUnlock()
		return err
	}
	s.mu.RUnlock()
	return s.Reload()
}

// parse reads the CSV with a header row. Field values are trimmed, multi-value
// fields split on ";". Rows missing the key column are skipped. When two rows
// share a case-folded name, the first one wins.
func (s *Store) parse() ([]Record, map[string]int, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%w: %s", ErrSourceMissing, s.path)
		}
		return nil, nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, nil, fmt.Errorf("%w: %s", ErrNoHeader, s.path)
	}

	header := make([]string, len(rows[0]))
	empty := true
	for i, h := range rows[0] {
		header[i] = strings.ToLower(strings.TrimSpace(h))
		if header[i] != "" {
			empty = false
		}
	}
	if empty {
		return nil, nil, fmt.Errorf("%w: %s", ErrNoHeader, s.path)
	}

	key := s.kind.KeyColumn()
	var records []Record
	byName := make(map[string]int)
	for _, row := range rows[1:] {
		fields := make(map[string]string, len(header))
		for i, col := range header {
			if col == "" || i >= len(row) {
				continue
			}
			fields[col] = strings.TrimSpace(row[i])
		}
		name := fields[key]
		if name == "" {
			continue
		}
		folded := strings.ToLower(name)
		if _, exists := byName[folded]; exists {
			continue // first occurrence wins
		}
		records = append(records, Record{
			Name:        name,
			Description: fields["description"],
			Skills:      splitMulti(fields["skills"]),
			Subjects:    splitMulti(fields["subjects"]),
			Steps:       fields["steps"],
		})
		byName[folded] = len(records) - 1
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%w: %s", ErrNoRows, s.path)
	}
	return records, byName, nil
}

// List returns the unique record names in first-occurrence order.
func (s *Store) List() ([]string, error) {
	if err := s.ensure(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, len(s.records))
	for i, r := range s.records {
		names[i] = r.Name
	}
	return names, nil
}

// Details renders the detail block for an exact (case/whitespace insensitive)
// name match. Its second return is false when no record matches, which is a
// normal outcome, not an error.
func (s *Store) Details(name string) (string, bool, error) {
	if err := s.ensure(); err != nil {
		return "", false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", false, nil
	}
	return s.records[idx].Details(s.kind), true, nil
}

func splitMulti(value string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ";") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
