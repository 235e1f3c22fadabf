package journal

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Journal is a durable append-only log of JSON records, one per line. It is
// the middle tier of the layered chat store: writes that cannot reach the
// primary store are appended here and survive a process restart.
type Journal[T any] struct {
	mu   sync.Mutex
	path string
	file *os.File
}

func Open[T any](path string) (*Journal[T], error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("journal: create dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("journal: open: %w", err)
	}
	return &Journal[T]{path: path, file: f}, nil
}

// Append writes one record and syncs it to disk before returning.
func (j *Journal[T]) Append(record T) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("journal: marshal: %w", err)
	}
	data = append(data, '\n')

	j.mu.Lock()
	defer j.mu.Unlock()

	if _, err := j.file.Write(data); err != nil {
		return fmt.Errorf("journal: write: %w", err)
	}
	return j.file.Sync()
}

// All returns every record in append order. Unparseable lines are skipped so
// a torn tail write cannot make the whole journal unreadable.
func (j *Journal[T]) All() ([]T, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	f, err := os.Open(j.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("journal: read: %w", err)
	}
	defer f.Close()

	var records []T
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var record T
		if err := json.Unmarshal(line, &record); err != nil {
			continue
		}
		records = append(records, record)
	}
	return records, scanner.Err()
}

// Compact rewrites the journal keeping only records for which keep returns
// true, and reports how many were dropped.
func (j *Journal[T]) Compact(keep func(T) bool) (int, error) {
	records, err := j.All()
	if err != nil {
		return 0, err
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	tmp := j.path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, fmt.Errorf("journal: compact: %w", err)
	}

	dropped := 0
	w := bufio.NewWriter(f)
	for _, record := range records {
		if !keep(record) {
			dropped++
			continue
		}
		data, err := json.Marshal(record)
		if err != nil {
			continue
		}
		w.Write(data)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return 0, err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return 0, err
	}
	f.Close()

	j.file.Close()
	if err := os.Rename(tmp, j.path); err != nil {
		return 0, fmt.Errorf("journal: replace: %w", err)
	}
	j.file, err = os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, fmt.Errorf("journal: reopen: %w", err)
	}
	return dropped, nil
}

func (j *Journal[T]) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.file.Close()
}
