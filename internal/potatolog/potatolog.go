// Package potatolog keeps (JSON) log entries in memory, so they can be shown
// in the UI.
package potatolog

import (
	"encoding/json"
	"fmt"
	"sync"
)

// LogEntry is a single log entry.
type LogEntry = map[string]any

// DefaultCapacity is the number of entries the global log keeps.
const DefaultCapacity = 1000

// GlobalMemoryLogReaderWriter is a global MemoryLogReaderWriter.
var GlobalMemoryLogReaderWriter = NewMemoryLogReaderWriter(DefaultCapacity)

// MemoryLogReaderWriter is a simple in-memory log reader and writer.
// It keeps at most its capacity of entries, dropping the oldest.
type MemoryLogReaderWriter struct {
	mtx      sync.Mutex
	log      []LogEntry
	capacity int
}

// NewMemoryLogReaderWriter returns a new, empty log keeping at most capacity
// entries (or all entries, if capacity is not positive).
func NewMemoryLogReaderWriter(capacity int) *MemoryLogReaderWriter {
	return &MemoryLogReaderWriter{
		log:      []LogEntry{},
		capacity: capacity,
	}
}

// Write appends a log entry to the log.
func (w *MemoryLogReaderWriter) Write(p []byte) (int, error) {
	entry := LogEntry{}
	err := json.Unmarshal(p, &entry)
	if err != nil {
		return 0, fmt.Errorf("could not unmarshal log entry (err:%s) (input:'%s')", err.Error(), string(p))
	}

	w.mtx.Lock()
	defer w.mtx.Unlock()
	w.log = append(w.log, entry)
	if w.capacity > 0 && len(w.log) > w.capacity {
		w.log = append([]LogEntry(nil), w.log[len(w.log)-w.capacity:]...)
	}
	return len(p), nil
}

// Get returns a copy of the log, oldest entry first.
func (w *MemoryLogReaderWriter) Get() []LogEntry {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	result := make([]LogEntry, len(w.log))
	copy(result, w.log)
	return result
}

// Latest returns the most recent entry for which the filter returns true.
func (w *MemoryLogReaderWriter) Latest(filter func(LogEntry) bool) (LogEntry, bool) {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	for i := len(w.log) - 1; i >= 0; i-- {
		if filter == nil || filter(w.log[i]) {
			return w.log[i], true
		}
	}
	return nil, false
}

// LogReader allows reading access to a log.
type LogReader interface {
	Get() []LogEntry
}
