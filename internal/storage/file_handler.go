// Package storage reads and writes the note file and watches it for changes
// made by other programs.
package storage

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// NoteStore is where a note is read from and written to.
type NoteStore interface {
	Read() (string, error)
	Write(text string) error
}

// FileHandler reads and writes a note file.
//
// It remembers the content it last read or wrote, so that changes on disk made
// by others can be told apart from its own writes.
type FileHandler struct {
	mutex    sync.Mutex
	filename string

	known string
}

// NewFileHandler returns a file handler for the given file.
func NewFileHandler(filename string) *FileHandler {
	return &FileHandler{filename: filename}
}

// Filename returns the name of the handled file.
func (h *FileHandler) Filename() string { return h.filename }

// Read reads the note.
// A file that does not exist yet reads as an empty note.
func (h *FileHandler) Read() (string, error) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	text, err := h.readFromDisk()
	if err != nil {
		return "", err
	}
	h.known = text
	return text, nil
}

// Write writes the note.
// The file is replaced atomically: the text is written to a temporary file
// next to it which is then renamed over it.
func (h *FileHandler) Write(text string) error {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	mode := os.FileMode(0644)
	if info, err := os.Stat(h.filename); err == nil {
		mode = info.Mode().Perm()
	}

	f, err := os.CreateTemp(filepath.Dir(h.filename), "."+filepath.Base(h.filename)+".*")
	if err != nil {
		return fmt.Errorf("could not create temporary file for '%s' (%w)", h.filename, err)
	}
	tmpName := f.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	writer := bufio.NewWriter(f)
	if _, err := writer.WriteString(text); err != nil {
		f.Close()
		cleanup()
		return fmt.Errorf("could not write '%s' (%w)", tmpName, err)
	}
	if err := writer.Flush(); err != nil {
		f.Close()
		cleanup()
		return fmt.Errorf("could not write '%s' (%w)", tmpName, err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return fmt.Errorf("could not close '%s' (%w)", tmpName, err)
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		cleanup()
		return fmt.Errorf("could not set mode of '%s' (%w)", tmpName, err)
	}
	if err := os.Rename(tmpName, h.filename); err != nil {
		cleanup()
		return fmt.Errorf("could not replace '%s' (%w)", h.filename, err)
	}

	h.known = text
	return nil
}

// Changed reads the note and reports whether its content differs from what
// was last read or written through this handler.
func (h *FileHandler) Changed() (text string, changed bool, err error) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	text, err = h.readFromDisk()
	if err != nil {
		return "", false, err
	}
	if text == h.known {
		return text, false, nil
	}
	h.known = text
	return text, true, nil
}

func (h *FileHandler) readFromDisk() (string, error) {
	data, err := os.ReadFile(h.filename)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("could not read '%s' (%w)", h.filename, err)
	}
	return string(data), nil
}
