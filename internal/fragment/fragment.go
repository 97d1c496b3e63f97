package fragment

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"
)

var (
	ErrNotFound    = errors.New("fragment not found")
	ErrInvalidUTF8 = errors.New("fragment is not valid UTF-8")
)

// Source is the HTML snippet embedded into the test page. It is read from
// disk on every call; nothing is cached.
type Source struct {
	root string
	rel  string
}

type Info struct {
	Path    string    `json:"path"`
	Exists  bool      `json:"exists"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"mod_time,omitempty"`
}

func New(root, rel string) *Source {
	return &Source{root: root, rel: rel}
}

// Path is the on-disk location of the fragment.
func (s *Source) Path() string {
	return filepath.Join(s.root, filepath.FromSlash(s.rel))
}

// Rel is the configured path relative to the serving root.
func (s *Source) Rel() string { return s.rel }

func (s *Source) Read() (string, error) {
	b, err := os.ReadFile(s.Path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, s.rel)
		}
		return "", fmt.Errorf("read %s: %w", s.rel, err)
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: %s", ErrInvalidUTF8, s.rel)
	}
	return string(b), nil
}

// Stat reports whether the fragment exists without reading it.
func (s *Source) Stat() (Info, error) {
	info := Info{Path: s.rel}
	fi, err := os.Stat(s.Path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return info, nil
		}
		return info, fmt.Errorf("stat %s: %w", s.rel, err)
	}
	info.Exists = !fi.IsDir()
	info.Size = fi.Size()
	info.ModTime = fi.ModTime()
	return info, nil
}
