// Package production stores airport layouts on disk, packs them into
// compressed bundles and exports built automata for inspection.
package production

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/comalice/airportfta/internal/primitives"
)

// LayoutStore saves and loads layouts by name.
type LayoutStore interface {
	Save(ctx context.Context, l primitives.Layout) error
	Load(ctx context.Context, name string) (primitives.Layout, error)
	List(ctx context.Context) ([]string, error)
}

// fileStore keeps one file per layout in a directory.
type fileStore struct {
	dir       string
	ext       string
	marshal   func(any) ([]byte, error)
	unmarshal func([]byte, any) error
}

func newFileStore(dir, ext string, marshal func(any) ([]byte, error), unmarshal func([]byte, any) error) (fileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fileStore{}, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return fileStore{dir: dir, ext: ext, marshal: marshal, unmarshal: unmarshal}, nil
}

// ErrInvalidName is returned for layout names that cannot be used as a
// file name inside the store directory.
var ErrInvalidName = errors.New("invalid layout name")

func (s fileStore) path(name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.Contains(name, "..") ||
		strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return "", fmt.Errorf("%q: %w", name, ErrInvalidName)
	}
	return filepath.Join(s.dir, name+s.ext), nil
}

func (s fileStore) Save(ctx context.Context, l primitives.Layout) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := l.Validate(); err != nil {
		return fmt.Errorf("layout %q: %w", l.Name, err)
	}
	fn, err := s.path(l.Name)
	if err != nil {
		return err
	}

	data, err := s.marshal(l)
	if err != nil {
		return fmt.Errorf("%s marshal: %w", strings.TrimPrefix(s.ext, "."), err)
	}

	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fn, err)
	}
	return nil
}

func (s fileStore) Load(ctx context.Context, name string) (primitives.Layout, error) {
	if err := ctx.Err(); err != nil {
		return primitives.Layout{}, err
	}

	fn, err := s.path(name)
	if err != nil {
		return primitives.Layout{}, err
	}
	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return primitives.Layout{}, fmt.Errorf("layout %q: %w", name, os.ErrNotExist)
		}
		return primitives.Layout{}, fmt.Errorf("read %s: %w", fn, err)
	}

	var l primitives.Layout
	if err := s.unmarshal(data, &l); err != nil {
		return primitives.Layout{}, fmt.Errorf("%s: %w", fn, err)
	}
	if l.Name == "" {
		l.Name = name
	}
	if err := l.Validate(); err != nil {
		return primitives.Layout{}, fmt.Errorf("%s: %w", fn, err)
	}
	return l, nil
}

func (s fileStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	matches, err := filepath.Glob(filepath.Join(s.dir, "*"+s.ext))
	if err != nil {
		return nil, err
	}
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = strings.TrimSuffix(filepath.Base(m), s.ext)
	}
	slices.Sort(names)
	return names, nil
}

// JSONStore keeps layouts as indented JSON files.
type JSONStore struct {
	fileStore
}

// NewJSONStore creates a JSONStore, ensuring the directory exists.
func NewJSONStore(dir string) (*JSONStore, error) {
	fs, err := newFileStore(dir, ".json", func(v any) ([]byte, error) {
		return json.MarshalIndent(v, "", "  ")
	}, json.Unmarshal)
	if err != nil {
		return nil, err
	}
	return &JSONStore{fs}, nil
}

// YAMLStore keeps layouts as YAML files.
type YAMLStore struct {
	fileStore
}

// NewYAMLStore creates a YAMLStore, ensuring the directory exists.
func NewYAMLStore(dir string) (*YAMLStore, error) {
	fs, err := newFileStore(dir, ".yaml", yaml.Marshal, yaml.Unmarshal)
	if err != nil {
		return nil, err
	}
	return &YAMLStore{fs}, nil
}

// NewStore returns the store for format "json" or "yaml".
func NewStore(format, dir string) (LayoutStore, error) {
	var (
		s   LayoutStore
		err error
	)
	switch format {
	case "json":
		s, err = NewJSONStore(dir)
	case "yaml", "yml":
		s, err = NewYAMLStore(dir)
	default:
		return nil, fmt.Errorf("%s: unknown layout format", format)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}
