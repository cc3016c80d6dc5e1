package production

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/comalice/airportfta/internal/primitives"
)

const bundleVersion = 1

type bundle struct {
	Version int                 `msgpack:"version"`
	Layouts []primitives.Layout `msgpack:"layouts"`
}

// WriteBundle writes layouts to w as msgpack compressed with zstd.
func WriteBundle(w io.Writer, layouts []primitives.Layout) error {
	for i := range layouts {
		if err := layouts[i].Validate(); err != nil {
			return fmt.Errorf("layout %q: %w", layouts[i].Name, err)
		}
	}

	zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return fmt.Errorf("failed to create zstd writer: %w", err)
	}
	defer zw.Close()

	if err := msgpack.NewEncoder(zw).Encode(bundle{Version: bundleVersion, Layouts: layouts}); err != nil {
		return fmt.Errorf("failed to encode bundle: %w", err)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to close zstd writer: %w", err)
	}
	return nil
}

// ReadBundle reads layouts written by WriteBundle.
func ReadBundle(r io.Reader) ([]primitives.Layout, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %w", err)
	}
	defer zr.Close()

	var b bundle
	if err := msgpack.NewDecoder(zr).Decode(&b); err != nil {
		return nil, fmt.Errorf("failed to decode bundle: %w", err)
	}
	if b.Version != bundleVersion {
		return nil, fmt.Errorf("bundle version %d, want %d", b.Version, bundleVersion)
	}
	for i := range b.Layouts {
		if err := b.Layouts[i].Validate(); err != nil {
			return nil, fmt.Errorf("layout %q: %w", b.Layouts[i].Name, err)
		}
	}
	return b.Layouts, nil
}

// LoadOverrides reads replacement layouts from a file. The format follows
// the extension: .yaml or .yml and .json hold a list of layouts, .zst and
// .bundle a bundle written by WriteBundle.
func LoadOverrides(path string) ([]primitives.Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var layouts []primitives.Layout
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.NewDecoder(f).Decode(&layouts)
	case ".json":
		err = json.NewDecoder(f).Decode(&layouts)
	case ".zst", ".bundle":
		return ReadBundle(f)
	default:
		return nil, fmt.Errorf("%s: unknown layout file type %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	for i := range layouts {
		if err := layouts[i].Validate(); err != nil {
			return nil, fmt.Errorf("%s: layout %d: %w", path, i, err)
		}
	}
	return layouts, nil
}
