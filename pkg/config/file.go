package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// WriteOptions controls WriteFile.
type WriteOptions struct {
	// Overwrite replaces an existing file. Without it WriteFile fails with
	// ErrFileExists and leaves the file untouched.
	Overwrite bool

	// Header holds extra comment lines for the file header.
	Header []string
}

// WriteFile encodes snap into path. The format is chosen by the file
// extension. Missing parent directories are created. The file is written to
// a temporary file first and renamed into place, so readers never observe
// a partial configuration.
func WriteFile(path string, snap *Snapshot, opts WriteOptions) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}

	data, err := Marshal(snap, format, WithHeader(opts.Header...))
	if err != nil {
		return err
	}
	return writeFile(path, data, opts.Overwrite)
}

// WriteInfoFile writes the feature descriptions produced by DumpInfo to
// path as YAML, with the same overwrite protection as WriteFile.
func WriteInfoFile(path string, infos []FeatureInfo, opts WriteOptions) error {
	var buf bytes.Buffer
	if err := EncodeInfo(&buf, infos, WithHeader(opts.Header...)); err != nil {
		return err
	}
	return writeFile(path, buf.Bytes(), opts.Overwrite)
}

func writeFile(path string, data []byte, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrFileExists, path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// ReadFile parses the configuration file at path. The format is chosen by
// the file extension.
func ReadFile(path string) (*Snapshot, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	snap, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return snap, nil
}
