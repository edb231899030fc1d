package penrose

import (
	"os"
	"path/filepath"
)

// safeWrite calls write with a temp file next to fname then renames it
// over fname, so a failed render never leaves a half written file.
func safeWrite(fname string, write func(tmp string) error) error {
	dir := filepath.Dir(fname)
	if err := MaybeCreateDir(dir); err != nil {
		return err
	}

	ext := filepath.Ext(fname)
	tmpfile, err := os.CreateTemp(dir, "penrose.*"+ext)
	if err != nil {
		return err
	}
	tmp := tmpfile.Name()
	if err := tmpfile.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := write(tmp); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, fname); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Chmod(fname, 0664)
}

// MaybeCreateDir creates dir and its parents if they are missing.
func MaybeCreateDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0775)
}
