package driver

import (
	"bytes"
	"os"
	"path/filepath"

	"spacelint/internal/source"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Encode turns normalized content back into the on-disk form of file:
// CRLF line breaks and the BOM are restored when loading removed them.
func Encode(file *source.File, content []byte) []byte {
	out := content
	if file.Flags&source.FileNormalizedCRLF != 0 {
		out = bytes.ReplaceAll(out, []byte("\n"), []byte("\r\n"))
	}
	if file.Flags&source.FileHadBOM != 0 {
		out = append(append([]byte{}, utf8BOM...), out...)
	}
	return out
}

// WriteFixed writes the rewritten version of res back to res.Path,
// keeping the file mode. Unchanged files are left alone.
func WriteFixed(res *FileResult) error {
	if !res.Changed() {
		return nil
	}
	mode := os.FileMode(0o644)
	if info, err := os.Stat(res.Path); err == nil {
		mode = info.Mode()
	}
	tmp, err := os.CreateTemp(filepath.Dir(res.Path), ".spacelint-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(Encode(res.File, res.Fixed.Content)); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), mode.Perm()); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), res.Path)
}
