package convert

import (
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"
)

// writeFile streams write into a temp file next to path and renames it
// into place once write and the flush succeed. On any failure the temp
// file is removed and path is left untouched.
func writeFile(path string, write func(io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return WrapError(err, ErrFileWrite, "failed to create output file").
			WithContext("path", path)
	}
	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	bw := bufio.NewWriterSize(tmp, 64*1024)
	if err = write(bw); err != nil {
		var convErr *Error
		if errors.As(err, &convErr) {
			return err
		}
		return WrapError(err, ErrFileWrite, "failed to write output file").
			WithContext("path", path)
	}
	if err = bw.Flush(); err != nil {
		return WrapError(err, ErrFileWrite, "failed to write output file").
			WithContext("path", path)
	}
	if err = tmp.Sync(); err != nil {
		return WrapError(err, ErrFileWrite, "failed to sync output file").
			WithContext("path", path)
	}
	if err = tmp.Close(); err != nil {
		return WrapError(err, ErrFileWrite, "failed to close output file").
			WithContext("path", path)
	}
	if err = os.Chmod(tmpName, 0o644); err != nil {
		return WrapError(err, ErrFileWrite, "failed to set output file mode").
			WithContext("path", path)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return WrapError(err, ErrFileWrite, "failed to move output into place").
			WithContext("path", path)
	}
	return nil
}
