package imgfile

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
)

// CopyFile copies the regular file src to dest. It refuses to replace an existing dest.
func CopyFile(src, dest string) error {
	slog.Info("copying", "from", src, "to", dest)

	if err := checkFile(src, dest); err != nil {
		return err
	}

	inFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("could not open source file %q: %w", src, err)
	}
	defer func() {
		if closeErr := inFile.Close(); closeErr != nil {
			slog.Error("could not close source file", "name", src, "error", closeErr)
		}
	}()

	outFile, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("could not open destination file %q: %w", dest, err)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil {
			slog.Error("could not close destination file", "name", dest, "error", closeErr)
		}
	}()

	if _, err = io.Copy(outFile, inFile); err != nil {
		return fmt.Errorf("could not copy from %q to %q: %w", src, dest, err)
	}

	if err = outFile.Sync(); err != nil {
		return fmt.Errorf("could not flush destination file %q: %w", dest, err)
	}
	return nil
}

// ErrExists is returned by CopyFile when the destination is already present.
var ErrExists = errors.New("destination file already exists")

func checkFile(src, dest string) error {
	srcFileInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("cannot stat source file %q: %w", src, err)
	}
	if !srcFileInfo.Mode().IsRegular() {
		return fmt.Errorf("cannot copy non-regular file %q: %s", srcFileInfo.Name(), srcFileInfo.Mode().String())
	}
	if _, err := os.Stat(dest); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("cannot stat destination file %q: %w", dest, err)
		}
	} else {
		return fmt.Errorf("%w: %q", ErrExists, dest)
	}

	return nil
}
