// Package backup keeps pristine copies of the icons before they are regenerated.
package backup

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"storeicon/imgfile"
	"storeicon/parallel"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Files  []string `arg:"" optional:"" sep:"," help:"Icon file names to back up" default:"${icons}"`
	Src    string   `help:"Folder holding the current icons" default:"."`
	Dest   string   `help:"Backup folder. Relative to src if not absolute" default:"backup"`
	Strict bool     `help:"Fail instead of skipping icons that already have a backup" default:"false"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	if len(c.Files) == 0 {
		return fmt.Errorf("no icons given")
	}

	srcDir, err := filepath.Abs(c.Src)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(srcDir); err == nil && !info.IsDir() {
			err = fmt.Errorf("not a directory")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid source path %q: %w", c.Src, err)
	}
	c.Src = srcDir

	if !filepath.IsAbs(c.Dest) {
		c.Dest = filepath.Join(srcDir, c.Dest)
	}

	return nil
}

func (c *CLICmd) Run(pool *parallel.Pool) error {
	if err := os.MkdirAll(c.Dest, 0o755); err != nil {
		return fmt.Errorf("unable to create backup folder %q: %w", c.Dest, err)
	}

	for _, name := range c.Files {
		src, dest := filepath.Join(c.Src, name), filepath.Join(c.Dest, name)
		pool.Do(src, func() error {
			err := imgfile.CopyFile(src, dest)
			if errors.Is(err, imgfile.ErrExists) && !c.Strict {
				slog.Info("backup already present, keeping it", "file", dest)
				return nil
			}
			return err
		})
	}

	if err := pool.Wait(); err != nil {
		return err
	}
	slog.Info("original icons backed up", "dir", c.Dest)
	return nil
}
