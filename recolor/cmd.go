package recolor

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"

	"storeicon/imgfile"
	"storeicon/parallel"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Files           []string    `arg:"" optional:"" sep:"," help:"Icon file names to recolor" default:"${icons}"`
	Src             string      `help:"Folder holding the original icons. Relative to dest if not absolute" default:"backup"`
	Dest            string      `help:"Destination folder for recolored icons, written under the same names" default:"."`
	Background      string      `help:"Background disc color as #RGB, #RGBA, #RRGGBB or #RRGGBBAA" default:"#FFB3BA"`
	Tint            string      `help:"Color visible pixels are shaded with" default:"#8B4513"`
	Resize          int         `help:"Rescale the source to a square of this many pixels first, 0 keeps its size" default:"0"`
	Format          string      `help:"Output image format" enum:"${formats}" default:"png"`
	BackgroundColor color.NRGBA `kong:"-"`
	TintColor       color.NRGBA `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	if len(c.Files) == 0 {
		return fmt.Errorf("no icons given")
	}

	dest, err := filepath.Abs(c.Dest)
	if err != nil {
		return fmt.Errorf("invalid destination path %q: %w", c.Dest, err)
	}
	c.Dest = dest

	if !filepath.IsAbs(c.Src) {
		c.Src = filepath.Join(dest, c.Src)
	}
	var info os.FileInfo
	if info, err = os.Stat(c.Src); err == nil && !info.IsDir() {
		err = fmt.Errorf("not a directory")
	}
	if err != nil {
		return fmt.Errorf("invalid source path %q: %w", c.Src, err)
	}

	if c.Resize < 0 {
		return fmt.Errorf("invalid resize size: %d", c.Resize)
	}

	if c.BackgroundColor, err = imgfile.ParseHexColor(c.Background); err != nil {
		return fmt.Errorf("invalid background: %w", err)
	}
	if c.TintColor, err = imgfile.ParseHexColor(c.Tint); err != nil {
		return fmt.Errorf("invalid tint: %w", err)
	}

	return nil
}

func (c *CLICmd) Run(pool *parallel.Pool) error {
	if err := os.MkdirAll(c.Dest, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.Dest, err)
	}

	for _, name := range c.Files {
		pool.Do(name, func() error {
			return c.update(name)
		})
	}

	return pool.Wait()
}

func (c *CLICmd) update(name string) error {
	srcPath := filepath.Join(c.Src, name)
	destPath := filepath.Join(c.Dest, name)
	logger := slog.Default().With("file", srcPath)

	img, imgType, err := imgfile.Load(srcPath)
	if err != nil {
		return err
	}
	logger.Debug("loaded icon", "format", imgType, "bounds", img.Bounds())

	if c.Resize > 0 {
		img = resize(logger, img, c.Resize)
	}

	icon := Recolor(img, c.BackgroundColor, c.TintColor)
	if err = imgfile.Save(icon, c.Format, destPath); err != nil {
		return err
	}

	logger.Info("updated icon", "dest", destPath)
	return nil
}
