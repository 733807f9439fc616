package synth

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"storeicon/imgfile"
	"storeicon/parallel"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Size       []int   `help:"Icon sizes in pixels, one file per size" default:"192,512"`
	Dest       string  `help:"Destination folder for the icons" default:"."`
	Name       string  `help:"File name pattern, formatted with the icon size" default:"storage-container-%[1]dx%[1]d.png"`
	Background string  `help:"Background disc color as #RGB, #RGBA, #RRGGBB or #RRGGBBAA" default:"#F5F5F0"`
	Format     string  `help:"Output image format" enum:"${formats}" default:"png"`
	Palette    Palette `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	if len(c.Size) == 0 {
		return fmt.Errorf("no icon sizes given")
	}
	for _, size := range c.Size {
		if size <= 0 {
			return fmt.Errorf("invalid icon size: %d", size)
		}
	}

	// every size needs its own well-formed file name
	names := make(map[string]int, len(c.Size))
	for _, size := range c.Size {
		name := c.fileName(size)
		if strings.Contains(name, "%!") {
			return fmt.Errorf("invalid name pattern %q: it must use the size exactly once as %%d", c.Name)
		}
		if other, ok := names[name]; ok && other != size {
			return fmt.Errorf("invalid name pattern %q: sizes %d and %d both map to %q", c.Name, other, size, name)
		}
		names[name] = size
	}

	dest, err := filepath.Abs(c.Dest)
	if err != nil {
		return fmt.Errorf("invalid destination path %q: %w", c.Dest, err)
	}
	c.Dest = dest

	c.Palette = DefaultPalette
	if c.Palette.Background, err = imgfile.ParseHexColor(c.Background); err != nil {
		return fmt.Errorf("invalid background: %w", err)
	}

	return nil
}

func (c *CLICmd) Run(pool *parallel.Pool) error {
	if err := os.MkdirAll(c.Dest, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.Dest, err)
	}

	for _, size := range c.Size {
		path := filepath.Join(c.Dest, c.fileName(size))
		pool.Do(path, func() error {
			return c.create(size, path)
		})
	}

	return pool.Wait()
}

func (c *CLICmd) fileName(size int) string {
	return fmt.Sprintf(c.Name, size)
}

func (c *CLICmd) create(size int, path string) error {
	logger := slog.Default().With("file", path, "size", size)

	icon, err := Draw(size, c.Palette)
	if err != nil {
		return err
	}
	if err = imgfile.Save(icon, c.Format, path); err != nil {
		return err
	}

	logger.Info("created icon")
	return nil
}
