package main

import (
	"log/slog"
	"os"
	"strings"

	"storeicon/backup"
	"storeicon/imgfile"
	"storeicon/parallel"
	"storeicon/recolor"
	"storeicon/synth"

	"github.com/alecthomas/kong"
)

// defaultIcons are the web app manifest icons the commands work on unless told otherwise.
var defaultIcons = []string{
	"storage-container-192x192.png",
	"storage-container-512x512.png",
}

type cli struct {
	Workers int  `help:"Number of files processed at once, 0 uses every CPU" short:"j" default:"1"`
	Verbose bool `help:"Log debug messages" short:"v"`

	Synth   synth.CLICmd   `cmd:"" help:"Draw the storage icon from scratch at the given sizes"`
	Recolor recolor.CLICmd `cmd:"" help:"Put a disc behind existing icons and shade them brown"`
	Backup  backup.CLICmd  `cmd:"" help:"Copy the current icons into the backup folder"`
}

func newParser(c *cli, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("storeicon"),
		kong.Description("Generate the storage container app icons."),
		kong.UsageOnError(),
		kong.Vars{
			"icons":   strings.Join(defaultIcons, ","),
			"formats": strings.Join(imgfile.Formats, ","),
		},
	}, options...)
	return kong.New(c, options...)
}

func main() {
	var c cli
	parser, err := newParser(&c)
	if err != nil {
		panic(err)
	}

	kctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	if c.Verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	pool := parallel.Start(c.Workers)
	kctx.FatalIfErrorf(kctx.Run(pool))
}
