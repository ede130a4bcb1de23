package build

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"chb/archive"
	"chb/layout"
	"chb/match"
	"chb/misc"
	"chb/project"
	"chb/state"
	"chb/topic"
)

// Import brings a folder (or zip archive) of content files into the layout
// file as new topics. An existing layout is extended, a missing one is
// created from scratch.
func Import(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("import")

	layoutFile := cmd.Args().Get(0)
	if len(layoutFile) == 0 {
		return errors.New("no layout file has been specified")
	}
	layoutFile, err = filepath.Abs(layoutFile)
	if err != nil {
		return err
	}

	src := cmd.Args().Get(1)
	if len(src) == 0 {
		return errors.New("no import source has been specified")
	}
	src, err = filepath.Abs(src)
	if err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many sources", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	log.Info("Import starting", zap.String("layout", layoutFile), zap.String("source", src))
	defer func(start time.Time) {
		log.Info("Import completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	markupExt := env.Cfg.Document.Import.MarkupExtension

	prj, err := projectFor(cmd, layoutFile, markupExt, log)
	if err != nil {
		return err
	}
	reader := project.NewReader(log)

	var tree *topic.List
	if _, serr := os.Stat(layoutFile); serr == nil {
		if tree, err = layout.Load(layoutFile, prj, reader, markupExt, log); err != nil {
			return fmt.Errorf("unable to load layout: %w", err)
		}
	} else if os.IsNotExist(serr) {
		log.Debug("Layout file does not exist yet, starting empty", zap.String("file", layoutFile))
		tree = topic.NewList()
	} else {
		return serr
	}

	folder := src
	if cmd.Bool("from-archive") {
		tmp, err := os.MkdirTemp("", misc.GetAppName()+"-import-")
		if err != nil {
			return fmt.Errorf("unable to create staging directory: %w", err)
		}
		defer os.RemoveAll(tmp)

		if err := archive.Extract(src, tmp); err != nil {
			return fmt.Errorf("unable to extract archive %q: %w", src, err)
		}
		folder = tmp
	}

	before := 0
	for range tree.All() {
		before++
	}

	opts := match.ImportOptions{
		MarkupExt:    markupExt,
		DetectBinary: env.Cfg.Document.Import.DetectBinary,
	}
	if err := match.AddTopicsFromFolder(tree, folder, filepath.Dir(prj.Filename()), prj, reader, opts, log); err != nil {
		// partial imports keep whatever was added
		log.Warn("Some content files were skipped", zap.Error(err))
	}

	after := 0
	for range tree.All() {
		after++
	}
	log.Info("Topics imported", zap.Int("added", after-before), zap.Int("total", after))

	if env.Rpt != nil {
		env.Rpt.StoreData("topics.txt", []byte(tree.Dump()))
	}
	if err := layout.Save(tree, layoutFile); err != nil {
		return fmt.Errorf("unable to save layout: %w", err)
	}
	return nil
}
