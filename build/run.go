// Package build implements the CLI subcommand actions: producing the table
// of contents from a layout file and importing content folders into one.
package build

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosimple/slug"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"chb/config"
	"chb/layout"
	"chb/project"
	"chb/state"
	"chb/toc"
)

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("build")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no layout file has been specified")
	}
	src, err = filepath.Abs(src)
	if err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.Overwrite = cmd.Bool("overwrite")
	env.IncludeInvisible = cmd.Bool("include-invisible") || env.Cfg.Document.TOC.IncludeInvisible

	log.Info("Build starting", zap.String("layout", src))
	defer func(start time.Time) {
		log.Info("Build completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	markupExt := env.Cfg.Document.Import.MarkupExtension

	prj, err := projectFor(cmd, src, markupExt, log)
	if err != nil {
		return err
	}

	tree, err := layout.Load(src, prj, project.NewReader(log), markupExt, log)
	if err != nil {
		return fmt.Errorf("unable to load layout: %w", err)
	}
	if env.Rpt != nil {
		env.Rpt.StoreData("topics.txt", []byte(tree.Dump()))
	}

	if t := tree.DefaultTopic(); t != nil {
		log.Debug("Default topic", zap.String("id", t.ID))
	} else {
		log.Warn("No default topic is marked in the layout")
	}
	if t := tree.APIInsertionPoint(); t != nil {
		log.Debug("API content insertion point", zap.String("id", t.ID), zap.Stringer("mode", t.APIParentMode))
	}

	entries := toc.Generate(tree, env.IncludeInvisible)

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		name := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
		if dst, err = toc.ExpandOutputName(env.Cfg.Document.TOC.OutputNameTemplate, slug.Make(name)); err != nil {
			return fmt.Errorf("unable to expand output name: %w", err)
		}
		dst = config.CleanFileName(dst)
		dst = filepath.Join(filepath.Dir(src), dst)
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}

	if _, err := os.Stat(dst); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", dst)
		}
		log.Warn("Overwriting existing file", zap.String("file", dst))
	} else if !os.IsNotExist(err) {
		return err
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("unable to create output file %q: %w", dst, err)
	}
	if err := toc.Write(entries, out); err != nil {
		out.Close()
		return fmt.Errorf("unable to write table of contents: %w", err)
	}
	if err := out.Close(); err != nil {
		return err
	}

	log.Info("Table of contents written", zap.String("file", dst), zap.Int("topics", toc.Count(entries)))
	if env.Rpt != nil {
		env.Rpt.Store("result-"+filepath.Base(dst), dst)
	}
	return nil
}

// projectFor scans the content inventory anchored either at the project file
// given on the command line or next to the layout file.
func projectFor(cmd *cli.Command, layoutFile, markupExt string, log *zap.Logger) (*project.Project, error) {
	anchor := cmd.String("project")
	if len(anchor) == 0 {
		anchor = layoutFile
	}
	prj, err := project.Scan(anchor, markupExt, log)
	if err != nil {
		return nil, fmt.Errorf("unable to scan project: %w", err)
	}
	return prj, nil
}
