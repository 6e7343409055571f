package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"tidyext/internal/app"
	"tidyext/internal/config"
	appErrors "tidyext/internal/errors"
	"tidyext/internal/infra/fs"
	"tidyext/internal/notify"
	"tidyext/internal/presentation"
)

const notificationTitle = "File Organizer"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, appErrors.UserMessage(err))
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tidyext <directory> <extension>",
		Short: "Move files with a given extension into a folder named after it",
		Long: `tidyext scans a directory (non-recursively) for files with the given
extension, asks for confirmation, and moves them into <directory>/<extension>/.
The extension is matched case-insensitively and may be given with or without
a leading dot.`,
		Example:       "  tidyext ~/Downloads .MOV",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Parse(args)
			if err != nil {
				return appErrors.Wrap(appErrors.InvalidConfig, "config", "", err)
			}
			return run(cfg, os.Stdin, cmd.OutOrStdout())
		},
	}
}

func run(cfg config.Config, in io.Reader, out io.Writer) error {
	filesystem := fs.OSFS{}
	printer := presentation.Printer{Writer: out}
	dispatcher := notify.NewDispatcher(out)

	info, err := filesystem.Stat(cfg.SourceDir)
	if err != nil {
		return appErrors.Wrap(appErrors.NotFound, "stat", cfg.SourceDir, err)
	}
	if !info.IsDir() {
		return appErrors.Wrap(appErrors.NotFound, "stat", cfg.SourceDir, errors.New("not a directory"))
	}

	scanner := app.Scanner{FS: filesystem}
	matches, err := scanner.Discover(cfg.SourceDir, cfg.Ext)
	if err != nil {
		return appErrors.Wrap(appErrors.Internal, "scan", cfg.SourceDir, err)
	}

	if len(matches) == 0 {
		printer.PrintNoMatches(cfg.Ext)
		dispatcher.Dispatch(notify.Notification{
			Title: notificationTitle,
			Body:  "No files were moved.",
			Icon:  "dialog-information",
		})
		return nil
	}

	printer.PrintFound(len(matches), cfg.Ext, cfg.SourceDir)

	confirmer := app.Confirmer{In: in, Out: out}
	confirmed, err := confirmer.Confirm(len(matches), cfg.Ext)
	if err != nil {
		return appErrors.Wrap(appErrors.Internal, "prompt", "", err)
	}
	if !confirmed {
		printer.PrintCancelled()
		return nil
	}

	mover := app.Mover{FS: filesystem}
	dest, created, err := mover.EnsureDestination(cfg.SourceDir, cfg.Ext)
	if err != nil {
		return appErrors.Wrap(appErrors.IOFailure, "mkdir", dest, err)
	}
	if created {
		printer.PrintDirCreated(dest)
	}

	report := mover.MoveAll(matches, dest)
	for _, result := range report.Results {
		printer.PrintMoveResult(result)
	}
	printer.PrintSummary(report.Moved, cfg.Ext)

	if report.Moved > 0 {
		dispatcher.Dispatch(notify.Notification{
			Title: notificationTitle,
			Body:  fmt.Sprintf("Moved %d files to the '%s' folder.", report.Moved, cfg.Ext),
			Icon:  "folder-download",
		})
	} else {
		dispatcher.Dispatch(notify.Notification{
			Title: notificationTitle,
			Body:  "No files were moved.",
			Icon:  "dialog-information",
		})
	}
	return nil
}
