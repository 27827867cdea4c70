package actions

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/whatyoubendoing/spotify2csv/internal/adapters"
	"github.com/whatyoubendoing/spotify2csv/internal/porter"
	spotifyPorter "github.com/whatyoubendoing/spotify2csv/internal/spotify"
	"github.com/whatyoubendoing/spotify2csv/internal/utils"
)

// swapped in tests
var (
	openBrowser      = utils.OpenBrowser
	stdinIsTerminal  = func() bool { return isTerminal(os.Stdin) }
	stderrIsTerminal = func() bool { return isTerminal(os.Stderr) }
)

// ExportPlaylist resolves the playlist URL given as first argument,
// fetches it and writes the CSV to stdout or the --output file.
// Nothing is written on failure.
func ExportPlaylist(c *cli.Context) error {
	playlistURL := c.Args().First()
	if playlistURL == "" && c.Bool("interactive") && stdinIsTerminal() {
		err := huh.NewInput().
			Title("Enter the Spotify playlist URL").
			Placeholder("https://open.spotify.com/playlist/...").
			Value(&playlistURL).
			Run()
		if err != nil {
			return err
		}
		playlistURL = strings.TrimSpace(playlistURL)
	}

	logger := NewLogger(c.Bool("verbose"), c.App.ErrWriter)
	defer logger.Sync() //nolint:errcheck

	// initialize porter
	p, err := porter.NewPorterWithOptions(string(adapters.SpotifyPlatform), adapters.Options{
		BaseURL:   c.String("base-url"),
		UserAgent: c.String("user-agent"),
		Timeout:   c.Duration("timeout"),
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	playlistID, err := p.ResolvePlaylistID(playlistURL)
	if err != nil {
		return err
	}
	logger.Debug("resolved playlist id", zap.String("id", playlistID))

	var out string
	export := func(ctx context.Context) error {
		var err error
		out, err = p.ExportPlaylistToCSV(ctx, playlistID)
		return err
	}

	// the spinner draws on stderr, stdout only carries the CSV
	if c.Bool("progress") && stderrIsTerminal() {
		err = spinner.New().
			Output(c.App.ErrWriter).
			Title("Exporting...").
			Context(c.Context).
			ActionWithErr(export).
			Run()
	} else {
		err = export(c.Context)
	}
	if err != nil {
		var missing *spotifyPorter.MissingDataError
		if c.Bool("inspect") && errors.As(err, &missing) {
			if err := openBrowser(missing.EmbedURL); err != nil {
				logger.Warn("could not open embed page", zap.Error(err))
			}
		}
		return err
	}

	return writeOutput(c, logger, out)
}

func writeOutput(c *cli.Context, logger *zap.Logger, out string) error {
	destFile := c.String("output")
	if destFile == "" {
		_, err := fmt.Fprint(c.App.Writer, out)
		return err
	}

	// Ensure filepath has .csv extension
	if !strings.HasSuffix(destFile, ".csv") {
		destFile += ".csv"
	}
	if err := os.WriteFile(destFile, []byte(out), 0o644); err != nil {
		return fmt.Errorf("error writing CSV file: %v", err)
	}
	logger.Info("playlist exported", zap.String("file", destFile))
	return nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
