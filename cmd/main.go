package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/whatyoubendoing/spotify2csv/internal/actions"
	"github.com/whatyoubendoing/spotify2csv/internal/porter"
	spotifyPorter "github.com/whatyoubendoing/spotify2csv/internal/spotify"
)

const usageHint = "Please provide a valid Spotify URL, e.g., https://open.spotify.com/playlist/...\n"

func main() {
	// .env is optional
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the app and maps its outcome to an exit code
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	err := newApp(stdout, stderr).RunContext(ctx, args)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, porter.ErrInvalidURL):
		fmt.Fprint(stderr, usageHint)
		return 2
	default:
		fmt.Fprintf(stderr, "Error: %s\n", err.Error())
		return 2
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "spotify2csv",
		Usage:     "Export the tracks of a public Spotify playlist as CSV.",
		ArgsUsage: "<playlist-url>",
		Writer:    stdout,
		ErrWriter: stderr,
		// "help" and -h fall through to the action or the usage error path
		HideHelp:        true,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write CSV to `FILE` instead of stdout",
				EnvVars: []string{"SPOTIFY2CSV_OUTPUT"},
			},
			&cli.StringFlag{
				Name:    "user-agent",
				Usage:   "User-Agent header sent with the page request",
				EnvVars: []string{"SPOTIFY2CSV_USER_AGENT"},
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Usage:   "HTTP timeout, 0 disables it",
				EnvVars: []string{"SPOTIFY2CSV_TIMEOUT"},
			},
			&cli.StringFlag{
				Name:    "base-url",
				Value:   spotifyPorter.DefaultBaseURL,
				Hidden:  true,
				EnvVars: []string{"SPOTIFY2CSV_BASE_URL"},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log debug output to stderr",
				EnvVars: []string{"SPOTIFY2CSV_VERBOSE"},
			},
			&cli.BoolFlag{
				Name:  "progress",
				Usage: "show a spinner on stderr while fetching",
			},
			&cli.BoolFlag{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "prompt for the playlist URL when none is given",
			},
			&cli.BoolFlag{
				Name:  "inspect",
				Usage: "open the embed page in a browser when no playlist data is found",
			},
		},
		Action: actions.ExportPlaylist,
		// keep stdout free of usage text, run reports the error
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return err
		},
		// exit codes are mapped by run
		ExitErrHandler: func(*cli.Context, error) {},
	}
}
