package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ZacxDev/video-trimmer/internal/config"
	"github.com/ZacxDev/video-trimmer/internal/ffmpeg"
	"github.com/ZacxDev/video-trimmer/internal/logging"
	"github.com/ZacxDev/video-trimmer/pkg/videoprocessor"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

var errPipelineFailed = errors.New("could not produce output file")

// newRunner is replaced in tests
var newRunner = func(w io.Writer) ffmpeg.Runner {
	return ffmpeg.NewExecRunner(w)
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := videoprocessor.NewTrimOptions()

	cmd := &cobra.Command{
		Use:   "trim-video [flags] INPUT",
		Short: "Keep parts of a video and join them into one file",
		Long: `trim-video cuts the time ranges listed in a description file out of a video
and concatenates them, without re-encoding, into a single output file.

The description file holds one range per line, two whitespace-separated
timestamps in a format ffmpeg understands:

  0:02 0:41
  0:49 1:39

Lines that do not hold exactly two timestamps are skipped.

Example:
  trim-video -f cuts.txt -w out.mov --delete video.mov`,
		Version:       config.Version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			quiet, _ := cmd.Flags().GetBool("quiet")
			silent, _ := cmd.Flags().GetBool("silent")
			verbose, _ := cmd.Flags().GetBool("verbose")
			debug, _ := cmd.Flags().GetBool("debug")
			quiet = quiet || silent

			opts.InputPath = args[0]
			log := logging.New(stderr, logging.LevelFromFlags(quiet, verbose, debug))

			var toolOutput io.Writer = stderr
			if quiet && !debug {
				toolOutput = io.Discard
			}

			res, err := videoprocessor.TrimVideo(opts, newRunner(toolOutput), log)
			if err != nil {
				var usageErr *config.UsageError
				if errors.As(err, &usageErr) {
					return err
				}
				log.Exception(err, "trimming aborted")
				return &runError{err: err}
			}
			if !res.Success {
				return errPipelineFailed
			}
			return nil
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	flags := cmd.Flags()
	flags.StringVarP(&opts.OutputPath, "output", "w", "", "Output file")
	flags.StringVarP(&opts.DescPath, "desc-file", "f", "", "Description file")
	flags.BoolVarP(&opts.DeleteAfter, "delete", "d", false, "Delete intermediate files after completion")
	flags.StringVarP(&opts.Extension, "extension", "e", opts.Extension, "Extension of the input and output files")
	flags.StringVar(&opts.FfmpegPath, "ffmpeg", opts.FfmpegPath,
		fmt.Sprintf("ffmpeg binary (env %s)", config.EnvFfmpeg))
	flags.BoolP("quiet", "q", false, "Run in quiet mode")
	flags.Bool("silent", false, "Alias for --quiet")
	flags.BoolP("verbose", "v", false, "Run in verbose mode")
	flags.Bool("debug", false, "Log debug diagnostics")

	flags.MarkHidden("silent")
	flags.MarkHidden("debug")
	cmd.MarkFlagRequired("output")
	cmd.MarkFlagRequired("desc-file")
	cmd.MarkFlagsMutuallyExclusive("quiet", "verbose")
	cmd.MarkFlagsMutuallyExclusive("silent", "verbose")

	return cmd
}

// run executes the command line and maps the outcome to an exit code
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return exitOK
	}

	// the logger has already reported a failed concat
	if errors.Is(err, errPipelineFailed) {
		if !quietRequested(cmd) {
			fmt.Fprintln(stderr, "Error:", err)
		}
		return exitFailure
	}

	fmt.Fprintln(stderr, "Error:", err)
	var runErr *runError
	if errors.As(err, &runErr) {
		return exitFailure
	}

	// flag, argument and option validation errors
	fmt.Fprint(stderr, cmd.UsageString())
	return exitUsage
}

func quietRequested(cmd *cobra.Command) bool {
	quiet, _ := cmd.Flags().GetBool("quiet")
	silent, _ := cmd.Flags().GetBool("silent")
	debug, _ := cmd.Flags().GetBool("debug")
	return (quiet || silent) && !debug
}

// runError marks a failure that happened while trimming, after the command
// line was accepted.
type runError struct {
	err error
}

func (e *runError) Error() string { return e.err.Error() }
func (e *runError) Unwrap() error { return e.err }

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
