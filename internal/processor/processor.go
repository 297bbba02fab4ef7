package processor

import (
	"github.com/ZacxDev/video-trimmer/internal/config"
	"github.com/ZacxDev/video-trimmer/internal/ffmpeg"
	"github.com/ZacxDev/video-trimmer/internal/logging"
	"github.com/ZacxDev/video-trimmer/pkg/types"
)

// Trimmer cuts the kept ranges out of a video and joins them
type Trimmer struct {
	opts   *config.TrimOptions
	ffmpeg *ffmpeg.Processor
	runner ffmpeg.Runner
	log    logging.Logger
}

// Result of one trimming run
type Result struct {
	Success    bool
	OutputPath string
	// Clips are the intermediate files listed in the manifest, in range order
	Clips    []string
	Manifest string
	// Failed holds the ranges whose cut did not produce a clip
	Failed []types.TimeRange
}

// NewTrimmer creates a new video trimmer
func NewTrimmer(opts *config.TrimOptions, runner ffmpeg.Runner, log logging.Logger) *Trimmer {
	return &Trimmer{
		opts:   opts,
		ffmpeg: ffmpeg.NewProcessor(opts.FfmpegPath),
		runner: runner,
		log:    log,
	}
}

func (t *Trimmer) workDir() string {
	if t.opts.WorkDir == "" {
		return config.DefaultWorkDir
	}
	return t.opts.WorkDir
}

// run executes cmd and folds a launch failure into an unsuccessful outcome
func (t *Trimmer) run(cmd ffmpeg.Command) bool {
	t.log.Debug("Running command", "command", cmd.String())
	outcome := t.runner.Run(cmd)
	if outcome.Err != nil {
		t.log.Exception(outcome.Err, "could not run ffmpeg", "step", string(cmd.Step))
		return false
	}
	return outcome.Success()
}
