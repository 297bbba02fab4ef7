package videoprocessor

import (
	"os"

	"github.com/ZacxDev/video-trimmer/internal/config"
	"github.com/ZacxDev/video-trimmer/internal/description"
	"github.com/ZacxDev/video-trimmer/internal/ffmpeg"
	"github.com/ZacxDev/video-trimmer/internal/logging"
	"github.com/ZacxDev/video-trimmer/internal/processor"
	"github.com/pkg/errors"
)

// TrimOptions defines options for trimming a video
type TrimOptions = config.TrimOptions

// Result of a trimming run
type Result = processor.Result

// NewTrimOptions returns options with defaults applied
func NewTrimOptions() *TrimOptions {
	return config.NewTrimOptions()
}

// TrimVideo keeps the ranges listed in the description file and joins them
// into opts.OutputPath. Options are validated before anything runs.
func TrimVideo(opts *TrimOptions, runner ffmpeg.Runner, log logging.Logger) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if _, err := os.Stat(opts.InputPath); err != nil {
		return nil, &config.UsageError{Msg: errors.Wrap(err, "cannot read input file").Error()}
	}

	log.Info("processing input video", "input", opts.InputPath, "output", opts.OutputPath)

	ranges, err := description.ParseFile(opts.DescPath, log)
	if err != nil {
		if os.IsNotExist(errors.Cause(err)) || os.IsPermission(errors.Cause(err)) {
			return nil, &config.UsageError{Msg: err.Error()}
		}
		return nil, err
	}
	log.Info("parsed description file", "ranges", len(ranges))

	return processor.NewTrimmer(opts, runner, log).Process(ranges)
}
