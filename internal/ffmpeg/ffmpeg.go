package ffmpeg

import (
	"fmt"
	"strings"

	"github.com/ZacxDev/video-trimmer/pkg/types"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Step names the pipeline phase a command belongs to
type Step string

const (
	StepCut    Step = "cut"
	StepConcat Step = "concat"
)

// Command is a fully formed ffmpeg invocation
type Command struct {
	Step   Step
	Path   string // ffmpeg binary
	Args   []string
	Input  string // source video for a cut, manifest for a concat
	Output string
}

func (c Command) String() string {
	return c.Path + " " + strings.Join(c.Args, " ")
}

// Processor builds ffmpeg commands
type Processor struct {
	binary string
}

// NewProcessor creates a new FFmpeg command builder for the given binary
func NewProcessor(binary string) *Processor {
	if binary == "" {
		binary = "ffmpeg"
	}
	return &Processor{
		binary: binary,
	}
}

// Binary returns the ffmpeg executable the commands run
func (p *Processor) Binary() string {
	return p.binary
}

// CutCommand re-encodes [r.Start, r.End) of inputPath into outputPath,
// overwriting it. The bounds are output options so seeking is frame accurate.
func (p *Processor) CutCommand(inputPath, outputPath string, r types.TimeRange) Command {
	args := ffmpeg.Input(inputPath).
		Output(outputPath, ffmpeg.KwArgs{
			"ss": r.Start,
			"to": r.End,
		}).
		OverWriteOutput().
		GetArgs()

	return Command{
		Step:   StepCut,
		Path:   p.binary,
		Args:   args,
		Input:  inputPath,
		Output: outputPath,
	}
}

// ConcatCommand joins the files listed in manifestPath into outputPath with
// the concat demuxer, copying streams without re-encoding.
func (p *Processor) ConcatCommand(manifestPath, outputPath string) Command {
	args := ffmpeg.Input(manifestPath, ffmpeg.KwArgs{"f": "concat"}).
		Output(outputPath, ffmpeg.KwArgs{"c": "copy"}).
		OverWriteOutput().
		GetArgs()

	return Command{
		Step:   StepConcat,
		Path:   p.binary,
		Args:   args,
		Input:  manifestPath,
		Output: outputPath,
	}
}

// ManifestLine formats one concat demuxer entry. Single quotes inside the
// name are closed, escaped and reopened.
func ManifestLine(name string) string {
	escaped := strings.ReplaceAll(name, "'", `'\''`)
	return fmt.Sprintf("file '%s'\n", escaped)
}
