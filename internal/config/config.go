package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	// Version reported by --version
	Version = "1.1"

	DefaultExtension = ".mov"
	DefaultFfmpeg    = "ffmpeg"
	DefaultWorkDir   = "."

	// EnvFfmpeg overrides the ffmpeg binary when --ffmpeg is not given
	EnvFfmpeg = "TRIM_VIDEO_FFMPEG"

	// Temporary file name patterns, relative to the work directory
	ClipPrefix     = "trim"
	ManifestPrefix = "list_file_"
	ManifestSuffix = ".txt"
)

// TrimOptions defines options for trimming a video
type TrimOptions struct {
	InputPath   string
	OutputPath  string
	DescPath    string
	Extension   string // e.g. ".mov"
	DeleteAfter bool
	FfmpegPath  string
	WorkDir     string // where clips and the manifest are created
}

// UsageError is returned when the invocation is rejected before any
// processing starts.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

// NewTrimOptions returns options with defaults applied and environment
// overrides read.
func NewTrimOptions() *TrimOptions {
	opts := &TrimOptions{
		Extension:  DefaultExtension,
		FfmpegPath: DefaultFfmpeg,
		WorkDir:    DefaultWorkDir,
	}
	if p := os.Getenv(EnvFfmpeg); p != "" {
		opts.FfmpegPath = p
	}
	return opts
}

// Validate checks the options the way the CLI requires them. Both input and
// output names must end with the extension, compared case-insensitively.
func (o *TrimOptions) Validate() error {
	if o.InputPath == "" || o.OutputPath == "" || o.DescPath == "" {
		return &UsageError{Msg: "input file, output file and description file are required"}
	}
	if o.Extension == "" {
		return &UsageError{Msg: "extension must not be empty"}
	}
	if !HasExtension(o.InputPath, o.Extension) || !HasExtension(o.OutputPath, o.Extension) {
		return &UsageError{
			Msg: fmt.Sprintf("Provide input/output file with extension according to %s", o.Extension),
		}
	}
	return nil
}

// HasExtension reports whether path ends with ext, ignoring case.
func HasExtension(path, ext string) bool {
	return strings.HasSuffix(strings.ToLower(path), strings.ToLower(ext))
}
