package videoprocessor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ZacxDev/video-trimmer/internal/config"
	"github.com/ZacxDev/video-trimmer/internal/ffmpeg"
	"github.com/ZacxDev/video-trimmer/internal/logging/logtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// copyRunner "cuts" by copying the input and "concatenates" by writing the
// manifest into the output.
type copyRunner struct {
	cmds []ffmpeg.Command
}

func (r *copyRunner) Run(c ffmpeg.Command) ffmpeg.Outcome {
	r.cmds = append(r.cmds, c)
	data, err := os.ReadFile(c.Input)
	if err != nil {
		return ffmpeg.Outcome{ExitCode: 1}
	}
	if err := os.WriteFile(c.Output, data, 0644); err != nil {
		return ffmpeg.Outcome{ExitCode: 1}
	}
	return ffmpeg.Outcome{}
}

func setup(t *testing.T, desc string) *TrimOptions {
	t.Helper()
	dir := t.TempDir()

	opts := NewTrimOptions()
	opts.InputPath = filepath.Join(dir, "video.mov")
	opts.OutputPath = filepath.Join(dir, "out.mov")
	opts.DescPath = filepath.Join(dir, "desc.txt")
	opts.WorkDir = dir

	require.NoError(t, os.WriteFile(opts.InputPath, []byte("video"), 0644))
	require.NoError(t, os.WriteFile(opts.DescPath, []byte(desc), 0644))
	return opts
}

func TestTrimVideo_EndToEnd(t *testing.T) {
	opts := setup(t, "0:00 0:10\n0:20 0:30\n")
	runner := &copyRunner{}

	res, err := TrimVideo(opts, runner, &logtest.Recorder{})
	require.NoError(t, err)

	assert.True(t, res.Success)
	require.Len(t, res.Clips, 2)
	require.Len(t, runner.cmds, 3)
	assert.Equal(t, ffmpeg.StepCut, runner.cmds[0].Step)
	assert.Equal(t, ffmpeg.StepCut, runner.cmds[1].Step)
	assert.Equal(t, ffmpeg.StepConcat, runner.cmds[2].Step)

	out, err := os.ReadFile(opts.OutputPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], filepath.Base(res.Clips[0]))
	assert.Contains(t, lines[1], filepath.Base(res.Clips[1]))
}

func TestTrimVideo_DeleteAfter(t *testing.T) {
	opts := setup(t, "0:00 0:10\nbroken line here\n0:20 0:30\n")
	opts.DeleteAfter = true
	log := &logtest.Recorder{}

	res, err := TrimVideo(opts, &copyRunner{}, log)
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.True(t, log.Contains("error", "could not parse line"))

	entries, err := os.ReadDir(opts.WorkDir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"video.mov", "out.mov", "desc.txt"}, names)
}

func TestTrimVideo_ExtensionMismatch(t *testing.T) {
	opts := setup(t, "0:00 0:10\n")
	opts.Extension = ".mp4"
	runner := &copyRunner{}

	_, err := TrimVideo(opts, runner, &logtest.Recorder{})

	var usageErr *config.UsageError
	require.ErrorAs(t, err, &usageErr)
	assert.Empty(t, runner.cmds)
}

func TestTrimVideo_MissingInputs(t *testing.T) {
	t.Run("input", func(t *testing.T) {
		opts := setup(t, "0:00 0:10\n")
		require.NoError(t, os.Remove(opts.InputPath))

		_, err := TrimVideo(opts, &copyRunner{}, &logtest.Recorder{})
		var usageErr *config.UsageError
		assert.ErrorAs(t, err, &usageErr)
	})

	t.Run("description", func(t *testing.T) {
		opts := setup(t, "0:00 0:10\n")
		require.NoError(t, os.Remove(opts.DescPath))

		_, err := TrimVideo(opts, &copyRunner{}, &logtest.Recorder{})
		var usageErr *config.UsageError
		assert.ErrorAs(t, err, &usageErr)
	})
}
