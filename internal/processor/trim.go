package processor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ZacxDev/video-trimmer/internal/config"
	ffmpegWrap "github.com/ZacxDev/video-trimmer/internal/ffmpeg"
	"github.com/ZacxDev/video-trimmer/pkg/types"
	"github.com/pkg/errors"
)

// Process cuts every range into its own clip, then concatenates the clips
// that were produced. A failed cut only drops that range; the run succeeds
// iff the concatenation succeeds. Intermediates are removed only after a
// successful run with DeleteAfter set.
//
// The returned error is reserved for local I/O failures such as not being
// able to create a temporary file.
func (t *Trimmer) Process(ranges []types.TimeRange) (*Result, error) {
	res := &Result{OutputPath: t.opts.OutputPath}

	clips := make([]string, 0, len(ranges))
	for i, r := range ranges {
		clip, err := t.createTemp(fmt.Sprintf("%s_%d_*%s", config.ClipPrefix, i, t.opts.Extension))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to create clip file for range %d", i)
		}
		t.log.Info("working on clip", "clip", clip, "range", r.String())

		if !t.run(t.ffmpeg.CutCommand(t.opts.InputPath, clip, r)) {
			t.log.Error("could not cut range", "range", r.String(), "clip", clip)
			res.Failed = append(res.Failed, r)
			continue
		}
		clips = append(clips, clip)
	}
	res.Clips = clips

	if err := t.concat(res); err != nil {
		return nil, err
	}
	return res, nil
}

func (t *Trimmer) concat(res *Result) error {
	manifest, err := t.writeManifest(res.Clips)
	if err != nil {
		return err
	}
	res.Manifest = manifest
	t.log.Info("list file is", "manifest", manifest, "clips", len(res.Clips))

	if !t.run(t.ffmpeg.ConcatCommand(manifest, res.OutputPath)) {
		t.log.Error("could not concatenate files", "output", res.OutputPath)
		return nil
	}
	res.Success = true
	t.log.Info("output written", "output", res.OutputPath)

	if t.opts.DeleteAfter {
		t.cleanup(res)
	}
	return nil
}

// writeManifest lists clips for the concat demuxer. Entries are bare file
// names; ffmpeg resolves them against the manifest's directory, which is
// where the clips live.
func (t *Trimmer) writeManifest(clips []string) (string, error) {
	f, err := os.CreateTemp(t.workDir(), config.ManifestPrefix+"*"+config.ManifestSuffix)
	if err != nil {
		return "", errors.Wrap(err, "failed to create list file")
	}
	name := filepath.Clean(f.Name())

	for _, clip := range clips {
		if _, err := f.WriteString(ffmpegWrap.ManifestLine(filepath.Base(clip))); err != nil {
			f.Close()
			return "", errors.Wrapf(err, "failed to write list file %s", name)
		}
	}
	if err := f.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to write list file %s", name)
	}
	return name, nil
}

func (t *Trimmer) cleanup(res *Result) {
	paths := make([]string, 0, len(res.Clips)+1)
	paths = append(paths, res.Clips...)
	paths = append(paths, res.Manifest)
	for _, path := range paths {
		if err := os.Remove(path); err != nil {
			t.log.Error("could not remove intermediate file", "path", path, "error", err)
			continue
		}
		t.log.Debug("removed intermediate file", "path", path)
	}
}

// createTemp creates an empty, uniquely named file in the work directory
// and returns its path.
func (t *Trimmer) createTemp(pattern string) (string, error) {
	f, err := os.CreateTemp(t.workDir(), pattern)
	if err != nil {
		return "", err
	}
	name := filepath.Clean(f.Name())
	if err := f.Close(); err != nil {
		return "", err
	}
	return name, nil
}
