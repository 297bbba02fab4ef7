// Package description reads the time ranges to keep from a description file.
//
// Each line holds two whitespace-separated timestamps. Lines that do not
// split into exactly two tokens are skipped with a diagnostic; a bad line
// never aborts the parse.
package description

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/ZacxDev/video-trimmer/internal/logging"
	"github.com/ZacxDev/video-trimmer/pkg/types"
	"github.com/pkg/errors"
)

// Parse returns the ranges found in lines, in line order.
func Parse(lines []string, log logging.Logger) []types.TimeRange {
	ranges := make([]types.TimeRange, 0, len(lines))
	for _, line := range lines {
		r, ok := parseLine(line)
		if !ok {
			log.Error("could not parse line", "line", line)
			continue
		}
		ranges = append(ranges, r)
	}
	return ranges
}

// ParseReader reads every line of rd and parses it. Lines have no length
// limit. Only read failures are returned as errors.
func ParseReader(rd io.Reader, log logging.Logger) ([]types.TimeRange, error) {
	var lines []string
	br := bufio.NewReader(rd)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, strings.TrimRight(line, "\r\n"))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to read description")
		}
	}
	return Parse(lines, log), nil
}

// ParseFile opens path and parses it.
func ParseFile(path string, log logging.Logger) ([]types.TimeRange, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open description file")
	}
	defer f.Close()

	log.Debug("parsing description file", "path", path)
	return ParseReader(f, log)
}

func parseLine(line string) (types.TimeRange, bool) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return types.TimeRange{}, false
	}
	return types.TimeRange{Start: fields[0], End: fields[1]}, true
}
