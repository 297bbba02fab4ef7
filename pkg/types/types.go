package types

import "fmt"

// TimeRange is a segment of the source video to keep. Start and End are
// passed to ffmpeg untouched (e.g. "1:02:03" or "4:05").
type TimeRange struct {
	Start string
	End   string
}

func (r TimeRange) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}
