package ganttboard

import "fmt"

// TimeInterval holds milliseconds since epoch.
type TimeInterval struct {
	TimeStart int64
	TimeEnd   int64
}

func (interval TimeInterval) GetDuration() int64 {
	return interval.TimeEnd - interval.TimeStart
}

func (interval TimeInterval) IsInverted() bool {
	return interval.TimeEnd < interval.TimeStart
}

// ShiftTo keeps the duration and moves the start to timeStart.
func (interval TimeInterval) ShiftTo(timeStart int64) TimeInterval {
	delta := timeStart - interval.TimeStart

	return TimeInterval{
		TimeStart: timeStart,
		TimeEnd:   interval.TimeEnd + delta,
	}
}

func (interval TimeInterval) Overlaps(other TimeInterval) bool {
	return max(interval.TimeStart, other.TimeStart) < min(interval.TimeEnd, other.TimeEnd)
}

func (interval TimeInterval) String() string {
	return fmt.Sprintf(
		"[%d-%d]",
		interval.TimeStart,
		interval.TimeEnd,
	)
}
