package ganttboard

import (
	"errors"
	"sort"

	goerrors "github.com/TudorHulban/go-errors"
)

const NoAvailability = int64(-1)

func (b *Board) busyIntervals(groupID int64) []TimeInterval {
	var result []TimeInterval

	for _, task := range b.tasks {
		// zero length tasks overlap nothing
		if task.GroupID == groupID && task.GetDuration() > 0 {
			result = append(result, task.TimeInterval)
		}
	}

	sort.Slice(
		result,
		func(i, j int) bool {
			return result[i].TimeStart < result[j].TimeStart
		},
	)

	return result
}

// GetAvailability returns:
//   - (nil, true)   = Fully available (no tasks or no overlap)
//   - (slots, false) = Partially available (returns free time slots)
//   - (nil, false)  = Completely unavailable (search window fully booked)
func (b *Board) GetAvailability(groupID int64, searchInterval TimeInterval) ([]TimeInterval, bool, error) {
	if _, errGroup := b.groups.GetByID(groupID); errGroup != nil {
		return nil, false, errGroup
	}

	if searchInterval.IsInverted() {
		return nil, false,
			goerrors.ErrInvalidInput{
				Caller:     "GetAvailability",
				InputName:  "searchInterval",
				InputValue: searchInterval.String(),
				Issue:      errors.New("search interval ends before it starts"),
			}
	}

	var availableIntervals []TimeInterval

	currentStart := searchInterval.TimeStart
	searchEnd := searchInterval.TimeEnd

	hasOverlap := false

	for _, busy := range b.busyIntervals(groupID) {
		if busy.TimeEnd <= currentStart {
			continue
		}

		if busy.TimeStart >= searchEnd {
			break
		}

		hasOverlap = true

		if busy.TimeStart > currentStart {
			availableIntervals = append(
				availableIntervals,
				TimeInterval{
					TimeStart: currentStart,
					TimeEnd:   busy.TimeStart,
				},
			)
		}

		currentStart = max(currentStart, busy.TimeEnd)
	}

	if currentStart < searchEnd {
		availableIntervals = append(
			availableIntervals,
			TimeInterval{
				TimeStart: currentStart,
				TimeEnd:   searchEnd,
			},
		)
	}

	if !hasOverlap {
		return nil, true, nil
	}

	return availableIntervals, false, nil
}

type ParamsFindAvailableTime struct {
	GroupID          int64
	TimeStart        int64
	MaximumTimeStart int64
	Duration         int64
}

func (params *ParamsFindAvailableTime) IsValid() error {
	if params == nil {
		return goerrors.ErrValidation{
			Caller: "FindAvailableTime",
			Issue: goerrors.ErrNilInput{
				InputName: "ParamsFindAvailableTime",
			},
		}
	}

	if params.Duration < 0 {
		return goerrors.ErrValidation{
			Caller: "FindAvailableTime",
			Issue: goerrors.ErrNegativeInput{
				InputName: "Duration",
			},
		}
	}

	return nil
}

// FindAvailableTime returns the earliest start within [TimeStart, MaximumTimeStart]
// where a task of Duration fits on the group, or NoAvailability.
func (b *Board) FindAvailableTime(params *ParamsFindAvailableTime) (int64, error) {
	if errValidation := params.IsValid(); errValidation != nil {
		return NoAvailability, errValidation
	}

	if params.TimeStart > params.MaximumTimeStart {
		return NoAvailability, nil
	}

	intervals, available, errAvailability := b.GetAvailability(
		params.GroupID,
		TimeInterval{
			TimeStart: params.TimeStart,
			TimeEnd:   params.MaximumTimeStart + params.Duration,
		},
	)
	if errAvailability != nil {
		return NoAvailability, errAvailability
	}

	if available {
		return params.TimeStart, nil
	}

	for _, interval := range intervals {
		if interval.GetDuration() >= params.Duration && interval.TimeStart <= params.MaximumTimeStart {
			return interval.TimeStart, nil
		}
	}

	return NoAvailability, nil
}

// GetStackLevels assigns each task of the group to the lowest lane
// where it does not overlap an earlier task, the way stacked timeline rows are drawn.
func (b *Board) GetStackLevels(groupID int64) (map[int64]int, error) {
	if _, errGroup := b.groups.GetByID(groupID); errGroup != nil {
		return nil, errGroup
	}

	return b.stackLevels(groupID), nil
}

func (b *Board) stackLevels(groupID int64) map[int64]int {
	var tasks []Task

	for _, task := range b.tasks {
		if task.GroupID == groupID {
			tasks = append(tasks, task)
		}
	}

	sort.SliceStable(
		tasks,
		func(i, j int) bool {
			return tasks[i].TimeStart < tasks[j].TimeStart
		},
	)

	result := make(map[int64]int, len(tasks))

	var laneEnds []int64

	for _, task := range tasks {
		lane := -1

		for ix, laneEnd := range laneEnds {
			if laneEnd <= task.TimeStart {
				lane = ix

				break
			}
		}

		if lane < 0 {
			lane = len(laneEnds)
			laneEnds = append(laneEnds, 0)
		}

		laneEnds[lane] = max(task.TimeEnd, task.TimeStart)
		result[task.ID] = lane
	}

	return result
}
