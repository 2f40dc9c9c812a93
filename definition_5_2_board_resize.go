package ganttboard

import (
	goerrors "github.com/TudorHulban/go-errors"
)

// ResizeTask moves one edge of the task to newTime, the opposite edge stays.
// The resulting interval goes through the board interval policy.
func (b *Board) ResizeTask(taskID, newTime int64, edge ResizeEdge) (*Board, error) {
	if !edge.IsValid() {
		return b.reject(
			"resize",
			taskID,
			goerrors.ErrValidation{
				Caller: "ResizeTask",
				Issue: goerrors.ErrInvalidInput{
					InputName:  "edge",
					InputValue: edge,
				},
			},
		)
	}

	ix := b.indexOf(taskID)
	if ix < 0 {
		return b.reject(
			"resize",
			taskID,
			ErrTaskNotFound{
				TaskID: taskID,
			},
		)
	}

	task := b.tasks[ix]

	if !task.CanResize.Allows(edge) {
		return b.reject(
			"resize",
			taskID,
			ErrNotPermitted{
				TaskID: taskID,
				Action: "resize " + string(edge),
			},
		)
	}

	resized := task.TimeInterval

	if edge == EdgeLeft {
		resized.TimeStart = newTime
	} else {
		resized.TimeEnd = newTime
	}

	interval, errPolicy := b.policy.apply(
		&paramsApplyPolicy{
			Interval:        resized,
			Edge:            edge,
			MinimumDuration: b.minimumDuration,
		},
	)
	if errPolicy != nil {
		return b.reject("resize", taskID, errPolicy)
	}

	task.TimeInterval = interval

	result := b.withTaskAt(ix, task)
	result.accepted("resize", taskID)

	return result, nil
}
