package ganttboard

import (
	"slices"

	goerrors "github.com/TudorHulban/go-errors"
)

// AddTask appends a task with a fresh ID. IDs come from a counter
// and are never reused, also after deletions.
func (b *Board) AddTask(params *ParamsNewTask) (*Board, *Task, error) {
	if errValidation := params.IsValid(); errValidation != nil {
		result, err := b.reject("add", 0, errValidation)

		return result, nil, err
	}

	if _, errGroup := b.groups.GetByID(params.GroupID); errGroup != nil {
		result, err := b.reject("add", 0, errGroup)

		return result, nil, err
	}

	interval, errPolicy := b.policy.apply(
		&paramsApplyPolicy{
			Interval:        params.TimeInterval,
			Edge:            EdgeRight,
			MinimumDuration: b.minimumDuration,
		},
	)
	if errPolicy != nil {
		result, err := b.reject("add", 0, errPolicy)

		return result, nil, err
	}

	task := Task{
		ID:           b.nextTaskID,
		GroupID:      params.GroupID,
		Title:        params.Title,
		TimeInterval: interval,
		Progress:     params.Progress,
		Color:        colorForTask(b.nextTaskID),

		CanMove:        true,
		CanChangeGroup: true,
		CanResize:      ResizeBoth,
	}

	result := b.next()
	result.tasks = append(result.tasks, task)
	result.nextTaskID++

	result.accepted("add", task.ID)

	return result, &task, nil
}

// UpdateTask replaces the task having the same ID.
// Replacing a task with an identical copy returns the receiver.
func (b *Board) UpdateTask(task *Task) (*Board, error) {
	if task == nil {
		return b.reject(
			"update",
			0,
			goerrors.ErrValidation{
				Caller: "UpdateTask",
				Issue: goerrors.ErrNilInput{
					InputName: "task",
				},
			},
		)
	}

	ix := b.indexOf(task.ID)
	if ix < 0 {
		return b.reject(
			"update",
			task.ID,
			ErrTaskNotFound{
				TaskID: task.ID,
			},
		)
	}

	if b.tasks[ix] == *task {
		return b, nil
	}

	if errValidation := validateTask("UpdateTask", task); errValidation != nil {
		return b.reject("update", task.ID, errValidation)
	}

	if _, errGroup := b.groups.GetByID(task.GroupID); errGroup != nil {
		return b.reject("update", task.ID, errGroup)
	}

	interval, errPolicy := b.policy.apply(
		&paramsApplyPolicy{
			Interval:        task.TimeInterval,
			Edge:            EdgeRight,
			MinimumDuration: b.minimumDuration,
		},
	)
	if errPolicy != nil {
		return b.reject("update", task.ID, errPolicy)
	}

	replacement := *task
	replacement.TimeInterval = interval

	result := b.withTaskAt(ix, replacement)
	result.accepted("update", task.ID)

	return result, nil
}

// DeleteTask removes the task. Deleting an unknown ID leaves the board as is
// and reports ErrTaskNotFound.
func (b *Board) DeleteTask(taskID int64) (*Board, error) {
	ix := b.indexOf(taskID)
	if ix < 0 {
		return b.reject(
			"delete",
			taskID,
			ErrTaskNotFound{
				TaskID: taskID,
			},
		)
	}

	result := b.next()
	result.tasks = slices.Delete(result.tasks, ix, ix+1)

	result.accepted("delete", taskID)

	return result, nil
}
