package ganttboard

// MoveTask translates the task so that it starts at newTimeStart, keeping its duration,
// and assigns it to the group with the given ID.
func (b *Board) MoveTask(taskID, newTimeStart, groupID int64) (*Board, error) {
	ix := b.indexOf(taskID)
	if ix < 0 {
		return b.reject(
			"move",
			taskID,
			ErrTaskNotFound{
				TaskID: taskID,
			},
		)
	}

	if _, errGroup := b.groups.GetByID(groupID); errGroup != nil {
		return b.reject("move", taskID, errGroup)
	}

	task := b.tasks[ix]

	if !task.CanMove {
		return b.reject(
			"move",
			taskID,
			ErrNotPermitted{
				TaskID: taskID,
				Action: "move",
			},
		)
	}

	if task.GroupID != groupID && !task.CanChangeGroup {
		return b.reject(
			"move",
			taskID,
			ErrNotPermitted{
				TaskID: taskID,
				Action: "change group",
			},
		)
	}

	task.TimeInterval = task.ShiftTo(newTimeStart)
	task.GroupID = groupID

	result := b.withTaskAt(ix, task)
	result.accepted("move", taskID)

	return result, nil
}

// MoveTaskToPosition is the drop handler entry point: timelines report the target
// row by position, which is resolved here to the stable group ID.
func (b *Board) MoveTaskToPosition(taskID, newTimeStart int64, groupPosition int) (*Board, error) {
	groupID, errPosition := b.groups.GetIDAtPosition(groupPosition)
	if errPosition != nil {
		return b.reject("move", taskID, errPosition)
	}

	return b.MoveTask(taskID, newTimeStart, groupID)
}
