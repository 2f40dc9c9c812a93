package ganttboard

import "fmt"

type ErrTaskNotFound struct {
	TaskID int64
}

func (e ErrTaskNotFound) Error() string {
	return fmt.Sprintf("task %d not found", e.TaskID)
}

type ErrGroupNotFound struct {
	GroupID int64
}

func (e ErrGroupNotFound) Error() string {
	return fmt.Sprintf("group %d not found", e.GroupID)
}

type ErrGroupPositionOutOfRange struct {
	Position   int
	NumberRows int
}

func (e ErrGroupPositionOutOfRange) Error() string {
	return fmt.Sprintf(
		"group position %d outside of %d timeline rows",
		e.Position,
		e.NumberRows,
	)
}

type ErrNotPermitted struct {
	Action string
	TaskID int64
}

func (e ErrNotPermitted) Error() string {
	return fmt.Sprintf("task %d does not permit %s", e.TaskID, e.Action)
}

type ErrDuplicateGroup struct {
	GroupID int64
}

func (e ErrDuplicateGroup) Error() string {
	return fmt.Sprintf("group %d defined more than once", e.GroupID)
}
