package ganttboard

import (
	"errors"
	"fmt"
	"strings"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
)

type ResizeEdge string

const (
	EdgeLeft  = ResizeEdge("left")
	EdgeRight = ResizeEdge("right")
)

func (edge ResizeEdge) IsValid() bool {
	return edge == EdgeLeft || edge == EdgeRight
}

type ResizePermission uint8

const (
	ResizeNone ResizePermission = iota
	ResizeLeft
	ResizeRight
	ResizeBoth
)

var resizePermissionNames = [...]string{"none", "left", "right", "both"}

func (permission ResizePermission) String() string {
	if int(permission) >= len(resizePermissionNames) {
		return fmt.Sprintf("ResizePermission(%d)", permission)
	}

	return resizePermissionNames[permission]
}

func ParseResizePermission(text string) (ResizePermission, error) {
	for ix, name := range resizePermissionNames {
		if strings.EqualFold(text, name) {
			return ResizePermission(ix), nil
		}
	}

	return ResizeNone,
		goerrors.ErrInvalidInput{
			Caller:     "ParseResizePermission",
			InputName:  "text",
			InputValue: text,
		}
}

func (permission ResizePermission) Allows(edge ResizeEdge) bool {
	switch edge {
	case EdgeLeft:
		return permission == ResizeLeft || permission == ResizeBoth

	case EdgeRight:
		return permission == ResizeRight || permission == ResizeBoth
	}

	return false
}

func (permission ResizePermission) MarshalText() ([]byte, error) {
	return []byte(permission.String()), nil
}

func (permission *ResizePermission) UnmarshalText(text []byte) error {
	parsed, errParse := ParseResizePermission(string(text))
	if errParse != nil {
		return errParse
	}

	*permission = parsed

	return nil
}

// Task is one bar on the timeline.
type Task struct {
	Title string
	Color string

	TimeInterval

	ID       int64
	GroupID  int64
	Progress int

	CanResize      ResizePermission
	CanMove        bool
	CanChangeGroup bool
}

func (task Task) String() string {
	return fmt.Sprintf(
		"Task %d %q on group %d %s %d%%",

		task.ID,
		task.Title,
		task.GroupID,
		task.TimeInterval,
		task.Progress,
	)
}

type ParamsNewTask struct {
	Title string `valid:"required"`

	TimeInterval

	GroupID  int64 `valid:"required"`
	Progress int   `valid:"range(0|100)"`
}

func (params *ParamsNewTask) IsValid() error {
	if params == nil {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewTask",
			Issue: goerrors.ErrNilInput{
				InputName: "ParamsNewTask",
			},
		}
	}

	if _, errValidation := govalidator.ValidateStruct(params); errValidation != nil {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewTask",
			Issue:  errValidation,
		}
	}

	if len(strings.TrimSpace(params.Title)) == 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewTask",
			Issue: goerrors.ErrNilInput{
				InputName: "Title",
			},
		}
	}

	if params.Progress < 0 || params.Progress > 100 {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewTask",
			Issue: goerrors.ErrInvalidInput{
				InputName:  "Progress",
				InputValue: params.Progress,
				Issue:      errors.New("progress outside of 0-100"),
			},
		}
	}

	if params.IsInverted() {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewTask",
			Issue: goerrors.ErrInvalidInput{
				InputName:  "TimeEnd",
				InputValue: params.TimeEnd,
				Issue:      errors.New("time end before time start"),
			},
		}
	}

	return nil
}

// validateTask checks the fields a task must keep after any mutation.
// Interval rules are left to the interval policy.
func validateTask(caller string, task *Task) error {
	if task.ID <= 0 {
		return goerrors.ErrValidation{
			Caller: caller,
			Issue: goerrors.ErrInvalidInput{
				InputName:  "ID",
				InputValue: task.ID,
			},
		}
	}

	if len(strings.TrimSpace(task.Title)) == 0 {
		return goerrors.ErrValidation{
			Caller: caller,
			Issue: goerrors.ErrNilInput{
				InputName: "Title",
			},
		}
	}

	if task.Progress < 0 || task.Progress > 100 {
		return goerrors.ErrValidation{
			Caller: caller,
			Issue: goerrors.ErrInvalidInput{
				InputName:  "Progress",
				InputValue: task.Progress,
				Issue:      errors.New("progress outside of 0-100"),
			},
		}
	}

	if task.CanResize > ResizeBoth {
		return goerrors.ErrValidation{
			Caller: caller,
			Issue: goerrors.ErrInvalidInput{
				InputName:  "CanResize",
				InputValue: task.CanResize,
			},
		}
	}

	return nil
}
