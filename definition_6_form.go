package ganttboard

import (
	"errors"
	"strconv"
	"strings"
	"time"

	goerrors "github.com/TudorHulban/go-errors"
)

const (
	_ClockLayout  = "15:04"
	_DefaultClock = "00:00"
)

// ParseClock reads a "HH:MM" wall clock.
func ParseClock(clock string) (int, int, error) {
	parts := strings.Split(strings.TrimSpace(clock), ":")
	if len(parts) != 2 {
		return 0, 0,
			goerrors.ErrInvalidInput{
				Caller:     "ParseClock",
				InputName:  "clock",
				InputValue: clock,
				Issue:      errors.New("expected HH:MM"),
			}
	}

	for _, part := range parts {
		if len(part) == 0 || strings.TrimLeft(part, "0123456789") != "" {
			return 0, 0,
				goerrors.ErrInvalidInput{
					Caller:     "ParseClock",
					InputName:  "clock",
					InputValue: clock,
					Issue:      errors.New("expected digits only"),
				}
		}
	}

	hours, errHours := strconv.Atoi(parts[0])
	if errHours != nil || hours < 0 || hours > 23 {
		return 0, 0,
			goerrors.ErrInvalidInput{
				Caller:     "ParseClock",
				InputName:  "hours",
				InputValue: parts[0],
				Issue:      errors.New("hours must be within 0-23"),
			}
	}

	minutes, errMinutes := strconv.Atoi(parts[1])
	if errMinutes != nil || minutes < 0 || minutes > 59 {
		return 0, 0,
			goerrors.ErrInvalidInput{
				Caller:     "ParseClock",
				InputName:  "minutes",
				InputValue: parts[1],
				Issue:      errors.New("minutes must be within 0-59"),
			}
	}

	return hours, minutes, nil
}

// ApplyClock sets hours and minutes of date from clock.
// Seconds, nanoseconds and location are kept from date.
func ApplyClock(date time.Time, clock string) (time.Time, error) {
	hours, minutes, errParse := ParseClock(clock)
	if errParse != nil {
		return date, errParse
	}

	return time.Date(
			date.Year(),
			date.Month(),
			date.Day(),
			hours,
			minutes,
			date.Second(),
			date.Nanosecond(),
			date.Location(),
		),
		nil
}

// ApplyClockToTimestamp changes only the wall clock of a stored timestamp,
// as read in loc.
func ApplyClockToTimestamp(timestamp int64, clock string, loc *time.Location) (int64, error) {
	if loc == nil {
		loc = time.Local
	}

	updated, errApply := ApplyClock(
		time.UnixMilli(timestamp).In(loc),
		clock,
	)
	if errApply != nil {
		return timestamp, errApply
	}

	return updated.UnixMilli(), nil
}

// TaskForm mirrors the create / edit form: calendar dates are picked
// separately from the wall clocks.
type TaskForm struct {
	StartDate *time.Time
	EndDate   *time.Time

	Title      string
	StartClock string
	EndClock   string

	GroupID  int64
	Progress int
}

// NewTaskForm returns the form in its reset state.
func NewTaskForm(now time.Time, groupID int64) *TaskForm {
	startDate := now
	endDate := now

	return &TaskForm{
		StartDate:  &startDate,
		EndDate:    &endDate,
		StartClock: _DefaultClock,
		EndClock:   _DefaultClock,
		GroupID:    groupID,
	}
}

// NewTaskFormFromTask fills the edit form with the values of task.
func NewTaskFormFromTask(task *Task, loc *time.Location) *TaskForm {
	if loc == nil {
		loc = time.Local
	}

	startDate := time.UnixMilli(task.TimeStart).In(loc)
	endDate := time.UnixMilli(task.TimeEnd).In(loc)

	return &TaskForm{
		StartDate:  &startDate,
		EndDate:    &endDate,
		Title:      task.Title,
		StartClock: startDate.Format(_ClockLayout),
		EndClock:   endDate.Format(_ClockLayout),
		GroupID:    task.GroupID,
		Progress:   task.Progress,
	}
}

func (form *TaskForm) timestamp(inputName string, date *time.Time, clock string) (int64, error) {
	if date == nil {
		return 0,
			goerrors.ErrValidation{
				Caller: "TaskForm",
				Issue: goerrors.ErrNilInput{
					InputName: inputName,
				},
			}
	}

	combined, errClock := ApplyClock(*date, clock)
	if errClock != nil {
		return 0,
			goerrors.ErrValidation{
				Caller: "TaskForm",
				Issue:  errClock,
			}
	}

	return combined.UnixMilli(), nil
}

func (form *TaskForm) ToParams() (*ParamsNewTask, error) {
	if form == nil {
		return nil,
			goerrors.ErrValidation{
				Caller: "ToParams - TaskForm",
				Issue: goerrors.ErrNilInput{
					InputName: "TaskForm",
				},
			}
	}

	timeStart, errStart := form.timestamp("StartDate", form.StartDate, form.StartClock)
	if errStart != nil {
		return nil, errStart
	}

	timeEnd, errEnd := form.timestamp("EndDate", form.EndDate, form.EndClock)
	if errEnd != nil {
		return nil, errEnd
	}

	params := ParamsNewTask{
		Title:   form.Title,
		GroupID: form.GroupID,
		TimeInterval: TimeInterval{
			TimeStart: timeStart,
			TimeEnd:   timeEnd,
		},
		Progress: form.Progress,
	}

	if errValidation := params.IsValid(); errValidation != nil {
		return nil, errValidation
	}

	return &params, nil
}

func (b *Board) AddTaskFromForm(form *TaskForm) (*Board, *Task, error) {
	params, errForm := form.ToParams()
	if errForm != nil {
		result, err := b.reject("add", 0, errForm)

		return result, nil, err
	}

	return b.AddTask(params)
}

// UpdateTaskFromForm applies the edit form to an existing task,
// presentation attributes are kept.
func (b *Board) UpdateTaskFromForm(taskID int64, form *TaskForm) (*Board, error) {
	task, errGet := b.GetTask(taskID)
	if errGet != nil {
		return b.reject("update", taskID, errGet)
	}

	params, errForm := form.ToParams()
	if errForm != nil {
		return b.reject("update", taskID, errForm)
	}

	task.Title = params.Title
	task.GroupID = params.GroupID
	task.TimeInterval = params.TimeInterval
	task.Progress = params.Progress

	return b.UpdateTask(task)
}
