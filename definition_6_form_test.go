package ganttboard

import (
	"testing"
	"time"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		clock string

		expectedHours   int
		expectedMinutes int
		expectError     bool
	}{
		{clock: "00:00"},
		{clock: "07:05", expectedHours: 7, expectedMinutes: 5},
		{clock: "23:59", expectedHours: 23, expectedMinutes: 59},
		{clock: "9:30", expectedHours: 9, expectedMinutes: 30},
		{clock: "24:00", expectError: true},
		{clock: "12:60", expectError: true},
		{clock: "-1:10", expectError: true},
		{clock: "1230", expectError: true},
		{clock: "12:30:00", expectError: true},
		{clock: "ab:cd", expectError: true},
		{clock: "", expectError: true},
		{clock: "+5:30", expectError: true},
		{clock: "12:+5", expectError: true},
		{clock: " 9: 30", expectError: true},
	}

	for _, tt := range tests {
		t.Run(
			tt.clock,
			func(t *testing.T) {
				hours, minutes, errParse := ParseClock(tt.clock)
				if tt.expectError {
					require.Error(t, errParse)

					return
				}

				require.NoError(t, errParse)
				require.Equal(t, tt.expectedHours, hours)
				require.Equal(t, tt.expectedMinutes, minutes)
			},
		)
	}
}

func TestApplyClock(t *testing.T) {
	location := time.FixedZone("UTC+2", 2*60*60)
	date := time.Date(2025, time.March, 28, 16, 45, 12, 500, location)

	result, errApply := ApplyClock(date, "08:15")
	require.NoError(t, errApply)
	require.Equal(t,
		time.Date(2025, time.March, 28, 8, 15, 12, 500, location),
		result,
	)

	unchanged, errInvalid := ApplyClock(date, "8h15")
	require.Error(t, errInvalid)
	require.Equal(t, date, unchanged)

	timestamp, errTimestamp := ApplyClockToTimestamp(date.UnixMilli(), "10:00", location)
	require.NoError(t, errTimestamp)
	require.Equal(t,
		time.Date(2025, time.March, 28, 10, 0, 12, 0, location).UnixMilli(),
		timestamp,
	)
}

func TestAddTaskFromForm(t *testing.T) {
	board := newTestBoard(t, PolicyReject, 0)
	day := time.Date(2025, time.March, 30, 0, 0, 0, 0, time.UTC)

	t.Run(
		"1. start and end clocks converted the same way",
		func(t *testing.T) {
			form := NewTaskForm(day, 2)
			form.Title = "Task 3"
			form.StartClock = "06:30"
			form.EndClock = "14:00"
			form.Progress = 20

			result, task, errAdd := board.AddTaskFromForm(form)
			require.NoError(t, errAdd)
			require.Len(t, result.GetTasks(), 3)

			require.Equal(t, day.Add(6*time.Hour+30*time.Minute).UnixMilli(), task.TimeStart)
			require.Equal(t, day.Add(14*time.Hour).UnixMilli(), task.TimeEnd)
			require.EqualValues(t, 2, task.GroupID)
			require.Equal(t, 20, task.Progress)
		},
	)

	t.Run(
		"2. reset form has no title",
		func(t *testing.T) {
			form := NewTaskForm(day, 1)
			require.Equal(t, "00:00", form.StartClock)
			require.Equal(t, "00:00", form.EndClock)
			require.Zero(t, form.Progress)

			result, task, errAdd := board.AddTaskFromForm(form)
			require.Error(t, errAdd)
			require.Nil(t, task)
			require.Equal(t, board.GetTasks(), result.GetTasks())
		},
	)

	t.Run(
		"3. missing end date",
		func(t *testing.T) {
			form := NewTaskForm(day, 1)
			form.Title = "Task 3"
			form.EndDate = nil

			result, _, errAdd := board.AddTaskFromForm(form)

			var errValidation goerrors.ErrValidation
			require.ErrorAs(t, errAdd, &errValidation)
			require.Same(t, board, result)
		},
	)

	t.Run(
		"4. malformed clock",
		func(t *testing.T) {
			form := NewTaskForm(day, 1)
			form.Title = "Task 3"
			form.StartClock = "25:00"

			result, _, errAdd := board.AddTaskFromForm(form)
			require.Error(t, errAdd)
			require.Same(t, board, result)
		},
	)
}

func TestUpdateTaskFromForm(t *testing.T) {
	board := newTestBoard(t, PolicyReject, 0)

	task, errGet := board.GetTask(1)
	require.NoError(t, errGet)

	form := NewTaskFormFromTask(task, time.UTC)
	require.Equal(t, "Task 1", form.Title)
	require.Equal(t, "08:00", form.StartClock)
	require.Equal(t, 55, form.Progress)

	form.EndClock = "12:00"
	form.Progress = 60

	result, errUpdate := board.UpdateTaskFromForm(1, form)
	require.NoError(t, errUpdate)

	updated, _ := result.GetTask(1)
	require.Equal(t, task.TimeStart, updated.TimeStart)
	require.Equal(t, now+2*oneDay+4*oneHour, updated.TimeEnd)
	require.Equal(t, 60, updated.Progress)
	require.Equal(t, task.Color, updated.Color)

	_, errMissing := board.UpdateTaskFromForm(7, form)
	require.Error(t, errMissing)
}
