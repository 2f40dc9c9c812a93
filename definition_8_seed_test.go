package ganttboard

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const testSeed = `
groups:
  - id: 10
    title: Press
  - id: 20
    title: Lathe
tasks:
  - id: 4
    group: 20
    title: Housing
    start_time: 1743148800000
    end_time: 1743156000000
    progress: 30
    can_resize: right
  - id: 9
    group: 10
    title: Bracket
    start_time: 1743148800000
    end_time: 1743152400000
    progress: 0
    can_move: false
`

func TestLoadSeed(t *testing.T) {
	seed, errLoad := LoadSeed(strings.NewReader(testSeed))
	require.NoError(t, errLoad)
	require.Len(t, seed.Groups, 2)
	require.Len(t, seed.Tasks, 2)

	board, errCr := NewBoardFromSeed(
		&ParamsNewBoardFromSeed{
			Seed: seed,
		},
	)
	require.NoError(t, errCr)

	housing, errGet := board.GetTask(4)
	require.NoError(t, errGet)
	require.Equal(t, ResizeRight, housing.CanResize)
	require.True(t, housing.CanMove)
	require.Equal(t, colorForTask(4), housing.Color)

	bracket, _ := board.GetTask(9)
	require.False(t, bracket.CanMove)

	_, added, errAdd := board.AddTask(
		&ParamsNewTask{
			Title:        "Shaft",
			GroupID:      20,
			TimeInterval: TimeInterval{TimeStart: now, TimeEnd: now + oneHour},
		},
	)
	require.NoError(t, errAdd)
	require.EqualValues(t, 10, added.ID, "counter continues after the largest seeded ID")
}

func TestErrorsSeed(t *testing.T) {
	const shortTask = "groups:\n  - id: 1\n    title: A\ntasks:\n  - id: 1\n    group: 1\n    title: T\n    start_time: 0\n    end_time: 3600000\n"

	tests := []struct {
		name   string
		seed   string
		params ParamsNewBoard

		expectLoadError bool
	}{
		{
			name:            "1. unknown field",
			seed:            "groups:\n  - id: 1\n    title: A\n    colour: red\n",
			expectLoadError: true,
		},
		{
			name: "2. task on missing group",
			seed: "groups:\n  - id: 1\n    title: A\ntasks:\n  - id: 1\n    group: 2\n    title: T\n",
		},
		{
			name: "3. duplicate task",
			seed: "groups:\n  - id: 1\n    title: A\ntasks:\n  - id: 1\n    group: 1\n    title: T\n  - id: 1\n    group: 1\n    title: U\n",
		},
		{
			name: "4. inverted task",
			seed: "groups:\n  - id: 1\n    title: A\ntasks:\n  - id: 1\n    group: 1\n    title: T\n    start_time: 10\n    end_time: 5\n",
		},
		{
			name:            "5. unknown resize permission",
			seed:            "groups:\n  - id: 1\n    title: A\ntasks:\n  - id: 1\n    group: 1\n    title: T\n    can_resize: top\n",
			expectLoadError: true,
		},
		{
			name: "6. no groups",
			seed: "tasks: []\n",
		},
		{
			name: "7. task below minimum duration",
			seed: shortTask,
			params: ParamsNewBoard{
				Policy:                PolicyReject,
				MinimumDurationMillis: oneDay,
			},
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name,
			func(t *testing.T) {
				seed, errLoad := LoadSeed(strings.NewReader(tt.seed))
				if tt.expectLoadError {
					require.Error(t, errLoad)
					require.Nil(t, seed)

					return
				}

				require.NoError(t, errLoad)

				board, errCr := NewBoardFromSeed(
					&ParamsNewBoardFromSeed{
						ParamsNewBoard: tt.params,
						Seed:           seed,
					},
				)
				require.Error(t, errCr)
				require.Nil(t, board)
			},
		)
	}
}

func TestSeedMinimumDuration(t *testing.T) {
	const shortTask = "groups:\n  - id: 1\n    title: A\ntasks:\n  - id: 1\n    group: 1\n    title: T\n    start_time: 0\n    end_time: 3600000\n"

	tests := []struct {
		name   string
		policy IntervalPolicy

		expectedDuration int64
	}{
		{
			name:             "1. clamp stretches the right edge",
			policy:           PolicyClamp,
			expectedDuration: oneDay,
		},
		{
			name:             "2. allow keeps the seeded interval",
			policy:           PolicyAllow,
			expectedDuration: oneHour,
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name,
			func(t *testing.T) {
				seed, errLoad := LoadSeed(strings.NewReader(shortTask))
				require.NoError(t, errLoad)

				board, errCr := NewBoardFromSeed(
					&ParamsNewBoardFromSeed{
						ParamsNewBoard: ParamsNewBoard{
							Policy:                tt.policy,
							MinimumDurationMillis: oneDay,
						},
						Seed: seed,
					},
				)
				require.NoError(t, errCr)

				task, errGet := board.GetTask(1)
				require.NoError(t, errGet)
				require.Zero(t, task.TimeStart)
				require.Equal(t, tt.expectedDuration, task.GetDuration())

				task.Progress = 60

				updated, errUpdate := board.UpdateTask(task)
				require.NoError(t, errUpdate)

				reloaded, _ := updated.GetTask(1)
				require.Equal(t, 60, reloaded.Progress)
				require.Equal(t, tt.expectedDuration, reloaded.GetDuration(), "progress edit keeps the interval")
			},
		)
	}
}

func TestExportSeed(t *testing.T) {
	board := newTestBoard(t, PolicyReject, 0)

	var buf bytes.Buffer
	require.NoError(t,
		board.ExportSeed().Write(&buf),
	)

	seed, errLoad := LoadSeed(&buf)
	require.NoError(t, errLoad)

	reloaded, errCr := NewBoardFromSeed(
		&ParamsNewBoardFromSeed{
			Seed: seed,
		},
	)
	require.NoError(t, errCr)
	require.Equal(t, board.GetTasks(), reloaded.GetTasks())
	require.Equal(t, board.GetGroups(), reloaded.GetGroups())
}
