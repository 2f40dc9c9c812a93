package ganttboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const (
	halfHour = int64(30 * time.Minute / time.Millisecond)
	oneHour  = int64(time.Hour / time.Millisecond)
	oneDay   = 24 * oneHour
)

var now = time.Date(2025, time.March, 28, 8, 0, 0, 0, time.UTC).UnixMilli()

func testGroups() Groups {
	return Groups{
		{ID: 1, Title: "Machine A"},
		{ID: 2, Title: "Machine B"},
		{ID: 3, Title: "Machine C"},
	}
}

// newTestBoard seeds Task 1 on group 1 for [now, now+2d] and Task 2 on group 2 for [now+3d, now+5d].
func newTestBoard(t *testing.T, policy IntervalPolicy, minimumDuration int64) *Board {
	t.Helper()

	board, errCr := NewBoardFromSeed(
		&ParamsNewBoardFromSeed{
			ParamsNewBoard: ParamsNewBoard{
				Policy:                policy,
				MinimumDurationMillis: minimumDuration,
			},
			Seed: NewDemoSeed(time.UnixMilli(now)),
		},
	)
	require.NoError(t, errCr)
	require.NotNil(t, board)

	return board
}
