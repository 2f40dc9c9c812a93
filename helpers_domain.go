package ganttboard

import "fmt"

const _GoldenAngleDegrees = 137

// colorForTask spreads hues of consecutive IDs around the color wheel.
func colorForTask(taskID int64) string {
	return fmt.Sprintf(
		"hsl(%d, 70%%, 50%%)",
		(taskID*_GoldenAngleDegrees)%360,
	)
}
