package ganttboard

import (
	"fmt"
	"sort"
	"strings"
)

// ItemView is what a timeline renderer needs for one bar.
type ItemView struct {
	Title      string
	GroupTitle string
	Color      string

	TimeInterval

	ID            int64
	GroupID       int64
	GroupPosition int
	Progress      int
	StackLevel    int

	CanResize      ResizePermission
	CanMove        bool
	CanChangeGroup bool
}

// GetItems returns the bars ordered by row, then by start.
func (b *Board) GetItems() []ItemView {
	levels := make(map[int64]int, len(b.tasks))

	for _, group := range b.groups {
		for taskID, level := range b.stackLevels(group.ID) {
			levels[taskID] = level
		}
	}

	result := make([]ItemView, 0, len(b.tasks))

	for _, task := range b.tasks {
		position := b.groups.GetPosition(task.GroupID)

		result = append(
			result,
			ItemView{
				ID:             task.ID,
				GroupID:        task.GroupID,
				GroupPosition:  position,
				GroupTitle:     ternary(position >= 0, b.groups[max(position, 0)].Title, ""),
				Title:          task.Title,
				Color:          task.Color,
				TimeInterval:   task.TimeInterval,
				Progress:       task.Progress,
				StackLevel:     levels[task.ID],
				CanResize:      task.CanResize,
				CanMove:        task.CanMove,
				CanChangeGroup: task.CanChangeGroup,
			},
		)
	}

	sort.SliceStable(
		result,
		func(i, j int) bool {
			if result[i].GroupPosition != result[j].GroupPosition {
				return result[i].GroupPosition < result[j].GroupPosition
			}

			return result[i].TimeStart < result[j].TimeStart
		},
	)

	return result
}

func (b *Board) String() string {
	items := b.GetItems()

	var sb strings.Builder

	sb.WriteString(
		fmt.Sprintf("Board %s:\n", b.revision),
	)

	for _, group := range b.groups {
		sb.WriteString(
			fmt.Sprintf("%s (%d):\n", group.Title, group.ID),
		)

		var scheduled int

		for _, item := range items {
			if item.GroupID != group.ID {
				continue
			}

			scheduled++

			sb.WriteString(
				fmt.Sprintf(
					"\t- %s → Task %d %q %d%% (lane %d)\n",

					item.TimeInterval,
					item.ID,
					item.Title,
					item.Progress,
					item.StackLevel,
				),
			)
		}

		if scheduled == 0 {
			sb.WriteString("\t(empty)\n")
		}
	}

	return sb.String()
}
