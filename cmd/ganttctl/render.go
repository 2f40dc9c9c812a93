package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/TudorHulban/ganttboard"
)

const _ProgressBarWidth = 20

var rowColors = []color.Attribute{
	color.FgCyan,
	color.FgGreen,
	color.FgMagenta,
	color.FgYellow,
	color.FgBlue,
}

func progressBar(progress int) string {
	filled := max(0, min(_ProgressBarWidth, progress*_ProgressBarWidth/100))

	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", _ProgressBarWidth-filled) + "]"
}

func printBoard(w io.Writer, board *ganttboard.Board, location *time.Location) {
	header := color.New(color.Bold)
	items := board.GetItems()

	for position, group := range board.GetGroups() {
		header.Fprintf(w, "%s (%d)\n", group.Title, group.ID)

		row := color.New(rowColors[position%len(rowColors)])

		var scheduled int

		for _, item := range items {
			if item.GroupID != group.ID {
				continue
			}

			scheduled++

			row.Fprintf(
				w,
				"%s%3d %-20s %s %3d%%  %s → %s\n",

				strings.Repeat("  ", item.StackLevel+1),
				item.ID,
				item.Title,
				progressBar(item.Progress),
				item.Progress,
				time.UnixMilli(item.TimeStart).In(location).Format("2006-01-02 15:04"),
				time.UnixMilli(item.TimeEnd).In(location).Format("2006-01-02 15:04"),
			)
		}

		if scheduled == 0 {
			fmt.Fprintln(w, "  (empty)")
		}
	}
}

func printFreeSlot(board *ganttboard.Board) error {
	now := time.Now()

	when, errFind := board.FindAvailableTime(
		&ganttboard.ParamsFindAvailableTime{
			GroupID:          *freeGroupID,
			TimeStart:        now.UnixMilli(),
			MaximumTimeStart: now.Add(*freeWithin).UnixMilli(),
			Duration:         freeDuration.Milliseconds(),
		},
	)
	if errFind != nil {
		return errFind
	}

	if when == ganttboard.NoAvailability {
		color.New(color.FgYellow).Fprintln(os.Stdout, "no free slot")

		return nil
	}

	color.New(color.FgGreen).Fprintf(
		os.Stdout,
		"free from %s\n",
		time.UnixMilli(when).Format(time.RFC3339),
	)

	return nil
}
