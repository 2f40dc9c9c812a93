package main

import (
	"bytes"
	"os"
	"strconv"
	"time"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/TudorHulban/ganttboard"
)

const _DateLayout = "2006-01-02"

func newBoard(cfg *ganttboard.Config, now time.Time) (*ganttboard.Board, error) {
	paramsBoard, errParams := cfg.ToParamsNewBoard()
	if errParams != nil {
		return nil, errParams
	}

	seed := ganttboard.NewDemoSeed(now)

	if len(cfg.SeedFile) > 0 {
		f, errOpen := os.Open(cfg.SeedFile)
		if errOpen != nil {
			return nil, errOpen
		}
		defer f.Close()

		loaded, errLoad := ganttboard.LoadSeed(f)
		if errLoad != nil {
			return nil, errLoad
		}

		seed = loaded
	}

	return ganttboard.NewBoardFromSeed(
		&ganttboard.ParamsNewBoardFromSeed{
			ParamsNewBoard: *paramsBoard,
			Seed:           seed,
		},
	)
}

// parseTimestamp accepts unix milliseconds or RFC3339.
func parseTimestamp(text string) (int64, error) {
	if millis, errInt := strconv.ParseInt(text, 10, 64); errInt == nil {
		return millis, nil
	}

	parsed, errParse := time.Parse(time.RFC3339, text)
	if errParse != nil {
		return 0, errParse
	}

	return parsed.UnixMilli(), nil
}

func move(board *ganttboard.Board) (*ganttboard.Board, error) {
	timeStart, errTime := parseTimestamp(*moveStart)
	if errTime != nil {
		return board, errTime
	}

	if *moveGroupID == 0 && *moveRow >= 0 {
		return board.MoveTaskToPosition(*moveTaskID, timeStart, *moveRow)
	}

	groupID := *moveGroupID

	if groupID == 0 {
		task, errGet := board.GetTask(*moveTaskID)
		if errGet != nil {
			return board, errGet
		}

		groupID = task.GroupID
	}

	return board.MoveTask(*moveTaskID, timeStart, groupID)
}

func resize(board *ganttboard.Board) (*ganttboard.Board, error) {
	edgeTime, errTime := parseTimestamp(*resizeTime)
	if errTime != nil {
		return board, errTime
	}

	return board.ResizeTask(
		*resizeTaskID,
		edgeTime,
		ganttboard.ResizeEdge(*resizeEdge),
	)
}

func add(board *ganttboard.Board, location *time.Location) (*ganttboard.Board, error) {
	startDate, errStart := time.ParseInLocation(_DateLayout, *addStartDate, location)
	if errStart != nil {
		return board, errStart
	}

	endDate, errEnd := time.ParseInLocation(_DateLayout, *addEndDate, location)
	if errEnd != nil {
		return board, errEnd
	}

	form := ganttboard.TaskForm{
		Title:      *addTitle,
		GroupID:    *addGroupID,
		StartDate:  &startDate,
		StartClock: *addStartClock,
		EndDate:    &endDate,
		EndClock:   *addEndClock,
		Progress:   *addProgress,
	}

	result, _, errAdd := board.AddTaskFromForm(&form)

	return result, errAdd
}

func updateProgress(board *ganttboard.Board) (*ganttboard.Board, error) {
	task, errGet := board.GetTask(*progressTaskID)
	if errGet != nil {
		return board, errGet
	}

	task.Progress = *progressValue

	return board.UpdateTask(task)
}

func diffBoards(before, after *ganttboard.Board) (string, error) {
	var bufBefore, bufAfter bytes.Buffer

	if errWrite := before.ExportSeed().Write(&bufBefore); errWrite != nil {
		return "", errWrite
	}

	if errWrite := after.ExportSeed().Write(&bufAfter); errWrite != nil {
		return "", errWrite
	}

	return difflib.GetUnifiedDiffString(
		difflib.UnifiedDiff{
			A:        difflib.SplitLines(bufBefore.String()),
			B:        difflib.SplitLines(bufAfter.String()),
			FromFile: "before " + before.GetRevision(),
			ToFile:   "after " + after.GetRevision(),
			Context:  2,
		},
	)
}
