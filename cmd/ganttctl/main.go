package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"

	"github.com/TudorHulban/ganttboard"
)

var (
	app = kingpin.New("ganttctl", "Apply schedule gestures to a machine board and print the result")

	seedFile = app.Flag("seed", "YAML seed file, demo board when empty").String()
	showDiff = app.Flag("diff", "Print a unified diff of the board before and after the change").Bool()
	asYAML   = app.Flag("yaml", "Print the resulting board as YAML").Bool()

	showCmd = app.Command("show", "Show the board")

	moveCmd     = app.Command("move", "Move a task keeping its duration")
	moveTaskID  = moveCmd.Arg("task", "Task ID").Required().Int64()
	moveStart   = moveCmd.Arg("start", "New start, unix milliseconds or RFC3339").Required().String()
	moveGroupID = moveCmd.Flag("group", "Target group ID").Int64()
	moveRow     = moveCmd.Flag("row", "Target timeline row, used when --group is missing").Default("-1").Int()

	resizeCmd    = app.Command("resize", "Move one edge of a task")
	resizeTaskID = resizeCmd.Arg("task", "Task ID").Required().Int64()
	resizeEdge   = resizeCmd.Arg("edge", "Edge to move").Required().Enum(string(ganttboard.EdgeLeft), string(ganttboard.EdgeRight))
	resizeTime   = resizeCmd.Arg("time", "New edge time, unix milliseconds or RFC3339").Required().String()

	addCmd        = app.Command("add", "Add a task from form values")
	addTitle      = addCmd.Arg("title", "Task title").Required().String()
	addGroupID    = addCmd.Flag("group", "Group ID").Default("1").Int64()
	addStartDate  = addCmd.Flag("start-date", "Start date, YYYY-MM-DD").Required().String()
	addStartClock = addCmd.Flag("start-clock", "Start clock, HH:MM").Default("00:00").String()
	addEndDate    = addCmd.Flag("end-date", "End date, YYYY-MM-DD").Required().String()
	addEndClock   = addCmd.Flag("end-clock", "End clock, HH:MM").Default("00:00").String()
	addProgress   = addCmd.Flag("progress", "Progress percentage").Default("0").Int()

	progressCmd    = app.Command("update-progress", "Change the progress of a task")
	progressTaskID = progressCmd.Arg("task", "Task ID").Required().Int64()
	progressValue  = progressCmd.Arg("progress", "Progress percentage").Required().Int()

	deleteCmd    = app.Command("delete", "Delete a task")
	deleteTaskID = deleteCmd.Arg("task", "Task ID").Required().Int64()

	freeCmd      = app.Command("free", "Find the earliest slot on a machine")
	freeGroupID  = freeCmd.Arg("group", "Group ID").Required().Int64()
	freeDuration = freeCmd.Flag("duration", "Needed duration").Default("1h").Duration()
	freeWithin   = freeCmd.Flag("within", "Latest start, relative to now").Default("168h").Duration()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	if errRun := run(command); errRun != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "ganttctl: %s\n", errRun)

		os.Exit(1)
	}
}

func run(command string) error {
	cfg, errCfg := ganttboard.LoadConfig()
	if errCfg != nil {
		return errCfg
	}

	if len(*seedFile) > 0 {
		cfg.SeedFile = *seedFile
	}

	location, errLocation := cfg.GetLocation()
	if errLocation != nil {
		return errLocation
	}

	board, errBoard := newBoard(cfg, time.Now().In(location))
	if errBoard != nil {
		return errBoard
	}

	before := board

	switch command {
	case showCmd.FullCommand():

	case moveCmd.FullCommand():
		board, errBoard = move(board)

	case resizeCmd.FullCommand():
		board, errBoard = resize(board)

	case addCmd.FullCommand():
		board, errBoard = add(board, location)

	case progressCmd.FullCommand():
		board, errBoard = updateProgress(board)

	case deleteCmd.FullCommand():
		board, errBoard = board.DeleteTask(*deleteTaskID)

	case freeCmd.FullCommand():
		return printFreeSlot(board)
	}

	if errBoard != nil {
		return errBoard
	}

	if *showDiff {
		diff, errDiff := diffBoards(before, board)
		if errDiff != nil {
			return errDiff
		}

		fmt.Print(diff)
	}

	if *asYAML {
		return board.ExportSeed().Write(os.Stdout)
	}

	printBoard(os.Stdout, board, location)

	return nil
}
