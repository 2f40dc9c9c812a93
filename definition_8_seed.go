package ganttboard

import (
	"fmt"
	"io"
	"time"

	goerrors "github.com/TudorHulban/go-errors"
	"gopkg.in/yaml.v3"
)

type SeedGroup struct {
	Title string `yaml:"title"`
	ID    int64  `yaml:"id"`
}

type SeedTask struct {
	Title string `yaml:"title"`
	Color string `yaml:"color,omitempty"`

	ID        int64 `yaml:"id"`
	GroupID   int64 `yaml:"group"`
	TimeStart int64 `yaml:"start_time"`
	TimeEnd   int64 `yaml:"end_time"`
	Progress  int   `yaml:"progress"`

	CanResize      *ResizePermission `yaml:"can_resize,omitempty"`
	CanMove        *bool             `yaml:"can_move,omitempty"`
	CanChangeGroup *bool             `yaml:"can_change_group,omitempty"`
}

// Seed is the initial content of a board.
type Seed struct {
	Groups []SeedGroup `yaml:"groups"`
	Tasks  []SeedTask  `yaml:"tasks"`
}

func LoadSeed(r io.Reader) (*Seed, error) {
	var result Seed

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	if errDecode := decoder.Decode(&result); errDecode != nil {
		return nil,
			fmt.Errorf("failed to decode seed: %w", errDecode)
	}

	return &result, nil
}

func (s *Seed) Write(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if errEncode := encoder.Encode(s); errEncode != nil {
		return fmt.Errorf("failed to encode seed: %w", errEncode)
	}

	return encoder.Close()
}

// NewDemoSeed returns three machines with two tasks relative to now.
func NewDemoSeed(now time.Time) *Seed {
	const oneDay = 24 * time.Hour

	return &Seed{
		Groups: []SeedGroup{
			{ID: 1, Title: "Machine A"},
			{ID: 2, Title: "Machine B"},
			{ID: 3, Title: "Machine C"},
		},
		Tasks: []SeedTask{
			{
				ID:        1,
				GroupID:   1,
				Title:     "Task 1",
				TimeStart: now.UnixMilli(),
				TimeEnd:   now.Add(2 * oneDay).UnixMilli(),
				Progress:  55,
				Color:     "rgb(158, 14, 206)",
			},
			{
				ID:        2,
				GroupID:   2,
				Title:     "Task 2",
				TimeStart: now.Add(3 * oneDay).UnixMilli(),
				TimeEnd:   now.Add(5 * oneDay).UnixMilli(),
				Progress:  0,
				Color:     "rgb(106, 204, 106)",
			},
		},
	}
}

type ParamsNewBoardFromSeed struct {
	ParamsNewBoard

	Seed *Seed
}

// NewBoardFromSeed keeps the seeded task IDs, new tasks continue after the largest one.
func NewBoardFromSeed(params *ParamsNewBoardFromSeed) (*Board, error) {
	if params.Seed == nil {
		return nil,
			goerrors.ErrServiceValidation{
				ServiceName: "Board",
				Caller:      "NewBoardFromSeed",
				Issue: goerrors.ErrNilInput{
					InputName: "Seed",
				},
			}
	}

	groups := make(Groups, 0, len(params.Seed.Groups))

	for _, group := range params.Seed.Groups {
		groups = append(
			groups,
			Group{
				ID:    group.ID,
				Title: group.Title,
			},
		)
	}

	paramsBoard := params.ParamsNewBoard
	paramsBoard.Groups = groups

	result, errCr := NewBoard(&paramsBoard)
	if errCr != nil {
		return nil, errCr
	}

	for _, seeded := range params.Seed.Tasks {
		task, errTask := seeded.toTask()
		if errTask != nil {
			return nil, errTask
		}

		if result.indexOf(task.ID) >= 0 {
			return nil,
				goerrors.ErrServiceValidation{
					ServiceName: "Board",
					Caller:      "NewBoardFromSeed",
					Issue:       fmt.Errorf("task ID %d seeded more than once", task.ID),
				}
		}

		if _, errGroup := result.groups.GetByID(task.GroupID); errGroup != nil {
			return nil, errGroup
		}

		if task.IsInverted() {
			return nil,
				goerrors.ErrServiceValidation{
					ServiceName: "Board",
					Caller:      "NewBoardFromSeed",
					Issue:       fmt.Errorf("task %d ends before it starts", task.ID),
				}
		}

		interval, errPolicy := result.policy.apply(
			&paramsApplyPolicy{
				Interval:        task.TimeInterval,
				Edge:            EdgeRight,
				MinimumDuration: result.minimumDuration,
			},
		)
		if errPolicy != nil {
			return nil, errPolicy
		}

		task.TimeInterval = interval

		result.tasks = append(result.tasks, *task)
		result.nextTaskID = max(result.nextTaskID, task.ID+1)
	}

	return result, nil
}

func (seeded SeedTask) toTask() (*Task, error) {
	result := Task{
		ID:           seeded.ID,
		GroupID:      seeded.GroupID,
		Title:        seeded.Title,
		Color:        ternary(len(seeded.Color) > 0, seeded.Color, colorForTask(seeded.ID)),
		Progress:     seeded.Progress,
		TimeInterval: TimeInterval{TimeStart: seeded.TimeStart, TimeEnd: seeded.TimeEnd},

		CanMove:        true,
		CanChangeGroup: true,
		CanResize:      ResizeBoth,
	}

	if seeded.CanMove != nil {
		result.CanMove = *seeded.CanMove
	}

	if seeded.CanChangeGroup != nil {
		result.CanChangeGroup = *seeded.CanChangeGroup
	}

	if seeded.CanResize != nil {
		result.CanResize = *seeded.CanResize
	}

	if errValidation := validateTask("NewBoardFromSeed", &result); errValidation != nil {
		return nil, errValidation
	}

	return &result, nil
}

// ExportSeed writes the snapshot back in seed form.
func (b *Board) ExportSeed() *Seed {
	result := Seed{
		Groups: make([]SeedGroup, 0, len(b.groups)),
		Tasks:  make([]SeedTask, 0, len(b.tasks)),
	}

	for _, group := range b.groups {
		result.Groups = append(
			result.Groups,
			SeedGroup{
				ID:    group.ID,
				Title: group.Title,
			},
		)
	}

	for _, task := range b.tasks {
		canResize := task.CanResize
		canMove := task.CanMove
		canChangeGroup := task.CanChangeGroup

		result.Tasks = append(
			result.Tasks,
			SeedTask{
				ID:        task.ID,
				GroupID:   task.GroupID,
				Title:     task.Title,
				Color:     task.Color,
				TimeStart: task.TimeStart,
				TimeEnd:   task.TimeEnd,
				Progress:  task.Progress,

				CanResize:      &canResize,
				CanMove:        &canMove,
				CanChangeGroup: &canChangeGroup,
			},
		)
	}

	return &result
}
