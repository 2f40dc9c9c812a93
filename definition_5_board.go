package ganttboard

import (
	"errors"
	"slices"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// Board is an immutable snapshot of the schedule.
// Every successful mutation returns a new Board with a new revision,
// failed mutations return the receiver unchanged together with the error.
type Board struct {
	logger   *zap.Logger
	revision string

	groups Groups
	tasks  []Task

	nextTaskID      int64
	minimumDuration int64
	policy          IntervalPolicy
}

type ParamsNewBoard struct {
	Logger *zap.Logger
	Groups Groups

	MinimumDurationMillis int64
	Policy                IntervalPolicy
}

func (params *ParamsNewBoard) IsValid() error {
	if len(params.Groups) == 0 {
		return goerrors.ErrServiceValidation{
			ServiceName: "Board",
			Caller:      "NewBoard",
			Issue: goerrors.ErrNilInput{
				InputName: "Groups",
			},
		}
	}

	if errGroups := params.Groups.validate(); errGroups != nil {
		return goerrors.ErrServiceValidation{
			ServiceName: "Board",
			Caller:      "NewBoard",
			Issue:       errGroups,
		}
	}

	if params.MinimumDurationMillis < 0 {
		return goerrors.ErrServiceValidation{
			ServiceName: "Board",
			Caller:      "NewBoard",
			Issue: goerrors.ErrNegativeInput{
				InputName: "MinimumDurationMillis",
			},
		}
	}

	if params.Policy > PolicyAllow {
		return goerrors.ErrServiceValidation{
			ServiceName: "Board",
			Caller:      "NewBoard",
			Issue: goerrors.ErrInvalidInput{
				InputName:  "Policy",
				InputValue: params.Policy,
				Issue:      errors.New("unknown interval policy"),
			},
		}
	}

	return nil
}

// NewBoard creates a board without tasks.
func NewBoard(params *ParamsNewBoard) (*Board, error) {
	if errValidation := params.IsValid(); errValidation != nil {
		return nil,
			errValidation
	}

	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Board{
			logger:   logger,
			revision: ulid.Make().String(),

			groups: slices.Clone(params.Groups),
			tasks:  []Task{},

			nextTaskID:      1,
			minimumDuration: params.MinimumDurationMillis,
			policy:          params.Policy,
		},
		nil
}

func (b *Board) GetRevision() string {
	return b.revision
}

func (b *Board) GetPolicy() IntervalPolicy {
	return b.policy
}

func (b *Board) GetGroups() Groups {
	return slices.Clone(b.groups)
}

// GetTasks returns the tasks in insertion order.
func (b *Board) GetTasks() []Task {
	return slices.Clone(b.tasks)
}

func (b *Board) GetTask(taskID int64) (*Task, error) {
	ix := b.indexOf(taskID)
	if ix < 0 {
		return nil,
			ErrTaskNotFound{
				TaskID: taskID,
			}
	}

	task := b.tasks[ix]

	return &task, nil
}

func (b *Board) indexOf(taskID int64) int {
	return slices.IndexFunc(
		b.tasks,
		func(task Task) bool {
			return task.ID == taskID
		},
	)
}

// next copies the snapshot under a new revision.
func (b *Board) next() *Board {
	return &Board{
		logger:   b.logger,
		revision: ulid.Make().String(),

		groups: b.groups,
		tasks:  slices.Clone(b.tasks),

		nextTaskID:      b.nextTaskID,
		minimumDuration: b.minimumDuration,
		policy:          b.policy,
	}
}

func (b *Board) withTaskAt(ix int, task Task) *Board {
	result := b.next()
	result.tasks[ix] = task

	return result
}

func (b *Board) reject(operation string, taskID int64, err error) (*Board, error) {
	b.logger.Debug(
		"mutation rejected",

		zap.String("operation", operation),
		zap.Int64("task", taskID),
		zap.String("revision", b.revision),
		zap.Error(err),
	)

	return b, err
}

func (b *Board) accepted(operation string, taskID int64) {
	b.logger.Debug(
		"mutation applied",

		zap.String("operation", operation),
		zap.Int64("task", taskID),
		zap.String("revision", b.revision),
	)
}
