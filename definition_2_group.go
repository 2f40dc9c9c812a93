package ganttboard

import (
	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
)

// Group is a machine, one labeled row of the timeline.
type Group struct {
	Title string
	ID    int64
}

type ParamsNewGroup struct {
	Title string `valid:"required"`
	ID    int64  `valid:"required"`
}

func (params *ParamsNewGroup) IsValid() error {
	if _, errValidation := govalidator.ValidateStruct(params); errValidation != nil {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewGroup",
			Issue:  errValidation,
		}
	}

	if params.ID < 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewGroup",
			Issue: goerrors.ErrNegativeInput{
				InputName: "ID",
			},
		}
	}

	return nil
}

func NewGroup(params *ParamsNewGroup) (*Group, error) {
	if errValidation := params.IsValid(); errValidation != nil {
		return nil,
			errValidation
	}

	return &Group{
			ID:    params.ID,
			Title: params.Title,
		},
		nil
}

// Groups keeps the row order of the timeline.
type Groups []Group

func (groups Groups) GetByID(id int64) (*Group, error) {
	for ix := range groups {
		if groups[ix].ID == id {
			group := groups[ix]

			return &group, nil
		}
	}

	return nil,
		ErrGroupNotFound{
			GroupID: id,
		}
}

// GetIDAtPosition translates a timeline row index into the stable group ID.
// Only UI event handlers should need it.
func (groups Groups) GetIDAtPosition(position int) (int64, error) {
	if position < 0 || position >= len(groups) {
		return 0,
			ErrGroupPositionOutOfRange{
				Position:   position,
				NumberRows: len(groups),
			}
	}

	return groups[position].ID, nil
}

// GetPosition returns -1 for unknown IDs.
func (groups Groups) GetPosition(id int64) int {
	for ix, group := range groups {
		if group.ID == id {
			return ix
		}
	}

	return -1
}

func (groups Groups) validate() error {
	seen := make(map[int64]bool, len(groups))

	for _, group := range groups {
		if _, errValidation := NewGroup(
			&ParamsNewGroup{
				ID:    group.ID,
				Title: group.Title,
			},
		); errValidation != nil {
			return errValidation
		}

		if seen[group.ID] {
			return goerrors.ErrInvalidInput{
				Caller:     "validate - Groups",
				InputName:  "ID",
				InputValue: group.ID,
				Issue: ErrDuplicateGroup{
					GroupID: group.ID,
				},
			}
		}

		seen[group.ID] = true
	}

	return nil
}
