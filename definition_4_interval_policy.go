package ganttboard

import (
	"errors"
	"fmt"
	"strings"

	goerrors "github.com/TudorHulban/go-errors"
)

// IntervalPolicy decides what happens when an edit leaves a task
// shorter than the minimum duration, inverted intervals included.
type IntervalPolicy uint8

const (
	PolicyReject IntervalPolicy = iota
	PolicyClamp
	PolicyAllow
)

var intervalPolicyNames = [...]string{"reject", "clamp", "allow"}

func (policy IntervalPolicy) String() string {
	if int(policy) >= len(intervalPolicyNames) {
		return fmt.Sprintf("IntervalPolicy(%d)", policy)
	}

	return intervalPolicyNames[policy]
}

func ParseIntervalPolicy(text string) (IntervalPolicy, error) {
	for ix, name := range intervalPolicyNames {
		if strings.EqualFold(strings.TrimSpace(text), name) {
			return IntervalPolicy(ix), nil
		}
	}

	return PolicyReject,
		goerrors.ErrInvalidInput{
			Caller:     "ParseIntervalPolicy",
			InputName:  "policy",
			InputValue: text,
			Issue:      errors.New("expected one of reject, clamp, allow"),
		}
}

type paramsApplyPolicy struct {
	Interval        TimeInterval
	Edge            ResizeEdge
	MinimumDuration int64
}

// apply returns the interval to store once the edge identified by Edge was edited.
func (policy IntervalPolicy) apply(params *paramsApplyPolicy) (TimeInterval, error) {
	if params.Interval.GetDuration() >= params.MinimumDuration {
		return params.Interval, nil
	}

	switch policy {
	case PolicyAllow:
		return params.Interval, nil

	case PolicyClamp:
		if params.Edge == EdgeLeft {
			return TimeInterval{
					TimeStart: params.Interval.TimeEnd - params.MinimumDuration,
					TimeEnd:   params.Interval.TimeEnd,
				},
				nil
		}

		return TimeInterval{
				TimeStart: params.Interval.TimeStart,
				TimeEnd:   params.Interval.TimeStart + params.MinimumDuration,
			},
			nil
	}

	return params.Interval,
		goerrors.ErrValidation{
			Caller: "apply - IntervalPolicy",
			Issue: goerrors.ErrInvalidInput{
				InputName:  "TimeInterval",
				InputValue: params.Interval.String(),
				Issue: fmt.Errorf(
					"duration %d below minimum %d",
					params.Interval.GetDuration(),
					params.MinimumDuration,
				),
			},
		}
}
