package command

import (
	"errors"
	"fmt"

	"armbridge/internal/domain/robot"
)

var (
	ErrMissingParameter = errors.New("missing required parameter")
	ErrLinkDisabled     = errors.New("robot link not configured")
	ErrVisionDisabled   = errors.New("vision capability not configured")
)

// MissingParameterError reports a required action parameter that is absent
// or not decodable. This is a caller fault, unlike the unknown-preset and
// unknown-action paths which degrade to a no-op success.
type MissingParameterError struct {
	Action robot.ActionType
	Param  string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("%s: %s requires parameter %q", ErrMissingParameter.Error(), e.Action, e.Param)
}

func (e *MissingParameterError) Unwrap() error {
	return ErrMissingParameter
}

func missingParam(action robot.ActionType, param string) error {
	return &MissingParameterError{Action: action, Param: param}
}
