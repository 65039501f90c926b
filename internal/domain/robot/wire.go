package robot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Controller command codes. These are a fixed external contract with the
// robot-side program and must not change.
const (
	CodeChangeX      = "10"
	CodeChangeY      = "11"
	CodeChangeZ      = "12"
	CodeMoveAbsolute = "13"
	CodeGripOpen     = "20"
	CodeGripClose    = "21"
	CodeRotate       = "40"
	CodeAssembly     = "69"
	CodeSavePosition = "91"
	CodeGetPosition  = "99"
)

// Command is one encoded controller instruction: a two-digit code, the
// target arm, and code-specific arguments.
type Command struct {
	Code string
	Arm  Arm
	Args []string
}

// Encode renders the pipe-delimited wire form, e.g. "10|0|50".
func (c Command) Encode() string {
	fields := make([]string, 0, 2+len(c.Args))
	fields = append(fields, c.Code, c.Arm.WireDigit())
	fields = append(fields, c.Args...)
	return strings.Join(fields, "|")
}

func DeltaCommand(arm Arm, axis Axis, units int) Command {
	code := CodeChangeX
	switch axis {
	case AxisY:
		code = CodeChangeY
	case AxisZ:
		code = CodeChangeZ
	}
	return Command{Code: code, Arm: arm, Args: []string{strconv.Itoa(units)}}
}

func AbsoluteMoveCommand(arm Arm, pose Pose) Command {
	return Command{Code: CodeMoveAbsolute, Arm: arm, Args: []string{
		strconv.FormatFloat(pose.X, 'f', -1, 64),
		strconv.FormatFloat(pose.Y, 'f', -1, 64),
		strconv.FormatFloat(pose.Z, 'f', -1, 64),
	}}
}

func GripCommand(arm Arm, state GripState) Command {
	code := CodeGripOpen
	if state == GripClose {
		code = CodeGripClose
	}
	return Command{Code: code, Arm: arm}
}

func RotateCommand(arm Arm, rot Rotation) Command {
	return Command{Code: CodeRotate, Arm: arm, Args: []string{
		strconv.Itoa(rot.RX),
		strconv.Itoa(rot.RY),
		strconv.Itoa(rot.RZ),
	}}
}

func AssemblyCommand(step int) Command {
	return Command{Code: CodeAssembly, Arm: ArmLeft, Args: []string{strconv.Itoa(step)}}
}

func SavePositionCommand(arm Arm) Command {
	return Command{Code: CodeSavePosition, Arm: arm}
}

func GetPositionCommand(arm Arm) Command {
	return Command{Code: CodeGetPosition, Arm: arm}
}

// PoseUpdate is the result of parsing one controller reply.
type PoseUpdate struct {
	Arm  Arm
	Pose Pose
}

var ErrMalformedReply = errors.New("malformed controller reply")

// ParseReply decodes a controller reply of the form
// "<arm-digit><...>|...|x|y|z": pipe-delimited, the first character of the
// first token selects the arm, the last three tokens are floats.
func ParseReply(reply string) (PoseUpdate, error) {
	fields := strings.Split(strings.TrimSpace(reply), "|")
	if len(fields) < 3 || fields[0] == "" {
		return PoseUpdate{}, fmt.Errorf("%w: %q", ErrMalformedReply, reply)
	}

	arm, ok := ArmFromWireDigit(fields[0][0])
	if !ok {
		return PoseUpdate{}, fmt.Errorf("%w: unknown arm in %q", ErrMalformedReply, reply)
	}

	tail := fields[len(fields)-3:]
	coords := make([]float64, 3)
	for i, raw := range tail {
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return PoseUpdate{}, fmt.Errorf("%w: bad coordinate %q in %q", ErrMalformedReply, raw, reply)
		}
		coords[i] = v
	}

	return PoseUpdate{
		Arm:  arm,
		Pose: Pose{X: coords[0], Y: coords[1], Z: coords[2]},
	}, nil
}
