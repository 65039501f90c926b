package robot

// Arm identifies one of the two manipulator arms.
type Arm string

const (
	ArmLeft  Arm = "Left"
	ArmRight Arm = "Right"
)

// WireDigit is the single-character arm identifier used on the controller wire.
func (a Arm) WireDigit() string {
	if a == ArmRight {
		return "1"
	}
	return "0"
}

func ArmFromWireDigit(d byte) (Arm, bool) {
	switch d {
	case '0':
		return ArmLeft, true
	case '1':
		return ArmRight, true
	default:
		return "", false
	}
}

func IsValidArm(a Arm) bool {
	return a == ArmLeft || a == ArmRight
}

type Axis string

const (
	AxisX Axis = "X"
	AxisY Axis = "Y"
	AxisZ Axis = "Z"
)

func IsValidAxis(a Axis) bool {
	return a == AxisX || a == AxisY || a == AxisZ
}

type ActionType string

const (
	// ActionNone is the sentinel the task agent emits when no robot action
	// should follow the reply.
	ActionNone     ActionType = "0"
	ActionMove     ActionType = "Move"
	ActionMoveTo   ActionType = "MoveTo"
	ActionGrip     ActionType = "Grip"
	ActionRotate   ActionType = "Rotate"
	ActionAssembly ActionType = "Assembly"
	ActionIdentify ActionType = "Identify"
)

// Action is an abstract robot action as decided by the task agent. Params is
// kept in its loose agent-boundary shape; the command translator decodes it
// into the typed records below.
type Action struct {
	Name   ActionType     `json:"Name"`
	Params map[string]any `json:"Params,omitempty"`
}

func (a Action) IsNoop() bool {
	return a.Name == "" || a.Name == ActionNone
}

// NoopAction is the canonical "no robot action" value.
func NoopAction() Action {
	return Action{Name: ActionNone, Params: map[string]any{}}
}

type MoveParams struct {
	Arm   Arm
	Axis  Axis
	Units int
}

type MoveToKind string

const (
	MoveToCoordinate MoveToKind = "Coordinate"
	MoveToName       MoveToKind = "Name"
)

type MoveToParams struct {
	Kind MoveToKind
	Arm  Arm
	X    int
	Y    int
	Z    int
	Name string
}

type GripState int

const (
	GripOpen  GripState = 0
	GripClose GripState = 1
)

type GripParams struct {
	Arm   Arm
	State GripState
}

type RotateParams struct {
	Arm      Arm
	Position string
}

type AssemblyParams struct {
	Step int
}

type IdentifyParams struct {
	Query string
}
