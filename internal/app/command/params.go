package command

import (
	"encoding/json"
	"strconv"
	"strings"

	"armbridge/internal/domain/robot"
)

// Agent params arrive as loosely typed JSON values; models emit numbers as
// numbers or strings interchangeably, so both are accepted.

func stringParam(params map[string]any, key string) (string, bool) {
	v, ok := params[key]
	if !ok {
		return "", false
	}
	switch t := v.(type) {
	case string:
		s := strings.TrimSpace(t)
		return s, s != ""
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	case json.Number:
		return t.String(), true
	default:
		return "", false
	}
}

func intParam(params map[string]any, key string) (int, bool) {
	v, ok := params[key]
	if !ok {
		return 0, false
	}
	switch t := v.(type) {
	case float64:
		return int(t), true
	case int:
		return t, true
	case json.Number:
		n, err := t.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func armParam(params map[string]any, key string) (robot.Arm, bool) {
	s, ok := stringParam(params, key)
	if !ok {
		return "", false
	}
	arm := robot.Arm(s)
	if !robot.IsValidArm(arm) {
		return "", false
	}
	return arm, true
}

func decodeMove(params map[string]any) (robot.MoveParams, error) {
	arm, ok := armParam(params, "Arm")
	if !ok {
		return robot.MoveParams{}, missingParam(robot.ActionMove, "Arm")
	}
	axisRaw, ok := stringParam(params, "Axis")
	if !ok || !robot.IsValidAxis(robot.Axis(axisRaw)) {
		return robot.MoveParams{}, missingParam(robot.ActionMove, "Axis")
	}
	units, ok := intParam(params, "Units")
	if !ok {
		return robot.MoveParams{}, missingParam(robot.ActionMove, "Units")
	}
	return robot.MoveParams{Arm: arm, Axis: robot.Axis(axisRaw), Units: units}, nil
}

func decodeMoveTo(params map[string]any) (robot.MoveToParams, error) {
	kindRaw, ok := stringParam(params, "Type")
	if !ok {
		return robot.MoveToParams{}, missingParam(robot.ActionMoveTo, "Type")
	}
	kind := robot.MoveToKind(kindRaw)
	arm, ok := armParam(params, "Arm")
	if !ok {
		return robot.MoveToParams{}, missingParam(robot.ActionMoveTo, "Arm")
	}

	switch kind {
	case robot.MoveToCoordinate:
		x, okX := intParam(params, "X")
		y, okY := intParam(params, "Y")
		z, okZ := intParam(params, "Z")
		if !okX {
			return robot.MoveToParams{}, missingParam(robot.ActionMoveTo, "X")
		}
		if !okY {
			return robot.MoveToParams{}, missingParam(robot.ActionMoveTo, "Y")
		}
		if !okZ {
			return robot.MoveToParams{}, missingParam(robot.ActionMoveTo, "Z")
		}
		return robot.MoveToParams{Kind: kind, Arm: arm, X: x, Y: y, Z: z}, nil
	case robot.MoveToName:
		name, ok := stringParam(params, "Name")
		if !ok {
			return robot.MoveToParams{}, missingParam(robot.ActionMoveTo, "Name")
		}
		return robot.MoveToParams{Kind: kind, Arm: arm, Name: name}, nil
	default:
		return robot.MoveToParams{}, missingParam(robot.ActionMoveTo, "Type")
	}
}

func decodeGrip(params map[string]any) (robot.GripParams, error) {
	arm, ok := armParam(params, "Arm")
	if !ok {
		return robot.GripParams{}, missingParam(robot.ActionGrip, "Arm")
	}
	state, ok := intParam(params, "State")
	if !ok || (state != 0 && state != 1) {
		return robot.GripParams{}, missingParam(robot.ActionGrip, "State")
	}
	return robot.GripParams{Arm: arm, State: robot.GripState(state)}, nil
}

func decodeRotate(params map[string]any) (robot.RotateParams, error) {
	arm, ok := armParam(params, "Arm")
	if !ok {
		return robot.RotateParams{}, missingParam(robot.ActionRotate, "Arm")
	}
	position, ok := stringParam(params, "Position")
	if !ok {
		return robot.RotateParams{}, missingParam(robot.ActionRotate, "Position")
	}
	return robot.RotateParams{Arm: arm, Position: position}, nil
}

func decodeAssembly(params map[string]any) (robot.AssemblyParams, error) {
	step, ok := intParam(params, "Step")
	if !ok {
		return robot.AssemblyParams{}, missingParam(robot.ActionAssembly, "Step")
	}
	return robot.AssemblyParams{Step: step}, nil
}

func decodeIdentify(params map[string]any) (robot.IdentifyParams, error) {
	query, ok := stringParam(params, "Query")
	if !ok {
		return robot.IdentifyParams{}, missingParam(robot.ActionIdentify, "Query")
	}
	return robot.IdentifyParams{Query: query}, nil
}
