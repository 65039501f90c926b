package command

import (
	"context"
	"fmt"

	"armbridge/internal/app/ports"
	"armbridge/internal/domain/robot"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Result is the translator's report for one action. A transport failure
// does not flip Status: the semantic command was accepted locally even when
// hardware confirmation could not be obtained.
type Result struct {
	Status string `json:"status"`
	Update string `json:"update,omitempty"`
}

// UseCase translates abstract actions into controller commands and tracks
// reported arm poses. Link may be nil (hardware-disabled mode). A UseCase
// serves one pipeline; concurrent callers must serialize externally.
type UseCase struct {
	Link   ports.RobotLink
	Vision ports.VisionProvider
	Frames ports.FrameSource
	Poses  *robot.PoseTracker
}

// handlerFunc composes the local status text and, for transport-backed
// actions, the pending controller command. A nil command skips the round
// trip (Identify, unresolved presets).
type handlerFunc func(ctx context.Context, u UseCase, params map[string]any) (string, *robot.Command, error)

func handlers() map[robot.ActionType]handlerFunc {
	return map[robot.ActionType]handlerFunc{
		robot.ActionMove:     runMove,
		robot.ActionMoveTo:   runMoveTo,
		robot.ActionGrip:     runGrip,
		robot.ActionRotate:   runRotate,
		robot.ActionAssembly: runAssembly,
		robot.ActionIdentify: runIdentify,
	}
}

// Execute dispatches one action. Unknown action names and unresolved
// presets are no-ops that still succeed; a missing required parameter is a
// typed error.
func (u UseCase) Execute(ctx context.Context, action robot.Action) (Result, error) {
	if action.IsNoop() {
		return Result{Status: StatusSuccess, Update: "No action requested"}, nil
	}

	handler, ok := handlers()[action.Name]
	if !ok {
		hlog.Warnf("unknown function requested: %s", action.Name)
		return Result{Status: StatusSuccess, Update: fmt.Sprintf("Unknown function: %s", action.Name)}, nil
	}

	update, cmd, err := handler(ctx, u, action.Params)
	if err != nil {
		return Result{Status: StatusError}, err
	}

	if cmd != nil {
		u.roundTrip(*cmd)
	}

	return Result{Status: StatusSuccess, Update: update}, nil
}

// roundTrip performs the best-effort hardware exchange. Failures are logged
// and absorbed; the caller already holds the locally computed status.
func (u UseCase) roundTrip(cmd robot.Command) {
	if u.Link == nil {
		return
	}
	reply, err := u.Link.SendAndAwait(cmd.Encode())
	if err != nil {
		hlog.Errorf("controller round trip failed for %s: %v", cmd.Code, err)
		return
	}
	u.applyReply(reply)
}

func (u UseCase) applyReply(reply string) {
	update, err := robot.ParseReply(reply)
	if err != nil {
		hlog.Warnf("discarding controller reply: %v", err)
		return
	}
	if u.Poses != nil {
		u.Poses.Apply(update)
	}
}

// QueryPosition asks the controller for an arm's current position and
// refreshes the tracker.
func (u UseCase) QueryPosition(_ context.Context, arm robot.Arm) (robot.Pose, error) {
	if u.Link == nil {
		return robot.Pose{}, ErrLinkDisabled
	}
	reply, err := u.Link.SendAndAwait(robot.GetPositionCommand(arm).Encode())
	if err != nil {
		return robot.Pose{}, fmt.Errorf("query position: %w", err)
	}
	update, err := robot.ParseReply(reply)
	if err != nil {
		return robot.Pose{}, fmt.Errorf("query position: %w", err)
	}
	if u.Poses != nil {
		u.Poses.Apply(update)
	}
	return update.Pose, nil
}

// SavePosition asks the controller to persist the arm's current position as
// a teach point.
func (u UseCase) SavePosition(_ context.Context, arm robot.Arm) error {
	if u.Link == nil {
		return ErrLinkDisabled
	}
	if _, err := u.Link.SendAndAwait(robot.SavePositionCommand(arm).Encode()); err != nil {
		return fmt.Errorf("save position: %w", err)
	}
	return nil
}

func runMove(_ context.Context, _ UseCase, params map[string]any) (string, *robot.Command, error) {
	p, err := decodeMove(params)
	if err != nil {
		return "", nil, err
	}
	cmd := robot.DeltaCommand(p.Arm, p.Axis, p.Units)
	update := fmt.Sprintf("Moved %s arm by %d units along %s axis", p.Arm, p.Units, p.Axis)
	return update, &cmd, nil
}

func runMoveTo(_ context.Context, _ UseCase, params map[string]any) (string, *robot.Command, error) {
	p, err := decodeMoveTo(params)
	if err != nil {
		return "", nil, err
	}

	if p.Kind == robot.MoveToCoordinate {
		pose := robot.Pose{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z)}
		cmd := robot.AbsoluteMoveCommand(p.Arm, pose)
		return fmt.Sprintf("Moved %s to coordinates (%d, %d, %d)", p.Arm, p.X, p.Y, p.Z), &cmd, nil
	}

	pose, ok := robot.LookupCoordinate(p.Arm, p.Name)
	if !ok {
		hlog.Warnf("unresolved preset position %q for %s arm", p.Name, p.Arm)
		return fmt.Sprintf("Unknown preset position: %s", p.Name), nil, nil
	}
	cmd := robot.AbsoluteMoveCommand(p.Arm, pose)
	return fmt.Sprintf("Moved %s to preset '%s'", p.Arm, p.Name), &cmd, nil
}

func runGrip(_ context.Context, _ UseCase, params map[string]any) (string, *robot.Command, error) {
	p, err := decodeGrip(params)
	if err != nil {
		return "", nil, err
	}
	cmd := robot.GripCommand(p.Arm, p.State)
	verb := "opened"
	if p.State == robot.GripClose {
		verb = "closed"
	}
	return fmt.Sprintf("%s gripper %s", p.Arm, verb), &cmd, nil
}

func runRotate(_ context.Context, _ UseCase, params map[string]any) (string, *robot.Command, error) {
	p, err := decodeRotate(params)
	if err != nil {
		return "", nil, err
	}
	rot, ok := robot.LookupRotation(p.Position)
	if !ok {
		hlog.Warnf("unresolved rotation preset %q", p.Position)
		return fmt.Sprintf("Unknown rotation: %s", p.Position), nil, nil
	}
	cmd := robot.RotateCommand(p.Arm, rot)
	return fmt.Sprintf("%s rotated to %s: (%d, %d, %d)", p.Arm, p.Position, rot.RX, rot.RY, rot.RZ), &cmd, nil
}

func runAssembly(_ context.Context, _ UseCase, params map[string]any) (string, *robot.Command, error) {
	p, err := decodeAssembly(params)
	if err != nil {
		return "", nil, err
	}
	// Step range semantics live robot-side; out-of-range steps are
	// forwarded as-is.
	cmd := robot.AssemblyCommand(p.Step)
	return fmt.Sprintf("Assembly step %d completed", p.Step), &cmd, nil
}

// runIdentify bypasses the transport entirely: the answer comes from the
// vision capability and no pose update occurs.
func runIdentify(ctx context.Context, u UseCase, params map[string]any) (string, *robot.Command, error) {
	p, err := decodeIdentify(params)
	if err != nil {
		return "", nil, err
	}
	if u.Vision == nil {
		hlog.Warnf("vision query requested but no provider configured")
		return "Vision unavailable", nil, nil
	}

	var frame []byte
	if u.Frames != nil {
		frame, err = u.Frames.Capture(ctx)
		if err != nil {
			return "", nil, fmt.Errorf("capture frame: %w", err)
		}
	}

	answer, err := u.Vision.Ask(ctx, frame, p.Query)
	if err != nil {
		return "", nil, fmt.Errorf("vision query: %w", err)
	}
	return answer, nil, nil
}
