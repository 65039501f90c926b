package command

import (
	"context"
	"errors"
	"strings"
	"testing"

	"armbridge/internal/domain/robot"
)

func TestExecute_MoveWithoutLink_LocalSuccess(t *testing.T) {
	uc := UseCase{Poses: robot.NewPoseTracker()}

	res, err := uc.Execute(context.Background(), robot.Action{
		Name:   robot.ActionMove,
		Params: map[string]any{"Arm": "Left", "Axis": "X", "Units": float64(50)},
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if res.Status != StatusSuccess {
		t.Fatalf("expected success without transport, got %q", res.Status)
	}
	for _, want := range []string{"Left", "50", "X"} {
		if !strings.Contains(res.Update, want) {
			t.Fatalf("update %q missing %q", res.Update, want)
		}
	}
}

func TestExecute_MoveSendsEncodedCommandAndUpdatesPose(t *testing.T) {
	link := &stubLink{reply: "1|ack|100.0|200.0|50.0"}
	poses := robot.NewPoseTracker()
	uc := UseCase{Link: link, Poses: poses}

	_, err := uc.Execute(context.Background(), robot.Action{
		Name:   robot.ActionMove,
		Params: map[string]any{"Arm": "Right", "Axis": "Z", "Units": -20},
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(link.sent) != 1 || link.sent[0] != "12|1|-20" {
		t.Fatalf("unexpected wire traffic: %v", link.sent)
	}
	if got := poses.Pose(robot.ArmRight); got != (robot.Pose{X: 100, Y: 200, Z: 50}) {
		t.Fatalf("pose not updated from reply: %+v", got)
	}
}

func TestExecute_TransportFailureStillSucceedsLocally(t *testing.T) {
	link := &stubLink{err: errors.New("connection reset")}
	poses := robot.NewPoseTracker()
	uc := UseCase{Link: link, Poses: poses}

	res, err := uc.Execute(context.Background(), robot.Action{
		Name:   robot.ActionGrip,
		Params: map[string]any{"Arm": "Left", "State": float64(1)},
	})
	if err != nil {
		t.Fatalf("transport failure must be absorbed, got %v", err)
	}
	if res.Status != StatusSuccess {
		t.Fatalf("expected local success, got %q", res.Status)
	}
	if !strings.Contains(res.Update, "closed") {
		t.Fatalf("unexpected update: %q", res.Update)
	}
	if len(link.sent) != 1 {
		t.Fatalf("round trip should have been attempted once, got %d", len(link.sent))
	}
	if poses.Pose(robot.ArmLeft) != (robot.Pose{}) {
		t.Fatalf("pose must stay unchanged after failed round trip")
	}
}

func TestExecute_MalformedReplyLeavesPoseUnchanged(t *testing.T) {
	link := &stubLink{reply: "1|garbled"}
	poses := robot.NewPoseTracker()
	uc := UseCase{Link: link, Poses: poses}

	res, err := uc.Execute(context.Background(), robot.Action{
		Name:   robot.ActionMove,
		Params: map[string]any{"Arm": "Right", "Axis": "Y", "Units": 5},
	})
	if err != nil || res.Status != StatusSuccess {
		t.Fatalf("unexpected result: %+v err=%v", res, err)
	}
	if poses.Pose(robot.ArmRight) != (robot.Pose{}) {
		t.Fatalf("malformed reply must not move the pose")
	}
}

func TestExecute_MoveToUnknownPresetIsNoopSuccess(t *testing.T) {
	link := &stubLink{reply: "1|ack|1|2|3"}
	uc := UseCase{Link: link, Poses: robot.NewPoseTracker()}

	res, err := uc.Execute(context.Background(), robot.Action{
		Name:   robot.ActionMoveTo,
		Params: map[string]any{"Type": "Name", "Arm": "Right", "Name": "Unknown"},
	})
	if err != nil {
		t.Fatalf("unresolved preset must not be an error: %v", err)
	}
	if res.Status != StatusSuccess {
		t.Fatalf("expected success, got %q", res.Status)
	}
	if !strings.Contains(res.Update, "Unknown preset position") {
		t.Fatalf("update must describe the unresolved preset: %q", res.Update)
	}
	if len(link.sent) != 0 {
		t.Fatalf("no command may reach the wire for an unresolved preset: %v", link.sent)
	}
}

func TestExecute_MoveToPresetSendsAbsoluteMove(t *testing.T) {
	link := &stubLink{reply: "0|ack|480|327|140"}
	poses := robot.NewPoseTracker()
	uc := UseCase{Link: link, Poses: poses}

	res, err := uc.Execute(context.Background(), robot.Action{
		Name:   robot.ActionMoveTo,
		Params: map[string]any{"Type": "Name", "Arm": "Left", "Name": "HomeL"},
	})
	if err != nil || res.Status != StatusSuccess {
		t.Fatalf("unexpected result: %+v err=%v", res, err)
	}
	if len(link.sent) != 1 || link.sent[0] != "13|0|480|327|140" {
		t.Fatalf("unexpected wire traffic: %v", link.sent)
	}
	if poses.Pose(robot.ArmLeft) != (robot.Pose{X: 480, Y: 327, Z: 140}) {
		t.Fatalf("pose not refreshed: %+v", poses.Pose(robot.ArmLeft))
	}
}

func TestExecute_MoveToCoordinate(t *testing.T) {
	link := &stubLink{reply: "1|ack|100|-50|75"}
	uc := UseCase{Link: link, Poses: robot.NewPoseTracker()}

	res, err := uc.Execute(context.Background(), robot.Action{
		Name:   robot.ActionMoveTo,
		Params: map[string]any{"Type": "Coordinate", "Arm": "Right", "X": 100, "Y": -50, "Z": 75},
	})
	if err != nil || res.Status != StatusSuccess {
		t.Fatalf("unexpected result: %+v err=%v", res, err)
	}
	if link.sent[0] != "13|1|100|-50|75" {
		t.Fatalf("unexpected command: %q", link.sent[0])
	}
	if !strings.Contains(res.Update, "(100, -50, 75)") {
		t.Fatalf("unexpected update: %q", res.Update)
	}
}

func TestExecute_RotateUnknownPresetIsNoopSuccess(t *testing.T) {
	link := &stubLink{}
	uc := UseCase{Link: link}

	res, err := uc.Execute(context.Background(), robot.Action{
		Name:   robot.ActionRotate,
		Params: map[string]any{"Arm": "Left", "Position": "Backflip"},
	})
	if err != nil || res.Status != StatusSuccess {
		t.Fatalf("unexpected result: %+v err=%v", res, err)
	}
	if !strings.Contains(res.Update, "Unknown rotation") {
		t.Fatalf("unexpected update: %q", res.Update)
	}
	if len(link.sent) != 0 {
		t.Fatalf("unknown rotation must not reach the wire")
	}
}

func TestExecute_MissingParameterIsTypedError(t *testing.T) {
	uc := UseCase{}

	res, err := uc.Execute(context.Background(), robot.Action{
		Name:   robot.ActionMove,
		Params: map[string]any{"Arm": "Left", "Axis": "X"},
	})
	if !errors.Is(err, ErrMissingParameter) {
		t.Fatalf("expected ErrMissingParameter, got %v", err)
	}
	var mp *MissingParameterError
	if !errors.As(err, &mp) || mp.Param != "Units" {
		t.Fatalf("expected missing Units detail, got %v", err)
	}
	if res.Status != StatusError {
		t.Fatalf("expected error status, got %q", res.Status)
	}
}

func TestExecute_UnknownActionIsNoopSuccess(t *testing.T) {
	uc := UseCase{}

	res, err := uc.Execute(context.Background(), robot.Action{Name: "Dance"})
	if err != nil {
		t.Fatalf("unknown action must not be an error: %v", err)
	}
	if res.Status != StatusSuccess || !strings.Contains(res.Update, "Unknown function: Dance") {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestExecute_NoopActionShortCircuits(t *testing.T) {
	link := &stubLink{}
	uc := UseCase{Link: link}

	res, err := uc.Execute(context.Background(), robot.NoopAction())
	if err != nil || res.Status != StatusSuccess {
		t.Fatalf("unexpected result: %+v err=%v", res, err)
	}
	if len(link.sent) != 0 {
		t.Fatalf("no-op must not reach the wire")
	}
}

func TestExecute_IdentifyUsesVisionNotTransport(t *testing.T) {
	link := &stubLink{}
	vision := &stubVision{answer: "a wooden bolt"}
	frames := &stubFrames{frame: []byte{0xff, 0xd8}}
	uc := UseCase{Link: link, Vision: vision, Frames: frames}

	res, err := uc.Execute(context.Background(), robot.Action{
		Name:   robot.ActionIdentify,
		Params: map[string]any{"Query": "What is on the table?"},
	})
	if err != nil {
		t.Fatalf("identify: %v", err)
	}
	if res.Update != "a wooden bolt" {
		t.Fatalf("expected vision answer, got %q", res.Update)
	}
	if len(link.sent) != 0 {
		t.Fatalf("identify must bypass the transport")
	}
	if len(vision.questions) != 1 || vision.questions[0] != "What is on the table?" {
		t.Fatalf("vision not queried as expected: %v", vision.questions)
	}
	if string(vision.images[0]) != string(frames.frame) {
		t.Fatalf("captured frame not forwarded to vision")
	}
}

func TestExecute_IdentifyWithoutVisionDegrades(t *testing.T) {
	uc := UseCase{}

	res, err := uc.Execute(context.Background(), robot.Action{
		Name:   robot.ActionIdentify,
		Params: map[string]any{"Query": "anything?"},
	})
	if err != nil || res.Status != StatusSuccess {
		t.Fatalf("unexpected result: %+v err=%v", res, err)
	}
	if res.Update != "Vision unavailable" {
		t.Fatalf("unexpected update: %q", res.Update)
	}
}

func TestQueryPosition_RefreshesTracker(t *testing.T) {
	link := &stubLink{reply: "0|pos|10|20|30"}
	poses := robot.NewPoseTracker()
	uc := UseCase{Link: link, Poses: poses}

	pose, err := uc.QueryPosition(context.Background(), robot.ArmLeft)
	if err != nil {
		t.Fatalf("query position: %v", err)
	}
	if pose != (robot.Pose{X: 10, Y: 20, Z: 30}) {
		t.Fatalf("unexpected pose: %+v", pose)
	}
	if link.sent[0] != "99|0" {
		t.Fatalf("unexpected command: %q", link.sent[0])
	}
	if poses.Pose(robot.ArmLeft) != pose {
		t.Fatalf("tracker not refreshed")
	}
}

func TestQueryPosition_WithoutLink(t *testing.T) {
	uc := UseCase{}
	if _, err := uc.QueryPosition(context.Background(), robot.ArmLeft); !errors.Is(err, ErrLinkDisabled) {
		t.Fatalf("expected ErrLinkDisabled, got %v", err)
	}
}

func TestSavePosition_SendsCommand(t *testing.T) {
	link := &stubLink{reply: "1|saved|1|2|3"}
	uc := UseCase{Link: link}

	if err := uc.SavePosition(context.Background(), robot.ArmRight); err != nil {
		t.Fatalf("save position: %v", err)
	}
	if link.sent[0] != "91|1" {
		t.Fatalf("unexpected command: %q", link.sent[0])
	}
}
