package robot

import (
	"errors"
	"testing"
)

func TestParseReply_UpdatesRightArm(t *testing.T) {
	update, err := ParseReply("1|ok|100.0|200.0|50.0")
	if err != nil {
		t.Fatalf("parse reply: %v", err)
	}
	if update.Arm != ArmRight {
		t.Fatalf("expected right arm, got %q", update.Arm)
	}
	want := Pose{X: 100, Y: 200, Z: 50}
	if update.Pose != want {
		t.Fatalf("pose mismatch: got=%+v want=%+v", update.Pose, want)
	}
}

func TestParseReply_LeftArmPrefixedToken(t *testing.T) {
	update, err := ParseReply("0-ack|done|460|350|75")
	if err != nil {
		t.Fatalf("parse reply: %v", err)
	}
	if update.Arm != ArmLeft {
		t.Fatalf("expected left arm, got %q", update.Arm)
	}
	if update.Pose.Y != 350 {
		t.Fatalf("unexpected y: %v", update.Pose.Y)
	}
}

func TestParseReply_Malformed(t *testing.T) {
	cases := []string{
		"",
		"1|100.0",
		"1|abc|def|ghi",
		"9|ok|1|2|3",
	}
	for _, raw := range cases {
		if _, err := ParseReply(raw); !errors.Is(err, ErrMalformedReply) {
			t.Fatalf("expected ErrMalformedReply for %q, got %v", raw, err)
		}
	}
}

func TestPoseTracker_MalformedReplyLeavesPoseUnchanged(t *testing.T) {
	tracker := NewPoseTracker()
	seed, err := ParseReply("1|ack|10|20|30")
	if err != nil {
		t.Fatalf("seed parse: %v", err)
	}
	tracker.Apply(seed)

	if _, err := ParseReply("1|ack|only-two|1"); err == nil {
		t.Fatalf("expected parse failure")
	}

	if got := tracker.Pose(ArmRight); got != (Pose{X: 10, Y: 20, Z: 30}) {
		t.Fatalf("pose changed after malformed reply: %+v", got)
	}
	if got := tracker.Pose(ArmLeft); got != (Pose{}) {
		t.Fatalf("left arm should stay at zero vector, got %+v", got)
	}
}

func TestCommandEncode(t *testing.T) {
	cases := []struct {
		cmd  Command
		want string
	}{
		{DeltaCommand(ArmLeft, AxisX, 50), "10|0|50"},
		{DeltaCommand(ArmRight, AxisZ, -20), "12|1|-20"},
		{GripCommand(ArmRight, GripClose), "21|1"},
		{GripCommand(ArmLeft, GripOpen), "20|0"},
		{AbsoluteMoveCommand(ArmRight, Pose{X: 480, Y: -327, Z: 140}), "13|1|480|-327|140"},
		{RotateCommand(ArmLeft, Rotation{RX: 0, RY: 180, RZ: 90}), "40|0|0|180|90"},
		{AssemblyCommand(7), "69|0|7"},
		{GetPositionCommand(ArmRight), "99|1"},
		{SavePositionCommand(ArmLeft), "91|0"},
	}
	for _, tc := range cases {
		if got := tc.cmd.Encode(); got != tc.want {
			t.Fatalf("encode mismatch: got=%q want=%q", got, tc.want)
		}
	}
}

func TestLookupCoordinate(t *testing.T) {
	pose, ok := LookupCoordinate(ArmRight, "HomeR")
	if !ok {
		t.Fatalf("expected HomeR preset for right arm")
	}
	if pose != (Pose{X: 480, Y: -327, Z: 140}) {
		t.Fatalf("unexpected pose: %+v", pose)
	}
	if _, ok := LookupCoordinate(ArmLeft, "HomeR"); ok {
		t.Fatalf("HomeR must not resolve for the left arm")
	}
	if _, ok := LookupCoordinate(ArmLeft, "Workbench"); ok {
		t.Fatalf("unknown preset must not resolve")
	}
}

func TestLookupRotation(t *testing.T) {
	rot, ok := LookupRotation("Front")
	if !ok {
		t.Fatalf("expected Front rotation preset")
	}
	if rot != (Rotation{RX: -90, RY: 0, RZ: -90}) {
		t.Fatalf("unexpected rotation: %+v", rot)
	}
	if _, ok := LookupRotation("Backflip"); ok {
		t.Fatalf("unknown rotation must not resolve")
	}
}
