package robot

// Pose is a cartesian arm position in millimeters. Arms report the zero
// vector until the first controller reply is parsed.
type Pose struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// PoseTracker owns the last reported pose per arm. It is written only from
// reply parsing and assumes single-writer access; sharing a tracker across
// pipelines requires external serialization.
type PoseTracker struct {
	left  Pose
	right Pose
}

func NewPoseTracker() *PoseTracker {
	return &PoseTracker{}
}

func (t *PoseTracker) Pose(arm Arm) Pose {
	if arm == ArmRight {
		return t.right
	}
	return t.left
}

func (t *PoseTracker) Apply(update PoseUpdate) {
	if update.Arm == ArmRight {
		t.right = update.Pose
		return
	}
	t.left = update.Pose
}
