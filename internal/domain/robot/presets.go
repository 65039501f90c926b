package robot

// Rotation is a three-axis end-effector orientation preset in degrees.
type Rotation struct {
	RX int `json:"rx"`
	RY int `json:"ry"`
	RZ int `json:"rz"`
}

// Preset tables match the robot-side teach positions and must stay in sync
// with the controller program.
var coordinatePresets = map[Arm]map[string]Pose{
	ArmRight: {
		"Home":  {X: 460, Y: -350, Z: 75},
		"HomeR": {X: 480, Y: -327, Z: 140},
	},
	ArmLeft: {
		"Home":  {X: 460, Y: 350, Z: 75},
		"HomeL": {X: 480, Y: 327, Z: 140},
	},
}

var rotationPresets = map[string]Rotation{
	"Down":  {RX: 0, RY: 180, RZ: 90},
	"Front": {RX: -90, RY: 0, RZ: -90},
	"SideR": {RX: -90, RY: 0, RZ: 0},
	"SideL": {RX: -90, RY: 0, RZ: 180},
}

// LookupCoordinate resolves a named teach position for the given arm.
func LookupCoordinate(arm Arm, name string) (Pose, bool) {
	table, ok := coordinatePresets[arm]
	if !ok {
		return Pose{}, false
	}
	pose, ok := table[name]
	return pose, ok
}

// LookupRotation resolves a named orientation preset.
func LookupRotation(name string) (Rotation, bool) {
	rot, ok := rotationPresets[name]
	return rot, ok
}
