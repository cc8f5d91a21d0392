package session

import "fmt"

// Pose is the logical name of the helper pet's picture.
type Pose int

const (
	PoseIdle     Pose = iota // Resting in the corner
	PoseHello                // Waving on the intro screen
	PoseStats                // Holding a chart: "don't change your answer"
	PoseFast                 // Stopwatch: "slow down"
	PoseCongrats             // Celebrating on the completion screen
	PoseCorner               // Teaching in the worked-example corner
	PoseHelp                 // Raised hand: click me for an example
)

var poseNames = [...]string{
	PoseIdle:     "idle",
	PoseHello:    "hello",
	PoseStats:    "stats",
	PoseFast:     "fast",
	PoseCongrats: "congrats",
	PoseCorner:   "corner",
	PoseHelp:     "help",
}

// AllPoses lists every pose in declaration order.
func AllPoses() []Pose {
	poses := make([]Pose, len(poseNames))
	for i := range poseNames {
		poses[i] = Pose(i)
	}
	return poses
}

func (p Pose) String() string {
	if p < 0 || int(p) >= len(poseNames) {
		return fmt.Sprintf("Pose(%d)", int(p))
	}
	return poseNames[p]
}

// ParsePose maps a pose name back to its Pose.
func ParsePose(name string) (Pose, error) {
	for i, n := range poseNames {
		if n == name {
			return Pose(i), nil
		}
	}
	return PoseIdle, fmt.Errorf("unknown pose %q", name)
}
