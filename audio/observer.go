package audio

import "github.com/lixenwraith/battlefield/simulation"

// CueObserver maps simulation frames to cues: a buzz on any blocked unit, a chime per tick with new arrivals
func CueObserver(sm *SoundManager) func(simulation.Frame) {
	arrived := -1
	return func(frame simulation.Frame) {
		if arrived >= 0 && frame.Arrived > arrived {
			sm.PlayArrived()
		}
		arrived = frame.Arrived

		if frame.Report.Blocked > 0 {
			sm.PlayBlocked()
		}
	}
}
