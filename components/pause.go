package components

import "github.com/yohamta/donburi"

// PauseData stores the pause and debug overlay state
type PauseData struct {
	IsPaused     bool
	ShowHitboxes bool
}

var Pause = donburi.NewComponentType[PauseData]()
