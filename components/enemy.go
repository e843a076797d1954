package components

import "github.com/yohamta/donburi"

// EnemyPhase is the descent state of an enemy. The transition is one-way.
type EnemyPhase int

const (
	EnemyDescending EnemyPhase = iota
	EnemyStopped
)

type EnemyData struct {
	Phase        EnemyPhase
	StopAltitude float64 // Center y at which the enemy stops
	DropInterval int     // Frames between bomb drops once stopped
	Jammed       bool    // Set by an EMP, the enemy never drops again
	Variant      int
}

var Enemy = donburi.NewComponentType[EnemyData]()
