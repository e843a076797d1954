package systems

import "testing"

func TestBestScoreWithoutStorage(t *testing.T) {
	saved := gdataManager
	gdataManager = nil
	defer func() { gdataManager = saved }()

	if got := LoadBest(); got != 0 {
		t.Errorf("LoadBest = %d, want 0", got)
	}
	// No storage is not an error during play
	SaveBest(100)
	if got := LoadBest(); got != 0 {
		t.Errorf("LoadBest after save = %d, want 0", got)
	}
}
