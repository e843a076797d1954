package systems

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/quasilyte/gdata"
)

const bestScoreKey = "best"

// SavedBest is the best score stored on disk
type SavedBest struct {
	Best int `json:"best"`
}

var gdataManager *gdata.Manager

// InitPersistence opens the save data storage. Without it the best score
// simply is not kept between runs.
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return fmt.Errorf("open save data: %w", err)
	}
	gdataManager = m
	return nil
}

// LoadBest returns the stored best score, or 0.
func LoadBest() int {
	if gdataManager == nil {
		return 0
	}

	data, err := gdataManager.LoadItem(bestScoreKey)
	if err != nil {
		log.Printf("Warning: Could not load best score: %v", err)
		return 0
	}
	if len(data) == 0 {
		return 0
	}

	var saved SavedBest
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Printf("Warning: Could not parse best score: %v", err)
		return 0
	}
	return saved.Best
}

// SaveBest stores the best score if it beats the stored one.
func SaveBest(best int) {
	if gdataManager == nil || best <= LoadBest() {
		return
	}

	data, err := json.Marshal(SavedBest{Best: best})
	if err != nil {
		log.Printf("Warning: Could not serialize best score: %v", err)
		return
	}
	if err := gdataManager.SaveItem(bestScoreKey, data); err != nil {
		log.Printf("Warning: Could not save best score: %v", err)
	}
}
