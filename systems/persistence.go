package systems

import (
	"encoding/json"
	"fmt"
	"log"

	cfg "github.com/automoto/pong/config"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk.
// Scores are never saved.
type SavedSettings struct {
	ScoreToWin       uint `json:"scoreToWin"`
	WallMissesToLose uint `json:"wallMissesToLose"`
	LastMode         int  `json:"lastMode"`
}

// SettingsStore is the subset of *gdata.Manager used for settings.
type SettingsStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var settingsStore SettingsStore

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "pong",
	})
	if err != nil {
		return fmt.Errorf("open settings storage: %w", err)
	}
	settingsStore = m
	return nil
}

// SetSettingsStore replaces the settings backend. Passing nil disables persistence.
func SetSettingsStore(s SettingsStore) {
	settingsStore = s
}

// LoadSettings loads settings from disk. It returns nil, nil when
// persistence is unavailable or nothing was saved yet.
func LoadSettings() (*SavedSettings, error) {
	if settingsStore == nil {
		return nil, nil
	}

	data, err := settingsStore.LoadItem(settingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse saved settings: %w", err)
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if settingsStore == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}

	if err := settingsStore.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// CurrentSettings captures the configuration worth keeping.
func CurrentSettings(lastMode cfg.ModeID) *SavedSettings {
	return &SavedSettings{
		ScoreToWin:       cfg.Game.ScoreToWin,
		WallMissesToLose: cfg.Game.WallMissesToLose,
		LastMode:         int(lastMode),
	}
}

// SaveCurrentSettings saves the configuration, logging instead of failing.
func SaveCurrentSettings(lastMode cfg.ModeID) {
	if err := SaveSettings(CurrentSettings(lastMode)); err != nil {
		log.Printf("Warning: %v", err)
	}
}

// ApplySavedSettings copies saved values into the global configuration.
// Zero values keep the defaults.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	if saved.ScoreToWin > 0 {
		cfg.Game.ScoreToWin = saved.ScoreToWin
	}
	if saved.WallMissesToLose > 0 {
		cfg.Game.WallMissesToLose = saved.WallMissesToLose
	}
}

// Mode returns the saved mode, or ok=false when unknown.
func (s *SavedSettings) Mode() (cfg.ModeID, bool) {
	if s == nil || s.LastMode < 0 || s.LastMode >= int(cfg.ModeCount) {
		return 0, false
	}
	return cfg.ModeID(s.LastMode), true
}
