package systems

import (
	"errors"
	"testing"

	cfg "github.com/automoto/pong/config"
)

type memStore struct {
	items   map[string][]byte
	loadErr error
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	m.items[key] = data
	return nil
}

func withStore(t *testing.T) *memStore {
	t.Helper()
	store := &memStore{items: map[string][]byte{}}
	SetSettingsStore(store)
	t.Cleanup(func() { SetSettingsStore(nil) })
	return store
}

func TestSettings_SaveAndLoad(t *testing.T) {
	withGameConfig(t)
	withStore(t)
	cfg.Game.ScoreToWin = 5
	cfg.Game.WallMissesToLose = 7

	SaveCurrentSettings(cfg.ModeWall)

	saved, err := LoadSettings()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ScoreToWin != 5 || saved.WallMissesToLose != 7 {
		t.Errorf("expected 5/7, got %d/%d", saved.ScoreToWin, saved.WallMissesToLose)
	}
	mode, ok := saved.Mode()
	if !ok || mode != cfg.ModeWall {
		t.Errorf("expected last mode wall, got %v (ok=%v)", mode, ok)
	}
}

func TestSettings_Apply(t *testing.T) {
	withGameConfig(t)

	ApplySavedSettings(&SavedSettings{ScoreToWin: 3})

	if cfg.Game.ScoreToWin != 3 {
		t.Errorf("expected ScoreToWin=3, got %d", cfg.Game.ScoreToWin)
	}
	if cfg.Game.WallMissesToLose != 3 {
		t.Errorf("expected zero to keep the default 3, got %d", cfg.Game.WallMissesToLose)
	}

	ApplySavedSettings(nil)
	if cfg.Game.ScoreToWin != 3 {
		t.Errorf("expected nil settings to change nothing, got %d", cfg.Game.ScoreToWin)
	}
}

func TestSettings_Missing(t *testing.T) {
	tests := []struct {
		name  string
		store SettingsStore
	}{
		{"no store", nil},
		{"nothing saved", &memStore{items: map[string][]byte{}}},
		{"load error", &memStore{loadErr: errors.New("disk on fire")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetSettingsStore(tt.store)
			t.Cleanup(func() { SetSettingsStore(nil) })

			saved, err := LoadSettings()
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if saved != nil {
				t.Errorf("expected no settings, got %+v", saved)
			}
		})
	}
}

func TestSettings_Corrupt(t *testing.T) {
	store := withStore(t)
	store.items[settingsKey] = []byte("{not json")

	if _, err := LoadSettings(); err == nil {
		t.Error("expected an error for corrupt settings")
	}
}

func TestSavedSettings_UnknownMode(t *testing.T) {
	tests := []*SavedSettings{
		nil,
		{LastMode: -1},
		{LastMode: int(cfg.ModeCount)},
	}
	for _, s := range tests {
		if _, ok := s.Mode(); ok {
			t.Errorf("expected %+v to have no mode", s)
		}
	}
}
