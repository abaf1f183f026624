package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "coverlife.db" {
		t.Fatalf("DBPath = %q, want coverlife.db", cfg.DBPath)
	}
	if cfg.Speed != 1 {
		t.Fatalf("Speed = %d, want 1", cfg.Speed)
	}
	if cfg.PlayerName != "Dancer" {
		t.Fatalf("PlayerName = %q, want Dancer", cfg.PlayerName)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("COVERLIFE_SEED", "12345")
	t.Setenv("COVERLIFE_SPEED", "10")
	t.Setenv("COVERLIFE_DAYS", "360")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Seed != 12345 {
		t.Fatalf("Seed = %d, want 12345", cfg.Seed)
	}
	if cfg.Speed != 10 {
		t.Fatalf("Speed = %d, want 10", cfg.Speed)
	}
	if cfg.Days != 360 {
		t.Fatalf("Days = %d, want 360", cfg.Days)
	}
}
