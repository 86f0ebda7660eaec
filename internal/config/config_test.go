package config

import "testing"

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default() config must validate, got: %v", err)
	}
}

func TestValidateRejectsOutOfBounds(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
	}{
		{"max_workers too low", Config{MaxWorkers: 0, MinThreads: 4, MaxThreads: 8}},
		{"max_workers too high", Config{MaxWorkers: AbsoluteMaxWorkers + 1, MinThreads: 4, MaxThreads: 8}},
		{"min_threads too low", Config{MaxWorkers: 10, MinThreads: 0, MaxThreads: 8}},
		{"max_threads too high", Config{MaxWorkers: 10, MinThreads: 4, MaxThreads: AbsoluteMaxThreads + 1}},
		{"min exceeds max", Config{MaxWorkers: 10, MinThreads: 8, MaxThreads: 4}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := c.cfg.Validate(); err == nil {
				t.Fatalf("expected Validate() to reject %+v", c.cfg)
			}
		})
	}
}

func TestThreadCountInterpolatesBetweenBounds(t *testing.T) {
	cfg := Config{MaxWorkers: 10, MinThreads: 2, MaxThreads: 10, Valid: true}
	const maxFileSize = 1000

	if got := cfg.ThreadCount(0, maxFileSize); got != cfg.MinThreads {
		t.Errorf("ThreadCount(0, ...) = %d, want MinThreads %d", got, cfg.MinThreads)
	}
	if got := cfg.ThreadCount(maxFileSize, maxFileSize); got != cfg.MaxThreads {
		t.Errorf("ThreadCount(max, ...) = %d, want MaxThreads %d", got, cfg.MaxThreads)
	}
	if got := cfg.ThreadCount(maxFileSize*2, maxFileSize); got != cfg.MaxThreads {
		t.Errorf("ThreadCount beyond max file size must clamp to MaxThreads, got %d", got)
	}
}

func TestThreadCountFallsBackToDefaultWhenInvalid(t *testing.T) {
	cfg := Config{Valid: false}
	if got := cfg.ThreadCount(500, 1000); got != DefaultMinThreads {
		t.Errorf("invalid config must fall back to DefaultMinThreads, got %d", got)
	}
}

func TestParseLineIgnoresCommentsAndUnknownKeys(t *testing.T) {
	cfg := Default()
	parseLine(&cfg, "# max_workers = 99")
	parseLine(&cfg, "; also a comment")
	parseLine(&cfg, "some_unknown_key = 5")
	if cfg != Default() {
		t.Fatalf("comments and unknown keys must not change the config, got %+v", cfg)
	}
}

func TestParseLineOverridesKnownKeys(t *testing.T) {
	cfg := Default()
	parseLine(&cfg, "max_workers = 25")
	parseLine(&cfg, "min_threads=2")
	if cfg.MaxWorkers != 25 {
		t.Errorf("max_workers = %d, want 25", cfg.MaxWorkers)
	}
	if cfg.MinThreads != 2 {
		t.Errorf("min_threads = %d, want 2", cfg.MinThreads)
	}
}

func TestParseLineGarbageValueFallsBackToZero(t *testing.T) {
	cfg := Default()
	parseLine(&cfg, "max_workers = not-a-number")
	if cfg.MaxWorkers != 0 {
		t.Errorf("garbage numeric value must parse as 0, got %d", cfg.MaxWorkers)
	}
}

func TestLoadFirstAvailableFallsBackToDefault(t *testing.T) {
	// Neither LocalConfigPath nor SystemConfigPath is expected to exist in
	// a clean test environment, so this must fall back to Default().
	got := LoadFirstAvailable()
	if !got.Valid {
		t.Fatalf("fallback config must be valid, got %+v", got)
	}
}
