package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blackwell-systems/readlog/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	// Point at a file that does not exist so only defaults apply.
	t.Setenv("READLOG_CONFIG", filepath.Join(t.TempDir(), "absent.yml"))

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load with no config file: %v", err)
	}
	if cfg.Database.Path == "" {
		t.Error("default database path is empty")
	}
	if !strings.HasSuffix(cfg.Database.Path, filepath.Join("readlog", "readlog.db")) {
		t.Errorf("default database path = %q", cfg.Database.Path)
	}
	if cfg.Display.RecentLimit != 6 {
		t.Errorf("default recent_limit = %d, want 6", cfg.Display.RecentLimit)
	}
	if cfg.Display.Sort != "added" {
		t.Errorf("default sort = %q, want added", cfg.Display.Sort)
	}
	if cfg.Goal.DefaultTarget != 12 {
		t.Errorf("default goal target = %d, want 12", cfg.Goal.DefaultTarget)
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := "database:\n  path: /tmp/custom.db\ndisplay:\n  recent_limit: 10\n  sort: title\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("READLOG_CONFIG", path)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.Path != "/tmp/custom.db" {
		t.Errorf("database path = %q", cfg.Database.Path)
	}
	if cfg.Display.RecentLimit != 10 {
		t.Errorf("recent_limit = %d, want 10", cfg.Display.RecentLimit)
	}
	if cfg.Display.Sort != "title" {
		t.Errorf("sort = %q, want title", cfg.Display.Sort)
	}
	// Unset sections keep their defaults.
	if cfg.Goal.DefaultTarget != 12 {
		t.Errorf("goal target = %d, want default 12", cfg.Goal.DefaultTarget)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("READLOG_CONFIG", filepath.Join(t.TempDir(), "absent.yml"))
	t.Setenv("READLOG_DISPLAY_SORT", "rating")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Display.Sort != "rating" {
		t.Errorf("sort with env override = %q, want rating", cfg.Display.Sort)
	}
}

func TestLoad_GoalTargetFromEnv(t *testing.T) {
	t.Setenv("READLOG_CONFIG", filepath.Join(t.TempDir(), "absent.yml"))
	t.Setenv("READLOG_GOAL_DEFAULT_TARGET", "24")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Goal.DefaultTarget != 24 {
		t.Errorf("goal.default_target from env = %d, want 24", cfg.Goal.DefaultTarget)
	}
	// This is the value used when the store has no goal saved yet.
	if got := cfg.EffectiveGoalTarget(); got != 24 {
		t.Errorf("EffectiveGoalTarget = %d, want 24", got)
	}
}

func TestExpandHome(t *testing.T) {
	home, _ := os.UserHomeDir()
	if got := config.ExpandHome("~/books.db"); got != filepath.Join(home, "books.db") {
		t.Errorf("ExpandHome(~/books.db) = %q", got)
	}
	if got := config.ExpandHome("/abs/path.db"); got != "/abs/path.db" {
		t.Errorf("ExpandHome left absolute path alone? got %q", got)
	}
}

func TestEffectiveFallbacks(t *testing.T) {
	var cfg config.Config
	if got := cfg.EffectiveRecentLimit(); got != 6 {
		t.Errorf("EffectiveRecentLimit on zero config = %d, want 6", got)
	}
	if got := cfg.EffectiveSort(); got != "added" {
		t.Errorf("EffectiveSort on zero config = %q, want added", got)
	}

	if got := cfg.EffectiveGoalTarget(); got != 12 {
		t.Errorf("EffectiveGoalTarget on zero config = %d, want 12", got)
	}

	cfg.Display.RecentLimit = 3
	cfg.Display.Sort = "author"
	cfg.Goal.DefaultTarget = 30
	if got := cfg.EffectiveRecentLimit(); got != 3 {
		t.Errorf("EffectiveRecentLimit = %d, want 3", got)
	}
	if got := cfg.EffectiveSort(); got != "author" {
		t.Errorf("EffectiveSort = %q, want author", got)
	}
	if got := cfg.EffectiveGoalTarget(); got != 30 {
		t.Errorf("EffectiveGoalTarget = %d, want 30", got)
	}
}
