package config

// Config is the top-level readlog configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`
	Display  DisplayConfig  `mapstructure:"display" yaml:"display"`
	Goal     GoalConfig     `mapstructure:"goal" yaml:"goal"`
}

// DatabaseConfig locates the local catalog file.
type DatabaseConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// DisplayConfig holds list-rendering preferences.
type DisplayConfig struct {
	RecentLimit int    `mapstructure:"recent_limit" yaml:"recent_limit"`
	Sort        string `mapstructure:"sort" yaml:"sort"` // "title", "author", "added", "rating"
}

// GoalConfig holds goal-tracking defaults.
type GoalConfig struct {
	DefaultTarget int `mapstructure:"default_target" yaml:"default_target"`
}

// EffectiveRecentLimit returns the recent-completions list size, falling
// back to the dashboard's default of 6.
func (c *Config) EffectiveRecentLimit() int {
	if c.Display.RecentLimit > 0 {
		return c.Display.RecentLimit
	}
	return 6
}

// EffectiveSort returns the configured default sort field.
func (c *Config) EffectiveSort() string {
	if c.Display.Sort != "" {
		return c.Display.Sort
	}
	return "added"
}

// EffectiveGoalTarget returns the yearly goal to assume before the user
// sets one in the store.
func (c *Config) EffectiveGoalTarget() int {
	if c.Goal.DefaultTarget > 0 {
		return c.Goal.DefaultTarget
	}
	return 12
}
