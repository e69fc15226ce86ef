package config

// Config holds the application configuration. It is built once at startup
// and passed to the components that need it.
type Config struct {
	Activities []string `toml:"activities" yaml:"activities" json:"activities"`
	// Workspaces is the grid size per activity as [columns, rows].
	Workspaces [2]int `toml:"workspaces" yaml:"workspaces" json:"workspaces"`

	EnableAnimations  bool `toml:"enable_animations" yaml:"enable_animations" json:"enable_animations"`
	AnimationDuration int  `toml:"animation_duration" yaml:"animation_duration" json:"animation_duration"`

	WorkspaceSwitchAnimationCurve           string `toml:"workspace_switch_animation_curve" yaml:"workspace_switch_animation_curve" json:"workspace_switch_animation_curve"`
	WorkspaceHorizontalSwitchAnimationStyle string `toml:"workspace_horizontal_switch_animation_style" yaml:"workspace_horizontal_switch_animation_style" json:"workspace_horizontal_switch_animation_style"`
	WorkspaceVerticalSwitchAnimationStyle   string `toml:"workspace_vertical_switch_animation_style" yaml:"workspace_vertical_switch_animation_style" json:"workspace_vertical_switch_animation_style"`
	ActivitySwitchAnimationCurve            string `toml:"activity_switch_animation_curve" yaml:"activity_switch_animation_curve" json:"activity_switch_animation_curve"`
	ActivitySwitchAnimationStyle            string `toml:"activity_switch_animation_style" yaml:"activity_switch_animation_style" json:"activity_switch_animation_style"`

	// PollingRate is the mouse polling interval in milliseconds.
	PollingRate int `toml:"polling_rate" yaml:"polling_rate" json:"polling_rate"`
	// EdgeWidth is the number of pixels from a screen edge that count as the edge.
	EdgeWidth int `toml:"edge_width" yaml:"edge_width" json:"edge_width"`
	// EdgeMargin pushes the cursor inside the screen after it wraps.
	EdgeMargin int `toml:"edge_margin" yaml:"edge_margin" json:"edge_margin"`

	NotifyCommand string `toml:"notify_command" yaml:"notify_command" json:"notify_command"`
}

// GridWidth returns the number of workspace columns per activity.
func (c *Config) GridWidth() int {
	return c.Workspaces[0]
}

// GridHeight returns the number of workspace rows per activity.
func (c *Config) GridHeight() int {
	return c.Workspaces[1]
}
