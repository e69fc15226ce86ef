package config

const (
	DefaultActivity          = "default"
	DefaultGridSize          = 3
	DefaultAnimationDuration = 6
	DefaultPollingRate       = 300
	DefaultEdgeWidth         = 0
	DefaultEdgeMargin        = 2
)

// Default creates the configuration used when no file is present. File
// values are decoded on top of it, so absent keys keep these values.
func Default() *Config {
	return &Config{
		Activities:        []string{DefaultActivity},
		Workspaces:        [2]int{DefaultGridSize, DefaultGridSize},
		EnableAnimations:  true,
		AnimationDuration: DefaultAnimationDuration,
		PollingRate:       DefaultPollingRate,
		EdgeWidth:         DefaultEdgeWidth,
		EdgeMargin:        DefaultEdgeMargin,
	}
}
