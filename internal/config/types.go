package config

// Config is the schema of .valuesquiz/config.yml.
type Config struct {
	Version    int          `yaml:"version"`
	ValuesFile string       `yaml:"values_file"`
	UI         UIConfig     `yaml:"ui"`
	Output     OutputConfig `yaml:"output"`
	Log        LogConfig    `yaml:"log"`
}

// UIConfig selects and tunes the renderer.
type UIConfig struct {
	Mode    string `yaml:"mode"`
	NoColor bool   `yaml:"no_color"`
	Width   int    `yaml:"width"`
}

// OutputConfig controls the results summary printed when a session ends.
type OutputConfig struct {
	Format string `yaml:"format"`
}

// LogConfig controls the session log.
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// Supported enumerations.
var (
	UIModes       = []string{"auto", "live", "plain"}
	OutputFormats = []string{"text", "markdown", "json", "yaml", "none"}
	LogLevels     = []string{"debug", "info", "warn", "error"}
)

// Default returns the configuration used when no config file exists.
func Default() Config {
	cfg := Config{Version: 1}
	Normalize(&cfg)
	return cfg
}
