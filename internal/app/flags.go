package app

import "flag"

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim        string
	Scale      float64
	TPS        int
	HUDWidth   int
	ConfigPath string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "ripple", Scale: 64, TPS: 60, HUDWidth: 200}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.Float64Var(&c.Scale, "scale", c.Scale, "pixels per world unit")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 disables)")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML field configuration file")
}
