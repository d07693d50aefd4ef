package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	Seed     int64
	Width    int
	Height   int
	SavePath string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "ecosystem", Scale: 12, TPS: 60, Seed: 1337, SavePath: "ecosystem.xml"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "screen pixels per tile")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in tiles (0 keeps the sim default)")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in tiles (0 keeps the sim default)")
	fs.StringVar(&c.SavePath, "save", c.SavePath, "world file used by save (F5) and load (F9)")
}

// SimOptions converts the flags into the key/value map sim factories accept.
func (c *Config) SimOptions() map[string]string {
	opts := map[string]string{"seed": strconv.FormatInt(c.Seed, 10)}
	if c.Width > 0 {
		opts["w"] = strconv.Itoa(c.Width)
	}
	if c.Height > 0 {
		opts["h"] = strconv.Itoa(c.Height)
	}
	return opts
}

// TickDelta returns the seconds advanced per tick at the configured rate.
func (c *Config) TickDelta() float64 {
	if c.TPS <= 0 {
		return 1.0 / 60.0
	}
	return 1 / float64(c.TPS)
}
