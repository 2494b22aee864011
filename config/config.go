// This file is part of govita.
//
// govita is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// govita is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with govita.  If not, see <https://www.gnu.org/licenses/>.

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/govita/govita/curated"
	"github.com/govita/govita/display"
	"github.com/govita/govita/logger"
	"github.com/govita/govita/prefs"
	"github.com/govita/govita/queue"
	"github.com/govita/govita/renderer"
)

// Sentinel errors.
const (
	InvalidValue     = "config: %s: %v"
	EnvironmentError = "config: environment: %v"
	OutOfRange       = "%v is outside the range %v to %v"
)

// Config is the set of runtime settings.
type Config struct {
	Backend     prefs.String
	VblankRate  prefs.Int
	MaxPending  prefs.Int
	MemorySize  prefs.Int
	DebugUI     prefs.Bool
	Touch       prefs.Bool
	LogEcho     prefs.Bool
	WindowScale prefs.Float

	// keyed by prefs string key
	entries map[string]prefs.Pref
}

// values taken from the environment. an empty string means the variable is
// not set
type environment struct {
	Backend     string `env:"GOVITA_BACKEND"`
	VblankRate  string `env:"GOVITA_VBLANK_RATE"`
	MaxPending  string `env:"GOVITA_MAX_PENDING"`
	MemorySize  string `env:"GOVITA_MEMORY_SIZE"`
	DebugUI     string `env:"GOVITA_DEBUG_UI"`
	Touch       string `env:"GOVITA_TOUCH"`
	LogEcho     string `env:"GOVITA_LOG_ECHO"`
	WindowScale string `env:"GOVITA_WINDOW_SCALE"`
}

// DefaultMemorySize is the default size of guest memory.
const DefaultMemorySize = 64 * 1024 * 1024

func intRange(lo, hi int) prefs.Hook {
	return func(v prefs.Value) error {
		if n := v.(int); n < lo || n > hi {
			return curated.Errorf(OutOfRange, n, lo, hi)
		}
		return nil
	}
}

// NewConfig is the preferred method of initialisation for the Config type.
// All values are at their defaults.
func NewConfig() *Config {
	cfg := &Config{}

	cfg.entries = map[string]prefs.Pref{
		"backend":      &cfg.Backend,
		"vblank.rate":  &cfg.VblankRate,
		"max.pending":  &cfg.MaxPending,
		"memory.size":  &cfg.MemorySize,
		"debug.ui":     &cfg.DebugUI,
		"touch":        &cfg.Touch,
		"log.echo":     &cfg.LogEcho,
		"window.scale": &cfg.WindowScale,
	}

	cfg.Backend.SetHookPre(func(v prefs.Value) error {
		_, err := renderer.ParseBackendKind(v.(string))
		return err
	})
	cfg.VblankRate.SetHookPre(intRange(1, 1000))
	cfg.MaxPending.SetHookPre(intRange(1, 64))
	cfg.MemorySize.SetHookPre(intRange(1024*1024, 1024*1024*1024))
	cfg.WindowScale.SetHookPre(func(v prefs.Value) error {
		if f := v.(float64); f < 0.5 || f > 4.0 {
			return curated.Errorf(OutOfRange, f, 0.5, 4.0)
		}
		return nil
	})

	cfg.setDefaults()

	return cfg
}

func (cfg *Config) setDefaults() {
	// defaults are always in range
	_ = cfg.Backend.Set(renderer.OpenGL.String())
	_ = cfg.VblankRate.Set(display.DefaultRefreshRate)
	_ = cfg.MaxPending.Set(queue.DefaultMaxPending)
	_ = cfg.MemorySize.Set(DefaultMemorySize)
	_ = cfg.DebugUI.Set(false)
	_ = cfg.Touch.Set(false)
	_ = cfg.LogEcho.Set(false)
	_ = cfg.WindowScale.Set(1.0)
}

// BackendKind returns the Backend value as a renderer.BackendKind.
func (cfg *Config) BackendKind() renderer.BackendKind {
	// the value has been checked by the hook
	kind, _ := renderer.ParseBackendKind(cfg.Backend.String())
	return kind
}

func (cfg *Config) set(key string, value prefs.Value) error {
	p, ok := cfg.entries[key]
	if !ok {
		return curated.Errorf(InvalidValue, key, "unknown setting")
	}
	if err := p.Set(value); err != nil {
		return curated.Errorf(InvalidValue, key, err)
	}
	return nil
}

// Environment applies values from the environment. If environ is nil the
// environment of the process is used.
func (cfg *Config) Environment(environ map[string]string) error {
	var e environment
	if err := env.Parse(&e, env.Options{Environment: environ}); err != nil {
		return curated.Errorf(EnvironmentError, err)
	}

	for key, v := range map[string]string{
		"backend":      e.Backend,
		"vblank.rate":  e.VblankRate,
		"max.pending":  e.MaxPending,
		"memory.size":  e.MemorySize,
		"debug.ui":     e.DebugUI,
		"touch":        e.Touch,
		"log.echo":     e.LogEcho,
		"window.scale": e.WindowScale,
	} {
		if v == "" {
			continue
		}
		if err := cfg.set(key, v); err != nil {
			return err
		}
	}

	return nil
}

// CommandLine applies values from a prefs string. Keys that are not settings
// are logged and ignored.
func (cfg *Config) CommandLine(s string) error {
	prefs.PushCommandLineStack(s)

	var err error
	for key := range cfg.entries {
		ok, v := prefs.GetCommandLinePref(key)
		if !ok {
			continue
		}
		if err = cfg.set(key, v); err != nil {
			break
		}
	}

	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "config", "unused prefs: %s", unused)
	}

	return err
}

// Load applies the environment and then the command line prefs string to a
// new Config.
func Load(environ map[string]string, commandLine string) (*Config, error) {
	cfg := NewConfig()
	if err := cfg.Environment(environ); err != nil {
		return nil, err
	}
	if err := cfg.CommandLine(commandLine); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) String() string {
	s := make([]string, 0, len(cfg.entries))
	for _, key := range []string{
		"backend", "vblank.rate", "max.pending", "memory.size",
		"debug.ui", "touch", "log.echo", "window.scale",
	} {
		s = append(s, fmt.Sprintf("%s::%s", key, cfg.entries[key]))
	}
	return strings.Join(s, "; ")
}
