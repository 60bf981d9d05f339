package modserve

import (
	"time"

	"github.com/joeshaw/envdecode"
)

// Config captures the module settings that can come from the environment.
// Environment configuration is a convenience for module authors; nothing in
// the router contract depends on it.
type Config struct {
	// IdleTimeout after which a module with no invocations exits.
	// ENV: MODSERVE_IDLE_TIMEOUT
	IdleTimeout time.Duration `env:"MODSERVE_IDLE_TIMEOUT,default=5m"`
}

// NewFromEnv builds a Module using envdecode to populate Config. Explicit
// options are applied after the environment and take precedence.
func NewFromEnv(opts ...Option) *Module {
	var cfg Config
	// Defaults are provided via struct tags; decode failures fall back to them.
	_ = envdecode.Decode(&cfg)

	base := []Option{WithTimeout(cfg.IdleTimeout)}
	return New(append(base, opts...)...)
}
