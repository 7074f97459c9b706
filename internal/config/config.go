// Package config resolves server configuration from the environment and
// CLI flags, matching the teacher's default-then-override shape in
// cmd/server/main.go (flag.Int("port", 8080, ...)) but sourcing the
// default from the environment first, per the feature-flag environment
// variables the engine is identified by.
package config

import (
	"os"
	"strconv"
)

// Server holds the settings needed to bring up the HTTP transport.
type Server struct {
	Port      int
	EnvID     string
	AgentID   string
	ProjectID string
}

const defaultPort = 8080

// FromEnv reads PORT, FF_ENV_ID, FF_AGENT_ID, and FF_PROJECT_ID from the
// environment. PORT defaults to 8080 when absent or unparsable.
func FromEnv() Server {
	return Server{
		Port:      intEnv("PORT", defaultPort),
		EnvID:     os.Getenv("FF_ENV_ID"),
		AgentID:   os.Getenv("FF_AGENT_ID"),
		ProjectID: os.Getenv("FF_PROJECT_ID"),
	}
}

// WithPort overrides Port when port is non-zero, for CLI flags that should
// take precedence over the environment.
func (s Server) WithPort(port int) Server {
	if port != 0 {
		s.Port = port
	}
	return s
}

func intEnv(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
