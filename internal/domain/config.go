package domain

import (
	"fmt"
	"strings"
)

// Toolchain names the executable used for a single-binary language.
type Toolchain struct {
	Command string `yaml:"command"`
}

// JavaToolchain names the compiler and runtime pair for Java.
type JavaToolchain struct {
	Compiler string `yaml:"compiler"`
	Runtime  string `yaml:"runtime"`
}

// ToolchainConfig holds the per-language toolchain commands plus run-step
// behavior. Loaded from .codevet.yaml; zero values fall back to defaults.
type ToolchainConfig struct {
	Java       JavaToolchain `yaml:"java"`
	Python     Toolchain     `yaml:"python"`
	PHP        Toolchain     `yaml:"php"`
	JavaScript Toolchain     `yaml:"javascript"`

	// SkipRun stops after the syntax/compile check without executing the file.
	SkipRun bool `yaml:"skip_run"`
}

// DefaultToolchains returns the stock commands resolved via PATH.
func DefaultToolchains() ToolchainConfig {
	return ToolchainConfig{
		Java:       JavaToolchain{Compiler: "javac", Runtime: "java"},
		Python:     Toolchain{Command: "python"},
		PHP:        Toolchain{Command: "php"},
		JavaScript: Toolchain{Command: "node"},
	}
}

// Validate catches unusable command values before any process is spawned.
func (c ToolchainConfig) Validate() error {
	for name, cmd := range map[string]string{
		"java.compiler":      c.Java.Compiler,
		"java.runtime":       c.Java.Runtime,
		"python.command":     c.Python.Command,
		"php.command":        c.PHP.Command,
		"javascript.command": c.JavaScript.Command,
	} {
		if strings.TrimSpace(cmd) == "" {
			return fmt.Errorf("toolchain %s: command is empty", name)
		}
	}
	return nil
}
