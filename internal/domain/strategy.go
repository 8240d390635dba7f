package domain

import (
	"path/filepath"
	"strconv"
	"strings"
)

// Command is a single toolchain invocation as an argv array. Paths travel
// as discrete arguments, never through a shell, so quotes and shell
// metacharacters in file names cannot alter the invocation.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory for the process; empty means inherit.
	Dir string
}

// String renders the command for display in error texts. Quoting here is
// cosmetic; execution never goes through a shell.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, c.Name)
	for _, a := range c.Args {
		if strings.ContainsAny(a, " \t\"'") {
			a = strconv.Quote(a)
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}

// Strategy bundles a language's compatibility test, command templates and
// check-failure heuristic. Variants live in the strategies table rather
// than in per-language types.
type Strategy struct {
	Language  Language
	Extension string

	// FailurePrefix labels the report when the check step fails:
	// "Compilation errors:" for compiled languages, "Syntax errors:" for
	// interpreted ones.
	FailurePrefix string

	check  func(tc ToolchainConfig, path string) Command
	run    func(tc ToolchainConfig, path string) Command
	failed func(output string) bool
}

// IsCompatible reports whether path carries this strategy's extension.
func (s Strategy) IsCompatible(path string) bool {
	return strings.EqualFold(filepath.Ext(path), s.Extension)
}

// CheckCommand builds the syntax/compile check invocation.
func (s Strategy) CheckCommand(tc ToolchainConfig, path string) Command {
	return s.check(tc, path)
}

// RunCommand builds the execution invocation.
func (s Strategy) RunCommand(tc ToolchainConfig, path string) Command {
	return s.run(tc, path)
}

// CheckFailed applies the language's heuristic to the check step's captured
// output. The heuristics key off free-text tool output ("SyntaxError",
// "No syntax errors") exactly as the toolchains emit it today; they are
// known to be fragile across tool versions and locales.
func (s Strategy) CheckFailed(output string) bool {
	return s.failed(output)
}

// FileStem returns the file name without its extension. For Java this is
// the class name the run step launches.
func FileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// strategies is the fixed per-language table.
var strategies = map[Language]Strategy{
	LanguageJava: {
		Language:      LanguageJava,
		Extension:     ".java",
		FailurePrefix: "Compilation errors:",
		check: func(tc ToolchainConfig, path string) Command {
			return Command{Name: tc.Java.Compiler, Args: []string{path}}
		},
		run: func(tc ToolchainConfig, path string) Command {
			// java resolves the class by name, so it runs from the file's
			// directory with the bare stem as the class name.
			return Command{
				Name: tc.Java.Runtime,
				Args: []string{FileStem(path)},
				Dir:  filepath.Dir(path),
			}
		},
		failed: func(output string) bool { return output != "" },
	},
	LanguagePython: {
		Language:      LanguagePython,
		Extension:     ".py",
		FailurePrefix: "Syntax errors:",
		check: func(tc ToolchainConfig, path string) Command {
			return Command{Name: tc.Python.Command, Args: []string{"-m", "py_compile", path}}
		},
		run: func(tc ToolchainConfig, path string) Command {
			return Command{Name: tc.Python.Command, Args: []string{path}}
		},
		failed: func(output string) bool { return strings.Contains(output, "SyntaxError") },
	},
	LanguagePHP: {
		Language:      LanguagePHP,
		Extension:     ".php",
		FailurePrefix: "Syntax errors:",
		check: func(tc ToolchainConfig, path string) Command {
			return Command{Name: tc.PHP.Command, Args: []string{"-l", path}}
		},
		run: func(tc ToolchainConfig, path string) Command {
			return Command{Name: tc.PHP.Command, Args: []string{path}}
		},
		failed: func(output string) bool { return !strings.Contains(output, "No syntax errors") },
	},
	LanguageJavaScript: {
		Language:      LanguageJavaScript,
		Extension:     ".js",
		FailurePrefix: "Syntax errors:",
		check: func(tc ToolchainConfig, path string) Command {
			return Command{Name: tc.JavaScript.Command, Args: []string{"--check", path}}
		},
		run: func(tc ToolchainConfig, path string) Command {
			return Command{Name: tc.JavaScript.Command, Args: []string{path}}
		},
		failed: func(output string) bool { return output != "" },
	},
}

// StrategyFor returns the strategy for an explicitly selected language.
func StrategyFor(lang Language) (Strategy, bool) {
	s, ok := strategies[lang]
	return s, ok
}

// SelectStrategy picks the strategy for a request. Explicit languages map
// directly; auto-detect keys off the file extension. The caller must still
// confirm IsCompatible before invoking an explicitly selected strategy.
func SelectStrategy(lang Language, path string) (Strategy, bool) {
	if lang == LanguageAutoDetect {
		detected, ok := DetectLanguage(path)
		if !ok {
			return Strategy{}, false
		}
		return strategies[detected], true
	}
	return StrategyFor(lang)
}
