// Package settings provides build metadata, runtime configuration, and
// context helpers used across the cxcomplete CLI and library packages.
package settings

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "cxcomplete"

// VersionInformation is populated at build time via ldflags and holds the
// commit hash, semantic version, and build timestamp of the running binary.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-nightly",
	BuildTime:    "unknown",
}

// InputSettings describes where candidates are read from. An empty Path
// means stdin.
type InputSettings struct {
	Path string
}

// VersionInfo holds metadata about the build, including the commit hash,
// build version, and build timestamp.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// Run holds configuration settings for a single execution of the application.
type Run struct {
	MinLogLevel   int8
	Input         InputSettings
	ExtraSpace    bool
	Dedupe        bool
	Workers       int
	Snippets      bool
	NoColor       bool
	OutputFormat  string
	ConfigFile    string
	Expression    string
	TerminalWidth int
}

// NewCliParams returns the defaults used when the tool is launched from the
// command line: info logging, stdin input, menu output.
func NewCliParams() *Run {
	return &Run{
		MinLogLevel:  0,
		OutputFormat: "menu",
	}
}
