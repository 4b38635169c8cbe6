package ui

import (
	"fmt"
	"strings"
)

// VersionInfo is what --version reports.
type VersionInfo struct {
	Version string
	Commit  string
}

// Version prints the version banner.
func (o *Output) Version(v VersionInfo) {
	fmt.Fprintf(o.Out, "switch %s", v.Version)
	if v.Commit != "" {
		fmt.Fprintf(o.Out, " (%s)", v.Commit)
	}
	fmt.Fprint(o.Out, "\n"+
		"Copyright (C) 2026 AnmiTaliDev\n"+
		"License GPLv3+: GNU GPL version 3 or later <https://gnu.org/licenses/gpl.html>\n"+
		"This is free software: you are free to change and redistribute it.\n"+
		"There is NO WARRANTY, to the extent permitted by law.\n\n"+
		"Part of the NurOS project.\n"+
		"Repository: https://github.com/NurOS-Linux/switch\n")
}

// UsageInfo feeds the usage text.
type UsageInfo struct {
	Prog      string
	SystemDir string
	UserDir   string
}

// Usage prints the top-level help.
func (o *Output) Usage(u UsageInfo) {
	prog := u.Prog
	if prog == "" {
		prog = "switch"
	}
	user := u.UserDir
	if user == "" {
		user = "(no home directory)"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Usage: %s [OPTIONS] <module> <action> [arguments...]\n\n", prog)
	b.WriteString("Alternatives management tool for NurOS.\n\n")
	b.WriteString("Options:\n")
	b.WriteString("  -l, --list-modules    List all available modules\n")
	b.WriteString("  -h, --help            Show this help message\n")
	b.WriteString("  -V, --version         Show version information\n")
	b.WriteString("      --no-color        Disable colored output\n")
	b.WriteString("      --color <mode>    Color mode: auto, always or never\n")
	b.WriteString("      --config <file>   Read configuration from file\n")
	b.WriteString("      --evaluator <k>   Descriptor evaluator: bash or virtual\n")
	b.WriteString("      --debug           Enable debug logging\n\n")
	b.WriteString("Module actions:\n")
	b.WriteString("  list                  List available alternatives\n")
	b.WriteString("  show                  Show current alternative\n")
	b.WriteString("  set <target>          Set alternative to target\n")
	b.WriteString("  help                  Show module help\n\n")
	b.WriteString("Examples:\n")
	fmt.Fprintf(&b, "  %s --list-modules       List all modules\n", prog)
	fmt.Fprintf(&b, "  %s editor list          List available editors\n", prog)
	fmt.Fprintf(&b, "  %s editor show          Show current editor\n", prog)
	fmt.Fprintf(&b, "  %s editor set vim       Set vim as default editor\n\n", prog)
	b.WriteString("Module directories:\n")
	fmt.Fprintf(&b, "  System: %s\n", u.SystemDir)
	fmt.Fprintf(&b, "  User:   %s\n", user)

	fmt.Fprint(o.Out, b.String())
}
