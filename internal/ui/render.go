package ui

import (
	"fmt"

	"nuros-switch/internal/module"
	"nuros-switch/internal/switcher"
)

// ModuleList prints the --list-modules table. Descriptions must already be loaded.
func (o *Output) ModuleList(mods []*module.Module) {
	if len(mods) == 0 {
		o.Info("No modules found.")
		return
	}

	fmt.Fprintln(o.Out, "Available modules:")
	for _, m := range mods {
		line := "  " + o.green.Sprintf("%-16s", m.Name)
		if desc, ok := m.Description(); ok {
			line += " - " + desc
		}
		if m.IsUser() {
			line += " " + o.yellow.Sprint("[user]")
		}
		fmt.Fprintln(o.Out, line)
	}
}

// Listing prints the alternatives of a module, marking the current one.
func (o *Output) Listing(l *switcher.Listing) {
	if len(l.Entries) == 0 {
		fmt.Fprintf(o.Out, "No alternatives found for %s\n", l.Module.Name)
		return
	}

	fmt.Fprintf(o.Out, "Available alternatives for %s:\n", o.cyan.Sprint(l.Module.Name))
	fmt.Fprintf(o.Out, "  Link: %s\n\n", l.LinkPath)
	for _, e := range l.Entries {
		marker := "[ ]"
		if e.Current {
			marker = o.green.Sprint("[*]")
		}
		fmt.Fprintf(o.Out, "  %s %s  %s  (priority: %d)\n",
			marker, o.bold.Sprintf("%-12s", e.Name), e.Path, e.Priority)
	}
}

// Status prints the show card.
func (o *Output) Status(s *switcher.Status) {
	fmt.Fprintf(o.Out, "Module: %s\n", o.cyan.Sprint(s.Module.Name))
	if desc, ok := s.Module.Description(); ok {
		fmt.Fprintf(o.Out, "  %s\n", desc)
	}
	fmt.Fprintln(o.Out)

	fmt.Fprintf(o.Out, "Link: %s\n", s.LinkPath)
	if !s.Link.Configured() {
		fmt.Fprintf(o.Out, "  %s\n", o.yellow.Sprint("(not configured)"))
		return
	}
	fmt.Fprintf(o.Out, "  -> %s\n", s.Link.Target)
	if s.Link.Resolved != "" {
		fmt.Fprintf(o.Out, "  => %s\n", o.green.Sprint(s.Link.Resolved))
	}
}

// SetResult confirms a completed switch.
func (o *Output) SetResult(r *switcher.Result) {
	o.Success("Setting %s to %s", r.Module, r.Target)
	fmt.Fprintf(o.Out, "  %s -> %s\n", r.LinkPath, r.Path)
}

// ModuleHelp prints the help card of a module from whatever metadata it has.
func (o *Output) ModuleHelp(m *module.Module) {
	header := "Module: " + o.bold.Sprint(m.Name)
	if category, ok := m.Category(); ok {
		header += " (" + category + ")"
	}
	fmt.Fprintln(o.Out, header)

	if desc, ok := m.Description(); ok {
		fmt.Fprintf(o.Out, "\n%s\n", desc)
	}

	fmt.Fprintf(o.Out, "\nUsage: switch %s <action> [arguments]\n", m.Name)
	fmt.Fprint(o.Out, "\nActions:\n"+
		"  list              List available alternatives\n"+
		"  show              Show current configuration\n"+
		"  set <target>      Set the alternative\n"+
		"  help              Show this help\n")

	if link, ok := m.LinkPath(); ok {
		fmt.Fprintf(o.Out, "\nManaged link: %s\n", link)
	}
	if extra, ok := m.ExtraLinks(); ok {
		fmt.Fprintf(o.Out, "Extra links: %s\n", extra)
	}
}
