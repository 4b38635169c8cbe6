package ui

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nuros-switch/internal/config"
	"nuros-switch/internal/descriptor"
	"nuros-switch/internal/module"
	"nuros-switch/internal/state"
	"nuros-switch/internal/switcher"
)

// fieldEvaluator answers ReadField from a map.
type fieldEvaluator map[descriptor.Field]string

func (f fieldEvaluator) ReadField(_ context.Context, _ string, field descriptor.Field) (string, error) {
	return f[field], nil
}

func (f fieldEvaluator) EnumerateAlternatives(context.Context, string) ([]byte, error) {
	return nil, nil
}

// loaded returns a module whose metadata came from fields.
func loaded(name string, scope module.Scope, fields map[descriptor.Field]string) *module.Module {
	m := module.New(name, "/modules/"+name+".sh", scope)
	module.NewLoader(fieldEvaluator(fields), nil).Load(context.Background(), m)
	return m
}

func newPlain() (*Output, *bytes.Buffer, *bytes.Buffer) {
	var out, errb bytes.Buffer
	return New(&out, &errb, false), &out, &errb
}

func TestShouldColor(t *testing.T) {
	env := func(vars map[string]string) func(string) string {
		return func(k string) string { return vars[k] }
	}

	tests := []struct {
		name     string
		mode     config.ColorMode
		terminal bool
		env      map[string]string
		want     bool
	}{
		{"auto on terminal", config.ColorAuto, true, nil, true},
		{"auto off terminal", config.ColorAuto, false, nil, false},
		{"NO_COLOR", config.ColorAuto, true, map[string]string{"NO_COLOR": "1"}, false},
		{"SWITCH_NO_COLOR", config.ColorAuto, true, map[string]string{"SWITCH_NO_COLOR": "1"}, false},
		{"dumb terminal", config.ColorAuto, true, map[string]string{"TERM": "dumb"}, false},
		{"always wins over NO_COLOR", config.ColorAlways, false, map[string]string{"NO_COLOR": "1"}, true},
		{"never on terminal", config.ColorNever, true, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldColor(tt.mode, tt.terminal, env(tt.env)))
		})
	}
}

func TestIsTerminal_NonFile(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}

func TestOutput_ColorIsPerInstance(t *testing.T) {
	var plain, colored bytes.Buffer
	New(&plain, &plain, false).Success("done")
	New(&colored, &colored, true).Success("done")

	assert.Equal(t, "done\n", plain.String())
	assert.Contains(t, colored.String(), "\x1b[")
	assert.Contains(t, colored.String(), "done")
}

func TestOutput_ErrorAndWarning(t *testing.T) {
	o, out, errb := newPlain()
	o.Error("module '%s' not found", "editor")
	o.Warning("slow")
	o.Hint("Try running with sudo.")

	assert.Equal(t, "error: module 'editor' not found\nwarning: slow\n", errb.String())
	assert.Equal(t, "Try running with sudo.\n", out.String())
}

func TestModuleList(t *testing.T) {
	o, out, _ := newPlain()
	o.ModuleList([]*module.Module{
		loaded("editor", module.ScopeUser, map[descriptor.Field]string{descriptor.FieldDescription: "Default editor"}),
		loaded("pager", module.ScopeSystem, nil),
	})

	assert.Equal(t,
		"Available modules:\n"+
			"  editor           - Default editor [user]\n"+
			"  pager           \n",
		out.String())
}

func TestModuleList_Empty(t *testing.T) {
	o, out, _ := newPlain()
	o.ModuleList(nil)
	assert.Equal(t, "No modules found.\n", out.String())
}

func TestListing(t *testing.T) {
	o, out, _ := newPlain()
	o.Listing(&switcher.Listing{
		Module:   module.New("editor", "/m/editor.sh", module.ScopeSystem),
		LinkPath: "/usr/bin/editor",
		Entries: []switcher.Entry{
			{Alternative: module.Alternative{Path: "/usr/bin/vim", Name: "vim", Priority: 50}, Current: true},
			{Alternative: module.Alternative{Path: "/usr/bin/nano", Name: "nano", Priority: 10}},
		},
	})

	assert.Equal(t,
		"Available alternatives for editor:\n"+
			"  Link: /usr/bin/editor\n\n"+
			"  [*] vim           /usr/bin/vim  (priority: 50)\n"+
			"  [ ] nano          /usr/bin/nano  (priority: 10)\n",
		out.String())
}

func TestListing_Empty(t *testing.T) {
	o, out, _ := newPlain()
	o.Listing(&switcher.Listing{Module: module.New("editor", "/m/editor.sh", module.ScopeSystem)})
	assert.Equal(t, "No alternatives found for editor\n", out.String())
}

func TestStatus(t *testing.T) {
	m := loaded("editor", module.ScopeSystem, map[descriptor.Field]string{descriptor.FieldDescription: "Default editor"})

	t.Run("configured", func(t *testing.T) {
		o, out, _ := newPlain()
		o.Status(&switcher.Status{
			Module:   m,
			LinkPath: "/usr/bin/editor",
			Link:     state.Link{Path: "/usr/bin/editor", Target: "vim", Resolved: "/usr/bin/vim.basic"},
		})
		assert.Equal(t,
			"Module: editor\n  Default editor\n\nLink: /usr/bin/editor\n  -> vim\n  => /usr/bin/vim.basic\n",
			out.String())
	})

	t.Run("dangling", func(t *testing.T) {
		o, out, _ := newPlain()
		o.Status(&switcher.Status{
			Module:   m,
			LinkPath: "/usr/bin/editor",
			Link:     state.Link{Path: "/usr/bin/editor", Target: "/gone"},
		})
		assert.Contains(t, out.String(), "  -> /gone\n")
		assert.NotContains(t, out.String(), "=>")
	})

	t.Run("not configured", func(t *testing.T) {
		o, out, _ := newPlain()
		o.Status(&switcher.Status{Module: m, LinkPath: "/usr/bin/editor", Link: state.Link{Path: "/usr/bin/editor"}})
		assert.Contains(t, out.String(), "Link: /usr/bin/editor\n  (not configured)\n")
	})
}

func TestStatus_RealLink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "vim")
	require.NoError(t, os.WriteFile(target, nil, 0o755))
	link := filepath.Join(dir, "editor")
	require.NoError(t, os.Symlink(target, link))

	o, out, _ := newPlain()
	o.Status(&switcher.Status{Module: module.New("editor", "/m/editor.sh", module.ScopeSystem), LinkPath: link, Link: state.Inspect(link)})
	assert.Contains(t, out.String(), "  -> "+target+"\n")
}

func TestSetResult(t *testing.T) {
	o, out, _ := newPlain()
	o.SetResult(&switcher.Result{Module: "editor", Target: "vim", LinkPath: "/usr/bin/editor", Path: "/usr/bin/vim"})
	assert.Equal(t, "Setting editor to vim\n  /usr/bin/editor -> /usr/bin/vim\n", out.String())
}

func TestModuleHelp(t *testing.T) {
	o, out, _ := newPlain()
	o.ModuleHelp(loaded("editor", module.ScopeSystem, map[descriptor.Field]string{
		descriptor.FieldDescription: "Default editor",
		descriptor.FieldCategory:    "tools",
		descriptor.FieldLink:        "/usr/bin/editor",
		descriptor.FieldExtraLinks:  "/usr/bin/vi:/usr/bin/ex",
	}))

	got := out.String()
	assert.Contains(t, got, "Module: editor (tools)\n\nDefault editor\n")
	assert.Contains(t, got, "Usage: switch editor <action> [arguments]\n")
	assert.Contains(t, got, "  set <target>      Set the alternative\n")
	assert.Contains(t, got, "\nManaged link: /usr/bin/editor\nExtra links: /usr/bin/vi:/usr/bin/ex\n")
}

func TestModuleHelp_NoMetadata(t *testing.T) {
	o, out, _ := newPlain()
	o.ModuleHelp(module.New("bare", "/m/bare.sh", module.ScopeSystem))

	got := out.String()
	assert.Contains(t, got, "Module: bare\n\nUsage:")
	assert.NotContains(t, got, "Managed link")
	assert.NotContains(t, got, "Extra links")
}

func TestVersion(t *testing.T) {
	o, out, _ := newPlain()
	o.Version(VersionInfo{Version: "1.0.0"})
	assert.Contains(t, out.String(), "switch 1.0.0\n")
	assert.Contains(t, out.String(), "Part of the NurOS project.\n")
}

func TestUsage(t *testing.T) {
	o, out, _ := newPlain()
	o.Usage(UsageInfo{SystemDir: "/usr/share/switch/modules", UserDir: "/home/ada/.local/share/switch/modules"})

	got := out.String()
	assert.Contains(t, got, "Usage: switch [OPTIONS] <module> <action> [arguments...]\n")
	assert.Contains(t, got, "  switch editor set vim       Set vim as default editor\n")
	assert.Contains(t, got, "  System: /usr/share/switch/modules\n  User:   /home/ada/.local/share/switch/modules\n")
}
