package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kosmosec/assetguard/internal/api"
	"github.com/kosmosec/assetguard/internal/obfuscator"
)

func TestEmbeddedConfig(t *testing.T) {
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %s", err)
	}
	want := api.Config{
		JSFiles:    []string{"main.js", "analytics.js"},
		CSSFiles:   []string{"style.css", "responsive.css"},
		InputDir:   "./",
		OutputDir:  "./dist/protected/",
		CSS:        api.CSS{Engine: api.NativeEngine, Level: 2},
		Obfuscator: api.Obfuscator{Engine: api.NativeEngine, Options: obfuscator.Protected()},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("embedded config mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigCommand(t *testing.T) {
	root := NewRoot()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"config"})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	if out.String() != string(defaultCfg) {
		t.Fatalf("config printed %q", out.String())
	}
}

func TestPlanCommand(t *testing.T) {
	root := NewRoot()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"plan"})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d plan lines:\n%s", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[0], "[css]") || !strings.HasPrefix(lines[3], "[js]") {
		t.Fatalf("stylesheets must come before scripts:\n%s", out.String())
	}
}

func TestRootRejectsArgs(t *testing.T) {
	root := NewRoot()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"extra"})
	if err := root.Execute(); err == nil {
		t.Fatalf("root accepted a positional argument")
	}
}

func TestCommandsDescribed(t *testing.T) {
	root := NewRoot()
	for _, c := range append(root.Commands(), root) {
		if c.Short == "" || c.Long == "" {
			t.Fatalf("command %q lacks a description", c.Name())
		}
	}
}
