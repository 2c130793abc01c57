package api

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecode(t *testing.T) {
	raw := []byte(`
jsFiles: [main.js]
cssFiles: [style.css, responsive.css]
outputDir: ./dist/protected/
obfuscator:
  engine: external
  options:
    stringArray: true
    stringArrayEncoding: [rc4]
    splitStringsChunkLength: 10
`)
	cfg, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode: %s", err)
	}
	if diff := cmp.Diff([]string{"main.js"}, cfg.JSFiles); diff != "" {
		t.Fatalf("jsFiles (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"style.css", "responsive.css"}, cfg.CSSFiles); diff != "" {
		t.Fatalf("cssFiles (-want +got):\n%s", diff)
	}
	if cfg.InputDir != "./" {
		t.Fatalf("inputDir = %q, want ./", cfg.InputDir)
	}
	if cfg.CSS.Engine != NativeEngine || cfg.CSS.Level != 2 {
		t.Fatalf("css defaults not applied: %+v", cfg.CSS)
	}
	if cfg.Obfuscator.Engine != ExternalEngine {
		t.Fatalf("obfuscator engine = %s", cfg.Obfuscator.Engine)
	}
	o := cfg.Obfuscator.Options
	if !o.StringArray || o.SplitStringsChunkLength != 10 || len(o.StringArrayEncoding) != 1 {
		t.Fatalf("options not decoded: %+v", o)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"no output dir", "jsFiles: [main.js]\n"},
		{"bad yaml", "jsFiles: [main.js\n"},
		{"wrong type", "jsFiles: 3\noutputDir: out\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode([]byte(tt.raw)); err == nil {
				t.Fatalf("Decode accepted %q", tt.raw)
			}
		})
	}
}

func TestEngineOrDefault(t *testing.T) {
	if got := Engine("").OrDefault(); got != NativeEngine {
		t.Fatalf("empty engine = %s", got)
	}
	if got := ExternalEngine.OrDefault(); got != ExternalEngine {
		t.Fatalf("external engine = %s", got)
	}
}
