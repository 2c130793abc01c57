package obfuscator

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Options)
		wantErr bool
	}{
		{"protected", func(*Options) {}, false},
		{"zero value", func(o *Options) { *o = Options{} }, false},
		{"mangled names", func(o *Options) { o.IdentifierNamesGenerator = "mangled" }, true},
		{"threshold above one", func(o *Options) { o.StringArrayThreshold = 1.5 }, true},
		{"negative threshold", func(o *Options) { o.DeadCodeInjectionThreshold = -0.1 }, true},
		{"unknown encoding", func(o *Options) { o.StringArrayEncoding = []string{"rot13"} }, true},
		{"unknown wrapper type", func(o *Options) { o.StringArrayWrappersType = "object" }, true},
		{"negative wrapper count", func(o *Options) { o.StringArrayWrappersCount = -1 }, true},
		{"one wrapper param", func(o *Options) { o.StringArrayWrappersParametersMaxCount = 1 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Protected()
			tt.mutate(&o)
			if err := o.Validate(); (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEncoding(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{nil, EncodingNone},
		{[]string{EncodingNone}, EncodingNone},
		{[]string{EncodingBase64}, EncodingBase64},
		{[]string{EncodingBase64, EncodingRC4}, EncodingRC4},
	}
	for _, tt := range tests {
		if got := (Options{StringArrayEncoding: tt.in}).encoding(); got != tt.want {
			t.Fatalf("encoding(%v) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestCLIArgs(t *testing.T) {
	want := []string{
		"js/main.js", "--output", "dist/js/main.obf.js",
		"--compact", "true",
		"--control-flow-flattening", "true",
		"--control-flow-flattening-threshold", "0.75",
		"--dead-code-injection", "true",
		"--dead-code-injection-threshold", "0.4",
		"--debug-protection", "true",
		"--debug-protection-interval", "4000",
		"--disable-console-output", "true",
		"--identifier-names-generator", "hexadecimal",
		"--log", "false",
		"--numbers-to-expressions", "true",
		"--rename-globals", "false",
		"--self-defending", "true",
		"--simplify", "true",
		"--split-strings", "true",
		"--split-strings-chunk-length", "10",
		"--string-array", "true",
		"--string-array-encoding", "rc4",
		"--string-array-index-shift", "true",
		"--string-array-threshold", "0.75",
		"--string-array-wrappers-count", "2",
		"--string-array-wrappers-chained-calls", "true",
		"--string-array-wrappers-parameters-max-count", "4",
		"--string-array-wrappers-type", "function",
		"--unicode-escape-sequence", "false",
	}
	got := Protected().CLIArgs("js/main.js", "dist/js/main.obf.js")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("CLIArgs mismatch (-want +got):\n%s", diff)
	}
}

func TestCLIArgsSeed(t *testing.T) {
	o := Protected()
	o.Seed = 1234
	args := o.CLIArgs("in.js", "out.js")
	for i := range args {
		if args[i] == "--seed" && i+1 < len(args) && args[i+1] == "1234" {
			return
		}
	}
	t.Fatalf("--seed 1234 not in %v", args)
}
