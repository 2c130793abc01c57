package obfuscator

import (
	"bytes"
	"log/slog"
	"regexp"
	"strings"
	"testing"
)

const greetSource = `"use strict";

function greet(name) {
  console.log("hello " + name);
  var message = "Welcome to the protected area";
  var count = 3;
  for (var i = 0; i < count; i++) {
    message += "!";
  }
  return message;
}

window.greet = greet;
`

var consoleCall = regexp.MustCompile(`console\s*\.\s*\w+\s*\(`)

func protectedWithSeed(seed int64) Options {
	o := Protected()
	o.Seed = seed
	return o
}

func TestObfuscate(t *testing.T) {
	out, err := Obfuscate(greetSource, protectedWithSeed(42))
	if err != nil {
		t.Fatalf("Obfuscate: %s", err)
	}
	if out == greetSource {
		t.Fatalf("output equals input")
	}
	if consoleCall.MatchString(out) {
		t.Fatalf("console call site left in output: %s", out)
	}
	if strings.Contains(out, "Welcome to the protected area") {
		t.Fatalf("string literal left intact: %s", out)
	}
	if !strings.Contains(out, "_0x") {
		t.Fatalf("no hexadecimal identifiers in output: %s", out)
	}
	if !strings.Contains(out, "'debu'+'gger'") {
		t.Fatalf("debug protection missing: %s", out)
	}
}

func TestObfuscateDeterministicWithSeed(t *testing.T) {
	first, err := Obfuscate(greetSource, protectedWithSeed(7))
	if err != nil {
		t.Fatal(err)
	}
	second, err := Obfuscate(greetSource, protectedWithSeed(7))
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Fatalf("same seed gave different output:\n%s\n%s", first, second)
	}
	other, err := Obfuscate(greetSource, protectedWithSeed(8))
	if err != nil {
		t.Fatal(err)
	}
	if other == first {
		t.Fatalf("different seeds gave the same output")
	}
}

func TestObfuscateSyntaxError(t *testing.T) {
	_, err := Obfuscate("function (", protectedWithSeed(1))
	if err == nil || !strings.Contains(err.Error(), "esbuild transform") {
		t.Fatalf("err = %v, want esbuild transform error", err)
	}
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	o := Protected()
	o.StringArrayEncoding = []string{"rot13"}
	if _, err := New(o, nil); err == nil {
		t.Fatalf("New accepted an unknown encoding")
	}
}

func TestObfuscateLogOption(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	o := protectedWithSeed(3)
	o.Log = true
	ob, err := New(o, logger)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ob.Obfuscate(greetSource); err != nil {
		t.Fatal(err)
	}
	for _, pass := range []string{"deadCodeInjection", "controlFlowFlattening", "stringArray"} {
		if !strings.Contains(buf.String(), "pass="+pass) {
			t.Fatalf("no log record for %s in:\n%s", pass, buf.String())
		}
	}

	buf.Reset()
	o.Log = false
	ob, _ = New(o, logger)
	if _, err := ob.Obfuscate(greetSource); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Fatalf("log option off still logged at info:\n%s", buf.String())
	}
}

func TestCompactDropsConsole(t *testing.T) {
	out, err := compact(`console.log("x");var total=1+2;window.total=total;`, Protected())
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "console") {
		t.Fatalf("console call kept: %s", out)
	}
	if !strings.Contains(out, "window.total") {
		t.Fatalf("program body lost: %s", out)
	}
}

func TestObfuscateKeepsRegExpAfterLoopHeader(t *testing.T) {
	tests := []struct {
		src    string
		regexp string
	}{
		{`function h(s){for(var i=0;i<2;i++)/b|7/.test(s)?R.push('hit'):R.push('miss')}h('7')`, `/b|7/`},
		{`function h(s){for(var i=0;i<2;i++)/x"y/g.test(s)?R.push('hit'):R.push('miss')}h('7')`, `/x"y/g`},
	}
	for _, tt := range tests {
		out, err := Obfuscate(tt.src, protectedWithSeed(5))
		if err != nil {
			t.Fatalf("Obfuscate(%q): %s", tt.src, err)
		}
		if !strings.Contains(out, tt.regexp) {
			t.Fatalf("regexp %s rewritten: %s", tt.regexp, out)
		}
	}
}
