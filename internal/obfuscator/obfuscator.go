// Package obfuscator turns JavaScript source into a compact, hard to read
// equivalent. esbuild does the parsing and minification; the remaining passes
// work on the lexed output of the previous one.
package obfuscator

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/kosmosec/assetguard/internal/logging"
)

type Obfuscator struct {
	opts   Options
	logger *slog.Logger
}

func New(opts Options, logger *slog.Logger) (*Obfuscator, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	logger = logging.Default(logger)
	return &Obfuscator{opts: opts, logger: logger.With("component", "obfuscator")}, nil
}

// Obfuscate is a convenience wrapper for one-off calls.
func Obfuscate(source string, opts Options) (string, error) {
	o, err := New(opts, nil)
	if err != nil {
		return "", err
	}
	return o.Obfuscate(source)
}

type pass struct {
	name string
	on   bool
	run  func(string) (string, error)
}

func (o *Obfuscator) Obfuscate(source string) (string, error) {
	opts := o.opts
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	n := newNamer(rand.New(rand.NewSource(seed)))

	code, err := compact(source, opts)
	if err != nil {
		return "", err
	}
	if opts.DisableConsoleOutput {
		if code, err = prependAfterDirectives(code, consoleGuard(n)); err != nil {
			return "", err
		}
	}

	strArr := newStringArray(opts, n)
	passes := []pass{
		{"consoleMembers", opts.DisableConsoleOutput, consoleMembers},
		{"deadCodeInjection", opts.DeadCodeInjection, func(s string) (string, error) {
			return injectDeadCode(s, opts.DeadCodeInjectionThreshold, n)
		}},
		{"controlFlowFlattening", opts.ControlFlowFlattening, func(s string) (string, error) {
			return flattenControlFlow(s, opts.ControlFlowFlatteningThreshold, n)
		}},
		{"numbersToExpressions", opts.NumbersToExpressions, func(s string) (string, error) {
			return numbersToExpressions(s, n)
		}},
		{"splitStrings", opts.SplitStrings, func(s string) (string, error) {
			return splitStrings(s, opts.SplitStringsChunkLength, opts.UnicodeEscapeSequence)
		}},
		{"stringArray", opts.StringArray, strArr.transform},
	}
	for _, p := range passes {
		if !p.on {
			continue
		}
		before := len(code)
		code, err = p.run(code)
		if err != nil {
			return "", errors.Wrap(err, p.name)
		}
		o.trace("pass done", "pass", p.name, "before", before, "after", len(code))
	}

	prelude := ""
	if opts.StringArray && !strArr.empty() {
		prelude += strArr.runtime()
	}
	if opts.SelfDefending {
		prelude += selfDefending(n)
	}
	if opts.DebugProtection {
		prelude += debugProtection(opts.DebugProtectionInterval, n)
	}
	return prependAfterDirectives(code, prelude)
}

// trace logs pass details at info level when the log option is on, and at
// debug level otherwise.
func (o *Obfuscator) trace(msg string, args ...any) {
	if o.opts.Log {
		o.logger.Info(msg, args...)
		return
	}
	o.logger.Debug(msg, args...)
}
