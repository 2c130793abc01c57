package obfuscator

import (
	"strconv"
	"strings"
)

// CLIArgs maps the options onto javascript-obfuscator command line flags.
// renameTopLevel has no flag; it only drives the native compaction stage.
func (o Options) CLIArgs(input, output string) []string {
	args := []string{input, "--output", output}
	flag := func(name, value string) {
		args = append(args, "--"+name, value)
	}
	b := strconv.FormatBool
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

	flag("compact", b(o.Compact))
	flag("control-flow-flattening", b(o.ControlFlowFlattening))
	flag("control-flow-flattening-threshold", f(o.ControlFlowFlatteningThreshold))
	flag("dead-code-injection", b(o.DeadCodeInjection))
	flag("dead-code-injection-threshold", f(o.DeadCodeInjectionThreshold))
	flag("debug-protection", b(o.DebugProtection))
	flag("debug-protection-interval", strconv.Itoa(o.DebugProtectionInterval))
	flag("disable-console-output", b(o.DisableConsoleOutput))
	if o.IdentifierNamesGenerator != "" {
		flag("identifier-names-generator", o.IdentifierNamesGenerator)
	}
	flag("log", b(o.Log))
	flag("numbers-to-expressions", b(o.NumbersToExpressions))
	flag("rename-globals", b(o.RenameGlobals))
	if o.Seed != 0 {
		flag("seed", strconv.FormatInt(o.Seed, 10))
	}
	flag("self-defending", b(o.SelfDefending))
	flag("simplify", b(o.Simplify))
	flag("split-strings", b(o.SplitStrings))
	flag("split-strings-chunk-length", strconv.Itoa(o.SplitStringsChunkLength))
	flag("string-array", b(o.StringArray))
	if len(o.StringArrayEncoding) > 0 {
		flag("string-array-encoding", strings.Join(o.StringArrayEncoding, ","))
	}
	flag("string-array-index-shift", b(o.StringArrayIndexShift))
	flag("string-array-threshold", f(o.StringArrayThreshold))
	flag("string-array-wrappers-count", strconv.Itoa(o.StringArrayWrappersCount))
	flag("string-array-wrappers-chained-calls", b(o.StringArrayWrappersChainedCalls))
	flag("string-array-wrappers-parameters-max-count", strconv.Itoa(o.StringArrayWrappersParametersMaxCount))
	if o.StringArrayWrappersType != "" {
		flag("string-array-wrappers-type", o.StringArrayWrappersType)
	}
	flag("unicode-escape-sequence", b(o.UnicodeEscapeSequence))
	return args
}
