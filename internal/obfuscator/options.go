package obfuscator

import (
	"github.com/pkg/errors"
)

const (
	HexadecimalNames = "hexadecimal"

	EncodingNone   = "none"
	EncodingBase64 = "base64"
	EncodingRC4    = "rc4"

	WrapperFunction = "function"
	WrapperVariable = "variable"
)

// Options is the obfuscation record. Field names follow javascript-obfuscator so
// the same record drives both the native engine and the node CLI.
type Options struct {
	Compact                               bool     `yaml:"compact"`
	ControlFlowFlattening                 bool     `yaml:"controlFlowFlattening"`
	ControlFlowFlatteningThreshold        float64  `yaml:"controlFlowFlatteningThreshold"`
	DeadCodeInjection                     bool     `yaml:"deadCodeInjection"`
	DeadCodeInjectionThreshold            float64  `yaml:"deadCodeInjectionThreshold"`
	DebugProtection                       bool     `yaml:"debugProtection"`
	DebugProtectionInterval               int      `yaml:"debugProtectionInterval"`
	DisableConsoleOutput                  bool     `yaml:"disableConsoleOutput"`
	IdentifierNamesGenerator              string   `yaml:"identifierNamesGenerator"`
	Log                                   bool     `yaml:"log"`
	NumbersToExpressions                  bool     `yaml:"numbersToExpressions"`
	RenameGlobals                         bool     `yaml:"renameGlobals"`
	RenameTopLevel                        bool     `yaml:"renameTopLevel"`
	Seed                                  int64    `yaml:"seed"`
	SelfDefending                         bool     `yaml:"selfDefending"`
	Simplify                              bool     `yaml:"simplify"`
	SplitStrings                          bool     `yaml:"splitStrings"`
	SplitStringsChunkLength               int      `yaml:"splitStringsChunkLength"`
	StringArray                           bool     `yaml:"stringArray"`
	StringArrayEncoding                   []string `yaml:"stringArrayEncoding"`
	StringArrayIndexShift                 bool     `yaml:"stringArrayIndexShift"`
	StringArrayThreshold                  float64  `yaml:"stringArrayThreshold"`
	StringArrayWrappersCount              int      `yaml:"stringArrayWrappersCount"`
	StringArrayWrappersChainedCalls       bool     `yaml:"stringArrayWrappersChainedCalls"`
	StringArrayWrappersParametersMaxCount int      `yaml:"stringArrayWrappersParametersMaxCount"`
	StringArrayWrappersType               string   `yaml:"stringArrayWrappersType"`
	UnicodeEscapeSequence                 bool     `yaml:"unicodeEscapeSequence"`
}

// Protected returns the option set used for shipped assets.
func Protected() Options {
	return Options{
		Compact:                               true,
		ControlFlowFlattening:                 true,
		ControlFlowFlatteningThreshold:        0.75,
		DeadCodeInjection:                     true,
		DeadCodeInjectionThreshold:            0.4,
		DebugProtection:                       true,
		DebugProtectionInterval:               4000,
		DisableConsoleOutput:                  true,
		IdentifierNamesGenerator:              HexadecimalNames,
		Log:                                   false,
		NumbersToExpressions:                  true,
		RenameGlobals:                         false,
		RenameTopLevel:                        true,
		SelfDefending:                         true,
		Simplify:                              true,
		SplitStrings:                          true,
		SplitStringsChunkLength:               10,
		StringArray:                           true,
		StringArrayEncoding:                   []string{EncodingRC4},
		StringArrayIndexShift:                 true,
		StringArrayThreshold:                  0.75,
		StringArrayWrappersCount:              2,
		StringArrayWrappersChainedCalls:       true,
		StringArrayWrappersParametersMaxCount: 4,
		StringArrayWrappersType:               WrapperFunction,
		UnicodeEscapeSequence:                 false,
	}
}

func (o Options) Validate() error {
	if o.IdentifierNamesGenerator != "" && o.IdentifierNamesGenerator != HexadecimalNames {
		return errors.Errorf("unsupported identifierNamesGenerator %q", o.IdentifierNamesGenerator)
	}
	for _, th := range []float64{o.ControlFlowFlatteningThreshold, o.DeadCodeInjectionThreshold, o.StringArrayThreshold} {
		if th < 0 || th > 1 {
			return errors.Errorf("threshold %v out of range [0, 1]", th)
		}
	}
	for _, enc := range o.StringArrayEncoding {
		switch enc {
		case EncodingNone, EncodingBase64, EncodingRC4:
		default:
			return errors.Errorf("unsupported stringArrayEncoding %q", enc)
		}
	}
	switch o.StringArrayWrappersType {
	case "", WrapperFunction, WrapperVariable:
	default:
		return errors.Errorf("unsupported stringArrayWrappersType %q", o.StringArrayWrappersType)
	}
	if o.StringArrayWrappersCount < 0 {
		return errors.New("stringArrayWrappersCount must not be negative")
	}
	if o.StringArrayWrappersParametersMaxCount != 0 && o.StringArrayWrappersParametersMaxCount < 2 {
		return errors.New("stringArrayWrappersParametersMaxCount must be at least 2")
	}
	return nil
}

// encoding picks the strongest encoding listed.
func (o Options) encoding() string {
	enc := EncodingNone
	for _, e := range o.StringArrayEncoding {
		switch e {
		case EncodingRC4:
			return EncodingRC4
		case EncodingBase64:
			enc = EncodingBase64
		}
	}
	return enc
}
