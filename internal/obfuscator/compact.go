package obfuscator

import (
	"fmt"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/pkg/errors"
)

// compact runs esbuild's minifier. It is the only stage that parses the
// program, so syntax errors in the source surface here.
func compact(source string, o Options) (string, error) {
	opts := api.TransformOptions{
		Loader:            api.LoaderJS,
		MinifyWhitespace:  o.Compact,
		MinifySyntax:      o.Simplify,
		MinifyIdentifiers: true,
		LegalComments:     api.LegalCommentsNone,
		Charset:           api.CharsetUTF8,
	}
	if o.UnicodeEscapeSequence {
		opts.Charset = api.CharsetASCII
	}
	if o.DisableConsoleOutput {
		opts.Drop = api.DropConsole
	}
	if o.RenameTopLevel && !o.RenameGlobals {
		// Wrapping in an IIFE turns top-level bindings into locals the
		// minifier is free to rename.
		opts.Format = api.FormatIIFE
	}

	result := api.Transform(source, opts)
	if len(result.Errors) > 0 {
		msgs := make([]string, 0, len(result.Errors))
		for _, m := range result.Errors {
			if m.Location != nil {
				msgs = append(msgs, fmt.Sprintf("%d:%d: %s", m.Location.Line, m.Location.Column, m.Text))
				continue
			}
			msgs = append(msgs, m.Text)
		}
		return "", errors.Errorf("esbuild transform: %s", strings.Join(msgs, "; "))
	}
	return strings.TrimRight(string(result.Code), "\n"), nil
}
