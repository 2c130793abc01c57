package builder

import (
	"fmt"
	"io"

	"github.com/kosmosec/assetguard/internal/api"
	"github.com/kosmosec/assetguard/internal/model"
)

const (
	startBanner = "🚀 Début de la minification et obfuscation..."
	doneBanner  = "✅ Tous les fichiers ont été traités!"
)

type reporter struct {
	stdout io.Writer
	stderr io.Writer
}

func (r reporter) start() {
	fmt.Fprintln(r.stdout, startBanner)
	fmt.Fprintln(r.stdout)
}

func (r reporter) done() {
	fmt.Fprintln(r.stdout)
	fmt.Fprintln(r.stdout, doneBanner)
}

func (r reporter) result(res model.Result) {
	t := res.Task
	switch {
	case res.Failed() && t.Type == api.JSType:
		fmt.Fprintf(r.stderr, "✗ Erreur d'obfuscation sur %s: %s\n", t.Input, res.Err)
	case res.Failed():
		fmt.Fprintf(r.stderr, "✗ Erreur sur %s: %s\n", t.Input, res.Err)
	case t.Type == api.JSType:
		fmt.Fprintf(r.stdout, "✓ Obfusqué: %s -> %s\n", t.Input, t.Output)
	default:
		fmt.Fprintf(r.stdout, "✓ Minifié: %s -> %s\n", t.Input, t.Output)
	}
}

// PrintPlan lists the tasks of a run and whether their input is present.
func PrintPlan(w io.Writer, tasks []model.Task) {
	for _, t := range tasks {
		state := "missing"
		if Exists(t) {
			state = "ready"
		}
		fmt.Fprintf(w, "[%s] %-7s %s -> %s\n", t.Type, state, t.Input, t.Output)
	}
}
