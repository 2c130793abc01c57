package builder

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/kosmosec/assetguard/internal/api"
	"github.com/kosmosec/assetguard/internal/model"
)

var (
	cssSuffix = [2]string{".css", ".min.css"}
	jsSuffix  = [2]string{".js", ".obf.js"}
)

// Plan derives the file tasks of a run: stylesheets first, then scripts, each
// in configured order.
func Plan(cfg api.Config) []model.Task {
	tasks := make([]model.Task, 0, len(cfg.CSSFiles)+len(cfg.JSFiles))
	for _, name := range cfg.CSSFiles {
		tasks = append(tasks, newTask(cfg, api.CSSType, name))
	}
	for _, name := range cfg.JSFiles {
		tasks = append(tasks, newTask(cfg, api.JSType, name))
	}
	return tasks
}

func newTask(cfg api.Config, t api.TaskType, name string) model.Task {
	suffix := cssSuffix
	if t == api.JSType {
		suffix = jsSuffix
	}
	dir := string(t)
	return model.Task{
		Type:   t,
		Name:   name,
		Input:  filepath.Join(cfg.InputDir, dir, name),
		Output: filepath.Join(cfg.OutputDir, dir, strings.Replace(name, suffix[0], suffix[1], 1)),
	}
}

// Exists reports whether the task input is present. Any stat failure counts as
// absent.
func Exists(task model.Task) bool {
	_, err := os.Stat(task.Input)
	return err == nil
}
