// Package builder runs the asset build: it derives the file tasks from the
// configuration and hands each present input to the executor of its type.
package builder

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"

	"github.com/kosmosec/assetguard/internal/api"
	"github.com/kosmosec/assetguard/internal/executor"
	"github.com/kosmosec/assetguard/internal/executor/abstract"
	"github.com/kosmosec/assetguard/internal/logging"
	"github.com/kosmosec/assetguard/internal/model"
)

type Options struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	// Executors replaces the registered executor for the given task types.
	Executors map[api.TaskType]abstract.Executor
}

// Build processes every configured stylesheet and then every script. Per file
// failures are reported and do not stop the run; only a failure to prepare the
// output directory or to set up an executor is returned.
func Build(ctx context.Context, cfg api.Config, opts Options) error {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	logger := logging.Default(opts.Logger)
	r := reporter{stdout: opts.Stdout, stderr: opts.Stderr}

	r.start()

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return errors.Wrapf(err, "create output directory %s", cfg.OutputDir)
	}

	executors := make(map[api.TaskType]abstract.Executor)
	for _, t := range []api.TaskType{api.CSSType, api.JSType} {
		if e, found := opts.Executors[t]; found {
			executors[t] = e
			continue
		}
		e, err := executor.For(cfg, t, logger)
		if err != nil {
			return err
		}
		executors[t] = e
	}

	for _, task := range Plan(cfg) {
		if !Exists(task) {
			logger.Debug("skip missing input", "input", task.Input)
			continue
		}
		e := executors[task.Type]
		res := model.Result{Task: task}
		res.Err = e.Run(ctx, task)
		if !res.Failed() {
			res.InputSize, res.OutputSize = size(task.Input), size(task.Output)
		}
		logger.Debug("task done", "executor", e.GetName(), "input", task.Input,
			"before", res.InputSize, "after", res.OutputSize, "err", res.Err)
		r.result(res)
	}

	r.done()
	return nil
}

func size(path string) int {
	fi, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return int(fi.Size())
}
