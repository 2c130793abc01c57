package js

import (
	"context"
	"log/slog"
	"os"

	"github.com/pkg/errors"

	"github.com/kosmosec/assetguard/internal/api"
	"github.com/kosmosec/assetguard/internal/executor/abstract"
	"github.com/kosmosec/assetguard/internal/logging"
	"github.com/kosmosec/assetguard/internal/model"
	"github.com/kosmosec/assetguard/internal/obfuscator"
)

// Obfuscator protects scripts with the in-process obfuscation engine.
type Obfuscator struct {
	Type   api.TaskType
	Name   string
	engine *obfuscator.Obfuscator
	logger *slog.Logger
}

func (o *Obfuscator) New(cfg api.Config, logger *slog.Logger) (abstract.Executor, error) {
	logger = logging.Default(logger)
	engine, err := obfuscator.New(cfg.Obfuscator.Options, logger)
	if err != nil {
		return nil, errors.Wrap(err, "obfuscator options")
	}
	return &Obfuscator{
		Type:   api.JSType,
		Name:   "js-obfuscate",
		engine: engine,
		logger: logger.With("executor", "js-obfuscate"),
	}, nil
}

func (o *Obfuscator) Run(ctx context.Context, task model.Task) error {
	src, err := os.ReadFile(task.Input)
	if err != nil {
		return errors.Wrapf(err, "read %s", task.Input)
	}
	out, err := o.engine.Obfuscate(string(src))
	if err != nil {
		return err
	}
	if err := os.WriteFile(task.Output, []byte(out), 0644); err != nil {
		return errors.Wrapf(err, "write %s", task.Output)
	}
	o.logger.Debug("obfuscated", "input", task.Input, "before", len(src), "after", len(out))
	return nil
}

func (o *Obfuscator) GetName() string {
	return o.Name
}

func (o *Obfuscator) GetType() api.TaskType {
	return o.Type
}
