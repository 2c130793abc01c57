package js

import (
	"context"
	"log/slog"

	"github.com/kosmosec/assetguard/internal/api"
	"github.com/kosmosec/assetguard/internal/binary"
	"github.com/kosmosec/assetguard/internal/executor/abstract"
	"github.com/kosmosec/assetguard/internal/logging"
	"github.com/kosmosec/assetguard/internal/model"
	"github.com/kosmosec/assetguard/internal/obfuscator"
)

// NodeObfuscator delegates to the javascript-obfuscator command line tool
// with the same option record.
type NodeObfuscator struct {
	Type   api.TaskType
	Name   string
	opts   obfuscator.Options
	logger *slog.Logger
}

func (n *NodeObfuscator) New(cfg api.Config, logger *slog.Logger) (abstract.Executor, error) {
	return &NodeObfuscator{
		Type:   api.JSType,
		Name:   "javascript-obfuscator",
		opts:   cfg.Obfuscator.Options,
		logger: logging.Default(logger).With("executor", "javascript-obfuscator"),
	}, nil
}

func (n *NodeObfuscator) Run(ctx context.Context, task model.Task) error {
	args := n.opts.CLIArgs(task.Input, task.Output)
	n.logger.Debug("running", "args", args)
	_, _, err := binary.Run(ctx, "javascript-obfuscator", args, nil)
	return err
}

func (n *NodeObfuscator) GetName() string {
	return n.Name
}

func (n *NodeObfuscator) GetType() api.TaskType {
	return n.Type
}
