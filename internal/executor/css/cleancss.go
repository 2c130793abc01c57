package css

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kosmosec/assetguard/internal/api"
	"github.com/kosmosec/assetguard/internal/binary"
	"github.com/kosmosec/assetguard/internal/executor/abstract"
	"github.com/kosmosec/assetguard/internal/logging"
	"github.com/kosmosec/assetguard/internal/model"
)

// CleanCSS delegates to the clean-css command line tool.
type CleanCSS struct {
	Type   api.TaskType
	Name   string
	level  int
	logger *slog.Logger
}

func (c *CleanCSS) New(cfg api.Config, logger *slog.Logger) (abstract.Executor, error) {
	return &CleanCSS{
		Type:   api.CSSType,
		Name:   "cleancss",
		level:  cfg.CSS.Level,
		logger: logging.Default(logger).With("executor", "cleancss"),
	}, nil
}

func (c *CleanCSS) args(task model.Task) []string {
	return []string{fmt.Sprintf("-O%d", c.level), "-o", task.Output, task.Input}
}

func (c *CleanCSS) Run(ctx context.Context, task model.Task) error {
	args := c.args(task)
	c.logger.Debug("running", "args", args)
	_, _, err := binary.Run(ctx, "cleancss", args, nil)
	return err
}

func (c *CleanCSS) GetName() string {
	return c.Name
}

func (c *CleanCSS) GetType() api.TaskType {
	return c.Type
}
