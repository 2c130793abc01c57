package css

import (
	"context"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/tdewolff/minify/v2"
	cssmin "github.com/tdewolff/minify/v2/css"

	"github.com/kosmosec/assetguard/internal/api"
	"github.com/kosmosec/assetguard/internal/executor/abstract"
	"github.com/kosmosec/assetguard/internal/logging"
	"github.com/kosmosec/assetguard/internal/model"
)

const mimeType = "text/css"

// Minifier minifies stylesheets in process with every optimisation on.
type Minifier struct {
	Type   api.TaskType
	Name   string
	m      *minify.M
	logger *slog.Logger
}

func (c *Minifier) New(cfg api.Config, logger *slog.Logger) (abstract.Executor, error) {
	m := minify.New()
	m.AddFunc(mimeType, cssmin.Minify)
	return &Minifier{
		Type:   api.CSSType,
		Name:   "css-minify",
		m:      m,
		logger: logging.Default(logger).With("executor", "css-minify"),
	}, nil
}

func (c *Minifier) Run(ctx context.Context, task model.Task) error {
	src, err := os.ReadFile(task.Input)
	if err != nil {
		return errors.Wrapf(err, "read %s", task.Input)
	}
	out, err := c.m.Bytes(mimeType, src)
	if err != nil {
		return errors.Wrap(err, "minify css")
	}
	if err := os.WriteFile(task.Output, out, 0644); err != nil {
		return errors.Wrapf(err, "write %s", task.Output)
	}
	c.logger.Debug("minified", "input", task.Input, "before", len(src), "after", len(out))
	return nil
}

func (c *Minifier) GetName() string {
	return c.Name
}

func (c *Minifier) GetType() api.TaskType {
	return c.Type
}
