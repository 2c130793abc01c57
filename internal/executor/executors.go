package executor

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/kosmosec/assetguard/internal/api"
	"github.com/kosmosec/assetguard/internal/executor/abstract"
	"github.com/kosmosec/assetguard/internal/executor/css"
	"github.com/kosmosec/assetguard/internal/executor/js"
)

type Creator interface {
	New(cfg api.Config, logger *slog.Logger) (abstract.Executor, error)
}

type Key struct {
	Type   api.TaskType
	Engine api.Engine
}

var Registered = map[Key]Creator{
	{api.CSSType, api.NativeEngine}:   &css.Minifier{},
	{api.CSSType, api.ExternalEngine}: &css.CleanCSS{},
	{api.JSType, api.NativeEngine}:    &js.Obfuscator{},
	{api.JSType, api.ExternalEngine}:  &js.NodeObfuscator{},
}

// For builds the executor configured for tasks of type t.
func For(cfg api.Config, t api.TaskType, logger *slog.Logger) (abstract.Executor, error) {
	engine := cfg.CSS.Engine
	if t == api.JSType {
		engine = cfg.Obfuscator.Engine
	}
	creator, found := Registered[Key{Type: t, Engine: engine.OrDefault()}]
	if !found {
		return nil, errors.Errorf("unsupported engine %q for %s tasks", engine, t)
	}
	return creator.New(cfg, logger)
}
