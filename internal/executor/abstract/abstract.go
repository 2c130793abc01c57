package abstract

import (
	"context"

	"github.com/kosmosec/assetguard/internal/api"
	"github.com/kosmosec/assetguard/internal/model"
)

// Executor performs one build step for one file task. Run must write
// task.Output or return an error; it never prints.
type Executor interface {
	Run(ctx context.Context, task model.Task) error
	GetName() string
	GetType() api.TaskType
}
