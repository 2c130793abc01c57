package model

import (
	"github.com/kosmosec/assetguard/internal/api"
)

// Task is one (input, output) pair derived from the configuration.
type Task struct {
	Type   api.TaskType
	Name   string
	Input  string
	Output string
}

type Result struct {
	Task       Task
	Err        error
	InputSize  int
	OutputSize int
}

func (r Result) Failed() bool {
	return r.Err != nil
}
