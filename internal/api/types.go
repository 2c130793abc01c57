package api

type TaskType string

const (
	CSSType TaskType = "css"
	JSType  TaskType = "js"
)

// Engine selects who performs a step: the in-process implementation or the
// node command line tool.
type Engine string

const (
	NativeEngine   Engine = "native"
	ExternalEngine Engine = "external"
)

func (e Engine) OrDefault() Engine {
	if e == "" {
		return NativeEngine
	}
	return e
}
