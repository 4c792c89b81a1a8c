package tools

import (
	"context"
	"fmt"
	"sort"
)

// ToolName identifies a tool the dispatcher knows how to run
type ToolName string

const (
	GetWeatherTool ToolName = "get_weather"
	GetTimeTool    ToolName = "get_time"
)

// ToolFunc runs a tool with the arguments sent by the model and returns a
// string payload for the tool-role message.
type ToolFunc func(args map[string]any) string

// UnknownToolError is returned when a requested tool has no registered function
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("tool %q not found", e.Name)
}

// Dispatcher maps tool names to their functions. The table is fixed once the
// dispatcher is built.
type Dispatcher struct {
	tools map[ToolName]ToolFunc
}

// NewDispatcher creates a dispatcher with the builtin tools
func NewDispatcher() *Dispatcher {
	return NewDispatcherWith(map[ToolName]ToolFunc{
		GetWeatherTool: GetWeather,
		GetTimeTool:    GetTime,
	})
}

// NewDispatcherWith creates a dispatcher over the given table
func NewDispatcherWith(table map[ToolName]ToolFunc) *Dispatcher {
	tools := make(map[ToolName]ToolFunc, len(table))
	for name, fn := range table {
		tools[name] = fn
	}
	return &Dispatcher{tools: tools}
}

// Lookup retrieves a tool function by name
func (d *Dispatcher) Lookup(name string) (ToolFunc, bool) {
	fn, exists := d.tools[ToolName(name)]
	return fn, exists
}

// Names returns the registered tool names in sorted order
func (d *Dispatcher) Names() []string {
	names := make([]string, 0, len(d.tools))
	for name := range d.tools {
		names = append(names, string(name))
	}
	sort.Strings(names)
	return names
}

// Dispatch runs the named tool and returns its result unchanged. Arguments
// are not checked against the catalog schema.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args map[string]any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fn, exists := d.Lookup(name)
	if !exists {
		return "", &UnknownToolError{Name: name}
	}

	return fn(args), nil
}
