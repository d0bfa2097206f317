package scripting

import (
	"context"
	"fmt"

	"github.com/dop251/goja"
)

type GojaEngine struct {
	vm *goja.Runtime
}

func NewEngine() *GojaEngine {
	vm := goja.New()
	return &GojaEngine{vm: vm}
}

func (e *GojaEngine) Execute(ctx context.Context, script string) (interface{}, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	done := make(chan struct{})
	defer close(done)
	defer e.vm.ClearInterrupt()

	go func() {
		select {
		case <-ctx.Done():
			e.vm.Interrupt(ctx.Err())
		case <-done:
		}
	}()

	val, err := e.vm.RunString(script)
	if err != nil {
		if interruptedErr, ok := err.(*goja.InterruptedError); ok {
			if cause := interruptedErr.Unwrap(); cause != nil {
				return nil, cause
			}
			return nil, context.Canceled
		}
		return nil, err
	}
	return val.Export(), nil
}

func (e *GojaEngine) BindFile(info FileInfo) error {
	obj := e.vm.NewObject()
	if err := obj.Set("name", info.Name); err != nil {
		return err
	}
	if err := obj.Set("base", info.Base); err != nil {
		return err
	}
	if err := obj.Set("ext", info.Ext); err != nil {
		return err
	}
	if err := obj.Set("dir", info.Dir); err != nil {
		return err
	}
	if err := obj.Set("index", info.Index); err != nil {
		return err
	}
	return e.vm.Set("file", obj)
}

// RunHook binds info and evaluates the hook script. A string result becomes
// the output name; an object result may set `name`, `skip`, and `options`.
// Null or undefined means no overrides.
func RunHook(ctx context.Context, eng Engine, script string, info FileInfo) (HookResult, error) {
	var res HookResult
	if err := eng.BindFile(info); err != nil {
		return res, fmt.Errorf("scripting: bind file: %w", err)
	}
	val, err := eng.Execute(ctx, script)
	if err != nil {
		return res, fmt.Errorf("scripting: hook for %s: %w", info.Name, err)
	}
	switch v := val.(type) {
	case nil:
	case string:
		res.OutputName = v
	case map[string]interface{}:
		if name, ok := v["name"].(string); ok {
			res.OutputName = name
		}
		if skip, ok := v["skip"].(bool); ok {
			res.Skip = skip
		}
		if opts, ok := v["options"].(map[string]interface{}); ok {
			res.Options = opts
		}
	default:
		return res, fmt.Errorf("scripting: hook for %s returned %T, want string or object", info.Name, val)
	}
	return res, nil
}
