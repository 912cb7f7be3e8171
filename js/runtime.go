// Package js provides script embedding for the toolkit. It uses the
// goja JavaScript engine (pure Go ES5.1+ implementation) and exposes
// controller bindings so embedded scripts can drive popups and
// selection lists through the same cooperative event loop as Go code.
package js

import (
	"fmt"
	"sync"
	"time"

	"github.com/dop251/goja"

	"github.com/AYColumbia/overlaykit/schedule"
)

// Runtime wraps a goja runtime with console, timers, and controller
// bindings. Timers are backed by the toolkit's scheduling loop, so
// script-scheduled work interleaves with controller work in one
// cooperative queue.
type Runtime struct {
	vm      *goja.Runtime
	loop    *schedule.Loop
	mu      sync.Mutex
	errors  []error
	onError func(error)
}

// NewRuntime creates a script runtime on the given loop.
func NewRuntime(loop *schedule.Loop) *Runtime {
	r := &Runtime{
		vm:   goja.New(),
		loop: loop,
	}
	r.setupConsole()
	r.setupTimers()
	return r
}

// VM returns the underlying goja runtime.
func (r *Runtime) VM() *goja.Runtime {
	return r.vm
}

// Loop returns the scheduling loop backing the runtime's timers.
func (r *Runtime) Loop() *schedule.Loop {
	return r.loop
}

// SetOnError sets a callback for script errors.
func (r *Runtime) SetOnError(handler func(error)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onError = handler
}

// Errors returns all script errors recorded so far.
func (r *Runtime) Errors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]error, len(r.errors))
	copy(out, r.errors)
	return out
}

// Execute runs JavaScript code and returns the result.
func (r *Runtime) Execute(code string) (result goja.Value, err error) {
	// Recover from panics in the goja parser/runtime.
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("script execution panic: %v", p)
			r.recordError(err)
		}
	}()

	result, err = r.vm.RunString(code)
	if err != nil {
		r.recordError(err)
	}
	return result, err
}

func (r *Runtime) recordError(err error) {
	r.mu.Lock()
	r.errors = append(r.errors, err)
	handler := r.onError
	r.mu.Unlock()

	if handler != nil {
		handler(err)
	}
}

// setupConsole creates the console object with log, warn, and error.
func (r *Runtime) setupConsole() {
	console := r.vm.NewObject()

	logTo := func(prefix string) func(call goja.FunctionCall) goja.Value {
		return func(call goja.FunctionCall) goja.Value {
			fmt.Println(prefix + formatArgs(call.Arguments))
			return goja.Undefined()
		}
	}

	console.Set("log", logTo(""))
	console.Set("warn", logTo("[warn] "))
	console.Set("error", logTo("[error] "))

	r.vm.Set("console", console)
}

// formatArgs renders console arguments space-separated.
func formatArgs(args []goja.Value) string {
	var out string
	for i, a := range args {
		if i > 0 {
			out += " "
		}
		out += a.String()
	}
	return out
}

// setupTimers installs setTimeout/setInterval/clearTimeout backed by
// the scheduling loop.
func (r *Runtime) setupTimers() {
	r.vm.Set("setTimeout", func(call goja.FunctionCall) goja.Value {
		fn, delay, ok := timerArgs(call)
		if !ok {
			return goja.Undefined()
		}
		id := r.loop.SetTimeout(func() {
			if _, err := fn(goja.Undefined()); err != nil {
				r.recordError(err)
			}
		}, delay)
		return r.vm.ToValue(id)
	})

	r.vm.Set("setInterval", func(call goja.FunctionCall) goja.Value {
		fn, interval, ok := timerArgs(call)
		if !ok {
			return goja.Undefined()
		}
		id := r.loop.SetInterval(func() {
			if _, err := fn(goja.Undefined()); err != nil {
				r.recordError(err)
			}
		}, interval)
		return r.vm.ToValue(id)
	})

	clearTimer := func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) > 0 {
			r.loop.ClearTimer(int(call.Arguments[0].ToInteger()))
		}
		return goja.Undefined()
	}
	r.vm.Set("clearTimeout", clearTimer)
	r.vm.Set("clearInterval", clearTimer)

	r.vm.Set("queueMicrotask", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			return goja.Undefined()
		}
		fn, ok := goja.AssertFunction(call.Arguments[0])
		if !ok {
			return goja.Undefined()
		}
		r.loop.QueueMicrotask(func() {
			if _, err := fn(goja.Undefined()); err != nil {
				r.recordError(err)
			}
		})
		return goja.Undefined()
	})

	r.vm.Set("requestAnimationFrame", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			return goja.Undefined()
		}
		fn, ok := goja.AssertFunction(call.Arguments[0])
		if !ok {
			return goja.Undefined()
		}
		r.loop.RequestFrame(func() {
			if _, err := fn(goja.Undefined()); err != nil {
				r.recordError(err)
			}
		})
		return goja.Undefined()
	})
}

// timerArgs extracts the callback and delay from a timer call.
func timerArgs(call goja.FunctionCall) (goja.Callable, time.Duration, bool) {
	if len(call.Arguments) == 0 {
		return nil, 0, false
	}
	fn, ok := goja.AssertFunction(call.Arguments[0])
	if !ok {
		return nil, 0, false
	}
	var delay time.Duration
	if len(call.Arguments) > 1 {
		delay = time.Duration(call.Arguments[1].ToInteger()) * time.Millisecond
	}
	return fn, delay, true
}
