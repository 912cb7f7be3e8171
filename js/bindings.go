package js

import (
	"github.com/dop251/goja"

	"github.com/AYColumbia/overlaykit/popup"
	"github.com/AYColumbia/overlaykit/selector"
)

// BindSelector exposes a selection controller to scripts under the
// given global name. The bound object mirrors the controller API:
// open/close/toggle, select, search, navigation, and read accessors.
func (r *Runtime) BindSelector(name string, c *selector.Controller) *goja.Object {
	vm := r.vm
	obj := vm.NewObject()

	obj.Set("open", func(goja.FunctionCall) goja.Value {
		c.Open()
		return goja.Undefined()
	})
	obj.Set("close", func(goja.FunctionCall) goja.Value {
		c.Close()
		return goja.Undefined()
	})
	obj.Set("toggle", func(goja.FunctionCall) goja.Value {
		c.Toggle()
		return goja.Undefined()
	})
	obj.Set("select", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) > 0 {
			c.Select(call.Arguments[0].Export())
		}
		return goja.Undefined()
	})
	obj.Set("search", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) > 0 {
			c.Search(call.Arguments[0].String())
		}
		return goja.Undefined()
	})
	obj.Set("navigateNext", func(goja.FunctionCall) goja.Value {
		c.NavigateNext()
		return goja.Undefined()
	})
	obj.Set("navigatePrev", func(goja.FunctionCall) goja.Value {
		c.NavigatePrev()
		return goja.Undefined()
	})
	obj.Set("confirmActive", func(goja.FunctionCall) goja.Value {
		c.ConfirmActive()
		return goja.Undefined()
	})
	obj.Set("handleKey", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			return vm.ToValue(false)
		}
		return vm.ToValue(c.HandleKey(call.Arguments[0].String()))
	})

	obj.Set("isOpen", func(goja.FunctionCall) goja.Value {
		return vm.ToValue(c.IsOpen())
	})
	obj.Set("activeIndex", func(goja.FunctionCall) goja.Value {
		return vm.ToValue(c.ActiveIndex())
	})
	obj.Set("selectedValue", func(goja.FunctionCall) goja.Value {
		return vm.ToValue(c.SelectedValue())
	})
	obj.Set("query", func(goja.FunctionCall) goja.Value {
		return vm.ToValue(c.Query())
	})
	obj.Set("filteredOptions", func(goja.FunctionCall) goja.Value {
		filtered := c.FilteredOptions()
		out := make([]any, len(filtered))
		for i, o := range filtered {
			entry := map[string]any{
				"value":    o.Value,
				"label":    o.Label,
				"disabled": o.Disabled,
			}
			if o.Description != "" {
				entry["description"] = o.Description
			}
			out[i] = entry
		}
		return vm.ToValue(out)
	})

	vm.Set(name, obj)
	return obj
}

// BindPopup exposes a popup controller to scripts under the given
// global name.
func (r *Runtime) BindPopup(name string, c *popup.Controller) *goja.Object {
	vm := r.vm
	obj := vm.NewObject()

	obj.Set("setOpen", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) > 0 {
			c.SetOpen(call.Arguments[0].ToBoolean())
		}
		return goja.Undefined()
	})
	obj.Set("updatePosition", func(goja.FunctionCall) goja.Value {
		c.UpdatePosition()
		return goja.Undefined()
	})
	obj.Set("style", func(goja.FunctionCall) goja.Value {
		return vm.ToValue(c.Style())
	})
	obj.Set("mode", func(goja.FunctionCall) goja.Value {
		return vm.ToValue(string(c.CurrentMode()))
	})
	obj.Set("state", func(goja.FunctionCall) goja.Value {
		return vm.ToValue(string(c.State()))
	})
	obj.Set("isMobile", func(goja.FunctionCall) goja.Value {
		return vm.ToValue(c.IsMobile())
	})
	obj.Set("isOpen", func(goja.FunctionCall) goja.Value {
		return vm.ToValue(c.IsOpen())
	})

	vm.Set(name, obj)
	return obj
}
