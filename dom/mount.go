//go:build js && wasm

package dom

import (
	"fmt"
	"syscall/js"

	"github.com/AnatoleLucet/collapse"
	"github.com/AnatoleLucet/collapse/sig"
)

// Mount creates a tag element under parent and binds it to c: the style and
// data-collapse attribute follow the engine, and render, if not nil, is
// called with the current state to produce the element's content.
//
// The returned func detaches the element, stops the bindings and removes
// the node.
func Mount(parent js.Value, c *collapse.Collapse, tag string, attrs map[string]any, render func(collapse.State) js.Value) (unmount func()) {
	node := js.Global().Get("document").Call("createElement", tag)
	for name, value := range attrs {
		node.Call("setAttribute", name, fmt.Sprint(value))
	}

	el := NewElement(node)

	owner := sig.NewOwner()
	owner.Run(func() error {
		sig.NewRenderEffect(func() {
			el.ApplyStyle(c.Style())
			node.Call("setAttribute", "data-collapse", c.State().String())
		})

		if render != nil {
			sig.NewRenderEffect(func() {
				node.Call("replaceChildren", render(c.State()))
			})
		}

		return nil
	})

	parent.Call("appendChild", node)
	c.Ref(el)

	return func() {
		c.Ref(nil)
		owner.Dispose()
		node.Call("remove")
	}
}
