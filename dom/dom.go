//go:build js && wasm

// Package dom connects a collapse engine to the browser DOM.
package dom

import (
	"syscall/js"

	"github.com/AnatoleLucet/collapse"
)

// Frames schedules callbacks with window.requestAnimationFrame.
type Frames struct{}

func (Frames) Request(fn func()) {
	var cb js.Func
	cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		cb.Release()
		fn()
		return nil
	})

	js.Global().Call("requestAnimationFrame", cb)
}

// Element wraps a DOM node as a collapse.Element.
type Element struct {
	node js.Value

	// properties set by the last ApplyStyle call
	applied map[string]string
}

func NewElement(node js.Value) *Element {
	return &Element{node: node}
}

func (e *Element) Node() js.Value {
	return e.node
}

func (e *Element) ScrollHeight() float64 {
	return e.node.Get("scrollHeight").Float()
}

func (e *Element) InlineHeight() string {
	return e.node.Get("style").Get("height").String()
}

func (e *Element) ComputedTransition() string {
	return js.Global().Call("getComputedStyle", e.node).Get("transition").String()
}

func (e *Element) PrefersReducedMotion() bool {
	matchMedia := js.Global().Get("matchMedia")
	if matchMedia.IsUndefined() {
		return false
	}

	return js.Global().Call("matchMedia", "(prefers-reduced-motion: reduce)").Get("matches").Bool()
}

func (e *Element) OnTransitionEnd(fn func(collapse.TransitionEvent)) func() {
	listener := js.FuncOf(func(this js.Value, args []js.Value) any {
		ev := args[0]

		// transitionend bubbles, children get their own handle
		var target collapse.Element = e
		if node := ev.Get("target"); !node.Equal(e.node) {
			target = NewElement(node)
		}

		fn(collapse.TransitionEvent{
			Target:       target,
			PropertyName: ev.Get("propertyName").String(),
			ElapsedTime:  ev.Get("elapsedTime").Float(),
		})
		return nil
	})

	e.node.Call("addEventListener", "transitionend", listener)

	return func() {
		e.node.Call("removeEventListener", "transitionend", listener)
		listener.Release()
	}
}

// ApplyStyle writes s to the node's inline style. Properties set by a
// previous call and absent from s are removed; other inline properties are
// left alone.
func (e *Element) ApplyStyle(s collapse.Style) {
	next := s.Map()
	style := e.node.Get("style")

	for prop := range e.applied {
		if _, ok := next[prop]; !ok {
			style.Call("removeProperty", prop)
		}
	}

	for prop, value := range next {
		style.Call("setProperty", prop, value)
	}

	e.applied = next
}
