//go:build js

package ui

import "syscall/js"

// initJS exposes helper functions for browser-based tests.
func (g *Game) initJS() {
	js.Global().Set("advancePhase", js.FuncOf(func(js.Value, []js.Value) any {
		g.store.Phase.Advance()
		return nil
	}))
	js.Global().Set("retreatPhase", js.FuncOf(func(js.Value, []js.Value) any {
		g.store.Phase.Retreat()
		return nil
	}))
	js.Global().Set("currentPhase", js.FuncOf(func(js.Value, []js.Value) any {
		return js.ValueOf(g.store.Phase.Phase().String())
	}))
}

// reportStateJS publishes the wizard state for tests.
func (g *Game) reportStateJS() {
	js.Global().Set("__phase", js.ValueOf(g.store.Phase.Phase().String()))
	js.Global().Set("__animating", js.ValueOf(g.store.Animating()))
}
