// Package collapse animates an element's height between a collapsed and an
// expanded state, including to and from `height: auto`.
//
// CSS cannot transition to or from `auto`, so the engine measures the
// element's scrollHeight and swaps pixel heights in and out of an inline
// style snapshot, staged over two animation frames, and settles once the
// browser reports the height transition ended.
//
// # Basic Usage
//
//	open := sig.NewSignal(false)
//	c := collapse.New(open, frames,
//		collapse.WithBaseHeight(sig.NewConstant(0.0)),
//		collapse.OnExpanded(func() { ... }),
//	)
//	c.Ref(element)
//
//	sig.NewRenderEffect(func() {
//		apply(c.Style(), c.State())
//	})
//
//	open.Write(true) // animates open
//
// The render layer applies Style() as the element's inline style and State()
// as its data-collapse attribute. In the browser, package dom does both.
//
// # Durations
//
// The engine sets the --vc-auto-duration custom property to a duration
// picked from the distance travelled (see AutoDuration). When the element
// declares no transition, DefaultTransition is used, which references it.
package collapse
