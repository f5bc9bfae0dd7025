// Package kinetic is a scroll-driven motion system with an interactive
// physics playground, for [Ebitengine].
//
// Kinetic turns a page's scroll position into per-section progress, drives
// keyframed properties from that progress, eases the scroll with inertial
// smoothing, and hosts a rigid-body playground (via [Chipmunk2D]) that the
// pointer can grab and throw.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and
// frame loop for you:
//
//	frames := kinetic.NewFrameQueue()
//	stage := kinetic.NewStage(kinetic.DefaultLayout(), frames, kinetic.DefaultStageConfig())
//	stage.AddPresets(6)
//	kinetic.Run(stage, frames, kinetic.RunConfig{
//		Title: "Agency", Width: 1280, Height: 720,
//	})
//
// For full control, feed the stage raw input yourself and advance the
// [FrameQueue] once per frame:
//
//	stage.Scroll(y)
//	stage.PointerDown(x, y)
//	frames.Advance(1.0 / 60)
//	v := stage.Values(kinetic.SectionHero)["gallery.x"]
//
// # Progress and timelines
//
// A [Tracker] maps a container's position against the viewport to a
// progress in [0, 1], using "container viewport" edge pairs:
//
//	off, _ := kinetic.ParseOffsets("start end", "end start")
//	stage.Track("specialists", off)
//
// A [Timeline] binds named properties to [Keyframes]. Values are numbers,
// lengths with a unit (px, %, vh, vw, deg) or colors, and are blended
// linearly between breakpoints and clamped outside them:
//
//	tl := kinetic.NewTimeline("banner")
//	tl.BindStrings("opacity", []float64{0, 0.5}, "0", "1")
//	tl.BindStrings("fill", []float64{0, 1}, "#2B38F1", "#F4CE14")
//	stage.Bind(tl, "specialists")
//
// [Timeline.Morph] and [Timeline.Pan] build the composite animations used
// by the hero: a block that grows into a gallery, and a horizontal pan that
// starts once the morph has finished.
//
// # Playground
//
// The [World] is built the first time its container scrolls near the
// viewport. Bodies fall from above, collide with a ground and two walls,
// and can be dragged. Pressing a labelled body fires its actions once per
// press; register for them with [Stage.OnAction]. While a body is held the
// [Gate] is active and the page stops receiving pointer events.
//
// # Testing
//
// [Stage.InjectPress], [Stage.InjectDrag] and friends queue synthetic input
// that is consumed one event per frame. [LoadScript] reads the same steps
// from YAML.
//
// # Teardown
//
// [Stage.Teardown] removes every listener, cancels the pending frame,
// stops the world and resets the gate and cursor in one call.
//
// [Ebitengine]: https://ebitengine.org
// [Chipmunk2D]: https://github.com/jakecoffman/cp
package kinetic
