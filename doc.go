// Package glexec replays an abstract command stream against an OpenGL 4.6
// core context.
//
// # Overview
//
// An Executor mirrors the global state of one GL context in software: the
// bound framebuffer, the active graphics or compute pipeline, vertex buffers,
// enabled vertex attribute slots and their divisors, viewports, the index
// element type and the resource sets bound at every slot. Commands are
// issued one at a time and translated into native calls immediately.
//
//	gl, _ := gl46.Init()
//	ex := glexec.New(gl, glexec.WithExtensions(gl46.DetectExtensions(gl)))
//
//	ex.Begin()
//	_ = ex.SetFramebuffer(swapchain)
//	_ = ex.SetViewport(0, glexec.Viewport{Width: 800, Height: 600, MaxDepth: 1})
//	_ = ex.ClearColorTarget(0, gputypes.Color{A: 1})
//	_ = ex.SetPipeline(pipeline)
//	_ = ex.SetVertexBuffer(0, vertices)
//	_ = ex.Draw(3, 1, 0, 0)
//	ex.End()
//
// # Collaborators
//
// Pipelines, buffers, textures, samplers, resource sets and framebuffers are
// created and owned by the caller. The executor only reads their metadata
// and calls EnsureResourcesCreated right before first use. Texture and
// sampler units are assigned through a UnitManager; staged upload memory is
// borrowed as a StagingBlock and always returned to its pool.
//
// # Errors
//
// GetError is checked after every native call. A failing call stops the
// command and is reported as a *GLError wrapping ErrNativeCall; the context
// should be considered lost. Invalid input (an unknown framebuffer variant,
// a resource whose type does not match its layout kind, a slot out of range)
// is reported with the sentinels in errors.go before any native call for the
// offending element is made.
//
// # Threading
//
// An Executor is bound to the thread that owns the GL context and is not
// safe for concurrent use.
package glexec
