// Command glexecdemo opens a window and replays a short command stream
// through glexec: bind the swapchain, set a viewport, clear, upload a
// vertex buffer and draw a triangle every frame.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/glexec"
	"github.com/gogpu/glexec/gl46"
)

func init() {
	// GL and GLFW calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	var (
		width  = flag.Int("width", 800, "window width")
		height = flag.Int("height", 600, "window height")
		frames = flag.Int("frames", 0, "exit after this many frames (0 runs until closed)")
		debug  = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	if *debug {
		glexec.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := glfw.Init(); err != nil {
		log.Fatalf("glfw init: %v", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(*width, *height, "glexec", nil, nil)
	if err != nil {
		log.Fatalf("create window: %v", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	fns, err := gl46.Init()
	if err != nil {
		log.Fatalf("gl: %v", err)
	}
	log.Printf("OpenGL %s", fns.Version())

	ex := glexec.New(fns, glexec.WithExtensions(gl46.DetectExtensions(fns)))

	sc := newScene()

	for n := 0; !win.ShouldClose(); n++ {
		if *frames > 0 && n >= *frames {
			break
		}
		w, h := win.GetFramebufferSize()
		if err := sc.render(ex, swapchain{w: uint32(w), h: uint32(h)}); err != nil {
			log.Fatalf("frame %d: %v", n, err)
		}
		win.SwapBuffers()
		glfw.PollEvents()
	}
}

type scene struct {
	vertices *buffer
	pipeline *pipeline
	pool     *pool
}

// Interleaved position (float32x2) and color (unorm8x4).
const vertexStride = 12

func newScene() *scene {
	return &scene{
		vertices: &buffer{size: 3 * vertexStride},
		pipeline: newPipeline(),
		pool:     &pool{},
	}
}

func (s *scene) render(ex *glexec.Executor, fb swapchain) error {
	ex.Begin()
	defer ex.End()

	if err := ex.SetFramebuffer(fb); err != nil {
		return err
	}
	if err := ex.SetViewport(0, glexec.Viewport{Width: float32(fb.w), Height: float32(fb.h), MaxDepth: 1}); err != nil {
		return err
	}
	if err := ex.ClearColorTarget(0, gputypes.Color{R: 0.1, G: 0.1, B: 0.15, A: 1}); err != nil {
		return err
	}
	if err := ex.UpdateBuffer(s.vertices, 0, s.pool.stage(triangle())); err != nil {
		return err
	}
	if err := ex.SetPipeline(s.pipeline); err != nil {
		return err
	}
	if err := ex.SetVertexBuffer(0, s.vertices); err != nil {
		return err
	}
	return ex.Draw(3, 1, 0, 0)
}
