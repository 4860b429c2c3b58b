//go:build !nosdl

package main

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/joshvictor1024/mandelbrotset/pkg/colormap"
	"github.com/joshvictor1024/mandelbrotset/pkg/mandelbrot"
	"github.com/joshvictor1024/mandelbrotset/pkg/plot"
)

const (
	minWindowLength = 256
	maxWindowLength = 1024
)

func init() {
	// SDL video calls must stay on the main thread
	runtime.LockOSThread()
}

func sdlInit(windowTitle string, length int32) (*sdl.Window, *sdl.Renderer, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, nil, err
	}
	sdl.StopTextInput()
	// nearest neighbour when the texture is stretched
	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "0")

	window, err := sdl.CreateWindow(
		windowTitle,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		length, length, sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE,
	)
	if err != nil {
		sdl.Quit()
		return nil, nil, err
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, nil, err
	}

	return window, renderer, nil
}

func sdlClose(window *sdl.Window, renderer *sdl.Renderer) {
	renderer.Destroy()
	window.Destroy()
	sdl.Quit()
}

// showWindow opens a window with the heatmap stretched to fill it and
// blocks until the window is closed or Escape is pressed.
func showWindow(res *mandelbrot.Result, cm *colormap.Colormap, scale int) error {
	n := res.Size()
	length := int32(min(max(n*scale, minWindowLength), maxWindowLength))

	window, renderer, err := sdlInit(plot.Title(res), length)
	if err != nil {
		return fmt.Errorf("opening window: %w", err)
	}
	defer sdlClose(window, renderer)

	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_RGBA8888,
		sdl.TEXTUREACCESS_STREAMING, // only textures with TEXTUREACCESS_STREAMING can be locked
		int32(n),
		int32(n),
	)
	if err != nil {
		return fmt.Errorf("creating texture: %w", err)
	}
	defer texture.Destroy()

	if err := uploadHeatmap(texture, res, cm); err != nil {
		return err
	}

	for {
		present(renderer, texture)

		// WaitEvent must be on the same thread that did INIT_VIDEO
		e := sdl.WaitEvent()
		// WaitEvent returns nil on some error
		if e == nil {
			return fmt.Errorf("waiting for window events: %v", sdl.GetError())
		}

		switch t := e.(type) {
		case *sdl.QuitEvent:
			return nil
		case *sdl.KeyboardEvent:
			if t.Type == sdl.KEYDOWN && t.Keysym.Sym == sdl.K_ESCAPE {
				return nil
			}
		}
	}
}

func uploadHeatmap(texture *sdl.Texture, res *mandelbrot.Result, cm *colormap.Colormap) error {
	heat := plot.Heatmap(res, cm, 1)
	data, pitch, err := texture.Lock(nil)
	if err != nil {
		return fmt.Errorf("locking texture: %w", err)
	}
	defer texture.Unlock()

	b := heat.Bounds()
	for yi := 0; yi < b.Dy(); yi += 1 {
		for xi := 0; xi < b.Dx(); xi += 1 {
			c := heat.RGBAAt(xi, yi)
			// RGBA8888 is a packed 32-bit value, stored little endian
			pixel := yi*pitch + xi*4
			data[pixel+3] = c.R
			data[pixel+2] = c.G
			data[pixel+1] = c.B
			data[pixel+0] = 255
		}
	}
	return nil
}

func present(renderer *sdl.Renderer, texture *sdl.Texture) {
	renderer.SetDrawColor(255, 255, 255, 255)
	renderer.Clear()
	renderer.Copy(texture, nil, nil)
	renderer.Present()
}
