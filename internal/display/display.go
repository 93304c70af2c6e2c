// Package display hosts the software framebuffer in a GLFW window,
// presenting it as a nearest-filtered fullscreen textured quad.
package display

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"mini-build/internal/render"
)

var vertexShader = `#version 330 core
layout(location = 0) in vec2 aPos;
layout(location = 1) in vec2 aUV;
out vec2 UV;
void main() {
	UV = aUV;
	gl_Position = vec4(aPos, 0.0, 1.0);
}
`

var fragmentShader = `#version 330 core
in vec2 UV;
uniform sampler2D frame;
out vec4 FragColor;
void main() {
	FragColor = texture(frame, UV);
}
`

// Fullscreen quad: position + uv, v flipped so frame row 0 lands at the
// top of the window.
var quadVertices = []float32{
	-1, -1, 0, 1,
	1, -1, 1, 1,
	1, 1, 1, 0,
	1, 1, 1, 0,
	-1, 1, 0, 0,
	-1, -1, 0, 1,
}

// Window owns the GLFW window and the GL objects that blit a Frame to it.
type Window struct {
	win     *glfw.Window
	program uint32
	vao     uint32
	vbo     uint32
	tex     uint32
	pix     []byte
}

// New initializes GLFW and opens a window scaled up from the fixed frame
// size. The caller must have locked the OS thread.
func New(title string, scale int) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("display: glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	win, err := glfw.CreateWindow(render.Width*scale, render.Height*scale, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("display: create window: %w", err)
	}
	win.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("display: gl init: %w", err)
	}
	glfw.SwapInterval(0) // Disable V-Sync; the demo loop has its own limiter

	w := &Window{win: win}
	if w.program, err = newProgram(vertexShader, fragmentShader); err != nil {
		glfw.Terminate()
		return nil, err
	}

	gl.GenVertexArrays(1, &w.vao)
	gl.BindVertexArray(w.vao)
	gl.GenBuffers(1, &w.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, w.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)
	stride := int32(4 * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(2*4))

	gl.GenTextures(1, &w.tex)
	gl.BindTexture(gl.TEXTURE_2D, w.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, render.Width, render.Height, 0,
		gl.RGBA, gl.UNSIGNED_BYTE, nil)

	return w, nil
}

// Glfw exposes the underlying window for input callbacks.
func (w *Window) Glfw() *glfw.Window {
	return w.win
}

// ShouldClose reports whether the user asked to close the window.
func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

// Close requests the window to close.
func (w *Window) Close() {
	w.win.SetShouldClose(true)
}

// Present uploads the frame, draws the quad, swaps buffers and pumps
// events.
func (w *Window) Present(f *render.Frame) {
	w.pix = f.RGBA(w.pix)

	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(w.program)
	gl.BindTexture(gl.TEXTURE_2D, w.tex)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, render.Width, render.Height,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(w.pix))
	gl.BindVertexArray(w.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)

	w.win.SwapBuffers()
	glfw.PollEvents()
}

// Destroy releases the window and terminates GLFW.
func (w *Window) Destroy() {
	w.win.Destroy()
	glfw.Terminate()
}

func newProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertex, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fragment, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		return 0, fmt.Errorf("display: failed to link program: %v", log)
	}
	gl.DeleteShader(vertex)
	gl.DeleteShader(fragment)
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

		return 0, fmt.Errorf("display: failed to compile shader: %v", log)
	}
	return shader, nil
}
