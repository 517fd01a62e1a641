package main

import (
	"fmt"
	"log"
	"runtime"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"mouselook/internal/look"
)

const (
	width  = 800
	height = 600
	title  = "Mouse Look"

	envPrefix = "LOOK_"
)

var (
	vertexShaderSource = `
		#version 410
		in vec3 vp;
		uniform mat4 mvp;
		void main() {
			gl_Position = mvp * vec4(vp, 1.0);
		}
	` + "\x00"

	fragmentShaderSource = `
		#version 410
		uniform vec4 colour;
		out vec4 frag_colour;
		void main() {
			frag_colour = colour;
		}
	` + "\x00"
)

var (
	cubeVertices = []float32{
		// Front face
		-0.5, -0.5, 0.5,
		0.5, -0.5, 0.5,
		0.5, 0.5, 0.5,
		-0.5, 0.5, 0.5,
		// Back face
		-0.5, -0.5, -0.5,
		0.5, -0.5, -0.5,
		0.5, 0.5, -0.5,
		-0.5, 0.5, -0.5,
	}

	// Indices for drawing cube edges (wireframe)
	cubeIndices = []uint32{
		0, 1, 1, 2, 2, 3, 3, 0, // Front face
		4, 5, 5, 6, 6, 7, 7, 4, // Back face
		0, 4, 1, 5, 2, 6, 3, 7, // Connecting lines
	}
)

var (
	sceneColour = mgl32.Vec4{0.55, 0.6, 0.7, 1}
	northColour = mgl32.Vec4{0.9, 0.25, 0.2, 1}
	bodyColour  = mgl32.Vec4{1, 0.65, 0.1, 1}

	// bodyOffset places the yaw-only body below the eye.
	bodyOffset = mgl32.Vec3{0, -1.5, 0}
)

// scene is a ring of wireframe cubes around the viewer plus one above and
// one below, so every direction the camera can face has something in it.
// The first cube sits straight ahead of yaw 0.
var scene = []mgl32.Vec3{
	{0, 0, -6}, {4, 0, -4}, {6, 0, 0}, {4, 0, 4},
	{0, 0, 6}, {-4, 0, 4}, {-6, 0, 0}, {-4, 0, -4},
	{0, 6, 0}, {0, -6, 0},
}

// mouse reports cursor movement since the previous call.
type mouse struct {
	window *glfw.Window
	lastX  float64
	lastY  float64
	primed bool
}

func (m *mouse) delta() (dx, dy float64) {
	x, y := m.window.GetCursorPos()
	if !m.primed {
		m.lastX, m.lastY, m.primed = x, y, true
		return 0, 0
	}
	dx, dy = x-m.lastX, y-m.lastY
	m.lastX, m.lastY = x, y
	return dx, dy
}

func main() {
	runtime.LockOSThread()

	cfg, err := look.LoadConfig(envPrefix)
	if err != nil {
		log.Fatalln("failed to load config:", err)
	}
	controller := look.New(cfg)
	for _, w := range controller.Warnings() {
		log.Println("warning:", w)
	}

	if err := glfw.Init(); err != nil {
		log.Fatalln("failed to initialize glfw:", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		panic(err)
	}
	window.MakeContextCurrent()

	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	if glfw.RawMouseMotionSupported() {
		window.SetInputMode(glfw.RawMouseMotion, glfw.True)
	}
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	if err := gl.Init(); err != nil {
		panic(err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	fmt.Println("OpenGL version", version)

	program, err := newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		panic(err)
	}
	gl.UseProgram(program)

	mvpUniform := gl.GetUniformLocation(program, gl.Str("mvp\x00"))
	colourUniform := gl.GetUniformLocation(program, gl.Str("colour\x00"))

	// VAO / VBO / EBO
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(cubeVertices)*4, gl.Ptr(cubeVertices), gl.STATIC_DRAW)

	var ebo uint32
	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(cubeIndices)*4, gl.Ptr(cubeIndices), gl.STATIC_DRAW)

	vertAttrib := uint32(gl.GetAttribLocation(program, gl.Str("vp\x00")))
	gl.EnableVertexAttribArray(vertAttrib)
	gl.VertexAttribPointer(vertAttrib, 3, gl.FLOAT, false, 0, gl.PtrOffset(0))

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.1, 0.1, 0.1, 1.0)

	projection := mgl32.Perspective(mgl32.DegToRad(60.0), float32(width)/float32(height), 0.1, 100.0)
	eye := mgl32.Vec3{0, 0, 0}
	input := &mouse{window: window}

	lastFrameTime := glfw.GetTime()
	lastFpsTime := glfw.GetTime()
	frameCount := 0

	for !window.ShouldClose() {
		currentTime := glfw.GetTime()
		deltaTime := currentTime - lastFrameTime
		lastFrameTime = currentTime

		frameCount++
		if currentTime-lastFpsTime >= 1.0 {
			o := controller.Orientation()
			window.SetTitle(fmt.Sprintf("%s | FPS: %d | yaw %.1f pitch %.1f", title, frameCount, o.Yaw, o.Pitch))
			frameCount = 0
			lastFpsTime = currentTime
		}

		// Screen y grows downward; pitch grows upward.
		dx, dy := input.delta()
		controller.Update(dx, -dy, deltaTime)
		orientation := controller.Orientation()
		view := projection.Mul4(orientation.ViewMatrix(eye))

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		gl.UseProgram(program)
		gl.BindVertexArray(vao)

		draw := func(model mgl32.Mat4, colour mgl32.Vec4) {
			mvp := view.Mul4(model)
			gl.UniformMatrix4fv(mvpUniform, 1, false, &mvp[0])
			gl.Uniform4fv(colourUniform, 1, &colour[0])
			gl.DrawElements(gl.LINES, int32(len(cubeIndices)), gl.UNSIGNED_INT, gl.PtrOffset(0))
		}

		for i, pos := range scene {
			colour := sceneColour
			if i == 0 {
				colour = northColour
			}
			draw(mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()), colour)
		}

		// The body turns with yaw only; look down to see it.
		pos := eye.Add(bodyOffset)
		body := mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()).
			Mul4(mat32(orientation.Body().Quat().Mat4())).
			Mul4(mgl32.Scale3D(0.6, 0.3, 1.2))
		draw(body, bodyColour)

		window.SwapBuffers()
		glfw.PollEvents()
	}
}

func mat32(m mgl64.Mat4) mgl32.Mat4 {
	var out mgl32.Mat4
	for i, v := range m {
		out[i] = float32(v)
	}
	return out
}

func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}

	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		return 0, fmt.Errorf("failed to link program: %v", log)
	}

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
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

		return 0, fmt.Errorf("failed to compile %v: %v", source, log)
	}

	return shader, nil
}
