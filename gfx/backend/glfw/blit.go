package glfw

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/viperdos/gui/gfx"
)

const blitVertexShader = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;

out vec2 TexCoord;

void main() {
    gl_Position = vec4(aPos, 0.0, 1.0);
    TexCoord = aTexCoord;
}
` + "\x00"

const blitFragmentShader = `
#version 410 core
in vec2 TexCoord;

out vec4 FragColor;

uniform sampler2D frame;

void main() {
    FragColor = texture(frame, TexCoord);
}
` + "\x00"

// blitter uploads the software framebuffer into a texture and draws it
// as a fullscreen quad.
type blitter struct {
	shader   uint32
	vao, vbo uint32
	tex      uint32
	texW     int32
	texH     int32
}

func newBlitter(width, height int32) (*blitter, error) {
	b := &blitter{}

	var err error
	b.shader, err = createShaderProgram(blitVertexShader, blitFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("blit shader: %w", err)
	}

	// Fullscreen quad as a triangle strip; texture V flipped because the
	// framebuffer is top-down.
	quad := []float32{
		-1, -1, 0, 1,
		1, -1, 1, 1,
		-1, 1, 0, 0,
		1, 1, 1, 0,
	}
	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)
	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(quad), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 16, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 16, 8)
	gl.EnableVertexAttribArray(1)
	gl.BindVertexArray(0)

	gl.GenTextures(1, &b.tex)
	b.allocTexture(width, height)
	return b, nil
}

func (b *blitter) allocTexture(width, height int32) {
	gl.BindTexture(gl.TEXTURE_2D, b.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, width, height, 0,
		gl.RGBA, gl.UNSIGNED_BYTE, nil)
	b.texW, b.texH = width, height
}

func (b *blitter) resize(width, height int32) {
	if width == b.texW && height == b.texH {
		return
	}
	b.allocTexture(width, height)
}

func (b *blitter) blit(fb *gfx.Framebuffer) {
	w, h := fb.Width(), fb.Height()
	if w != b.texW || h != b.texH {
		b.allocTexture(w, h)
	}

	gl.Viewport(0, 0, w, h)
	gl.Disable(gl.BLEND)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.SCISSOR_TEST)

	gl.BindTexture(gl.TEXTURE_2D, b.tex)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, w, h,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(fb.Pixels()))

	gl.UseProgram(b.shader)
	gl.BindVertexArray(b.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

func (b *blitter) destroy() {
	gl.DeleteTextures(1, &b.tex)
	gl.DeleteBuffers(1, &b.vbo)
	gl.DeleteVertexArrays(1, &b.vao)
	gl.DeleteProgram(b.shader)
}

func createShaderProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vs, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("link program: %s", log)
	}
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", log)
	}
	return shader, nil
}
