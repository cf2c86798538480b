//go:build android

package game

import (
	"encoding/binary"
	"fmt"
	"math"

	"golang.org/x/mobile/gl"

	"skyrings/internal/flight"
	"skyrings/internal/scene"
)

const meshVertSrcMobile = `
attribute vec3 aPos;
attribute vec3 aNormal;
uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProj;
varying vec3 vNormal;
varying float vDepth;
void main() {
  vec4 eye = uView * uModel * vec4(aPos, 1.0);
  vNormal = mat3(uModel[0].xyz, uModel[1].xyz, uModel[2].xyz) * aNormal;
  vDepth = -eye.z;
  gl_Position = uProj * eye;
}`

const meshFragSrcMobile = `
precision mediump float;
uniform vec3 uColor;
uniform vec3 uLightDir;
uniform float uAmbient;
uniform float uDirectional;
uniform vec3 uFogColor;
uniform float uFogNear;
uniform float uFogFar;
varying vec3 vNormal;
varying float vDepth;
void main() {
  vec3 n = normalize(vNormal);
  float diffuse = max(dot(n, normalize(uLightDir)), 0.0);
  vec3 col = uColor * min(uAmbient + uDirectional * diffuse, 1.0);
  float fog = smoothstep(uFogNear, uFogFar, vDepth);
  gl_FragColor = vec4(mix(col, uFogColor, fog), 1.0);
}`

const rectVertSrcMobile = `
attribute vec2 aPos;
uniform vec2 uResolution;
uniform float uSize;
void main() {
  vec2 ndc = (aPos / uResolution) * 2.0 - 1.0;
  ndc.y = -ndc.y;
  gl_Position = vec4(ndc, 0.0, 1.0);
  gl_PointSize = uSize;
}`

const rectFragSrcMobile = `
precision mediump float;
uniform vec4 uColor;
void main() {
  gl_FragColor = uColor;
}`

const glowFragSrcMobile = `
precision mediump float;
uniform vec4 uColor;
void main() {
  float dist = length(gl_PointCoord - vec2(0.5)) * 2.0;
  float falloff = clamp(1.0 - dist, 0.0, 1.0);
  falloff = falloff * falloff;
  gl_FragColor = vec4(uColor.rgb * falloff, 1.0);
}`

// Same pictures as the desktop Renderer on GLES2: no VAOs, so attributes
// are rebound per draw.
type mobileRenderer struct {
	meshes  [scene.MeshCount]scene.Mesh
	glReady bool

	meshProg     gl.Program
	meshVBOs     [scene.MeshCount]gl.Buffer
	aPos         gl.Attrib
	aNormal      gl.Attrib
	uModel       gl.Uniform
	uView        gl.Uniform
	uProj        gl.Uniform
	uColor       gl.Uniform
	uLightDir    gl.Uniform
	uAmbient     gl.Uniform
	uDirectional gl.Uniform
	uFogColor    gl.Uniform
	uFogNear     gl.Uniform
	uFogFar      gl.Uniform

	rectProg   gl.Program
	glowProg   gl.Program
	overlayVBO gl.Buffer
	rectAPos   gl.Attrib
	rectURes   gl.Uniform
	rectUSize  gl.Uniform
	rectUColor gl.Uniform
	glowAPos   gl.Attrib
	glowURes   gl.Uniform
	glowUSize  gl.Uniform
	glowUColor gl.Uniform
	rectBuf    []float32
}

func newMobileRenderer(rings flight.RingTuning) *mobileRenderer {
	return &mobileRenderer{
		meshes: scene.BuildMeshes(float32(rings.Radius), float32(rings.Tube)),
	}
}

func f32bytes(vals []float32) []byte {
	out := make([]byte, len(vals)*4)
	for i, v := range vals {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(v))
	}
	return out
}

func compileShader(glctx gl.Context, kind gl.Enum, src string) (gl.Shader, error) {
	sh := glctx.CreateShader(kind)
	glctx.ShaderSource(sh, src)
	glctx.CompileShader(sh)
	if glctx.GetShaderi(sh, gl.COMPILE_STATUS) == 0 {
		log := glctx.GetShaderInfoLog(sh)
		glctx.DeleteShader(sh)
		return gl.Shader{}, fmt.Errorf("shader compile failed: %s", log)
	}
	return sh, nil
}

func linkProgram(glctx gl.Context, vertSrc, fragSrc string) (gl.Program, error) {
	vs, err := compileShader(glctx, gl.VERTEX_SHADER, vertSrc)
	if err != nil {
		return gl.Program{}, err
	}
	fs, err := compileShader(glctx, gl.FRAGMENT_SHADER, fragSrc)
	if err != nil {
		glctx.DeleteShader(vs)
		return gl.Program{}, err
	}
	prog := glctx.CreateProgram()
	glctx.AttachShader(prog, vs)
	glctx.AttachShader(prog, fs)
	glctx.LinkProgram(prog)
	glctx.DeleteShader(vs)
	glctx.DeleteShader(fs)
	if glctx.GetProgrami(prog, gl.LINK_STATUS) == 0 {
		log := glctx.GetProgramInfoLog(prog)
		glctx.DeleteProgram(prog)
		return gl.Program{}, fmt.Errorf("program link failed: %s", log)
	}
	return prog, nil
}

func (r *mobileRenderer) initGL(glctx gl.Context) error {
	if r.glReady {
		return nil
	}
	var err error
	r.meshProg, err = linkProgram(glctx, meshVertSrcMobile, meshFragSrcMobile)
	if err != nil {
		return fmt.Errorf("mesh program: %w", err)
	}
	r.rectProg, err = linkProgram(glctx, rectVertSrcMobile, rectFragSrcMobile)
	if err != nil {
		glctx.DeleteProgram(r.meshProg)
		return fmt.Errorf("rect program: %w", err)
	}
	r.glowProg, err = linkProgram(glctx, rectVertSrcMobile, glowFragSrcMobile)
	if err != nil {
		glctx.DeleteProgram(r.meshProg)
		glctx.DeleteProgram(r.rectProg)
		return fmt.Errorf("glow program: %w", err)
	}

	for id, m := range r.meshes {
		b := glctx.CreateBuffer()
		glctx.BindBuffer(gl.ARRAY_BUFFER, b)
		glctx.BufferData(gl.ARRAY_BUFFER, f32bytes(m.Verts), gl.STATIC_DRAW)
		r.meshVBOs[id] = b
	}
	r.overlayVBO = glctx.CreateBuffer()

	p := r.meshProg
	r.aPos = glctx.GetAttribLocation(p, "aPos")
	r.aNormal = glctx.GetAttribLocation(p, "aNormal")
	r.uModel = glctx.GetUniformLocation(p, "uModel")
	r.uView = glctx.GetUniformLocation(p, "uView")
	r.uProj = glctx.GetUniformLocation(p, "uProj")
	r.uColor = glctx.GetUniformLocation(p, "uColor")
	r.uLightDir = glctx.GetUniformLocation(p, "uLightDir")
	r.uAmbient = glctx.GetUniformLocation(p, "uAmbient")
	r.uDirectional = glctx.GetUniformLocation(p, "uDirectional")
	r.uFogColor = glctx.GetUniformLocation(p, "uFogColor")
	r.uFogNear = glctx.GetUniformLocation(p, "uFogNear")
	r.uFogFar = glctx.GetUniformLocation(p, "uFogFar")

	r.rectAPos = glctx.GetAttribLocation(r.rectProg, "aPos")
	r.rectURes = glctx.GetUniformLocation(r.rectProg, "uResolution")
	r.rectUSize = glctx.GetUniformLocation(r.rectProg, "uSize")
	r.rectUColor = glctx.GetUniformLocation(r.rectProg, "uColor")
	r.glowAPos = glctx.GetAttribLocation(r.glowProg, "aPos")
	r.glowURes = glctx.GetUniformLocation(r.glowProg, "uResolution")
	r.glowUSize = glctx.GetUniformLocation(r.glowProg, "uSize")
	r.glowUColor = glctx.GetUniformLocation(r.glowProg, "uColor")

	r.glReady = true
	return nil
}

func (r *mobileRenderer) destroyGL(glctx gl.Context) {
	if !r.glReady {
		return
	}
	for _, b := range r.meshVBOs {
		glctx.DeleteBuffer(b)
	}
	glctx.DeleteBuffer(r.overlayVBO)
	glctx.DeleteProgram(r.meshProg)
	glctx.DeleteProgram(r.rectProg)
	glctx.DeleteProgram(r.glowProg)
	r.glReady = false
}

func (r *mobileRenderer) draw(glctx gl.Context, f *scene.Frame, hud *scene.HUD, fbW, fbH int, scale float32) {
	if !r.glReady {
		return
	}
	sr, sg, sb := scene.Palette.Sky.Floats()
	glctx.Viewport(0, 0, fbW, fbH)
	glctx.ClearColor(sr, sg, sb, 1)
	glctx.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	glctx.Enable(gl.DEPTH_TEST)
	glctx.UseProgram(r.meshProg)
	glctx.UniformMatrix4fv(r.uView, f.View[:])
	glctx.UniformMatrix4fv(r.uProj, f.Proj[:])
	glctx.Uniform3f(r.uLightDir, scene.LightDir[0], scene.LightDir[1], scene.LightDir[2])
	glctx.Uniform1f(r.uAmbient, scene.AmbientLight)
	glctx.Uniform1f(r.uDirectional, scene.DirectionalLight)
	glctx.Uniform3f(r.uFogColor, sr, sg, sb)
	glctx.Uniform1f(r.uFogNear, scene.FogNear)
	glctx.Uniform1f(r.uFogFar, scene.FogFar)
	glctx.EnableVertexAttribArray(r.aPos)
	glctx.EnableVertexAttribArray(r.aNormal)
	const stride = scene.VertexStride * 4
	for i := range f.Instances {
		in := &f.Instances[i]
		n := r.meshes[in.Mesh].VertexCount()
		if n == 0 {
			continue
		}
		glctx.BindBuffer(gl.ARRAY_BUFFER, r.meshVBOs[in.Mesh])
		glctx.VertexAttribPointer(r.aPos, 3, gl.FLOAT, false, stride, 0)
		glctx.VertexAttribPointer(r.aNormal, 3, gl.FLOAT, false, stride, 12)
		glctx.UniformMatrix4fv(r.uModel, in.Model[:])
		cr, cg, cb := in.Color.Floats()
		glctx.Uniform3f(r.uColor, cr, cg, cb)
		glctx.DrawArrays(gl.TRIANGLES, 0, n)
	}
	glctx.DisableVertexAttribArray(r.aPos)
	glctx.DisableVertexAttribArray(r.aNormal)
	glctx.Disable(gl.DEPTH_TEST)

	r.drawRects(glctx, hud.Score, scene.Palette.Text, fbW, fbH)
	r.drawRects(glctx, hud.Banner, scene.Palette.TextPaused, fbW, fbH)
	if f.MarkerVisible {
		r.drawMarker(glctx, f.MarkerX*scale, f.MarkerY*scale, scene.MarkerSize*scale, fbW, fbH)
	}
}

func (r *mobileRenderer) drawRects(glctx gl.Context, rects []scene.Rect, col scene.RGB, fbW, fbH int) {
	if len(rects) == 0 {
		return
	}
	buf := r.rectBuf[:0]
	for _, q := range rects {
		x0, y0, x1, y1 := q.X, q.Y, q.X+q.W, q.Y+q.H
		buf = append(buf,
			x0, y0, x1, y0, x1, y1,
			x0, y0, x1, y1, x0, y1,
		)
	}
	r.rectBuf = buf

	cr, cg, cb := col.Floats()
	glctx.UseProgram(r.rectProg)
	glctx.Uniform2f(r.rectURes, float32(fbW), float32(fbH))
	glctx.Uniform1f(r.rectUSize, 1)
	glctx.Uniform4f(r.rectUColor, cr, cg, cb, 1)
	glctx.BindBuffer(gl.ARRAY_BUFFER, r.overlayVBO)
	glctx.BufferData(gl.ARRAY_BUFFER, f32bytes(buf), gl.STREAM_DRAW)
	glctx.EnableVertexAttribArray(r.rectAPos)
	glctx.VertexAttribPointer(r.rectAPos, 2, gl.FLOAT, false, 8, 0)
	glctx.DrawArrays(gl.TRIANGLES, 0, len(buf)/2)
	glctx.DisableVertexAttribArray(r.rectAPos)
}

func (r *mobileRenderer) drawMarker(glctx gl.Context, x, y, size float32, fbW, fbH int) {
	mr, mg, mb := scene.Palette.Marker.Floats()
	glctx.UseProgram(r.glowProg)
	glctx.Uniform2f(r.glowURes, float32(fbW), float32(fbH))
	glctx.Uniform1f(r.glowUSize, size)
	glctx.Uniform4f(r.glowUColor, mr, mg, mb, 1)
	glctx.BindBuffer(gl.ARRAY_BUFFER, r.overlayVBO)
	glctx.BufferData(gl.ARRAY_BUFFER, f32bytes([]float32{x, y}), gl.STREAM_DRAW)
	glctx.EnableVertexAttribArray(r.glowAPos)
	glctx.VertexAttribPointer(r.glowAPos, 2, gl.FLOAT, false, 8, 0)
	glctx.Enable(gl.BLEND)
	glctx.BlendFunc(gl.ONE, gl.ONE)
	glctx.DrawArrays(gl.POINTS, 0, 1)
	glctx.Disable(gl.BLEND)
	glctx.DisableVertexAttribArray(r.glowAPos)
}
