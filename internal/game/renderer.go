//go:build !android

package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"skyrings/internal/scene"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type meshBuffer struct {
	vao, vbo uint32
	count    int32
}

type Renderer struct {
	// Lit mesh program.
	meshProg     uint32
	uModel       int32
	uView        int32
	uProj        int32
	uColor       int32
	uLightDir    int32
	uAmbient     int32
	uDirectional int32
	uFogColor    int32
	uFogNear     int32
	uFogFar      int32
	meshes       [scene.MeshCount]meshBuffer

	// HUD rectangles.
	rectProg   uint32
	rectVAO    uint32
	rectVBO    uint32
	rectURes   int32
	rectUColor int32
	rectBuf    []float32

	// Drag marker glow.
	glowProg   uint32
	glowVAO    uint32
	glowVBO    uint32
	glowURes   int32
	glowUSize  int32
	glowUColor int32
}

// NewRenderer compiles the programs and uploads meshes once.
func NewRenderer(meshes [scene.MeshCount]scene.Mesh) (*Renderer, error) {
	meshProg, err := linkProgram(meshVertSrc, meshFragSrc)
	if err != nil {
		return nil, fmt.Errorf("mesh program: %w", err)
	}
	rectProg, err := linkProgram(rectVertSrc, rectFragSrc)
	if err != nil {
		gl.DeleteProgram(meshProg)
		return nil, fmt.Errorf("rect program: %w", err)
	}
	glowProg, err := linkProgram(glowVertSrc, glowFragSrc)
	if err != nil {
		gl.DeleteProgram(meshProg)
		gl.DeleteProgram(rectProg)
		return nil, fmt.Errorf("glow program: %w", err)
	}

	r := &Renderer{
		meshProg: meshProg,
		rectProg: rectProg,
		glowProg: glowProg,
	}

	// One static VAO/VBO per mesh: interleaved position + normal.
	stride := int32(scene.VertexStride * 4)
	for id, m := range meshes {
		var vao, vbo uint32
		gl.GenVertexArrays(1, &vao)
		gl.GenBuffers(1, &vbo)
		gl.BindVertexArray(vao)
		gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
		if len(m.Verts) > 0 {
			gl.BufferData(gl.ARRAY_BUFFER, len(m.Verts)*4, gl.Ptr(&m.Verts[0]), gl.STATIC_DRAW)
		}
		gl.EnableVertexAttribArray(0)
		gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
		gl.EnableVertexAttribArray(1)
		gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, glOffset(3*4))
		r.meshes[id] = meshBuffer{vao: vao, vbo: vbo, count: int32(m.VertexCount())}
	}

	gl.UseProgram(meshProg)
	r.uModel = uniform(meshProg, "uModel")
	r.uView = uniform(meshProg, "uView")
	r.uProj = uniform(meshProg, "uProj")
	r.uColor = uniform(meshProg, "uColor")
	r.uLightDir = uniform(meshProg, "uLightDir")
	r.uAmbient = uniform(meshProg, "uAmbient")
	r.uDirectional = uniform(meshProg, "uDirectional")
	r.uFogColor = uniform(meshProg, "uFogColor")
	r.uFogNear = uniform(meshProg, "uFogNear")
	r.uFogFar = uniform(meshProg, "uFogFar")
	gl.Uniform3f(r.uLightDir, scene.LightDir[0], scene.LightDir[1], scene.LightDir[2])
	gl.Uniform1f(r.uAmbient, scene.AmbientLight)
	gl.Uniform1f(r.uDirectional, scene.DirectionalLight)
	sr, sg, sb := scene.Palette.Sky.Floats()
	gl.Uniform3f(r.uFogColor, sr, sg, sb)
	gl.Uniform1f(r.uFogNear, scene.FogNear)
	gl.Uniform1f(r.uFogFar, scene.FogFar)

	// Rect VAO/VBO: streaming triangles, 2 floats per vertex.
	gl.GenVertexArrays(1, &r.rectVAO)
	gl.GenBuffers(1, &r.rectVBO)
	gl.BindVertexArray(r.rectVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.rectVBO)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))
	r.rectURes = uniform(rectProg, "uResolution")
	r.rectUColor = uniform(rectProg, "uColor")

	gl.GenVertexArrays(1, &r.glowVAO)
	gl.GenBuffers(1, &r.glowVBO)
	gl.BindVertexArray(r.glowVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.glowVBO)
	gl.BufferData(gl.ARRAY_BUFFER, 2*4, nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))
	r.glowURes = uniform(glowProg, "uResolution")
	r.glowUSize = uniform(glowProg, "uSize")
	r.glowUColor = uniform(glowProg, "uColor")

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for i := range r.meshes {
		m := &r.meshes[i]
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteVertexArrays(1, &m.vao)
	}
	for _, id := range []uint32{r.rectVBO, r.glowVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.rectVAO, r.glowVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.meshProg, r.rectProg, r.glowProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
}

// Draw renders the 3D scene, then the HUD and drag marker on top.
// scale converts marker coordinates to framebuffer pixels.
func (r *Renderer) Draw(f *scene.Frame, hud *scene.HUD, fbW, fbH int, scale float32) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	sr, sg, sb := scene.Palette.Sky.Floats()
	gl.ClearColor(sr, sg, sb, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.Enable(gl.DEPTH_TEST)
	gl.Disable(gl.BLEND)
	gl.UseProgram(r.meshProg)
	gl.UniformMatrix4fv(r.uView, 1, false, &f.View[0])
	gl.UniformMatrix4fv(r.uProj, 1, false, &f.Proj[0])
	for i := range f.Instances {
		in := &f.Instances[i]
		m := r.meshes[in.Mesh]
		if m.count == 0 {
			continue
		}
		gl.UniformMatrix4fv(r.uModel, 1, false, &in.Model[0])
		cr, cg, cb := in.Color.Floats()
		gl.Uniform3f(r.uColor, cr, cg, cb)
		gl.BindVertexArray(m.vao)
		gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	}

	gl.Disable(gl.DEPTH_TEST)
	r.drawRects(hud.Score, scene.Palette.Text, fbW, fbH)
	if len(hud.Banner) > 0 {
		r.drawRects(hud.Banner, scene.Palette.TextPaused, fbW, fbH)
	}
	if f.MarkerVisible {
		r.drawMarker(f.MarkerX*scale, f.MarkerY*scale, scene.MarkerSize*scale, fbW, fbH)
	}
	gl.BindVertexArray(0)
}

func (r *Renderer) drawRects(rects []scene.Rect, col scene.RGB, fbW, fbH int) {
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

	gl.UseProgram(r.rectProg)
	gl.Uniform2f(r.rectURes, float32(fbW), float32(fbH))
	cr, cg, cb := col.Floats()
	gl.Uniform4f(r.rectUColor, cr, cg, cb, 1)
	gl.BindVertexArray(r.rectVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.rectVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(buf)*4, gl.Ptr(&buf[0]), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(buf)/2))
}

func (r *Renderer) drawMarker(x, y, size float32, fbW, fbH int) {
	pos := [2]float32{x, y}
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE)
	gl.UseProgram(r.glowProg)
	gl.Uniform2f(r.glowURes, float32(fbW), float32(fbH))
	gl.Uniform1f(r.glowUSize, size)
	mr, mg, mb := scene.Palette.Marker.Floats()
	gl.Uniform3f(r.glowUColor, mr, mg, mb)
	gl.BindVertexArray(r.glowVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.glowVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(pos)*4, gl.Ptr(&pos[0]))
	gl.DrawArrays(gl.POINTS, 0, 1)
	gl.Disable(gl.BLEND)
}
