package graphics

import (
	"fmt"

	"github.com/richinsley/gocuboid/matrix"
	"github.com/richinsley/gocuboid/mesh"
	"github.com/richinsley/gocuboid/shader"
)

// Renderer is the GPU side of a frame. Implementations own the GL context,
// buffers and program; this package only decides what to hand them.
type Renderer interface {
	UploadVertices(data []float32, stride int)
	UploadIndices(indices []uint32)
	// SetMatrix sets a mat4 uniform. transpose is true when m is row-major.
	SetMatrix(name string, m [16]float32, transpose bool)
	EnablePrimitiveRestart(index uint32)
	DrawStrip(count int)
}

// Frame is everything needed to draw one indexed triangle strip.
type Frame struct {
	Projection matrix.Mat4
	View       matrix.Mat4
	Model      matrix.Mat4
	Vertices   []float32
	Indices    []uint32
}

// ModelView returns View·Model.
func (f Frame) ModelView() matrix.Mat4 {
	return f.View.Mul(f.Model)
}

// Validate checks the buffers against the vertex layout.
func (f Frame) Validate() error {
	if len(f.Vertices) == 0 || len(f.Indices) == 0 {
		return fmt.Errorf("empty frame (%d floats, %d indices): %w", len(f.Vertices), len(f.Indices), mesh.ErrInvalidArgument)
	}
	if len(f.Vertices)%mesh.FloatsPerVertex != 0 {
		return fmt.Errorf("vertex data length %d is not a multiple of %d: %w", len(f.Vertices), mesh.FloatsPerVertex, mesh.ErrInvalidArgument)
	}

	count := uint32(len(f.Vertices) / mesh.FloatsPerVertex)
	for i, idx := range f.Indices {
		if idx != mesh.RestartIndex && idx >= count {
			return fmt.Errorf("index %d = %d out of range for %d vertices: %w", i, idx, count, mesh.ErrInvalidArgument)
		}
	}
	return nil
}

func (f Frame) usesRestart() bool {
	for _, idx := range f.Indices {
		if idx == mesh.RestartIndex {
			return true
		}
	}
	return false
}

// Submit uploads f and draws it. Nothing reaches r if f is invalid.
func Submit(r Renderer, f Frame) error {
	if err := f.Validate(); err != nil {
		return fmt.Errorf("submit: %w", err)
	}

	r.UploadVertices(f.Vertices, mesh.Stride)
	r.UploadIndices(f.Indices)
	if f.usesRestart() {
		r.EnablePrimitiveRestart(mesh.RestartIndex)
	}
	r.SetMatrix(shader.ProjectionUniform, f.Projection.RowMajor(), true)
	r.SetMatrix(shader.ModelViewUniform, f.ModelView().RowMajor(), true)
	r.DrawStrip(len(f.Indices))
	return nil
}
