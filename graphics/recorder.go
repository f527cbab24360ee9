package graphics

// Call is one recorded Renderer method invocation.
type Call struct {
	Op        string       `yaml:"op"`
	Name      string       `yaml:"name,omitempty"`
	Stride    int          `yaml:"stride,omitempty"`
	Count     int          `yaml:"count,omitempty"`
	Restart   uint32       `yaml:"restart,omitempty"`
	Transpose bool         `yaml:"transpose,omitempty"`
	Floats    []float32    `yaml:"floats,omitempty,flow"`
	Indices   []uint32     `yaml:"indices,omitempty,flow"`
	Matrix    *[16]float32 `yaml:"matrix,omitempty,flow"`
}

// Recorder is a Renderer that keeps every call in order. It is not safe for
// concurrent use.
type Recorder struct {
	Calls []Call
}

func (r *Recorder) UploadVertices(data []float32, stride int) {
	r.Calls = append(r.Calls, Call{Op: "vertices", Stride: stride, Floats: append([]float32(nil), data...)})
}

func (r *Recorder) UploadIndices(indices []uint32) {
	r.Calls = append(r.Calls, Call{Op: "indices", Indices: append([]uint32(nil), indices...)})
}

func (r *Recorder) SetMatrix(name string, m [16]float32, transpose bool) {
	r.Calls = append(r.Calls, Call{Op: "uniform", Name: name, Matrix: &m, Transpose: transpose})
}

func (r *Recorder) EnablePrimitiveRestart(index uint32) {
	r.Calls = append(r.Calls, Call{Op: "restart", Restart: index})
}

func (r *Recorder) DrawStrip(count int) {
	r.Calls = append(r.Calls, Call{Op: "draw", Count: count})
}

// Ops returns the operation names in call order.
func (r *Recorder) Ops() []string {
	ops := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		ops[i] = c.Op
	}
	return ops
}

func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
