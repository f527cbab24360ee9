package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/richinsley/gocuboid/graphics"
	"github.com/richinsley/gocuboid/matrix"
	"github.com/richinsley/gocuboid/mesh"
	"gopkg.in/yaml.v3"
)

// Description is the YAML form of a single-cuboid frame. Omitted fields take
// the defaults applied by normalize.
type Description struct {
	Camera     Camera     `yaml:"camera"`
	Projection Projection `yaml:"projection"`
	Model      Model      `yaml:"model"`
	Cuboid     Cuboid     `yaml:"cuboid"`
}

type Camera struct {
	Eye    []float64 `yaml:"eye,flow"`
	Target []float64 `yaml:"target,flow"`
	Up     []float64 `yaml:"up,flow"`
}

type Projection struct {
	Fov    *float64 `yaml:"fov"`
	Aspect *float64 `yaml:"aspect"`
	Near   *float64 `yaml:"near"`
	Far    *float64 `yaml:"far"`
}

type Model struct {
	Translate []float64 `yaml:"translate,flow"`
}

type Cuboid struct {
	Width  *float64  `yaml:"width"`
	Height *float64  `yaml:"height"`
	Depth  *float64  `yaml:"depth"`
	Color  []float64 `yaml:"color,flow"`
}

func ptr(v float64) *float64 {
	return &v
}

func (d *Description) normalize() {
	if d.Camera.Eye == nil {
		d.Camera.Eye = []float64{0, 0, 0}
	}
	if d.Camera.Target == nil {
		d.Camera.Target = []float64{0, 0, -1}
	}
	if d.Camera.Up == nil {
		d.Camera.Up = []float64{0, 1, 0}
	}

	if d.Projection.Fov == nil {
		d.Projection.Fov = ptr(60)
	}
	if d.Projection.Aspect == nil {
		d.Projection.Aspect = ptr(1)
	}
	if d.Projection.Near == nil {
		d.Projection.Near = ptr(0.1)
	}
	if d.Projection.Far == nil {
		d.Projection.Far = ptr(1000)
	}

	if d.Model.Translate == nil {
		d.Model.Translate = []float64{0, 0, -1}
	}

	if d.Cuboid.Width == nil {
		d.Cuboid.Width = ptr(0.9)
	}
	if d.Cuboid.Height == nil {
		d.Cuboid.Height = ptr(0.9)
	}
	if d.Cuboid.Depth == nil {
		d.Cuboid.Depth = ptr(0.9)
	}
	if d.Cuboid.Color == nil {
		d.Cuboid.Color = []float64{0.15, 0.20, 0.75}
	}
}

// Default returns the description with every field defaulted.
func Default() Description {
	var d Description
	d.normalize()
	return d
}

// Parse decodes a YAML description. Unknown keys are rejected.
func Parse(data []byte) (Description, error) {
	var d Description

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil && !errors.Is(err, io.EOF) {
		return Description{}, err
	}
	d.normalize()
	return d, nil
}

func Load(path string) (Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Description{}, fmt.Errorf("read %s: %w", path, err)
	}

	d, err := Parse(data)
	if err != nil {
		return Description{}, fmt.Errorf("parse %s: %w", path, err)
	}
	log.Printf("Loaded scene description from %s", path)
	return d, nil
}

func vec3(field string, v []float64) (matrix.Vec3, error) {
	if len(v) != 3 {
		return matrix.Vec3{}, fmt.Errorf("%s: want 3 components, got %d: %w", field, len(v), matrix.ErrInvalidArgument)
	}
	return matrix.Vec3{v[0], v[1], v[2]}, nil
}

// Build turns the description into a frame ready for graphics.Submit.
func (d Description) Build() (graphics.Frame, error) {
	d.normalize()

	eye, err := vec3("camera.eye", d.Camera.Eye)
	if err != nil {
		return graphics.Frame{}, err
	}
	target, err := vec3("camera.target", d.Camera.Target)
	if err != nil {
		return graphics.Frame{}, err
	}
	up, err := vec3("camera.up", d.Camera.Up)
	if err != nil {
		return graphics.Frame{}, err
	}
	translate, err := vec3("model.translate", d.Model.Translate)
	if err != nil {
		return graphics.Frame{}, err
	}
	color, err := vec3("cuboid.color", d.Cuboid.Color)
	if err != nil {
		return graphics.Frame{}, err
	}

	p := d.Projection
	proj, err := matrix.Perspective(*p.Fov, *p.Aspect, *p.Near, *p.Far)
	if err != nil {
		return graphics.Frame{}, fmt.Errorf("projection: %w", err)
	}
	view, err := matrix.LookAt(eye, target, up)
	if err != nil {
		return graphics.Frame{}, fmt.Errorf("camera: %w", err)
	}
	cuboid, err := mesh.Cuboid(*d.Cuboid.Width, *d.Cuboid.Height, *d.Cuboid.Depth, color)
	if err != nil {
		return graphics.Frame{}, err
	}

	return graphics.Frame{
		Projection: proj,
		View:       view,
		Model:      matrix.Translation(translate[0], translate[1], translate[2]),
		Vertices:   cuboid.VertexData(),
		Indices:    cuboid.IndexData(),
	}, nil
}
