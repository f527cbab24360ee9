package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/richinsley/gocuboid/graphics"
	"github.com/richinsley/gocuboid/matrix"
	"github.com/richinsley/gocuboid/options"
	"github.com/richinsley/gocuboid/scene"
	"github.com/richinsley/gocuboid/shader"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// dump is the YAML document written in yaml format.
type dump struct {
	Projection [16]float32     `yaml:"projection,flow"`
	ModelView  [16]float32     `yaml:"modelView,flow"`
	Calls      []graphics.Call `yaml:"calls"`
	Shaders    *shaders        `yaml:"shaders,omitempty"`
}

type shaders struct {
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
}

func loadDescription(path string) (scene.Description, error) {
	if path == "" {
		log.Println("No scene file given, using defaults")
		return scene.Default(), nil
	}
	return scene.Load(path)
}

func writeText(w io.Writer, f graphics.Frame, rec *graphics.Recorder, opts *options.Options) error {
	fmt.Fprintf(w, "projection:\n%v\n\n", f.Projection)
	fmt.Fprintf(w, "model-view:\n%v\n\n", f.ModelView())

	for _, c := range rec.Calls {
		switch c.Op {
		case "vertices":
			fmt.Fprintf(w, "vertices (stride %d bytes):\n", c.Stride)
			for i := 0; i+6 <= len(c.Floats); i += 6 {
				v := c.Floats[i : i+6]
				fmt.Fprintf(w, "  %d: pos %v color %v\n", i/6, matrix.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}, matrix.Vec3{float64(v[3]), float64(v[4]), float64(v[5])})
			}
		case "indices":
			fmt.Fprintf(w, "indices: %v\n", c.Indices)
		case "restart":
			fmt.Fprintf(w, "primitive restart: %#x\n", c.Restart)
		case "draw":
			fmt.Fprintf(w, "draw triangle strip: %d indices\n", c.Count)
		}
	}

	if *opts.GLSL {
		fmt.Fprintf(w, "\n%s\n%s", shader.GenerateVertexShader(*opts.GLES), shader.GetFragmentShader(*opts.GLES))
	}
	return nil
}

func writeYAML(w io.Writer, f graphics.Frame, rec *graphics.Recorder, opts *options.Options) error {
	doc := dump{
		Projection: f.Projection.RowMajor(),
		ModelView:  f.ModelView().RowMajor(),
		Calls:      rec.Calls,
	}
	if *opts.GLSL {
		doc.Shaders = &shaders{
			Vertex:   shader.GenerateVertexShader(*opts.GLES),
			Fragment: shader.GetFragmentShader(*opts.GLES),
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}
	return enc.Close()
}

func run(w io.Writer, opts *options.Options) error {
	desc, err := loadDescription(*opts.ScenePath)
	if err != nil {
		return err
	}

	frame, err := desc.Build()
	if err != nil {
		return fmt.Errorf("failed to build frame: %w", err)
	}

	rec := &graphics.Recorder{}
	if err := graphics.Submit(rec, frame); err != nil {
		return err
	}

	switch *opts.Format {
	case options.FormatText:
		return writeText(w, frame, rec, opts)
	case options.FormatYAML:
		return writeYAML(w, frame, rec, opts)
	default:
		return fmt.Errorf("unknown format %q", *opts.Format)
	}
}

func main() {
	opts := &options.Options{
		ScenePath: flag.String("scene", "", "YAML scene description (defaults are used if empty)"),
		Format:    flag.String("format", "", "Output format: yaml or text (default text on a terminal, yaml otherwise)"),
		GLSL:      flag.Bool("glsl", false, "Also print the matching shader sources"),
		GLES:      flag.Bool("gles", false, "Use the GLES shader variants"),
		Help:      flag.Bool("help", false, "Show help message"),
	}
	flag.Parse()

	if *opts.Help {
		fmt.Println("Cuboid frame dumper")
		flag.PrintDefaults()
		return
	}

	if *opts.Format == "" {
		*opts.Format = options.FormatYAML
		if term.IsTerminal(int(os.Stdout.Fd())) {
			*opts.Format = options.FormatText
		}
	}

	if err := run(os.Stdout, opts); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
