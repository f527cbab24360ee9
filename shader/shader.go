package shader

import (
	"fmt"
	"strings"

	"github.com/richinsley/gocuboid/mesh"
)

// Uniform names the vertex shader reads its matrices from.
const (
	ProjectionUniform = "pMatrix"
	ModelViewUniform  = "mvMatrix"
)

// ────────────────────────────────── Desktop GL ──────────────────────────────────

const vertexShaderSourceGL = `#version 410 core
layout (location = %d) in vec3 vPosition;
layout (location = %d) in vec3 vColor;
uniform mat4 %s;
uniform mat4 %s;
out vec4 color;
void main() {
    gl_Position = %s * %s * vec4(vPosition, 1.0);
    color = vec4(vColor, 1.0);
}
`

const fragmentShaderSourceGL = `#version 410 core
in vec4 color;
out vec4 fragColor;
void main() { fragColor = color; }
`

// ──────────────────────────────────── GLES ──────────────────────────────────────

const vertexShaderSourceGLES = `#version 300 es
precision highp float;
layout (location = %d) in vec3 vPosition;
layout (location = %d) in vec3 vColor;
uniform mat4 %s;
uniform mat4 %s;
out vec4 color;
void main() {
    gl_Position = %s * %s * vec4(vPosition, 1.0);
    color = vec4(vColor, 1.0);
}
`

const fragmentShaderSourceGLES = `#version 300 es
precision mediump float;
in vec4 color;
out vec4 fragColor;
void main() { fragColor = color; }
`

// ────────────────────────────────── Public API ─────────────────────────────────

// GenerateVertexShader returns a vertex shader whose attribute locations match
// the mesh vertex layout.
func GenerateVertexShader(isGLES bool) string {
	src := vertexShaderSourceGL
	if isGLES {
		src = vertexShaderSourceGLES
	}
	return fmt.Sprintf(src,
		mesh.PositionLocation, mesh.ColorLocation,
		ProjectionUniform, ModelViewUniform,
		ProjectionUniform, ModelViewUniform)
}

func GetFragmentShader(isGLES bool) string {
	if isGLES {
		return fragmentShaderSourceGLES
	}
	return fragmentShaderSourceGL
}

// Uniforms lists the matrix uniforms declared by GenerateVertexShader.
func Uniforms() []string {
	return []string{ProjectionUniform, ModelViewUniform}
}

// Declares reports whether src declares a mat4 uniform called name.
func Declares(src, name string) bool {
	return strings.Contains(src, "uniform mat4 "+name+";")
}
