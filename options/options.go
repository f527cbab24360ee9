package options

type Options struct {
	ScenePath *string // Optional YAML scene description; defaults are used when empty
	Format    *string // "yaml" or "text"; empty picks text on a terminal, yaml otherwise
	GLSL      *bool   // Also print the matching shader sources
	GLES      *bool   // Use the ESSL 300 shader variants
	Help      *bool
}

const (
	FormatYAML = "yaml"
	FormatText = "text"
)
