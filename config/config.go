package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type Settings struct {
	Window Window `json:"window" toml:"window" yaml:"window"`
	OpenGL OpenGL `json:"opengl" toml:"opengl" yaml:"opengl"`
	Camera Camera `json:"camera" toml:"camera" yaml:"camera"`
	Light  Light  `json:"light" toml:"light" yaml:"light"`
	Assets Assets `json:"assets" toml:"assets" yaml:"assets"`
}

type Window struct {
	Width  int32  `json:"width" toml:"width" yaml:"width"`
	Height int32  `json:"height" toml:"height" yaml:"height"`
	Title  string `json:"title" toml:"title" yaml:"title"`
	VSync  bool   `json:"vsync" toml:"vsync" yaml:"vsync"`
}

type OpenGL struct {
	ClearColor [4]float32 `json:"clear_color" toml:"clear_color" yaml:"clear_color"`
	Projection Projection `json:"projection" toml:"projection" yaml:"projection"`
}

type Projection struct {
	// Fov is the vertical field of view in degrees
	Fov  float32 `json:"fov" toml:"fov" yaml:"fov"`
	Near float32 `json:"near" toml:"near" yaml:"near"`
	Far  float32 `json:"far" toml:"far" yaml:"far"`
}

type Camera struct {
	InitialTranslation *[3]float32 `json:"initial_translation" toml:"initial_translation" yaml:"initial_translation"`
}

type Light struct {
	InitialPosition [3]float32 `json:"initial_position" toml:"initial_position" yaml:"initial_position"`
}

// Assets are file paths. Relative paths are resolved against the settings file's directory
type Assets struct {
	Geometry       string `json:"geometry" toml:"geometry" yaml:"geometry"`
	NormalMap      string `json:"normal_map" toml:"normal_map" yaml:"normal_map"`
	VertexShader   string `json:"vertex_shader" toml:"vertex_shader" yaml:"vertex_shader"`
	FragmentShader string `json:"fragment_shader" toml:"fragment_shader" yaml:"fragment_shader"`
}

func Default() Settings {
	return Settings{
		Window: Window{
			Width:  800,
			Height: 600,
			Title:  "Bump Mapping",
			VSync:  true,
		},
		OpenGL: OpenGL{
			ClearColor: [4]float32{0.1, 0.1, 0.1, 1},
			Projection: Projection{Fov: 45, Near: 0.1, Far: 50},
		},
		Camera: Camera{
			InitialTranslation: &[3]float32{0, 0, -3},
		},
		Light: Light{
			InitialPosition: [3]float32{0, 0, 2},
		},
		Assets: Assets{
			Geometry:       "models/cube_geometry.json",
			NormalMap:      "textures/normal_map.png",
			VertexShader:   "shaders/bumpmap.vert.glsl",
			FragmentShader: "shaders/bumpmap.frag.glsl",
		},
	}
}

// Load reads settings from a '.json', '.toml', '.yaml' or '.yml' file.
// Fields missing from the file keep their Default value.
func Load(path string) (Settings, error) {

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, errors.New("Failed to read settings file. Err: " + err.Error())
	}

	s, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return Settings{}, fmt.Errorf("failed to load settings '%s': %w", path, err)
	}

	s.Assets.resolve(filepath.Dir(path))
	return s, nil
}

// Parse decodes settings in the format named by ext (e.g. '.toml') on top of Default, then validates them
func Parse(data []byte, ext string) (Settings, error) {

	s := Default()

	var err error
	switch strings.ToLower(ext) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&s)
	case ".toml":
		err = toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(&s)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document keeps every default
		if err = dec.Decode(&s); errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		return Settings{}, fmt.Errorf("unsupported settings format '%s'. Use .json, .toml or .yaml", ext)
	}

	if err != nil {
		return Settings{}, err
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}

	return s, nil
}

func (s *Settings) Validate() error {

	var errs []error

	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive but is %dx%d", s.Window.Width, s.Window.Height))
	}

	p := s.OpenGL.Projection
	if p.Fov <= 0 || p.Fov >= 180 {
		errs = append(errs, fmt.Errorf("projection fov must be in (0, 180) degrees but is %f", p.Fov))
	}

	if p.Near <= 0 || p.Far <= p.Near {
		errs = append(errs, fmt.Errorf("projection clip planes must satisfy 0 < near < far but near=%f and far=%f", p.Near, p.Far))
	}

	if s.Assets.Geometry == "" || s.Assets.NormalMap == "" || s.Assets.VertexShader == "" || s.Assets.FragmentShader == "" {
		errs = append(errs, errors.New("all asset paths (geometry, normal_map, vertex_shader, fragment_shader) must be set"))
	}

	return errors.Join(errs...)
}

// AspectRatio is width/height of the window
func (s *Settings) AspectRatio() float32 {
	return float32(s.Window.Width) / float32(s.Window.Height)
}

func (a *Assets) resolve(baseDir string) {

	for _, p := range []*string{&a.Geometry, &a.NormalMap, &a.VertexShader, &a.FragmentShader} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(baseDir, *p)
		}
	}
}
