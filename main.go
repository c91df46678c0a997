package main

import (
	"flag"

	"github.com/bloeys/bumpcube/assets"
	"github.com/bloeys/bumpcube/camera"
	"github.com/bloeys/bumpcube/config"
	"github.com/bloeys/bumpcube/engine"
	"github.com/bloeys/bumpcube/geometry"
	"github.com/bloeys/bumpcube/input"
	"github.com/bloeys/bumpcube/logging"
	"github.com/bloeys/bumpcube/materials"
	"github.com/bloeys/bumpcube/meshes"
	"github.com/bloeys/bumpcube/renderer"
	"github.com/bloeys/bumpcube/renderer/rend3dgl"
	"github.com/bloeys/bumpcube/shaders"
	"github.com/bloeys/gglm/gglm"
)

var (
	settingsPath = flag.String("settings", "./res/settings.json", "Path to a .json, .toml or .yaml settings file")
)

type Game struct {
	Settings config.Settings
	Win      *engine.Window
	Rend     *rend3dgl.Rend3DGL

	Cam   camera.Camera
	State *renderer.RenderState
	Input *input.Controller

	NormalMap assets.Texture
	CubeMat   materials.Material
	CubeMesh  meshes.Mesh
}

func main() {

	flag.Parse()

	settings, err := config.Load(*settingsPath)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to load settings. Err:", err)
	}

	//Init engine
	err = engine.Init()
	if err != nil {
		logging.ErrLog.Fatalln("Failed to init engine. Err:", err)
	}

	//Create window
	window, err := engine.CreateOpenGLWindowCentered(settings.Window.Title, settings.Window.Width, settings.Window.Height, engine.WindowFlags_NONE, settings.OpenGL.ClearColor)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to create window. Err: ", err)
	}
	defer window.Destroy()

	if err := engine.SetVSync(settings.Window.VSync); err != nil {
		logging.WarnLog.Println("Failed to set vsync. Err:", err)
	}

	game := &Game{
		Settings: settings,
		Win:      window,
		Rend:     rend3dgl.NewRend3DGL(),
	}

	engine.Run(game, window)
}

func (g *Game) Init() {

	assetPaths := &g.Settings.Assets

	// Geometry is validated before any GPU resource is created
	geom, err := geometry.LoadFile(assetPaths.Geometry, &geometry.LoadOptions{PositionScale: geometry.DefaultPositionScale})
	if err != nil {
		logging.ErrLog.Fatalln("Failed to load geometry. Err:", err)
	}
	logging.InfoLog.Printf("Loaded geometry '%s' with %d vertices and %d indices\n", assetPaths.Geometry, geom.VertexCount(), len(geom.Indices()))

	g.NormalMap, err = assets.LoadTexture(assetPaths.NormalMap)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to load normal map. Err:", err)
	}

	prog, err := shaders.LoadProgramFiles(assetPaths.VertexShader, assetPaths.FragmentShader)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to create shader program. Err:", err)
	}
	g.CubeMat = materials.NewMaterial("bumpmap", prog, g.NormalMap.TexID)

	g.CubeMesh, err = meshes.NewMesh("cube", geom, &g.CubeMat)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to create cube mesh. Err:", err)
	}

	pullBack := camera.DefaultPullBack
	if t := g.Settings.Camera.InitialTranslation; t != nil {
		pullBack = gglm.NewVec3(t[0], t[1], t[2])
	}

	proj := g.Settings.OpenGL.Projection
	g.Cam = camera.NewPerspective(&pullBack, proj.Fov, g.Settings.AspectRatio(), proj.Near, proj.Far)

	lightPos := g.Settings.Light.InitialPosition
	g.State = renderer.NewRenderState(gglm.NewVec3(lightPos[0], lightPos[1], lightPos[2]))

	g.Input = input.NewController(g.State, g.Settings.Window.Width, g.Settings.Window.Height)
	g.Win.EventCallbacks = append(g.Win.EventCallbacks, g.Input.HandleEvent)
}

func (g *Game) Update() {
}

func (g *Game) IsQuitRequested() bool {
	return g.Input.IsQuitRequested()
}

func (g *Game) Render() {
	g.Rend.DrawFrame(&g.Cam, g.State, &g.CubeMesh, &g.CubeMat)
}

// DeInit releases GPU resources while the context is still alive
func (g *Game) DeInit() {
	g.CubeMesh.Delete()
	g.CubeMat.Delete()
	g.NormalMap.Delete()
}
