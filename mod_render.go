package emojiscape

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

type spriteVertex struct {
	position [3]float32
	uv       [2]float32
}

// unit quad in the local XY plane, facing -Z before orientation is applied
var quadVertices = []spriteVertex{
	{position: [3]float32{-0.5, -0.5, 0}, uv: [2]float32{0, 1}},
	{position: [3]float32{0.5, -0.5, 0}, uv: [2]float32{1, 1}},
	{position: [3]float32{0.5, 0.5, 0}, uv: [2]float32{1, 0}},
	{position: [3]float32{-0.5, 0.5, 0}, uv: [2]float32{0, 0}},
}

var quadIndices = []uint16{0, 1, 2, 0, 2, 3}

func spriteVertexLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: 5 * 4,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
			{Format: wgpu.VertexFormatFloat32x2, Offset: 3 * 4, ShaderLocation: 1},
		},
	}
}

// sceneFormat is the offscreen color target every frame renders into before
// the post pass resolves it to the swapchain.
const sceneFormat = wgpu.TextureFormatRGBA8Unorm

type fxUniforms struct {
	Mode   uint32
	Amount float32
	_pad   [2]float32
}

// spriteGpu is the per-sprite GPU state: one small uniform buffer for the
// model-view-projection matrix and a bind group tying it to the sprite's
// texture. Created lazily the first frame the sprite is drawn.
type spriteGpu struct {
	uniformBuf *wgpu.Buffer
	bindGroup  *wgpu.BindGroup
}

// Renderer owns all GPU objects of the two render passes. Initialization is
// deferred to the first frame in the Render stage, so an app that never runs
// that stage (tests) never touches the GPU.
type Renderer struct {
	initialized bool

	gpu           *GpuState
	scenePipeline *wgpu.RenderPipeline
	postPipeline  *wgpu.RenderPipeline

	vertexBuf *wgpu.Buffer
	indexBuf  *wgpu.Buffer
	sampler   *wgpu.Sampler

	sceneView *wgpu.TextureView
	depthView *wgpu.TextureView

	fxBuf         *wgpu.Buffer
	postBindGroup *wgpu.BindGroup

	textureViews map[AssetId]*wgpu.TextureView
	sprites      map[EntityId]*spriteGpu
}

type SpriteRenderModule struct{}

func (SpriteRenderModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&Renderer{
		textureViews: make(map[AssetId]*wgpu.TextureView),
		sprites:      make(map[EntityId]*spriteGpu),
	})
	app.UseSystem(
		System(renderSystem).
			InStage(Render),
	)
}

func (r *Renderer) init(s *WindowState) {
	r.gpu = createGpuState(s)
	r.vertexBuf, r.indexBuf = createVertexIndexBuffers(quadVertices, quadIndices, r.gpu.device)
	r.sampler = createLinearSampler(r.gpu)

	r.scenePipeline = createRenderPipeline("Sprite Pipeline", spriteShaderCode, r.gpu, pipelineOptions{
		vertexLayouts: []wgpu.VertexBufferLayout{spriteVertexLayout()},
		targetFormat:  sceneFormat,
		alphaBlend:    true,
		depth:         true,
		cullNone:      true,
	})
	r.postPipeline = createRenderPipeline("PostFx Pipeline", postfxShaderCode, r.gpu, pipelineOptions{
		targetFormat: r.gpu.surfaceConfig.Format,
	})

	width := r.gpu.surfaceConfig.Width
	height := r.gpu.surfaceConfig.Height
	r.sceneView = createColorTarget(width, height, sceneFormat, r.gpu)
	r.depthView = createDepthTexture(width, height, r.gpu)

	r.fxBuf = createUniformBuffer("PostFx Params", 16, r.gpu)

	layout := r.postPipeline.GetBindGroupLayout(0)
	defer layout.Release()
	postBindGroup, err := r.gpu.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "PostFx Bind Group",
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, TextureView: r.sceneView},
			{Binding: 1, Sampler: r.sampler},
			{Binding: 2, Buffer: r.fxBuf, Size: wgpu.WholeSize},
		},
	})
	if err != nil {
		panic(err)
	}
	r.postBindGroup = postBindGroup
}

func (r *Renderer) textureView(id AssetId, assets *AssetServer) *wgpu.TextureView {
	if view, ok := r.textureViews[id]; ok {
		return view
	}
	asset, ok := assets.texture(id)
	if !ok {
		return nil
	}
	view := createTextureFromAsset(&asset, r.gpu)
	r.textureViews[id] = view
	return view
}

func (r *Renderer) spriteGpu(eid EntityId, textureId AssetId, assets *AssetServer) *spriteGpu {
	if sg, ok := r.sprites[eid]; ok {
		return sg
	}
	textureView := r.textureView(textureId, assets)
	if textureView == nil {
		return nil
	}

	uniformBuf := createUniformBuffer("Sprite Uniforms", 64, r.gpu)

	layout := r.scenePipeline.GetBindGroupLayout(0)
	defer layout.Release()
	bindGroup, err := r.gpu.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Sprite Bind Group",
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: uniformBuf, Size: wgpu.WholeSize},
			{Binding: 1, TextureView: textureView},
			{Binding: 2, Sampler: r.sampler},
		},
	})
	if err != nil {
		panic(err)
	}

	sg := &spriteGpu{uniformBuf: uniformBuf, bindGroup: bindGroup}
	r.sprites[eid] = sg
	return sg
}

// spriteModel builds the model matrix: translate, face, spin, scale. A
// billboard sprite takes the inverse of the camera rotation as its facing so
// the quad is always parallel to the screen, and spins in its own plane
// (local Z, the facing axis). Surface sprites keep their layout orientation
// and spin about their local Y, so they swivel on the surface rather than
// twirl in place.
func spriteModel(sprite *SpriteComponent, render *RenderStateComponent, billboard mgl32.Mat4) mgl32.Mat4 {
	facing := render.Orientation.Mat4()
	spin := mgl32.HomogRotate3DY(mgl32.DegToRad(render.Spin))
	if sprite.Billboard {
		facing = billboard
		spin = mgl32.HomogRotate3DZ(mgl32.DegToRad(render.Spin))
	}
	pos := render.Position
	scale := render.Scale

	return mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()).
		Mul4(facing).
		Mul4(spin).
		Mul4(mgl32.Scale3D(scale.X(), scale.Y(), scale.Z()))
}

func renderSystem(r *Renderer, s *WindowState, assets *AssetServer, fx *PostFx, cmd *Commands) {
	if !r.initialized {
		r.init(s)
		r.initialized = true
	}

	var cam *CameraComponent
	MakeQuery1[CameraComponent](cmd).Map(func(eid EntityId, c *CameraComponent) bool {
		cam = c
		return false
	})
	if cam == nil {
		return
	}

	width := r.gpu.surfaceConfig.Width
	height := r.gpu.surfaceConfig.Height
	aspect := float32(width) / float32(height)

	view := cam.ViewMatrix()
	proj := cam.ProjectionMatrix(aspect)
	viewProj := proj.Mul4(view)
	billboard := view.Mat3().Transpose().Mat4()

	// upload this frame's uniforms before encoding the passes
	var draws []*spriteGpu
	MakeQuery2[SpriteComponent, RenderStateComponent](cmd).Map(
		func(eid EntityId, sprite *SpriteComponent, render *RenderStateComponent) bool {
			if !sprite.Visible {
				return true
			}
			sg := r.spriteGpu(eid, sprite.Texture, assets)
			if sg == nil {
				return true
			}
			mvp := viewProj.Mul4(spriteModel(sprite, render, billboard))
			r.gpu.queue.WriteBuffer(sg.uniformBuf, 0, wgpu.ToBytes(mvp[:]))
			draws = append(draws, sg)
			return true
		})

	effect := fx.Resolve()
	r.gpu.queue.WriteBuffer(r.fxBuf, 0, wgpu.ToBytes([]fxUniforms{{
		Mode:   uint32(effect),
		Amount: fx.SepiaAmount,
	}}))

	nextTexture, err := r.gpu.surface.GetCurrentTexture()
	if err != nil {
		panic(err)
	}
	swapchainView, err := nextTexture.CreateView(nil)
	if err != nil {
		panic(err)
	}
	defer swapchainView.Release()

	encoder, err := r.gpu.device.CreateCommandEncoder(nil)
	if err != nil {
		panic(err)
	}
	defer encoder.Release()

	scenePass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "Scene Pass",
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       r.sceneView,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: wgpu.Color{R: 0.08, G: 0.08, B: 0.1, A: 1},
		}},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            r.depthView,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpStore,
			DepthClearValue: 1,
		},
	})
	scenePass.SetPipeline(r.scenePipeline)
	scenePass.SetVertexBuffer(0, r.vertexBuf, 0, wgpu.WholeSize)
	scenePass.SetIndexBuffer(r.indexBuf, wgpu.IndexFormatUint16, 0, wgpu.WholeSize)
	for _, sg := range draws {
		scenePass.SetBindGroup(0, sg.bindGroup, nil)
		scenePass.DrawIndexed(uint32(len(quadIndices)), 1, 0, 0, 0)
	}
	if err := scenePass.End(); err != nil {
		panic(err)
	}

	postPass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "PostFx Pass",
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       swapchainView,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: wgpu.Color{R: 0, G: 0, B: 0, A: 1},
		}},
	})
	postPass.SetPipeline(r.postPipeline)
	postPass.SetBindGroup(0, r.postBindGroup, nil)
	postPass.Draw(3, 1, 0, 0)
	if err := postPass.End(); err != nil {
		panic(err)
	}

	commands, err := encoder.Finish(nil)
	if err != nil {
		panic(err)
	}
	r.gpu.queue.Submit(commands)
	r.gpu.surface.Present()
	nextTexture.Release()
}
