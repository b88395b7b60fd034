package emojiscape

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// CameraComponent is the demo's single perspective camera. Position is the
// rest eye point; YawDeg is an extra orbit angle about the target applied on
// top of it.
type CameraComponent struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
	FovDeg   float32
	Near     float32
	Far      float32
	YawDeg   float32
}

// Eye returns the orbit-adjusted eye point.
func (c *CameraComponent) Eye() mgl32.Vec3 {
	yaw := mgl32.DegToRad(c.YawDeg)
	offset := c.Position.Sub(c.Target)
	rotated := mgl32.Rotate3DY(yaw).Mul3x1(offset)
	return c.Target.Add(rotated)
}

func (c *CameraComponent) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye(), c.Target, c.Up)
}

func (c *CameraComponent) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FovDeg), aspect, c.Near, c.Far)
}

type CameraModule struct{}

func (CameraModule) Install(app *App, cmd *Commands) {
	cmd.AddEntity(&CameraComponent{
		Position: mgl32.Vec3{0, 1, -15},
		Target:   mgl32.Vec3{0, 0, 0},
		Up:       mgl32.Vec3{0, 1, 0},
		FovDeg:   75,
		Near:     0.1,
		Far:      1000,
	})
	app.UseSystem(
		System(cameraOrbitSystem).
			InStage(Update),
	)
}

// orbitDegPerSec is the camera's slow drift around curved arrangements.
const orbitDegPerSec = 7

// cameraOrbitSystem advances the orbit while a 3D-surface arrangement is
// active. The grid holds the camera still so the flat wall stays face-on.
func cameraOrbitSystem(field *SpriteField, time *Time, cmd *Commands) {
	if !field.Arrangement.Surface3D() {
		return
	}
	MakeQuery1[CameraComponent](cmd).Map(func(eid EntityId, cam *CameraComponent) bool {
		cam.YawDeg = float32(math.Mod(float64(cam.YawDeg)+orbitDegPerSec*time.Dt.Seconds(), 360))
		return true
	})
}
