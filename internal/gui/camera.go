package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/solar"
)

// cameraFor places a perspective camera from the state's zoom, looking at
// the sun with +Z up.
func cameraFor(st solar.SimulationState) rl.Camera3D {
	eye, target, up := st.CameraPose()
	return rl.NewCamera3D(vec(eye), vec(target), vec(up), fovy, rl.CameraPerspective)
}

func eyeOf(c rl.Camera3D) orbit.Vec3 {
	return orbit.Vec3{X: float64(c.Position.X), Y: float64(c.Position.Y), Z: float64(c.Position.Z)}
}
