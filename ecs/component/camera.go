package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/shooter/scene"
)

// CameraRig is a follow camera on a boom. The boom pivots around the
// character and takes the control rotation.
type CameraRig struct {
	Camera       *scene.Camera
	BoomLength   float64
	SocketOffset mgl64.Vec3
}

var CameraRigComponent = NewComponent[CameraRig]()
