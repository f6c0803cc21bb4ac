package prepass

import (
	"math"
	"time"

	"github.com/mokiat/gomath/dprec"
)

// SpinAngle returns the yaw of the displayed model after the given
// elapsed time. It swings between zero and a full turn.
func SpinAngle(elapsed time.Duration) dprec.Angle {
	t := elapsed.Seconds()
	return dprec.Degrees((math.Sin(t)*0.5 + 0.5) * 360.0)
}

// Spin returns the rotation of the displayed model around the Y axis.
func Spin(elapsed time.Duration) dprec.Quat {
	return dprec.RotationQuat(SpinAngle(elapsed), dprec.BasisYVec3())
}
