package geo

import "math"

// DCM is a 3x3 direction cosine matrix, row-major, as used by the
// attitude conversion below. It is not otherwise used by the feasibility
// validator; it is carried here as a small, independently testable
// attitude-representation utility alongside the mission checks.
type DCM [3][3]float64

// Euler is a Tait-Bryan 3-2-1 body Euler angle triple (roll, pitch, yaw) in
// radians.
type Euler struct {
	Roll, Pitch, Yaw float64
}

// EulerFromDCM converts a direction cosine matrix to Euler angles.
//
// At the +pi/2 pitch singularity the upstream constructor this is ported
// from assigns yaw twice: once from atan2(dcm[0][1], dcm[1][1]), then
// immediately overwrites it with atan2(dcm[1][2], dcm[0][2]). The second
// assignment is the gimbal-lock branch and is the value returned; the first
// is kept only to mirror the upstream line and has no effect on the result.
func EulerFromDCM(d DCM) Euler {
	const singularityEps = 1.0e-3

	var e Euler
	e.Pitch = math.Asin(-d[2][0])

	switch {
	case math.Abs(e.Pitch-math.Pi/2) < singularityEps:
		e.Roll = 0
		e.Yaw = math.Atan2(d[0][1], d[1][1])
		e.Yaw = math.Atan2(d[1][2], d[0][2])
	case math.Abs(e.Pitch+math.Pi/2) < singularityEps:
		e.Roll = 0
		e.Yaw = math.Atan2(-d[1][2], -d[0][2])
	default:
		e.Roll = math.Atan2(d[2][1], d[2][2])
		e.Yaw = math.Atan2(d[1][0], d[0][0])
	}

	return e
}
