package gamemath

import "math"

// Clamp limits v to [-bound, bound].
func Clamp(v, bound float64) float64 {
	if v > bound {
		return bound
	}
	if v < -bound {
		return -bound
	}
	return v
}

// ScaleTo returns (x, y) rescaled to the given length.
// A zero vector stays zero.
func ScaleTo(x, y, length float64) (float64, float64) {
	mag := math.Hypot(x, y)
	if mag == 0 {
		return 0, 0
	}
	return x / mag * length, y / mag * length
}

// HitFactor is the ball's offset from the paddle center relative to the
// paddle height, roughly in [-0.5, 0.5] for face hits.
func HitFactor(ballY, paddleY, paddleHeight float64) float64 {
	return (ballY - paddleY) / paddleHeight
}

// PaddleRebound returns the velocity after a face hit: the horizontal
// direction flips and the vertical component follows the hit factor.
func PaddleRebound(vx, hitFactor, speed float64) (float64, float64) {
	dirX := 1.0
	if vx > 0 {
		dirX = -1.0
	}
	return ScaleTo(dirX, hitFactor*2, speed)
}

// Reflect inverts the velocity component on the axis of the struck face.
func Reflect(vx, vy float64, face Face) (float64, float64) {
	switch face {
	case FaceLeft, FaceRight:
		return -vx, vy
	case FaceTop, FaceBottom:
		return vx, -vy
	}
	return vx, vy
}

// NextSpeed applies one speed increment, capped at max.
func NextSpeed(speed, incr, max float64) float64 {
	return math.Min(speed+incr, max)
}
