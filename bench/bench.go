// Package bench compares depot against arche on the same workloads
package bench

const (
	nPos    = 9000
	nPosVel = 1000
)

type Position struct {
	X float64
	Y float64
}

type Velocity struct {
	X float64
	Y float64
}

type Identity struct {
	UUID int
}

type Tag struct{}
