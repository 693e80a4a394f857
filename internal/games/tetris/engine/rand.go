package engine

// Rand supplies piece selection. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}
