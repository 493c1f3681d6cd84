package clkmgr

import "golang.org/x/exp/constraints"

// Block is a word addressed view of the clock manager registers. Every access
// is a single aligned 32-bit load or store and must reach the hardware
// unmodified, in program order.
type Block interface {
	Load(r Reg) uint32
	Store(r Reg, v uint32)
}

// SetBits sets all bits of mask in register r.
func SetBits(b Block, r Reg, mask uint32) {
	b.Store(r, b.Load(r)|mask)
}

// ClearBits clears all bits of mask in register r.
func ClearBits(b Block, r Reg, mask uint32) {
	b.Store(r, b.Load(r)&^mask)
}

// field extracts the bits of mask from v and right aligns them.
func field[T constraints.Unsigned](v, mask T, shift int) T {
	return (v & mask) >> shift
}
