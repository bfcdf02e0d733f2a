package depot

import "github.com/TheBitDrifter/mask"

// MaskWidth is the number of component types a Mask can track
const MaskWidth = 32

// MaxLockBits bounds the bits accepted by Manager.AddLock
const MaxLockBits = mask.MaxBits

// Mask records which registered component types currently hold data for an entity
type Mask struct {
	bits mask.Mask
}

// Set marks the bit at index
func (m *Mask) Set(index uint32) {
	m.bits.Mark(index)
}

// Clear unmarks the bit at index
func (m *Mask) Clear(index uint32) {
	m.bits.Unmark(index)
}

// Contains reports whether the bit at index is marked
func (m Mask) Contains(index uint32) bool {
	var single mask.Mask
	single.Mark(index)
	return m.bits.ContainsAll(single)
}

// HasAll reports whether every bit of other is marked in m
func (m Mask) HasAll(other Mask) bool {
	return m.bits.ContainsAll(other.bits)
}

// HasAny reports whether at least one bit of other is marked in m
func (m Mask) HasAny(other Mask) bool {
	return m.bits.ContainsAny(other.bits)
}

// HasNone reports whether no bit of other is marked in m. An empty other
// always yields true.
func (m Mask) HasNone(other Mask) bool {
	return !m.bits.ContainsAny(other.bits)
}

// IsEmpty reports whether no bit is marked
func (m Mask) IsEmpty() bool {
	return m.bits == mask.Mask{}
}

// Bits returns the mask as a machine word, bit i standing for the component type registered i-th
func (m Mask) Bits() uint32 {
	var word uint32
	for i := uint32(0); i < MaskWidth; i++ {
		if m.Contains(i) {
			word |= 1 << i
		}
	}
	return word
}
