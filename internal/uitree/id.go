package uitree

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ID identifies an element. It is derived from the element's name and its
// parent's ID, so it is stable across rebuilds as long as both are.
type ID uint64

const (
	// RootID is the synthetic tree root. It is never a stored node.
	RootID ID = 0
	// InvalidID means "none".
	InvalidID ID = math.MaxUint64
)

// Valid reports whether id can name a stored node.
func (id ID) Valid() bool { return id != RootID && id != InvalidID }

func (id ID) String() string {
	switch id {
	case RootID:
		return "root"
	case InvalidID:
		return "none"
	}
	return fmt.Sprintf("%016x", uint64(id))
}

func (id ID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

func (id *ID) UnmarshalText(b []byte) error {
	v, err := ParseID(string(b))
	if err != nil {
		return err
	}
	*id = v
	return nil
}

// Runtime returns the low 32 bits, used as the second half of a runtime id.
func (id ID) Runtime() int32 { return int32(uint32(id)) }

// ParseID accepts "root", "none" or the hex form produced by String.
func ParseID(s string) (ID, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "root", "0":
		return RootID, nil
	case "none":
		return InvalidID, nil
	}
	v, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimSpace(s), "0x"), 16, 64)
	if err != nil {
		return InvalidID, fmt.Errorf("%w: id %q", ErrInvalidArgument, s)
	}
	return ID(v), nil
}

const (
	hashSeed = 0x2d358dccaa6c78a5
	mixP0    = 0xa0761d6478bd642f
	mixP1    = 0xe7037ed1a0b428db
)

func mum(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return hi ^ lo
}

// mix64 folds b into a with a multiply-xor avalanche.
func mix64(a, b uint64) uint64 {
	return mum(a^mixP0, b^mixP1)
}

// IDGenerator derives element ids. Bits is 64 or 32.
type IDGenerator struct {
	Bits int
}

// Make returns the id for name under parent. It is a pure function of its
// inputs; collision and sentinel checks are the builder's job.
func (g IDGenerator) Make(name string, parent ID) ID {
	h := mix64(xxhash.Sum64String(name)^hashSeed, uint64(parent))
	if g.Bits == 32 {
		return ID(uint32(h))
	}
	return ID(h)
}

// Reserved reports whether id is one of the sentinel values for this width.
func (g IDGenerator) Reserved(id ID) bool {
	if id == RootID || id == InvalidID {
		return true
	}
	return g.Bits == 32 && id == math.MaxUint32
}

// MakeID is the 64-bit generator.
func MakeID(name string, parent ID) ID {
	return IDGenerator{Bits: 64}.Make(name, parent)
}
