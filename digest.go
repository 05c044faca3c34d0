package streebog

import (
	"encoding/binary"
	"hash"
)

// digest adapts Hasher to the standard hash.Hash interface by keeping a
// 64-byte residue buffer, so Write accepts arbitrary lengths. Buffering
// is transparent: the bytes that reach the compression function are
// identical either way.
type digest struct {
	core Hasher
	buf  [BlockSize]byte
	off  int
}

// New256 returns a new hash.Hash computing the Streebog-256 digest.
func New256() hash.Hash {
	return &digest{core: NewHasher(H256)}
}

// New512 returns a new hash.Hash computing the Streebog-512 digest.
func New512() hash.Hash {
	return &digest{core: NewHasher(H512)}
}

// New returns a new hash.Hash for the given mode.
func New(mode Mode) hash.Hash {
	return &digest{core: NewHasher(mode)}
}

func (d *digest) Size() int      { return d.core.mode.Size() }
func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Reset() {
	d.core.Reset()
	d.off = 0
}

// Write absorbs p. It never returns an error.
func (d *digest) Write(p []byte) (int, error) {
	n := len(p)
	if d.off > 0 {
		c := copy(d.buf[d.off:], p)
		d.off += c
		p = p[c:]
		if d.off == BlockSize {
			d.core.Update(d.buf[:])
			d.off = 0
		}
	}
	if full := len(p) &^ (BlockSize - 1); full > 0 {
		d.core.Update(p[:full])
		p = p[full:]
	}
	if len(p) > 0 {
		d.off = copy(d.buf[:], p)
	}
	return n, nil
}

// Sum appends the current digest to b. It does not change the
// underlying hash state.
func (d *digest) Sum(b []byte) []byte {
	core := d.core
	h := core.Finalize(d.buf[:d.off])
	var out [Size512]byte
	putDigest(out[:], &h, d.core.mode)
	return append(b, out[:d.core.mode.Size()]...)
}

// putDigest serializes the chaining block in the standard's big-endian
// presentation: lane 7 first, each lane as eight big-endian bytes. For
// the 256-bit mode that yields exactly lanes 7..4.
func putDigest(dst []byte, h *[8]uint64, mode Mode) {
	lanes := mode.Size() / 8
	for i := 0; i < lanes; i++ {
		binary.BigEndian.PutUint64(dst[8*i:], h[7-i])
	}
}
