package streebog

// compress is the outer compression function g_N. It advances the
// chaining value h by one 64-byte message block m under the counter n;
// the two terminal calls of a finalization pass zeroBlock for n.
//
// The twelve-round E permutation is written out in full: 25 lpsx
// gathers per block, no round loop, so the body compiles to one
// straight-line run of table lookups.
func compress(h, m, n *block) {
	var k, t block
	lpsx(&k, h, n)

	lpsx(&t, &k, m)
	lpsx(&k, &k, &rc[0])

	lpsx(&t, &k, &t)
	lpsx(&k, &k, &rc[1])
	lpsx(&t, &k, &t)
	lpsx(&k, &k, &rc[2])
	lpsx(&t, &k, &t)
	lpsx(&k, &k, &rc[3])
	lpsx(&t, &k, &t)
	lpsx(&k, &k, &rc[4])
	lpsx(&t, &k, &t)
	lpsx(&k, &k, &rc[5])
	lpsx(&t, &k, &t)
	lpsx(&k, &k, &rc[6])
	lpsx(&t, &k, &t)
	lpsx(&k, &k, &rc[7])
	lpsx(&t, &k, &t)
	lpsx(&k, &k, &rc[8])
	lpsx(&t, &k, &t)
	lpsx(&k, &k, &rc[9])
	lpsx(&t, &k, &t)
	lpsx(&k, &k, &rc[10])
	lpsx(&t, &k, &t)
	lpsx(&k, &k, &rc[11])

	// Final round is the X step only: h' = h ^ E(K, m) ^ m.
	h[0] ^= t[0] ^ k[0] ^ m[0]
	h[1] ^= t[1] ^ k[1] ^ m[1]
	h[2] ^= t[2] ^ k[2] ^ m[2]
	h[3] ^= t[3] ^ k[3] ^ m[3]
	h[4] ^= t[4] ^ k[4] ^ m[4]
	h[5] ^= t[5] ^ k[5] ^ m[5]
	h[6] ^= t[6] ^ k[6] ^ m[6]
	h[7] ^= t[7] ^ k[7] ^ m[7]
}
