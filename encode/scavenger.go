package encode

import "bytes"

// The shared bitmap pool under construction. Glyph bitmaps are not
// simply appended: the pool is scavenged for byte ranges that already
// contain the new bitmap, fully or partially, and glyphs reference
// those instead. This happens once at build time; at runtime glyphs
// are always accessed by (offset, length) reference, so the
// compaction has zero rendering cost.
type pool struct {
	data []byte
}

// Commits a bitmap to the pool and returns the offset at which its
// bytes can be found. Matching is exact byte equality (bitmaps must
// already share byte alignment; no bit-shifted or transposed reuse).
//
// Preference order, which makes builds deterministic and reproducible:
//  1. longest match is a full match anywhere in the committed pool;
//     among candidates, the earliest offset wins (bytes.Index).
//  2. otherwise, the longest pool suffix equal to a bitmap prefix;
//     only the uncovered remainder is appended.
//  3. otherwise, the whole bitmap is appended.
//
// Empty bitmaps must not reach the pool; callers map blank glyphs to
// the canonical zero-length reference instead.
func (self *pool) place(bitmap []byte) uint32 {
	if index := bytes.Index(self.data, bitmap); index >= 0 {
		return uint32(index)
	}

	maxOverlap := len(bitmap) - 1
	if len(self.data) < maxOverlap { maxOverlap = len(self.data) }
	for overlap := maxOverlap; overlap > 0; overlap-- {
		if bytes.Equal(self.data[len(self.data)-overlap:], bitmap[:overlap]) {
			offset := len(self.data) - overlap
			self.data = append(self.data, bitmap[overlap:]...)
			return uint32(offset)
		}
	}

	offset := len(self.data)
	self.data = append(self.data, bitmap...)
	return uint32(offset)
}
