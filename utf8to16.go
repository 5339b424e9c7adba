// SPDX-FileCopyrightText: (C) 2024 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package transcode

// invalidSubsequenceLen reports how many bytes (including the lead itself)
// make up the maximal ill-formed subsequence starting at a lead byte that
// DecodeCodePoint has already rejected. Per the Unicode "maximal subpart"
// recovery algorithm: if the lead's structural pattern is unrecognizable,
// the subsequence is just the lead; otherwise it extends through however
// many of the promised continuation bytes are actually present and valid,
// stopping at the first invalid or missing one, or spanning the whole
// sequence when every continuation was structurally valid but the
// assembled scalar was overlong or out of range.
func invalidSubsequenceLen(lead byte, afterLead, limit int, b []byte) int {
	width, ok := leadWidth(lead)
	if !ok {
		return 1
	}
	continuations := width - 1
	count := 0
	for count < continuations && afterLead+count < limit {
		if !IsContinuation(b[afterLead+count]) {
			break
		}
		count++
	}
	return 1 + count
}

// putUTF16 writes cp as one or two UTF-16 code units into dst starting at
// w, returning the updated write position. The caller must ensure dst has
// enough room.
func putUTF16(dst []uint16, w int, cp rune) int {
	if cp < 0x10000 {
		dst[w] = uint16(cp)
		return w + 1
	}
	cp -= 0x10000
	dst[w] = uint16(0xD800 + (cp >> 10))
	dst[w+1] = uint16(0xDC00 + (cp & 0x3FF))
	return w + 2
}

// ConvertUTF8ToUTF16 converts src to UTF-16, panicking if dst is not at
// least len(src)+1 units (one UTF-8 byte always yields at most one UTF-16
// unit, including the case of a maximal invalid subsequence collapsing to
// a single replacement unit). Each maximal invalid subsequence in src
// yields exactly one U+FFFD and the reader advances past the whole
// subsequence, so malformed input never produces a run of replacement
// units proportional to its byte length.
func ConvertUTF8ToUTF16(src []byte, dst []uint16) int {
	if len(dst) <= len(src) {
		panic("transcode: destination too small for ConvertUTF8ToUTF16")
	}
	n := len(src)
	r, w := 0, 0
	for r < n {
		c := src[r]
		if IsASCII(c) {
			dst[w] = uint16(c)
			w++
			r++
			continue
		}

		cursor := r + 1
		cp, ok := DecodeCodePoint(c, &cursor, n, src, Reporter{})
		if !ok {
			dst[w] = uint16(replacementChar)
			w++
			r += invalidSubsequenceLen(c, r+1, n, src)
			continue
		}
		w = putUTF16(dst, w, cp)
		r = cursor
	}
	return w
}

// ConvertUTF8ToUTF16WithoutReplacement converts src to UTF-16 and returns
// (written, true) iff all of src was valid UTF-8 and fit in dst. If src is
// invalid or dst is too small, it returns (0, false); any units written
// before the failure are not meaningful and must be discarded by the
// caller.
func ConvertUTF8ToUTF16WithoutReplacement(src []byte, dst []uint16) (int, bool) {
	n := len(src)
	r, w := 0, 0
	for r < n {
		c := src[r]
		if IsASCII(c) {
			if w >= len(dst) {
				return 0, false
			}
			dst[w] = uint16(c)
			w++
			r++
			continue
		}

		cursor := r + 1
		cp, ok := DecodeCodePoint(c, &cursor, n, src, Reporter{})
		if !ok {
			return 0, false
		}
		need := 1
		if cp >= 0x10000 {
			need = 2
		}
		if w+need > len(dst) {
			return 0, false
		}
		w = putUTF16(dst, w, cp)
		r = cursor
	}
	return w, true
}

// UnsafeConvertValidUTF8ToUTF16 converts src to UTF-16 without any
// validation. Its precondition is that src is valid UTF-8 and
// len(dst) >= len(src); violating it produces undefined results (it may
// panic from an out-of-bounds write, or silently produce garbage).
func UnsafeConvertValidUTF8ToUTF16(src []byte, dst []uint16) int {
	if len(dst) < len(src) {
		panic("transcode: destination too small for UnsafeConvertValidUTF8ToUTF16")
	}
	n := len(src)
	r, w := 0, 0
	for r < n {
		c := src[r]
		if IsASCII(c) {
			dst[w] = uint16(c)
			w++
			r++
			continue
		}
		cursor := r + 1
		cp, _ := DecodeCodePoint(c, &cursor, n, src, Reporter{})
		w = putUTF16(dst, w, cp)
		r = cursor
	}
	return w
}
