// SPDX-FileCopyrightText: (C) 2024 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package transcode

// IsUTF16Latin1 reports whether every code unit of src is < 0x100, i.e.
// the sequence could be losslessly reinterpreted as Latin-1.
func IsUTF16Latin1(src []uint16) bool {
	for _, u := range src {
		if u >= 0x100 {
			return false
		}
	}
	return true
}

// IsUTF8Latin1 reports whether src is valid UTF-8 AND every scalar it
// decodes to is < 0x100.
func IsUTF8Latin1(src []byte) bool {
	return utf8Latin1PrefixLen(src, true) == len(src)
}

// UnsafeIsValidUTF8Latin1 reports whether every scalar in src is < 0x100.
// Its precondition is that src is already known to be valid UTF-8;
// passing invalid UTF-8 produces undefined results.
func UnsafeIsValidUTF8Latin1(src []byte) bool {
	return utf8Latin1PrefixLen(src, false) == len(src)
}

// UTF8Latin1UpTo returns the length of the longest prefix of src that is
// both valid UTF-8 and entirely within the Latin-1 subset (every scalar
// < 0x100).
func UTF8Latin1UpTo(src []byte) int {
	return utf8Latin1PrefixLen(src, true)
}

// UnsafeValidUTF8Latin1UpTo returns the length of the longest prefix of
// src that is entirely within the Latin-1 subset. Its precondition is
// that src is already known to be valid UTF-8.
func UnsafeValidUTF8Latin1UpTo(src []byte) int {
	return utf8Latin1PrefixLen(src, false)
}

// utf8Latin1PrefixLen scans src for the longest prefix that is within the
// Latin-1 subset, U+0000..U+00FF. It stops at the first decoder failure,
// same as [ValidUpTo], whatever the value of checkValidity: both modes run
// the same decoder and return the same length.
func utf8Latin1PrefixLen(src []byte, checkValidity bool) int {
	limit := len(src)
	i := 0
	for i < limit {
		c := src[i]
		if IsASCII(c) {
			i++
			continue
		}

		cursor := i + 1
		cp, ok := DecodeCodePoint(c, &cursor, limit, src, Reporter{})
		if !ok {
			if checkValidity {
				return i
			}
			// Precondition says this can't happen; if it does anyway,
			// there is nothing meaningful left to check.
			return i
		}
		if cp >= 0x100 {
			return i
		}
		i = cursor
	}
	return i
}
