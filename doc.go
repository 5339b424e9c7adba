// SPDX-FileCopyrightText: (C) 2024 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

/*
Package transcode implements bounded, allocation-free conversion and
validation among UTF-8, UTF-16 (native-endian code units), and Latin-1
(ISO-8859-1).

Not supported:

  - Locale-aware transformation, normalization, case folding, bidi handling,
    or grapheme segmentation
  - Streaming converters that save decode state across calls
  - Endianness translation of UTF-16, or BOM detection/stripping

Every function here is a pure, synchronous transformation of an input
buffer into a caller-supplied output buffer: there are no allocations, no
shared state, and no blocking, so the package is safe to call from any
number of goroutines at once as long as each call owns its buffers.

# Validation

[IsUTF8] reports whether a byte slice is valid UTF-8. [ValidUpTo] finds the
length of the longest valid-UTF-8 prefix, which is more useful than a
boolean when a caller wants to recover as much of a truncated or corrupted
buffer as possible:

	n := transcode.ValidUpTo(b)
	clean, rest := b[:n], b[n:]

# Decoding one code point

[DecodeCodePoint] decodes a single code point from a cursor positioned
just after its lead byte, reporting one of five distinct failure
categories through a [Reporter] rather than a single generic error:

	r := transcode.Reporter{
		BadLead: func() { fmt.Println("malformed lead byte") },
	}
	cp, ok := transcode.DecodeCodePoint(lead, &cursor, limit, b, r)

# Bounded conversion

[ConvertUTF16ToUTF8Partial] is the core of chunked transcoding: it never
writes a partial code point, instead filling the remaining destination
space with a [Reporter]-free replacement character sized to exactly use
what's left, so the output is always well-formed UTF-8 no matter where the
destination buffer ends:

	read, written := transcode.ConvertUTF16ToUTF8Partial(src, dst)
	src = src[read:]

# Latin-1 bridges

[ConvertLatin1ToUTF8], [ConvertLatin1ToUTF16], [IsUTF8Latin1], and related
functions bridge to and from the Latin-1 subset of Unicode (exactly
U+0000..U+00FF), for callers that need to interoperate with legacy
single-byte text.
*/
package transcode
