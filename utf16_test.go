// SPDX-FileCopyrightText: (C) 2024 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package transcode_test

import (
	"bytes"
	"testing"

	"github.com/textcodec/transcode"
)

func TestConvertUTF16ToUTF8Partial(t *testing.T) {
	tests := []struct {
		name        string
		src         []uint16
		dstLen      int
		wantRead    int
		wantWritten int
		wantBytes   []byte
	}{
		{
			name: "plain ascii, ample room", src: []uint16{'h', 'i'}, dstLen: 8,
			wantRead: 2, wantWritten: 2, wantBytes: []byte("hi"),
		},
		{
			name: "surrogate pair fits", src: []uint16{0xD83D, 0xDCA9}, dstLen: 4,
			wantRead: 2, wantWritten: 4, wantBytes: []byte{0xF0, 0x9F, 0x92, 0xA9},
		},
		{
			name: "unpaired high at end of input", src: []uint16{0xD800}, dstLen: 3,
			wantRead: 1, wantWritten: 3, wantBytes: []byte{0xEF, 0xBF, 0xBD},
		},
		{
			name: "unpaired high followed by non-low", src: []uint16{0xD800, 'x'}, dstLen: 16,
			wantRead: 2, wantWritten: 4, wantBytes: []byte{0xEF, 0xBF, 0xBD, 'x'},
		},
		{
			name: "unpaired low surrogate", src: []uint16{0xDC00}, dstLen: 3,
			wantRead: 1, wantWritten: 3, wantBytes: []byte{0xEF, 0xBF, 0xBD},
		},
		{
			name: "exact two-byte scalar, one byte of room left", src: []uint16{0x00A7}, dstLen: 1,
			wantRead: 1, wantWritten: 1, wantBytes: []byte{'?'},
		},
		{
			name: "exact two-byte scalar, two bytes of room", src: []uint16{0x00A7}, dstLen: 2,
			wantRead: 1, wantWritten: 2, wantBytes: []byte{0xC2, 0xA7},
		},
		{
			name: "three-byte scalar, zero room", src: []uint16{0x4E2D}, dstLen: 0,
			wantRead: 0, wantWritten: 0, wantBytes: []byte{},
		},
		{
			name: "three-byte scalar, two bytes of room", src: []uint16{0x4E2D}, dstLen: 2,
			wantRead: 1, wantWritten: 2, wantBytes: []byte{0xC2, 0xBF},
		},
		{
			name: "three-byte scalar, three bytes of room", src: []uint16{0x4E2D}, dstLen: 3,
			wantRead: 1, wantWritten: 3, wantBytes: []byte{0xE4, 0xB8, 0xAD},
		},
		{
			name: "surrogate pair, three bytes of room (doesn't fit)", src: []uint16{0xD83D, 0xDCA9}, dstLen: 3,
			wantRead: 2, wantWritten: 3, wantBytes: []byte{0xEF, 0xBF, 0xBD},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			dst := make([]byte, test.dstLen)
			read, written := transcode.ConvertUTF16ToUTF8Partial(test.src, dst)
			if read != test.wantRead || written != test.wantWritten {
				t.Fatalf("got (read=%d, written=%d), want (read=%d, written=%d)", read, written, test.wantRead, test.wantWritten)
			}
			if !bytes.Equal(dst[:written], test.wantBytes) {
				t.Errorf("wrote % x, want % x", dst[:written], test.wantBytes)
			}
		})
	}
}

func TestConvertUTF16ToUTF8PartialResumable(t *testing.T) {
	// The pair leads so that a 4-byte destination holds it exactly and the
	// first call stops there; the ASCII tail is converted on the next call,
	// so a chunk size this small genuinely forces a resumption instead of
	// converting everything in one pass.
	src := []uint16{0xD83D, 0xDCA9, 'a', 'b', 'c'}
	var out []byte
	total := 0
	for total < len(src) {
		dst := make([]byte, 4)
		read, written := transcode.ConvertUTF16ToUTF8Partial(src[total:], dst)
		if read == 0 && written == 0 {
			t.Fatalf("made no progress at offset %d", total)
		}
		out = append(out, dst[:written]...)
		total += read
	}
	want := []byte{0xF0, 0x9F, 0x92, 0xA9, 'a', 'b', 'c'}
	if !bytes.Equal(out, want) {
		t.Errorf("resumed output = % x, want % x", out, want)
	}
}

func TestConvertUTF16ToUTF8(t *testing.T) {
	src := []uint16{'h', 'i', 0x00A7, 0xD83D, 0xDCA9}
	dst := make([]byte, 3*len(src))
	n := transcode.ConvertUTF16ToUTF8(src, dst)
	want := []byte{'h', 'i', 0xC2, 0xA7, 0xF0, 0x9F, 0x92, 0xA9}
	if !bytes.Equal(dst[:n], want) {
		t.Errorf("got % x, want % x", dst[:n], want)
	}
}

func TestConvertUTF16ToUTF8PanicsOnUndersizedDst(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for undersized destination")
		}
	}()
	src := []uint16{'a', 'b', 'c'}
	dst := make([]byte, 3*len(src)-1)
	transcode.ConvertUTF16ToUTF8(src, dst)
}

func TestConvertUTF16ToUTF8EmptyInput(t *testing.T) {
	read, written := transcode.ConvertUTF16ToUTF8Partial(nil, nil)
	if read != 0 || written != 0 {
		t.Errorf("got (%d, %d), want (0, 0)", read, written)
	}
}
