// SPDX-FileCopyrightText: (C) 2024 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package transcode_test

import (
	"testing"

	"github.com/textcodec/transcode"
)

func TestIsUTF8(t *testing.T) {
	tests := []struct {
		name string
		b    []byte
		want bool
	}{
		{"empty", nil, true},
		{"ascii", []byte("hello, world"), true},
		{"pile of poo", []byte{0xF0, 0x9F, 0x92, 0xA9}, true},
		{"mixed", []byte("caf\xc3\xa9"), true},
		{"truncated two-byte", []byte{0x41, 0xC2}, false},
		{"stray continuation", []byte{0x41, 0x80, 0x41}, false},
		{"overlong", []byte{0xC0, 0x80}, false},
		{"encoded surrogate", []byte{0xED, 0xA0, 0x80}, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := transcode.IsUTF8(test.b); got != test.want {
				t.Errorf("IsUTF8(% x) = %v, want %v", test.b, got, test.want)
			}
		})
	}
}

func TestValidUpTo(t *testing.T) {
	tests := []struct {
		name string
		b    []byte
		want int
	}{
		{"empty", nil, 0},
		{"all valid", []byte("abc"), 3},
		{"valid prefix, bad lead", []byte{'a', 'b', 0x80}, 2},
		{"valid prefix, truncated tail", []byte{'a', 0xE0, 0xA0}, 1},
		{"valid multibyte prefix then break", []byte{0xC2, 0xA9, 'x', 0xFF}, 3},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := transcode.ValidUpTo(test.b); got != test.want {
				t.Errorf("ValidUpTo(% x) = %d, want %d", test.b, got, test.want)
			}
		})
	}
}

func TestValidUpToConsistentWithIsUTF8(t *testing.T) {
	cases := [][]byte{
		nil,
		[]byte("plain ascii"),
		[]byte{0xC2, 0xA9},
		{0x80},
		{0xE0, 0xA0, 0x80, 0xFF},
		{0xF0, 0x9F, 0x92, 0xA9, 0xED, 0xA0, 0x80},
	}
	for _, b := range cases {
		validUpTo := transcode.ValidUpTo(b)
		isUTF8 := transcode.IsUTF8(b)
		if (validUpTo == len(b)) != isUTF8 {
			t.Errorf("% x: ValidUpTo=%d len=%d but IsUTF8=%v", b, validUpTo, len(b), isUTF8)
		}
	}
}
