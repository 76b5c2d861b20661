/*
Package emoji implements the UTS #51 Extended_Pictographic property.

Extended_Pictographic identifies the base emoji code points, the ones
that combine with ZWJ to form emoji sequences. Word breaking needs
exactly one bit of emoji knowledge: rule WB3c of UAX#29 keeps a ZWJ
and a following pictograph together.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Attention

Before using emoji classes, clients will have to initialize them.

  SetupEmojiClasses()

This initializes the code-point range table. Initialization is
not done beforehand, as it consumes some memory. */
package emoji

import (
	"sync"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

//go:generate go run ./internal/generator -v

// Extended_Pictographic is the range table for the UTS#51 property of
// the same name. Will be initialized with SetupEmojiClasses().
// Clients can check with unicode.Is(emoji.Extended_Pictographic, rune).
var Extended_Pictographic *unicode.RangeTable

var setupOnce sync.Once

// SetupEmojiClasses is the top-level preparation function: it merges
// the generated range-table parts into the Extended_Pictographic
// table. (Concurrency-safe.)
//
// IsExtendedPictographic will call this transparently if it has not
// been called beforehand.
func SetupEmojiClasses() {
	setupOnce.Do(func() {
		Extended_Pictographic = rangetable.Merge(
			_ExtendedPictographicBMP, _ExtendedPictographicSMP)
	})
}

// IsExtendedPictographic reports whether the code point carries the
// Extended_Pictographic property.
func IsExtendedPictographic(r rune) bool {
	SetupEmojiClasses()
	return unicode.Is(Extended_Pictographic, r)
}
