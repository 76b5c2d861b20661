/*
Package words implements the default word-boundary algorithm of
Unicode Annex #29, section 4.1.

Content

UAX#29 is the Unicode Annex for breaking text into graphemes, words
and sentences. This module is about the word part only: given a
string, it reports the positions at which word boundaries occur, and
it can slice the string into the spans between those boundaries or
into the "words" among them.

Boundary positions are byte offsets into the input string, so callers
can slice the original input directly. Boundaries bracket every
scalar value of the input: for non-empty text, the first boundary is
at 0 and the last one at len(text).

Typical Usage

Clients either split a string in one go,

  words.SplitWords("The quick (“brown”) fox")

or walk boundaries and spans lazily:

  spans := words.Spans(input)
  for spans.Next() {
      sp := spans.Span()
      // sp.Start, sp.End, sp.Text
  }

  bounds := words.FindBoundaries(input)
  for bounds.Next() {
      // bounds.Pos()
  }

Attention

Before resolving word-break properties, clients usually should
initialize the property classes:

  SetupClasses()

This builds the packed property lookup and the emoji class table.
Initialization is not done beforehand, as it consumes some memory.
However, the property resolver will call it if the tables are not yet
initialized.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.
*/
package words

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to uax.segment .
func tracer() tracing.Trace {
	return tracing.Select("uax.segment")
}

// Version is the Unicode version this package conforms to. The major
// version of the module tracks the major version of the Unicode
// standard it implements.
const Version = "15.0.0"
