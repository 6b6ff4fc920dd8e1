// Package srt parses SubRip subtitles.
//
// Parser is a pull-based state machine over a LineSource. Each call to Next
// reads as many lines as it needs to complete one Item and stops; nothing
// beyond the item in flight and one buffered position line is held in
// memory. A leading byte-order mark, "\r\n" line endings and multi-line
// captions are accepted. Malformed input yields a *ParseError naming the
// failing step and wrapping the underlying cause, after which the parser
// settles and returns io.EOF.
//
//	items, err := srt.FromString("1\n00:00:01,100 --> 00:00:02,120\nHello!")
//
// Positions are read verbatim and are not required to be contiguous.
package srt
