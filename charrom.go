package crt2png

// Character stroke ROM for the 64-code CDC display character set.
// Each entry is the ordered control-word sequence for one character,
// up to 23 timing rows; shorter entries simply blank the beam early.
// Codes follow the CDC display code assignment: 00 is colon, 01-32
// (octal) are A-Z, 33-44 are the digits, and the remainder is
// punctuation. Unused trailing rows are omitted rather than stored as
// zero padding.

// RomRows is the fixed number of timing rows the hardware steps
// through per character; no entry may exceed it.
const RomRows = 23

// DisplayChars maps display code (index) to the character it draws.
const DisplayChars = ":ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789+-*/()$= ,.#[]%\"_!&'?<>@\\^;"

// SpaceCode is the display code of the blank character, the fallback
// for every rune outside the character set.
const SpaceCode = 45

var charRom = [64][]RomWord{
	// : (code 00)
	{0x09, 0x04, 0x10, 0x10, 0x02, 0x01, 0x10, 0x10},
	// A
	{0x16, 0x06, 0x06, 0x03, 0x06, 0x06, 0x06, 0x0F, 0x19, 0x09, 0x04, 0x0C, 0x18, 0x08, 0x10},
	// B
	{0x12, 0x02, 0x02, 0x08, 0x08, 0x03, 0x05, 0x01, 0x0C, 0x05, 0x08, 0x08, 0x0C, 0x18, 0x08, 0x15, 0x01, 0x0C, 0x05, 0x08, 0x08, 0x10},
	// C
	{0x0A, 0x0A, 0x09, 0x0C, 0x15, 0x08, 0x08, 0x03, 0x05, 0x02, 0x02, 0x0C, 0x05, 0x08, 0x08, 0x03, 0x05, 0x10},
	// D
	{0x12, 0x02, 0x02, 0x08, 0x08, 0x03, 0x05, 0x05, 0x02, 0x0C, 0x05, 0x05, 0x08, 0x08, 0x10},
	// E
	{0x12, 0x02, 0x02, 0x08, 0x08, 0x04, 0x0F, 0x1A, 0x09, 0x04, 0x0C, 0x18, 0x08, 0x0C, 0x1A, 0x09, 0x0C, 0x18, 0x08, 0x04, 0x10},
	// F
	{0x12, 0x02, 0x02, 0x08, 0x08, 0x04, 0x0F, 0x1A, 0x09, 0x04, 0x0C, 0x18, 0x08, 0x10},
	// G
	{0x0A, 0x0A, 0x09, 0x0C, 0x15, 0x08, 0x08, 0x03, 0x05, 0x02, 0x02, 0x0C, 0x05, 0x08, 0x08, 0x03, 0x05, 0x02, 0x0C, 0x08, 0x10},
	// H
	{0x12, 0x02, 0x02, 0x03, 0x12, 0x01, 0x18, 0x08, 0x08, 0x03, 0x12, 0x01, 0x03, 0x12, 0x02, 0x02, 0x10},
	// I
	{0x04, 0x18, 0x08, 0x0C, 0x18, 0x12, 0x02, 0x02, 0x18, 0x0C, 0x18, 0x08, 0x10},
	// J
	{0x01, 0x03, 0x15, 0x08, 0x03, 0x05, 0x02, 0x02, 0x01, 0x0C, 0x18, 0x0C, 0x18, 0x08, 0x10},
	// K
	{0x12, 0x02, 0x02, 0x18, 0x08, 0x08, 0x0F, 0x19, 0x09, 0x09, 0x0C, 0x09, 0x09, 0x09, 0x10},
	// L
	{0x02, 0x02, 0x02, 0x03, 0x12, 0x02, 0x02, 0x08, 0x08, 0x04, 0x10},
	// M
	{0x12, 0x02, 0x02, 0x03, 0x05, 0x05, 0x05, 0x03, 0x05, 0x05, 0x05, 0x03, 0x02, 0x02, 0x02, 0x10},
	// N
	{0x12, 0x02, 0x02, 0x03, 0x0A, 0x0A, 0x0A, 0x03, 0x02, 0x02, 0x02, 0x10},
	// O
	{0x01, 0x12, 0x02, 0x05, 0x08, 0x08, 0x03, 0x05, 0x02, 0x02, 0x0C, 0x05, 0x08, 0x08, 0x03, 0x05, 0x10},
	// P
	{0x12, 0x02, 0x02, 0x08, 0x08, 0x03, 0x05, 0x01, 0x0C, 0x05, 0x08, 0x08, 0x10},
	// Q
	{0x01, 0x12, 0x02, 0x05, 0x08, 0x08, 0x03, 0x05, 0x02, 0x02, 0x0C, 0x05, 0x08, 0x08, 0x03, 0x05, 0x0C, 0x19, 0x08, 0x03, 0x15, 0x05, 0x10},
	// R
	{0x12, 0x02, 0x02, 0x08, 0x08, 0x03, 0x05, 0x01, 0x0C, 0x05, 0x08, 0x08, 0x0C, 0x18, 0x04, 0x15, 0x05, 0x05, 0x10},
	// S
	{0x01, 0x03, 0x15, 0x08, 0x08, 0x03, 0x05, 0x01, 0x0C, 0x05, 0x08, 0x08, 0x05, 0x01, 0x0C, 0x05, 0x08, 0x08, 0x03, 0x05, 0x10},
	// T
	{0x02, 0x02, 0x02, 0x18, 0x08, 0x08, 0x0C, 0x18, 0x04, 0x03, 0x12, 0x02, 0x02, 0x10},
	// U
	{0x02, 0x02, 0x02, 0x03, 0x12, 0x02, 0x01, 0x05, 0x08, 0x08, 0x03, 0x05, 0x02, 0x02, 0x01, 0x10},
	// V
	{0x02, 0x02, 0x02, 0x03, 0x16, 0x06, 0x06, 0x03, 0x06, 0x06, 0x06, 0x10},
	// W
	{0x02, 0x02, 0x02, 0x03, 0x16, 0x02, 0x02, 0x03, 0x06, 0x05, 0x03, 0x06, 0x05, 0x03, 0x06, 0x02, 0x02, 0x10},
	// X
	{0x1A, 0x0A, 0x0A, 0x0C, 0x18, 0x08, 0x08, 0x0F, 0x1A, 0x0A, 0x0A, 0x10},
	// Y
	{0x02, 0x02, 0x02, 0x03, 0x15, 0x05, 0x05, 0x03, 0x05, 0x05, 0x05, 0x0F, 0x15, 0x05, 0x05, 0x12, 0x01, 0x10},
	// Z
	{0x02, 0x02, 0x02, 0x18, 0x08, 0x08, 0x0F, 0x0A, 0x0A, 0x0A, 0x0C, 0x08, 0x08, 0x08, 0x10},
	// 0
	{0x01, 0x12, 0x02, 0x05, 0x08, 0x08, 0x03, 0x05, 0x02, 0x02, 0x0C, 0x05, 0x08, 0x08, 0x03, 0x05, 0x0C, 0x14, 0x1A, 0x0A, 0x10},
	// 1
	{0x0A, 0x02, 0x01, 0x15, 0x03, 0x02, 0x02, 0x02, 0x0C, 0x18, 0x0C, 0x18, 0x08, 0x10},
	// 2
	{0x02, 0x02, 0x01, 0x15, 0x08, 0x08, 0x03, 0x05, 0x01, 0x0C, 0x0A, 0x09, 0x09, 0x0C, 0x08, 0x08, 0x08, 0x10},
	// 3
	{0x02, 0x02, 0x01, 0x15, 0x08, 0x08, 0x03, 0x05, 0x01, 0x0C, 0x05, 0x08, 0x04, 0x0C, 0x18, 0x04, 0x15, 0x01, 0x0C, 0x05, 0x08, 0x08, 0x10},
	// 4
	{0x08, 0x08, 0x12, 0x02, 0x02, 0x0F, 0x0A, 0x0A, 0x0C, 0x08, 0x08, 0x08, 0x10},
	// 5
	{0x0A, 0x0A, 0x0A, 0x0C, 0x18, 0x08, 0x04, 0x03, 0x02, 0x0C, 0x08, 0x08, 0x05, 0x02, 0x0C, 0x05, 0x08, 0x08, 0x03, 0x05, 0x10},
	// 6
	{0x0A, 0x0A, 0x06, 0x0F, 0x1A, 0x0A, 0x01, 0x0C, 0x05, 0x08, 0x03, 0x05, 0x01, 0x0C, 0x05, 0x08, 0x03, 0x05, 0x10},
	// 7
	{0x02, 0x02, 0x02, 0x18, 0x08, 0x08, 0x0F, 0x0A, 0x0A, 0x02, 0x10},
	// 8
	{0x04, 0x18, 0x08, 0x02, 0x02, 0x02, 0x0C, 0x08, 0x08, 0x03, 0x02, 0x02, 0x02, 0x03, 0x12, 0x01, 0x0C, 0x18, 0x08, 0x10},
	// 9
	{0x04, 0x1A, 0x0A, 0x01, 0x0C, 0x05, 0x08, 0x03, 0x05, 0x01, 0x0C, 0x05, 0x08, 0x03, 0x05, 0x10},
	// +
	{0x09, 0x04, 0x12, 0x02, 0x0F, 0x1A, 0x0C, 0x18, 0x08, 0x10},
	// -
	{0x06, 0x01, 0x18, 0x08, 0x10},
	// *
	{0x05, 0x1A, 0x0A, 0x0C, 0x18, 0x08, 0x0F, 0x1A, 0x0A, 0x0F, 0x1A, 0x08, 0x0C, 0x18, 0x08, 0x10},
	// /
	{0x1A, 0x0A, 0x0A, 0x10},
	// (
	{0x08, 0x08, 0x0C, 0x1A, 0x02, 0x0C, 0x0A, 0x10},
	// )
	{0x08, 0x1A, 0x02, 0x0C, 0x0A, 0x10},
	// $
	{0x0A, 0x0A, 0x05, 0x0C, 0x15, 0x08, 0x03, 0x05, 0x0C, 0x05, 0x0A, 0x05, 0x0C, 0x05, 0x08, 0x0C, 0x14, 0x03, 0x12, 0x02, 0x02, 0x10},
	// =
	{0x06, 0x18, 0x08, 0x0C, 0x1A, 0x08, 0x0C, 0x18, 0x08, 0x10},
	// space
	{},
	// ,
	{0x09, 0x04, 0x0F, 0x15, 0x10},
	// .
	{0x08, 0x14, 0x01, 0x0C, 0x04, 0x03, 0x01, 0x10},
	// #
	{0x08, 0x12, 0x02, 0x02, 0x18, 0x03, 0x12, 0x02, 0x02, 0x03, 0x1A, 0x0C, 0x18, 0x08, 0x08, 0x12, 0x0C, 0x18, 0x08, 0x08, 0x10},
	// [
	{0x08, 0x08, 0x0C, 0x18, 0x02, 0x02, 0x02, 0x0C, 0x08, 0x10},
	// ]
	{0x08, 0x18, 0x02, 0x02, 0x02, 0x0C, 0x08, 0x10},
	// %
	{0x1A, 0x0A, 0x0A, 0x0F, 0x19, 0x08, 0x04, 0x03, 0x11, 0x04, 0x03, 0x01, 0x0C, 0x04, 0x1A, 0x0A, 0x14, 0x01, 0x0C, 0x04, 0x03, 0x01, 0x10},
	// "
	{0x0A, 0x02, 0x12, 0x18, 0x03, 0x12, 0x10},
	// _
	{0x18, 0x08, 0x08, 0x10},
	// !
	{0x0A, 0x04, 0x12, 0x02, 0x03, 0x12, 0x02, 0x02, 0x10, 0x10},
	// &
	{0x08, 0x08, 0x08, 0x0C, 0x1A, 0x0A, 0x05, 0x01, 0x0C, 0x08, 0x03, 0x01, 0x0C, 0x0A, 0x05, 0x01, 0x0C, 0x05, 0x08, 0x03, 0x0A, 0x05, 0x10},
	// '
	{0x0A, 0x06, 0x12, 0x10},
	// ?
	{0x02, 0x02, 0x01, 0x15, 0x08, 0x08, 0x03, 0x05, 0x01, 0x0C, 0x0A, 0x04, 0x12, 0x10, 0x10},
	// <
	{0x08, 0x08, 0x04, 0x0C, 0x1A, 0x09, 0x0C, 0x0A, 0x09, 0x10},
	// >
	{0x04, 0x1A, 0x09, 0x0C, 0x0A, 0x09, 0x10},
	// @
	{0x08, 0x08, 0x0C, 0x18, 0x0A, 0x02, 0x0C, 0x0A, 0x08, 0x03, 0x0A, 0x01, 0x0C, 0x08, 0x04, 0x03, 0x01, 0x0C, 0x08, 0x10},
	// \
	{0x02, 0x02, 0x02, 0x03, 0x1A, 0x0A, 0x0A, 0x10},
	// ^
	{0x06, 0x02, 0x1A, 0x03, 0x0A, 0x10},
	// ;
	{0x0A, 0x05, 0x10, 0x10, 0x03, 0x02, 0x0C, 0x15, 0x10},
}

// RomAt returns the control words for a display code. Codes outside
// [0, 63] return the blank entry.
func RomAt(code int) []RomWord {
	if code < 0 || code >= len(charRom) {
		return charRom[SpaceCode]
	}
	return charRom[code]
}

// CharRom returns the control words for a character. Characters with
// no ROM entry fall back to the blank entry; lower-case letters map
// to their upper-case glyphs.
func CharRom(ch rune) []RomWord {
	return RomAt(DisplayCode(ch))
}

// DisplayCode returns the display code for a character, or SpaceCode
// when the character is not in the set.
func DisplayCode(ch rune) int {
	if ch >= 'a' && ch <= 'z' {
		ch -= 'a' - 'A'
	}
	for i, r := range DisplayChars {
		if r == ch {
			return i
		}
	}
	return SpaceCode
}

// DisplayRune returns the character drawn by a display code.
func DisplayRune(code int) rune {
	if code < 0 || code >= len(DisplayChars) {
		return ' '
	}
	return rune(DisplayChars[code])
}
