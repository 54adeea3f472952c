package bitfont

import "unicode/utf8"

// A minimal left-to-right string iterator. Used instead of `range`
// so that draw iterators can be reset and so that the current byte
// position stays explicit (restartability requires it).
type ltrStringIterator struct{ index int }

// Will return -1 if no rune is left.
func (self *ltrStringIterator) Next(text string) rune {
	if self.index < len(text) {
		codePoint, runeSize := utf8.DecodeRuneInString(text[self.index:])
		self.index += runeSize
		return codePoint
	} else {
		return -1
	}
}

func (self *ltrStringIterator) PeekNext(text string) rune {
	if self.index < len(text) {
		codePoint, _ := utf8.DecodeRuneInString(text[self.index:])
		return codePoint
	} else {
		return -1
	}
}
