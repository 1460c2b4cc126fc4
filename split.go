package yard

import (
	"io"
	"regexp"
	"unicode/utf8"
)

// rawToken is a piece of input before classification.
type rawToken struct {
	text string
	// col is the 1-based rune position of the start of the token.
	col int
}

// scanner produces raw tokens.
type scanner interface {
	// next scans the next token. At the end of input, the error is io.EOF.
	next() (rawToken, error)
	// end returns the position just past the last rune scanned.
	end() int
}

// splitter scans tokens separated by matches of a delimiter pattern.
// Empty tokens, as from repeated delimiters, are skipped.
type splitter struct {
	src string
	re  *regexp.Regexp
	off int
	col int
}

func split(src string, re *regexp.Regexp) *splitter {
	return &splitter{src: src, re: re}
}

func (s *splitter) next() (rawToken, error) {
	for s.off < len(s.src) {
		start := s.off
		var text string
		if loc := s.re.FindStringIndex(s.src[start:]); loc != nil {
			text = s.src[start : start+loc[0]]
			s.off = start + loc[1]
		} else {
			text = s.src[start:]
			s.off = len(s.src)
		}
		col := s.col + 1
		s.col += utf8.RuneCountInString(s.src[start:s.off])
		if text == "" {
			continue
		}
		return rawToken{text: text, col: col}, nil
	}
	return rawToken{}, io.EOF
}

func (s *splitter) end() int {
	return s.col + 1
}
