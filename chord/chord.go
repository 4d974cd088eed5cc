package chord

import (
	"regexp"

	"github.com/jsphweid/chording/util"
)

var sharpScale = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
var flatScale = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

// The leading group stands in for a word boundary (RE2 has no lookbehind).
// Altered extensions such as #9 or b5 belong to the suffix. The trailing
// boundary is checked by hand in TransposeText.
var tokenPattern = regexp.MustCompile(`(?:^|[^\w#/])([A-G][#b]?(?:maj|min|m|M|sus|aug|dim|add|\d|[#b]\d)*(?:/[A-G][#b]?)?)`)

type Token struct {
	Root   string
	Suffix string
}

func (t Token) String() string {
	return t.Root + t.Suffix
}

// PitchClass is the index of the root in the chromatic scale, C = 0.
func (t Token) PitchClass() int {
	return indexOf(t.Root)
}

func indexOf(root string) int {
	for i := range sharpScale {
		if sharpScale[i] == root || flatScale[i] == root {
			return i
		}
	}
	return -1
}

func splitRoot(token string) (string, string) {
	if len(token) >= 2 && (token[1] == '#' || token[1] == 'b') {
		return token[:2], token[2:]
	}
	if len(token) >= 1 {
		return token[:1], token[1:]
	}
	return "", ""
}

// ParseToken splits a chord token into root and suffix. ok is false when the
// root is not one of the twelve recognized spellings.
func ParseToken(token string) (Token, bool) {
	root, suffix := splitRoot(token)
	if indexOf(root) < 0 {
		return Token{}, false
	}
	return Token{Root: root, Suffix: suffix}, true
}

// TransposeToken shifts the root of token by semitones. The new root is always
// spelled with sharps; the suffix is left alone. Tokens with an unknown root
// are returned unchanged.
func TransposeToken(token string, semitones int) string {
	shift := util.Mod(semitones, 12)
	if shift == 0 {
		return token
	}
	t, ok := ParseToken(token)
	if !ok {
		return token
	}
	t.Root = sharpScale[util.Mod(t.PitchClass()+shift, 12)]
	return t.String()
}

// TransposeText rewrites every chord token found in text and leaves the rest
// byte-for-byte intact.
func TransposeText(text string, semitones int) string {
	if util.Mod(semitones, 12) == 0 {
		return text
	}

	matches := tokenPattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	var res []byte
	last := 0
	for _, m := range matches {
		start, end := m[2], m[3]
		if !atBoundary(text, start, end) {
			continue
		}
		res = append(res, text[last:start]...)
		res = append(res, TransposeToken(text[start:end], semitones)...)
		last = end
	}
	res = append(res, text[last:]...)
	return string(res)
}

// Tokens returns every chord token in text, in order of appearance.
func Tokens(text string) []Token {
	var res []Token
	for _, m := range tokenPattern.FindAllStringSubmatchIndex(text, -1) {
		start, end := m[2], m[3]
		if !atBoundary(text, start, end) {
			continue
		}
		if t, ok := ParseToken(text[start:end]); ok {
			res = append(res, t)
		}
	}
	return res
}

// atBoundary reports whether the token text[start:end] ends a word. A '#'
// right after a bare root ("C##") is not a chord; after a suffix it is
// punctuation.
func atBoundary(text string, start, end int) bool {
	if end >= len(text) {
		return true
	}
	c := text[end]
	if c == '#' {
		_, suffix := splitRoot(text[start:end])
		return suffix != ""
	}
	return !isWordByte(c)
}

func isWordByte(c byte) bool {
	return c == '_' ||
		('0' <= c && c <= '9') ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z')
}
