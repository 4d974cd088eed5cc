package chord

// Session tracks the cumulative transpose applied to a chord sheet.
//
// The counter is kept raw (never wrapped) so Reset can undo the whole shift in
// one step instead of replaying the individual moves.
type Session struct {
	key       string
	text      string
	semitones int
}

func NewSession(text string, key string) *Session {
	return &Session{key: key, text: text}
}

func (s *Session) Up() string {
	return s.Shift(1)
}

func (s *Session) Down() string {
	return s.Shift(-1)
}

// Shift moves the displayed text by n semitones and returns it.
func (s *Session) Shift(n int) string {
	s.text = TransposeText(s.text, n)
	s.semitones += n
	return s.text
}

// Reset applies the inverse of the running total as a single shift.
func (s *Session) Reset() string {
	s.text = TransposeText(s.text, -s.semitones)
	s.semitones = 0
	return s.text
}

func (s *Session) Text() string {
	return s.text
}

func (s *Session) Semitones() int {
	return s.semitones
}

// Key is the original key moved by the running total. An empty original key
// stays empty.
func (s *Session) Key() string {
	if s.key == "" {
		return ""
	}
	return TransposeToken(s.key, s.semitones)
}

func (s *Session) OriginalKey() string {
	return s.key
}
