package model

type ErrorResponse struct {
	Error string `json:"detail"`
}

type TransposeRequest struct {
	Text      string `json:"text"`
	Semitones int    `json:"semitones"`
}

type TransposeResponse struct {
	Text   string   `json:"text"`
	Chords []string `json:"chords"`
}

type SessionRequest struct {
	Text string `json:"text"`
	Key  string `json:"key"`
}

type SessionView struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Key         string `json:"key"`
	OriginalKey string `json:"original_key"`
	Semitones   int    `json:"semitones"`
}

// DetectRequest carries one analysis window. Tuning defaults to standard.
type DetectRequest struct {
	Samples    []float64 `json:"samples"`
	SampleRate float64   `json:"sample_rate"`
	Tuning     string    `json:"tuning"`
}

type DetectResponse struct {
	Detected  bool    `json:"detected"`
	Reason    string  `json:"reason"`
	Frequency float64 `json:"frequency,omitempty"`
	Note      string  `json:"note,omitempty"`
	String    *int    `json:"string,omitempty"`
	Target    float64 `json:"target,omitempty"`
	Cents     int     `json:"cents"`
	Status    string  `json:"status,omitempty"`
}

type TuningView struct {
	Name        string     `json:"name"`
	Notes       [6]string  `json:"notes"`
	Frequencies [6]float64 `json:"frequencies"`
}

type SheetRequest struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
	Key    string `json:"key"`
	Body   string `json:"body"`
}

type SheetListResponse struct {
	Sheets []Sheet `json:"sheets"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
