package pitch

// Reason says why a cycle did or did not produce an estimate.
type Reason int

const (
	Detected Reason = iota
	InsufficientSignal
	NoPeriodicity
	OutOfRange
)

func (r Reason) String() string {
	switch r {
	case Detected:
		return "detected"
	case InsufficientSignal:
		return "insufficient signal"
	case NoPeriodicity:
		return "no periodicity"
	case OutOfRange:
		return "out of range"
	default:
		return "unknown"
	}
}

type Estimate struct {
	Frequency float64
	Note      string

	// String indexes the closest target of the active tuning
	String int
	Target float64
	Cents  int
	Status Status
}

// Result is the outcome of one analysis cycle. Estimate is only meaningful
// when Reason is Detected.
type Result struct {
	Reason   Reason
	Estimate Estimate
}

func (r Result) Detected() bool {
	return r.Reason == Detected
}

type Analyzer struct {
	Detector *Detector
	RMSGate  float64
	MinFreq  float64
	MaxFreq  float64
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{
		Detector: NewDetector(),
		RMSGate:  DefaultRMSGate,
		MinFreq:  MinFrequency,
		MaxFreq:  MaxFrequency,
	}
}

// Analyze runs one full cycle: energy gate, detection, band check, then note,
// closest target and cents against targets.
func (a *Analyzer) Analyze(buffer []float64, sampleRate float64, targets []float64) Result {
	if RMS(buffer) < a.RMSGate {
		return Result{Reason: InsufficientSignal}
	}

	freq, ok := a.Detector.Detect(buffer, sampleRate)
	if !ok {
		return Result{Reason: NoPeriodicity}
	}
	if freq < a.MinFreq || freq > a.MaxFreq {
		return Result{Reason: OutOfRange}
	}

	est := Estimate{
		Frequency: freq,
		Note:      NoteNameFor(freq),
		String:    ClosestTarget(freq, targets),
	}
	if est.String >= 0 {
		est.Target = targets[est.String]
		est.Cents = CentsDeviation(freq, est.Target)
		est.Status = Classify(est.Cents)
	}
	return Result{Reason: Detected, Estimate: est}
}
