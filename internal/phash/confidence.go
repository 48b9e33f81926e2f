package phash

// Confidence bands a match by its Hamming distance.
type Confidence int

const (
	ConfidenceNone Confidence = iota
	ConfidenceMedium
	ConfidenceHigh
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "HIGH"
	case ConfidenceMedium:
		return "MEDIUM"
	default:
		return "NONE"
	}
}

// Classify bands a distance: <= high is HIGH, <= accept is MEDIUM, anything
// beyond the acceptance threshold is NONE. Non-positive cutoffs fall back to
// the package defaults.
func Classify(distance, high, accept int) Confidence {
	if high <= 0 {
		high = DefaultHighDistance
	}
	if accept <= 0 {
		accept = DefaultThreshold
	}
	switch {
	case distance <= high:
		return ConfidenceHigh
	case distance <= accept:
		return ConfidenceMedium
	default:
		return ConfidenceNone
	}
}
