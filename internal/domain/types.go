package domain

// Membership is the outcome of a dictionary lookup for a single word.
type Membership uint8

const (
	// MembershipUnknown means the lookup could not decide; callers treat it as
	// not a word.
	MembershipUnknown Membership = iota
	MembershipWord
	MembershipNonWord
)

// String returns a short lowercase name for the membership.
func (m Membership) String() string {
	switch m {
	case MembershipWord:
		return "word"
	case MembershipNonWord:
		return "non-word"
	default:
		return "unknown"
	}
}

// MembershipOf maps a boolean dictionary answer to a Membership.
func MembershipOf(isAWord bool) Membership {
	if isAWord {
		return MembershipWord
	}
	return MembershipNonWord
}

// LookupResult pairs a candidate word with its membership.
type LookupResult struct {
	Word       string
	Membership Membership
}

// IsAWord reports whether the word was confirmed to be in the dictionary.
func (r LookupResult) IsAWord() bool { return r.Membership == MembershipWord }

// LookupResponse is the JSON body served by GET /lookup.
type LookupResponse struct {
	Word    string `json:"word"`
	IsAWord bool   `json:"isAWord"`
}

// HealthResponse is the JSON body served by GET /healthz.
type HealthResponse struct {
	Status      string `json:"status"`
	Fingerprint string `json:"fingerprint,omitempty"`
}

// Status is the display state of a candidate word.
type Status uint8

const (
	StatusPending Status = iota
	StatusWord
	StatusNonWord
)

// String returns the label shown next to a candidate.
func (s Status) String() string {
	switch s {
	case StatusWord:
		return "WORD"
	case StatusNonWord:
		return "NOT A WORD"
	default:
		return "Unknown"
	}
}
