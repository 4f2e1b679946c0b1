// Package card turns greeting-card form input into the prompt sent to the
// language model.
package card

// LengthTier is the user-selected message size.
type LengthTier string

const (
	LengthShort  LengthTier = "short"
	LengthMedium LengthTier = "medium"
	LengthLong   LengthTier = "long"
)

// Guideline returns the word-count guideline for the tier. Unknown and empty
// tiers fall back to the medium guideline.
func (t LengthTier) Guideline() string {
	switch t {
	case LengthShort:
		return "50-100 words"
	case LengthLong:
		return "200-400 words"
	default:
		return "100-200 words"
	}
}

// GenerationRequest is the card form as submitted. Field names on the wire
// follow the form inputs of the page.
type GenerationRequest struct {
	WritingStyle          string     `form:"writingStyle" json:"writingStyle"`
	CardType              string     `form:"cardType" json:"cardType"`
	LengthTier            LengthTier `form:"wordCount" json:"wordCount"`
	RecipientRelationship string     `form:"recipient" json:"recipient"`
	RecentMemory          string     `form:"highlight" json:"highlight"`
	Characteristics       []string   `form:"characteristics" json:"characteristics"`
	SpecialQualities      string     `form:"specialQualities" json:"specialQualities"`
	IncludePoem           bool       `form:"includePoem" json:"includePoem"`
}

// HasCharacteristic reports whether trait was selected.
func (r GenerationRequest) HasCharacteristic(trait string) bool {
	for _, c := range r.Characteristics {
		if c == trait {
			return true
		}
	}
	return false
}
