package model

import "time"

// VariantType represents the kind of AI generated question variant.
type VariantType string

const (
	VariantTypeParaphrase      VariantType = "paraphrase"
	VariantTypeNumericSwap     VariantType = "numeric_swap"
	VariantTypeConceptShift    VariantType = "concept_shift"
	VariantTypeFormatTransform VariantType = "format_transform"
)

// variantTypes is the set of valid variant types.
var variantTypes = map[VariantType]struct{}{
	VariantTypeParaphrase:      {},
	VariantTypeNumericSwap:     {},
	VariantTypeConceptShift:    {},
	VariantTypeFormatTransform: {},
}

// Validate validates the variant type value.
func (t VariantType) Validate() error {
	if _, ok := variantTypes[t]; !ok {
		return ErrNotValid
	}
	return nil
}

// Variant is an AI generated alternate version of a question.
type Variant struct {
	ID          string
	QuestionID  string
	Type        VariantType
	Body        string
	Answer      string
	Explanation string
	Model       string
	CreatedAt   time.Time
}

// HintLevel represents how strong a tutoring hint should be.
type HintLevel string

const (
	HintLevelWeak   HintLevel = "weak"
	HintLevelMedium HintLevel = "medium"
	HintLevelStrong HintLevel = "strong"
)

// hintLevels is the set of valid hint levels.
var hintLevels = map[HintLevel]struct{}{
	HintLevelWeak:   {},
	HintLevelMedium: {},
	HintLevelStrong: {},
}

// Validate validates the hint level value.
func (l HintLevel) Validate() error {
	if _, ok := hintLevels[l]; !ok {
		return ErrNotValid
	}
	return nil
}

// ChatTurn is a single turn of the tutor chat sent as hint context.
type ChatTurn struct {
	Role string
	Text string
}

// Hint is an AI generated tutoring hint for a question.
type Hint struct {
	QuestionID string
	Level      HintLevel
	Text       string
	Model      string
}
