package model

// QuestionType defines the type of question
type QuestionType string

const (
	QuestionTypeYesNo          QuestionType = "yes_no"          // Yes/no answer
	QuestionTypeSingleChoice   QuestionType = "single_choice"   // One option from a list
	QuestionTypeMultipleChoice QuestionType = "multiple_choice" // Any number of options
	QuestionTypeRating         QuestionType = "rating"          // 1-5 scale
	QuestionTypeText           QuestionType = "text"            // Free text, no numeric aggregate
)

// Yes/no marker values stored in RawResponse.SelectedOption.
const (
	AnswerYes = "yes"
	AnswerNo  = "no"
)

// Question is one question inside a survey. Immutable once the survey
// is published.
type Question struct {
	ID       string       `json:"id" bson:"id"`
	Text     string       `json:"text" bson:"text"`
	Type     QuestionType `json:"type" bson:"type"`
	Options  []string     `json:"options,omitempty" bson:"options,omitempty"` // choice types only, order matters
	Required bool         `json:"required" bson:"required"`
}

// IsValid reports whether t is a known question type.
func (t QuestionType) IsValid() bool {
	switch t {
	case QuestionTypeYesNo, QuestionTypeSingleChoice, QuestionTypeMultipleChoice,
		QuestionTypeRating, QuestionTypeText:
		return true
	}
	return false
}

// HasOptions reports whether questions of this type carry an option list.
func (t QuestionType) HasOptions() bool {
	return t == QuestionTypeSingleChoice || t == QuestionTypeMultipleChoice
}
