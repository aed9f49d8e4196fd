package models

// Question is a static bank entry. The bank is built once at startup and
// never mutated, so questions are safe to share across requests.
type Question struct {
	ID            int      `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

type SubmittedAnswer struct {
	QuestionID int    `json:"questionId"`
	UserAnswer string `json:"userAnswer"`
}

// GradedAnswer records how a single submitted answer resolved against the
// bank. CorrectAnswer is empty when the question id was not found.
type GradedAnswer struct {
	QuestionID    int    `bson:"questionId" json:"questionId"`
	UserAnswer    string `bson:"userAnswer" json:"userAnswer"`
	CorrectAnswer string `bson:"correctAnswer" json:"correctAnswer"`
	IsCorrect     bool   `bson:"isCorrect" json:"isCorrect"`
}
