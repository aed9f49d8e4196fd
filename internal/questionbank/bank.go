package questionbank

import "aerosky-service/internal/models"

// Subjects is the closed subject set. Extending it means adding questions
// below and a matching analytics bucket in lockstep.
var Subjects = []string{"math", "science", "english"}

// Bank is an immutable subject -> ordered questions lookup, built once at
// process start and shared read-only across requests.
type Bank struct {
	questions map[string][]models.Question
}

func New() *Bank {
	return &Bank{questions: map[string][]models.Question{
		"math": {
			{ID: 1, Question: "What is 15 + 27?", Options: []string{"40", "42", "45", "47"}, CorrectAnswer: "42"},
			{ID: 2, Question: "What is the square root of 144?", Options: []string{"10", "11", "12", "13"}, CorrectAnswer: "12"},
			{ID: 3, Question: "What is 8 × 9?", Options: []string{"70", "71", "72", "73"}, CorrectAnswer: "72"},
		},
		"science": {
			{ID: 1, Question: "What is the chemical symbol for Gold?", Options: []string{"Go", "Gd", "Au", "Ag"}, CorrectAnswer: "Au"},
			{ID: 2, Question: "How many bones are there in an adult human body?", Options: []string{"204", "206", "208", "210"}, CorrectAnswer: "206"},
			{ID: 3, Question: "What gas do plants absorb from the atmosphere?", Options: []string{"Oxygen", "Nitrogen", "Carbon Dioxide", "Hydrogen"}, CorrectAnswer: "Carbon Dioxide"},
		},
		"english": {
			{ID: 1, Question: "Which is the correct spelling?", Options: []string{"Recieve", "Receive", "Receeve", "Receve"}, CorrectAnswer: "Receive"},
			{ID: 2, Question: "What is the past tense of 'run'?", Options: []string{"Runned", "Ran", "Run", "Running"}, CorrectAnswer: "Ran"},
			{ID: 3, Question: "Which is a synonym for 'happy'?", Options: []string{"Sad", "Joyful", "Angry", "Tired"}, CorrectAnswer: "Joyful"},
		},
	}}
}

// QuestionsFor returns the ordered question set for a subject. Unknown
// subjects get an empty set, never an error.
func (b *Bank) QuestionsFor(subject string) []models.Question {
	if qs, ok := b.questions[subject]; ok {
		return qs
	}
	return []models.Question{}
}
