package questionbank

import "testing"

func TestQuestionsForKnownSubjects(t *testing.T) {
	bank := New()

	for _, subject := range Subjects {
		t.Run(subject, func(t *testing.T) {
			questions := bank.QuestionsFor(subject)
			if len(questions) != 3 {
				t.Fatalf("Expected 3 questions for %s, got %d", subject, len(questions))
			}

			for i, q := range questions {
				if q.ID != i+1 {
					t.Errorf("Expected question %d to have id %d, got %d", i, i+1, q.ID)
				}
				if len(q.Options) != 4 {
					t.Errorf("Expected 4 options for question %d, got %d", q.ID, len(q.Options))
				}

				found := false
				for _, opt := range q.Options {
					if opt == q.CorrectAnswer {
						found = true
					}
				}
				if !found {
					t.Errorf("Correct answer %q for question %d is not among its options", q.CorrectAnswer, q.ID)
				}
			}
		})
	}
}

func TestQuestionsForUnknownSubject(t *testing.T) {
	bank := New()

	questions := bank.QuestionsFor("history")
	if questions == nil {
		t.Fatal("Expected empty slice for unknown subject, got nil")
	}
	if len(questions) != 0 {
		t.Errorf("Expected 0 questions for unknown subject, got %d", len(questions))
	}
}
