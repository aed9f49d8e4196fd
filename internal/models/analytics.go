package models

type SubjectStats struct {
	TestsCount        int `json:"testsCount"`
	AverageScore      int `json:"averageScore"`
	PracticeTime      int `json:"practiceTime"`
	PracticeQuestions int `json:"practiceQuestions"`
}

// Analytics is the read-only aggregate view over a user's full test and
// practice history. It is always rebuilt from the raw documents, never from
// the cached counters on the user record.
type Analytics struct {
	TotalTests       int                     `json:"totalTests"`
	AverageScore     int                     `json:"averageScore"`
	BestScore        int                     `json:"bestScore"`
	RecentTests      []TestResult            `json:"recentTests"`
	SubjectWiseStats map[string]SubjectStats `json:"subjectWiseStats"`
}
