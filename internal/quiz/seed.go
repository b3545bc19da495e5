package quiz

import "time"

// SeedQuizID is the id of the example quiz every new session starts with.
const SeedQuizID int64 = 29

// SeedQuiz returns the example quiz a fresh session is populated with.
func SeedQuiz() Quiz {
	stamp := time.Date(2020, time.September, 9, 9, 26, 39, 0, time.UTC)
	return Quiz{
		ID:          SeedQuizID,
		Title:       "quiz title",
		Description: "Description",
		URL:         "https://www.youtube.com/watch?v=e6EGQFJLl04",
		Created:     stamp,
		Modified:    stamp,
		Questions: []Question{
			{
				ID:            53,
				Text:          "question 1 text",
				FeedbackTrue:  "question 1 true feedback",
				FeedbackFalse: "question 1 false feedback",
				Answers: []Answer{
					{ID: 122, Text: "question 1 answer 1 false"},
					{ID: 123, Text: "question 1 answer 2 false"},
					{ID: 124, Text: "question 1 answer 3 true", IsTrue: true},
					{ID: 125, Text: "question 1 answer 4 false"},
				},
			},
			{
				ID:            54,
				Text:          "question 2 text",
				FeedbackTrue:  "question 2 true feedback",
				FeedbackFalse: "question 2 false feedback",
				Answers: []Answer{
					{ID: 126, Text: "question 2 answer 1 true", IsTrue: true},
					{ID: 127, Text: "question 2 answer 2 false"},
				},
			},
			{
				ID:            55,
				Text:          "question 3 text",
				FeedbackTrue:  "question 3 true feedback",
				FeedbackFalse: "question 3 false feedback",
				Answers: []Answer{
					{ID: 128, Text: "question 3 answer 1 false"},
					{ID: 129, Text: "question 3 answer 2 true", IsTrue: true},
					{ID: 130, Text: "question 3 answer 3 false"},
				},
			},
		},
	}
}
