package topics

import "github.com/crimson-sun/topics/internal/model"

// Word is a term with its class-TF-IDF weight within a topic.
type Word struct {
	Text  string  `json:"word"`
	Score float64 `json:"score"`
}

// Topic describes one topic: its origin, size and defining words.
// This is the stable public type; internal representations may evolve
// independently without breaking consumers.
type Topic struct {
	ID        int    `json:"id"`                // contiguous id; the outlier topic is last
	Label     int    `json:"label"`             // cluster label the topic started from
	Outlier   bool   `json:"outlier,omitempty"` // true for the outlier topic
	Documents int    `json:"documents"`         // documents grouped under the topic
	Words     []Word `json:"words"`             // highest weight first
}

// Count is the number of documents in a topic.
type Count struct {
	ID        int `json:"id"`
	Documents int `json:"documents"`
}

// Errors returned by Model methods; test with errors.Is.
var (
	ErrConfiguration   = model.ErrConfiguration
	ErrInvalidArgument = model.ErrInvalidArgument
	ErrNotFound        = model.ErrNotFound
)

func wordsFromScores(ws []model.WordScore) []Word {
	out := make([]Word, len(ws))
	for i, w := range ws {
		out[i] = Word{Text: w.Word, Score: w.Score}
	}
	return out
}

func topicFromReport(tr model.TopicReport) Topic {
	return Topic{
		ID:        tr.ID,
		Label:     tr.Label,
		Outlier:   tr.Outlier,
		Documents: tr.Documents,
		Words:     wordsFromScores(tr.Words),
	}
}
