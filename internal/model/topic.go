package model

// WordScore is a vocabulary term with its class-TF-IDF weight in one topic.
type WordScore struct {
	Word  string  `json:"word"`
	Score float64 `json:"score,omitempty"`
}

// TopicWords holds the ranked top terms of a single topic.
type TopicWords struct {
	ID    int         // contiguous topic id, outlier topic is the last id
	Label int         // cluster label the topic originated from
	Words []WordScore // highest weight first
}

// DocCount pairs a topic id with the number of documents grouped under it.
type DocCount struct {
	ID      int  `json:"id"`
	Outlier bool `json:"outlier,omitempty"`
	Count   int  `json:"count"`
}
