package model

// TopicReport is the description of one topic: its size and defining words.
type TopicReport struct {
	ID        int         `json:"id"`
	Label     int         `json:"label"`
	Outlier   bool        `json:"outlier,omitempty"`
	Documents int         `json:"documents"`
	Words     []WordScore `json:"words"`
}

// Report is the output of describing a topic space.
type Report struct {
	Topics     []TopicReport `json:"topics"`
	Vocabulary int           `json:"vocabulary"` // number of terms behind the weights
	Corpus     int           `json:"corpus"`     // number of documents
}
