// Package topics labels an already-clustered corpus with the words that best
// characterise each cluster, using class-based TF-IDF, and can shrink the
// number of topics by repeatedly merging the smallest topic into its most
// similar neighbour.
//
// Quick start:
//
//	m, err := topics.New(docs, labels, topics.WithStopWordsFile("stopwords.txt"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := m.Reduce(10); err != nil {
//	    log.Fatal(err)
//	}
//	text, _ := m.Describe(5)
//	fmt.Print(text)
//
// Documents labelled -1 (see WithOutlier) form the outlier topic, which is
// always the last topic id and is never merged away. A Model is safe for
// concurrent use.
package topics
