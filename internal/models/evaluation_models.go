package models

import "time"

// ClassMetrics holds the per-class evaluation numbers for one sentiment
// class on the held-out split.
type ClassMetrics struct {
	Label     string  `json:"label"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
	AUC       float64 `json:"auc"`
	Support   int     `json:"support"`
}

type Evaluation struct {
	Accuracy         float64        `json:"accuracy"`
	BaselineAccuracy float64        `json:"baseline_accuracy"`
	PerClass         []ClassMetrics `json:"per_class"`
	// Confusion[i][j] counts samples of true class i predicted as class j,
	// rows/cols ordered as Labels.
	Confusion [][]int  `json:"confusion"`
	Labels    []string `json:"labels"`
	TrainSize int      `json:"train_size"`
	TestSize  int      `json:"test_size"`
	Converged bool     `json:"converged"`
}

// RunMeta identifies one pipeline run; it is stamped into the model artifact
// and the evaluation report.
type RunMeta struct {
	RunID     string    `json:"run_id"`
	CreatedAt time.Time `json:"created_at"`
	Rows      int       `json:"rows"`
	Dropped   int       `json:"dropped"`
}
