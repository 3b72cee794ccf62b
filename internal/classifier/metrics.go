package classifier

import (
	"sort"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"

	"github.com/spacesedan/aerosent/internal/models"
)

var classNames = map[int]string{
	-1: models.LabelNegative,
	0:  models.LabelNeutral,
	1:  models.LabelPositive,
}

// Evaluate scores the model on a held-out set: accuracy against the
// majority-class baseline, per-class precision/recall/F1 and one-vs-rest
// AUC, and the full confusion matrix.
func Evaluate(m *Model, x *sparse.CSR, y []int, trainSize int) models.Evaluation {
	preds := m.Predict(x)
	probs := m.Probabilities(x)

	k := len(m.Classes)
	classIndex := make(map[int]int, k)
	labels := make([]string, k)
	for i, c := range m.Classes {
		classIndex[c] = i
		labels[i] = classNames[c]
	}

	confusion := make([][]int, k)
	for i := range confusion {
		confusion[i] = make([]int, k)
	}

	var correct int
	support := make([]int, k)
	for i, truth := range y {
		// A truth class the model never saw in training counts against
		// accuracy but has no confusion row.
		if t, ok := classIndex[truth]; ok {
			confusion[t][classIndex[preds[i]]]++
			support[t]++
		}
		if preds[i] == truth {
			correct++
		}
	}

	eval := models.Evaluation{
		Accuracy:         float64(correct) / float64(len(y)),
		BaselineAccuracy: majorityBaseline(support, len(y)),
		Confusion:        confusion,
		Labels:           labels,
		TrainSize:        trainSize,
		TestSize:         len(y),
		Converged:        m.Converged,
	}

	for c := 0; c < k; c++ {
		var tp, fp, fn int
		for other := 0; other < k; other++ {
			if other == c {
				tp = confusion[c][c]
				continue
			}
			fp += confusion[other][c]
			fn += confusion[c][other]
		}

		precision := safeDiv(float64(tp), float64(tp+fp))
		recall := safeDiv(float64(tp), float64(tp+fn))

		scores := make([]float64, len(y))
		positives := make([]bool, len(y))
		for i := range y {
			scores[i] = probs.At(i, c)
			positives[i] = classIndex[y[i]] == c
		}

		eval.PerClass = append(eval.PerClass, models.ClassMetrics{
			Label:     labels[c],
			Precision: precision,
			Recall:    recall,
			F1:        safeDiv(2*precision*recall, precision+recall),
			AUC:       aucOneVsRest(scores, positives),
			Support:   support[c],
		})
	}

	return eval
}

func majorityBaseline(support []int, total int) float64 {
	var max int
	for _, s := range support {
		if s > max {
			max = s
		}
	}
	return safeDiv(float64(max), float64(total))
}

// aucOneVsRest computes the area under the ROC curve for one class against
// the rest from its predicted probabilities.
func aucOneVsRest(scores []float64, positives []bool) float64 {
	var pos int
	for _, p := range positives {
		if p {
			pos++
		}
	}
	// ROC is undefined without both positives and negatives.
	if pos == 0 || pos == len(positives) {
		return 0
	}

	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return scores[order[i]] < scores[order[j]]
	})

	sorted := make([]float64, len(scores))
	classes := make([]bool, len(scores))
	for i, idx := range order {
		sorted[i] = scores[idx]
		classes[i] = positives[idx]
	}

	tpr, fpr, _ := stat.ROC(nil, sorted, classes, nil)
	return integrate.Trapezoidal(fpr, tpr)
}

func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
