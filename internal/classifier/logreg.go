package classifier

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

var ErrEmptyTrainingSet = errors.New("empty training set")

type TrainOptions struct {
	MaxIterations int
	LearningRate  float64
	Tolerance     float64
	// L2 penalty applied to the weights, not the biases.
	Regularization float64
}

func DefaultTrainOptions(maxIterations int) TrainOptions {
	return TrainOptions{
		MaxIterations:  maxIterations,
		LearningRate:   0.5,
		Tolerance:      1e-5,
		Regularization: 1e-4,
	}
}

// Model is a multinomial logistic regression classifier over TF-IDF
// features. Immutable after training; fields are exported for gob
// serialization into the model artifact.
type Model struct {
	// Classes holds the label values in ascending order; Weights row k and
	// Bias[k] belong to Classes[k].
	Classes   []int
	Weights   *mat.Dense
	Bias      []float64
	Converged bool
	Features  int
}

// Train fits the model by full-batch gradient descent on the softmax
// cross-entropy loss, stopping early when the loss change falls below the
// tolerance. Hitting the iteration cap is not an error: the best parameters
// found are returned with Converged=false and a warning is logged.
func Train(x *sparse.CSR, y []int, opts TrainOptions) (*Model, error) {
	samples, features := x.Dims()
	if samples == 0 || features == 0 || len(y) != samples {
		return nil, fmt.Errorf("[Classifier] %w", ErrEmptyTrainingSet)
	}

	classes := classValues(y)
	classIndex := make(map[int]int, len(classes))
	for i, c := range classes {
		classIndex[c] = i
	}

	k := len(classes)
	model := &Model{
		Classes:  classes,
		Weights:  mat.NewDense(k, features, nil),
		Bias:     make([]float64, k),
		Features: features,
	}

	gradW := mat.NewDense(k, features, nil)
	gradB := make([]float64, k)
	logits := make([]float64, k)

	prevLoss := math.Inf(1)
	for iter := 0; iter < opts.MaxIterations; iter++ {
		gradW.Zero()
		for i := range gradB {
			gradB[i] = 0
		}

		var loss float64
		for i := 0; i < samples; i++ {
			copy(logits, model.Bias)
			x.DoRowNonZero(i, func(_, j int, v float64) {
				for c := 0; c < k; c++ {
					logits[c] += model.Weights.At(c, j) * v
				}
			})
			probs := softmax(logits)

			target := classIndex[y[i]]
			loss -= math.Log(math.Max(probs[target], 1e-12))

			for c := 0; c < k; c++ {
				delta := probs[c]
				if c == target {
					delta--
				}
				gradB[c] += delta
				x.DoRowNonZero(i, func(_, j int, v float64) {
					gradW.Set(c, j, gradW.At(c, j)+delta*v)
				})
			}
		}
		loss /= float64(samples)

		step := opts.LearningRate / float64(samples)
		for c := 0; c < k; c++ {
			model.Bias[c] -= step * gradB[c]
			for j := 0; j < features; j++ {
				w := model.Weights.At(c, j)
				model.Weights.Set(c, j, w-step*(gradW.At(c, j)+opts.Regularization*w))
			}
		}

		if math.Abs(prevLoss-loss) < opts.Tolerance {
			model.Converged = true
			slog.Info("[Classifier] Converged",
				slog.Int("iterations", iter+1),
				slog.Float64("loss", loss))
			break
		}
		prevLoss = loss
	}

	if !model.Converged {
		slog.Warn("[Classifier] Did not converge within iteration cap, keeping best-effort parameters",
			slog.Int("max_iterations", opts.MaxIterations),
			slog.Float64("last_loss", prevLoss))
	}

	return model, nil
}

// Probabilities returns the class probabilities for each row of x, columns
// ordered as Classes.
func (m *Model) Probabilities(x *sparse.CSR) *mat.Dense {
	samples, _ := x.Dims()
	k := len(m.Classes)
	out := mat.NewDense(samples, k, nil)

	logits := make([]float64, k)
	for i := 0; i < samples; i++ {
		copy(logits, m.Bias)
		x.DoRowNonZero(i, func(_, j int, v float64) {
			for c := 0; c < k; c++ {
				logits[c] += m.Weights.At(c, j) * v
			}
		})
		out.SetRow(i, softmax(logits))
	}
	return out
}

// Predict returns the most probable class value for each row of x.
func (m *Model) Predict(x *sparse.CSR) []int {
	probs := m.Probabilities(x)
	samples, _ := x.Dims()

	preds := make([]int, samples)
	for i := 0; i < samples; i++ {
		best, bestP := 0, probs.At(i, 0)
		for c := 1; c < len(m.Classes); c++ {
			if p := probs.At(i, c); p > bestP {
				best, bestP = c, p
			}
		}
		preds[i] = m.Classes[best]
	}
	return preds
}

func classValues(y []int) []int {
	seen := make(map[int]bool)
	var classes []int
	for _, v := range y {
		if !seen[v] {
			seen[v] = true
			classes = append(classes, v)
		}
	}
	sort.Ints(classes)
	return classes
}

func softmax(logits []float64) []float64 {
	max := logits[0]
	for _, v := range logits[1:] {
		if v > max {
			max = v
		}
	}

	probs := make([]float64, len(logits))
	var sum float64
	for i, v := range logits {
		probs[i] = math.Exp(v - max)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}
