package classifier

import "math/rand"

const (
	// SEED fixes the train/test shuffle so repeated runs on the same input
	// produce identical splits.
	SEED = 42

	TEST_FRACTION = 0.2
)

// TrainTestSplit partitions [0, n) into train and test index sets using a
// seeded permutation. Same n, fraction and seed always yield the same split.
func TrainTestSplit(n int, testFraction float64, seed int64) (train, test []int) {
	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(n)

	testSize := int(float64(n) * testFraction)
	return perm[testSize:], perm[:testSize]
}
