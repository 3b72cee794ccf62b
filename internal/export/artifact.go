package export

import (
	"encoding/gob"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spacesedan/aerosent/internal/classifier"
	"github.com/spacesedan/aerosent/internal/features"
)

// ErrVocabularyMismatch means the artifact's model was trained against a
// different vocabulary than the vectorizer it was stored with. Loading such
// an artifact must fail rather than silently degrade predictions.
var ErrVocabularyMismatch = errors.New("model/vectorizer vocabulary mismatch")

// Artifact bundles the fitted vectorizer with the model trained on it, for
// a separate inference process. VocabularyHash is recorded at train time and
// re-verified on load.
type Artifact struct {
	RunID          string
	CreatedAt      time.Time
	VocabularyHash string
	Vectorizer     *features.Vectorizer
	Model          *classifier.Model
}

func SaveArtifact(path, runID string, vec *features.Vectorizer, model *classifier.Model) error {
	if !vec.Fitted() {
		return fmt.Errorf("[Exporter] %w", features.ErrNotFitted)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("[Exporter] failed to create artifact directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("[Exporter] failed to create artifact file: %w", err)
	}
	defer f.Close()

	artifact := Artifact{
		RunID:          runID,
		CreatedAt:      time.Now().UTC(),
		VocabularyHash: vec.Hash(),
		Vectorizer:     vec,
		Model:          model,
	}
	if err := gob.NewEncoder(f).Encode(&artifact); err != nil {
		return fmt.Errorf("[Exporter] failed to encode model artifact: %w", err)
	}

	slog.Info("[Exporter] Model artifact written",
		slog.String("path", path),
		slog.String("run_id", runID),
		slog.String("vocabulary_hash", artifact.VocabularyHash[:12]))

	return nil
}

// LoadArtifact reads a model artifact and verifies that its vectorizer still
// matches the vocabulary the model was trained on.
func LoadArtifact(path string) (*Artifact, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("[Exporter] failed to open artifact file: %w", err)
	}
	defer f.Close()

	var artifact Artifact
	if err := gob.NewDecoder(f).Decode(&artifact); err != nil {
		return nil, fmt.Errorf("[Exporter] failed to decode model artifact: %w", err)
	}

	if artifact.Vectorizer == nil || artifact.Model == nil {
		return nil, fmt.Errorf("[Exporter] artifact is incomplete: %s", path)
	}
	if got := artifact.Vectorizer.Hash(); got != artifact.VocabularyHash {
		return nil, fmt.Errorf("[Exporter] %w: stored %s, recomputed %s",
			ErrVocabularyMismatch, artifact.VocabularyHash, got)
	}
	if artifact.Model.Features != len(artifact.Vectorizer.IDF) {
		return nil, fmt.Errorf("[Exporter] %w: model expects %d features, vectorizer has %d",
			ErrVocabularyMismatch, artifact.Model.Features, len(artifact.Vectorizer.IDF))
	}

	return &artifact, nil
}
