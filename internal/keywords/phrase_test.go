package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhraseExtractor_QuantumComputingNote(t *testing.T) {
	e := NewPhraseExtractor(DefaultWordlists())

	got := e.Extract(TextBundle{
		Title:       "Introduction to Quantum Computing",
		Description: "This note covers the basics of quantum bits, superposition, and entanglement.",
	})

	require.NotEmpty(t, got)
	require.LessOrEqual(t, len(got), 7)
	assert.Contains(t, got, "quantum computing")
	assert.Contains(t, got, "quantum bits")
	assert.Contains(t, got, "superposition")
	assert.Contains(t, got, "entanglement")

	// The primary pass found enough phrases, so no single-token fallback.
	assert.NotContains(t, got, "quantum")
	assert.NotContains(t, got, "bits")
}

func TestPhraseExtractor_PhotosynthesisNote(t *testing.T) {
	e := NewPhraseExtractor(DefaultWordlists())

	got := e.Extract(TextBundle{
		Title:       "Photosynthesis",
		Description: "Process by which green plants and some other organisms use sunlight to synthesize foods from carbon dioxide and water.",
	})

	require.NotEmpty(t, got)
	assert.Contains(t, got, "green plants")
	assert.Contains(t, got, "sunlight")
	assert.Contains(t, got, "carbon dioxide")
	assert.Contains(t, got, "water")
}

func TestPhraseExtractor_SparseNoteYieldsNothing(t *testing.T) {
	e := NewPhraseExtractor(DefaultWordlists())

	got := e.Extract(TextBundle{
		Title:       "Short",
		Description: "A very short note.",
	})

	assert.Empty(t, got)
}

func TestPhraseExtractor_EmptyInputShortCircuits(t *testing.T) {
	e := NewPhraseExtractor(DefaultWordlists())

	assert.Empty(t, e.Extract(TextBundle{}))
	assert.Empty(t, e.Extract(TextBundle{Title: "   ", Content: " \n"}))
}

func TestPhraseExtractor_RepeatedPhraseRanksFirst(t *testing.T) {
	e := NewPhraseExtractor(DefaultWordlists())

	got := e.Extract(TextBundle{
		Content: "Neural networks, explained. Neural networks, illustrated. Gradient descent.",
	})

	require.NotEmpty(t, got)
	assert.Equal(t, "neural networks", got[0])
}

func TestPhraseExtractor_NoFallbackWhenPrimarySuffices(t *testing.T) {
	e := NewPhraseExtractor(DefaultWordlists())

	got := e.Extract(TextBundle{
		Description: "Linear algebra. Matrix multiplication. Vector spaces.",
	})

	assert.Equal(t, []string{"linear algebra", "matrix multiplication", "vector spaces"}, got)
}

func TestPhraseExtractor_FallbackAppendsSingleTokens(t *testing.T) {
	e := NewPhraseExtractor(DefaultWordlists())

	// One phrase only: the fallback tops the list up with its tokens,
	// keeping the phrase in front.
	got := e.Extract(TextBundle{
		Content: "mitochondria produce cellular energy",
	})

	require.NotEmpty(t, got)
	assert.Equal(t, "mitochondria produce cellular energy", got[0])
	assert.Contains(t, got, "mitochondria")
	assert.Contains(t, got, "energy")
}

func TestPhraseExtractor_CapsAtSeven(t *testing.T) {
	e := NewPhraseExtractor(DefaultWordlists())

	got := e.Extract(TextBundle{
		Content: "Kinematics. Dynamics. Thermodynamics. Electromagnetism. Optics. Relativity. Acoustics. Statics. Fluids.",
	})

	assert.Len(t, got, 7)
}

func TestPhraseExtractor_DeduplicatesAndIsIdempotent(t *testing.T) {
	e := NewPhraseExtractor(DefaultWordlists())

	bundle := TextBundle{
		Title:   "Cell biology",
		Content: "Cell biology, cell biology, organelles.",
	}

	got := e.Extract(bundle)

	seen := make(map[string]bool)
	for _, kw := range got {
		assert.False(t, seen[kw], "duplicate keyword %q", kw)
		seen[kw] = true
	}

	assert.Equal(t, got, e.Extract(bundle))
}
