package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForStrategy(t *testing.T) {
	lists := DefaultWordlists()

	e, err := ForStrategy(StrategyFrequency, lists)
	require.NoError(t, err)
	assert.IsType(t, &FrequencyExtractor{}, e)

	e, err = ForStrategy(StrategyPhrase, lists)
	require.NoError(t, err)
	assert.IsType(t, &PhraseExtractor{}, e)

	_, err = ForStrategy(Strategy("tfidf"), lists)
	assert.Error(t, err)
}
