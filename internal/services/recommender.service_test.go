package services_test

import (
	"testing"

	"cinelog/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubScorer struct {
	scores map[string]float64
}

func (s stubScorer) Score(userID string, movieID string) float64 {
	return s.scores[movieID]
}

func TestRecommenderService_PredictTopMovies(t *testing.T) {
	t.Run("known user gets highest-scored titles first", func(t *testing.T) {
		service := services.NewRecommenderServiceWithModel(
			[]string{"movie a", "movie b", "movie c", "movie d"},
			[]string{"101"},
			stubScorer{scores: map[string]float64{
				"movie a": 2.0,
				"movie b": 4.5,
				"movie c": 1.0,
				"movie d": 3.0,
			}},
		)

		movies := service.PredictTopMovies(101)
		assert.Equal(t, []string{"movie+b", "movie+d", "movie+a", "movie+c"}, movies)
	})

	t.Run("catalog larger than twenty is truncated", func(t *testing.T) {
		catalog := make([]string, 30)
		scores := make(map[string]float64, 30)
		for i := range catalog {
			catalog[i] = string(rune('a' + i%26))
			scores[catalog[i]] = float64(i)
		}

		service := services.NewRecommenderServiceWithModel(
			catalog, []string{"101"}, stubScorer{scores: scores},
		)

		movies := service.PredictTopMovies(101)
		assert.Len(t, movies, 20)
	})

	t.Run("unknown user is sampled from the catalog", func(t *testing.T) {
		catalog := []string{"movie a", "movie b", "movie c"}
		service := services.NewRecommenderServiceWithModel(
			catalog, []string{"101"}, stubScorer{},
		)

		movies := service.PredictTopMovies(999)
		require.Len(t, movies, 3)

		seen := make(map[string]bool)
		for _, movie := range movies {
			assert.Contains(t, []string{"movie+a", "movie+b", "movie+c"}, movie)
			assert.False(t, seen[movie], "sampled movie repeated")
			seen[movie] = true
		}
	})
}

func TestLatentFactorScorer_Score(t *testing.T) {
	scorer := &services.LatentFactorScorer{
		GlobalMean: 3.5,
		UserBiases: map[string]float64{"101": 0.25},
		ItemBiases: map[string]float64{"movie a": -0.5},
		UserFactors: map[string][]float64{
			"101": {1.0, 2.0},
		},
		ItemFactors: map[string][]float64{
			"movie a": {0.5, 0.25},
		},
	}

	// 3.5 + 0.25 - 0.5 + (1.0*0.5 + 2.0*0.25)
	assert.InDelta(t, 4.25, scorer.Score("101", "movie a"), 1e-9)

	// unknown item keeps the bias-only prediction
	assert.InDelta(t, 3.75, scorer.Score("101", "movie b"), 1e-9)

	// unknown user falls back to the global mean plus item bias
	assert.InDelta(t, 3.0, scorer.Score("999", "movie a"), 1e-9)
}
