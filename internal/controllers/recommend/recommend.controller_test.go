package recommendController_test

import (
	"context"
	"strings"
	"testing"

	recommendController "cinelog/internal/controllers/recommend"
	"cinelog/internal/database"
	"cinelog/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUserID(t *testing.T) {
	tests := []struct {
		name      string
		param     string
		want      int
		wantError bool
	}{
		{name: "lower bound", param: "1", want: 1},
		{name: "upper bound", param: "1000000", want: 1000000},
		{name: "typical id", param: "17645", want: 17645},
		{name: "zero", param: "0", wantError: true},
		{name: "negative", param: "-5", wantError: true},
		{name: "above range", param: "1000001", wantError: true},
		{name: "not a number", param: "abc", wantError: true},
		{name: "empty", param: "", wantError: true},
		{name: "float", param: "12.5", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, err := recommendController.ParseUserID(tt.param)
			if tt.wantError {
				assert.ErrorIs(t, err, recommendController.ErrValidation)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, userID)
		})
	}
}

type rankScorer struct{}

func (rankScorer) Score(userID string, movieID string) float64 {
	// later alphabetic titles score higher, deterministic for assertions
	return float64(movieID[len(movieID)-1])
}

func TestRecommendController_RecommendForUser(t *testing.T) {
	recommender := services.NewRecommenderServiceWithModel(
		[]string{"movie a", "movie b", "movie c"},
		[]string{"101"},
		rankScorer{},
	)

	controller := recommendController.New(
		services.Service{Recommender: recommender},
		database.DB{},
	)

	t.Run("known user response is comma joined in rank order", func(t *testing.T) {
		response, err := controller.RecommendForUser(context.Background(), "101")
		require.NoError(t, err)
		assert.Equal(t, "movie+c,movie+b,movie+a", response)
	})

	t.Run("unknown user still gets a full response", func(t *testing.T) {
		response, err := controller.RecommendForUser(context.Background(), "999")
		require.NoError(t, err)
		assert.Len(t, strings.Split(response, ","), 3)
	})

	t.Run("invalid id fails validation", func(t *testing.T) {
		_, err := controller.RecommendForUser(context.Background(), "0")
		assert.ErrorIs(t, err, recommendController.ErrValidation)
	})
}
