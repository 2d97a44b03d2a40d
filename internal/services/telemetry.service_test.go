package services_test

import (
	"context"
	"strings"
	"testing"

	"cinelog/internal/database"
	"cinelog/internal/repositories"
	"cinelog/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTelemetryService(fixtures eventFixtures) *services.TelemetryService {
	repos := repositories.Repository{
		WatchEvent:          fixtures.watches,
		RatingEvent:         fixtures.ratings,
		RecommendationEvent: fixtures.recommendations,
	}
	return services.NewTelemetryService(repos, database.DB{})
}

func TestTelemetryService_IngestLine(t *testing.T) {
	fixtures := eventFixtures{
		watches:         &fakeWatchEventRepository{},
		ratings:         &fakeRatingEventRepository{},
		recommendations: &fakeRecommendationEventRepository{},
	}
	service := newTelemetryService(fixtures)
	ctx := context.Background()

	kind, err := service.IngestLine(ctx, "2026-08-20T10:05:00,101,GET /data/m/the+matrix+1999/27.mpg")
	require.NoError(t, err)
	assert.Equal(t, services.EventWatch, kind)
	require.Len(t, fixtures.watches.events, 1)
	assert.Equal(t, "the+matrix+1999", fixtures.watches.events[0].MovieID)
	assert.Equal(t, 27, fixtures.watches.events[0].Minute)

	kind, err = service.IngestLine(ctx, "2026-08-20T12:00:00,101,GET /rate/the+matrix+1999=5")
	require.NoError(t, err)
	assert.Equal(t, services.EventRate, kind)
	require.Len(t, fixtures.ratings.events, 1)
	assert.Equal(t, 5, fixtures.ratings.events[0].Rating)

	kind, err = service.IngestLine(ctx, recommendationLine("2026-08-20T09:00:00.152"))
	require.NoError(t, err)
	assert.Equal(t, services.EventRecommendation, kind)
	require.Len(t, fixtures.recommendations.events, 1)
	assert.Len(t, fixtures.recommendations.events[0].RecommendedMovies, 20)

	_, err = service.IngestLine(ctx, "2026-08-20T10:05:00,101,GET /login")
	assert.ErrorIs(t, err, services.ErrInvalidClassification)
}

func TestTelemetryService_IngestBatch(t *testing.T) {
	fixtures := eventFixtures{
		watches:         &fakeWatchEventRepository{},
		ratings:         &fakeRatingEventRepository{},
		recommendations: &fakeRecommendationEventRepository{},
	}
	service := newTelemetryService(fixtures)

	stream := strings.Join([]string{
		"2026-08-20T10:05:00,101,GET /data/m/the+matrix+1999/27.mpg",
		"2026-08-20T10:06:00,101,GET /data/m/the+matrix+1999/28.mpg",
		"",
		"2026-08-20T12:00:00,101,GET /rate/the+matrix+1999=5",
		"not,a,telemetry line at all",
		recommendationLine("2026-08-20T09:00:00.152"),
		// watch line with an unparseable minute, dropped not fatal
		"2026-08-20T10:07:00,101,GET /data/m/the+matrix+1999/credits.mpg",
	}, "\n")

	result, err := service.IngestBatch(context.Background(), strings.NewReader(stream))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Watches)
	assert.Equal(t, 1, result.Ratings)
	assert.Equal(t, 1, result.Recommendations)
	assert.Equal(t, 2, result.Dropped)
	assert.Equal(t, 4, result.Total())
}
