package services_test

import (
	"strings"
	"testing"
	"time"

	"cinelog/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func splitLine(line string) []string {
	fields := strings.Split(line, ",")
	for i, field := range fields {
		fields[i] = strings.TrimSpace(field)
	}
	return fields
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		line string
		want services.EventKind
	}{
		{
			name: "watch line",
			line: "2026-08-20T10:00:00,101,GET /data/m/the+matrix+1999/27.mpg",
			want: services.EventWatch,
		},
		{
			name: "rate line",
			line: "2026-08-20T12:00:00,101,GET /rate/the+matrix+1999=5",
			want: services.EventRate,
		},
		{
			name: "recommendation line",
			line: "2026-08-20T09:00:00.123,101,recommendation request 17645-team.stream.svc, status 200, result: " +
				strings.Repeat("m, ", 19) + "m, 120 ms",
			want: services.EventRecommendation,
		},
		{
			name: "watch marker wins over rate marker",
			line: "2026-08-20T10:00:00,101,GET /data/m/rate/27.mpg",
			want: services.EventWatch,
		},
		{
			name: "recommendation marker with short arity still classifies",
			line: "2026-08-20T09:00:00,101,recommendation request, status 200",
			want: services.EventRecommendation,
		},
		{
			name: "too few fields",
			line: "2026-08-20T10:00:00,101",
			want: services.EventInvalid,
		},
		{
			name: "three fields without any marker",
			line: "2026-08-20T10:00:00,101,GET /login",
			want: services.EventInvalid,
		},
		{
			name: "empty line",
			line: "",
			want: services.EventInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.Classify(splitLine(tt.line)))
		})
	}
}

func TestParseWatchEvent(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		wantError   bool
		wantUserID  string
		wantMovieID string
		wantMinute  int
	}{
		{
			name:        "standard watch checkpoint",
			line:        "2026-08-20T10:05:00,101,GET /data/m/the+matrix+1999/27.mpg",
			wantUserID:  "101",
			wantMovieID: "the+matrix+1999",
			wantMinute:  27,
		},
		{
			name:        "minute zero",
			line:        "2026-08-20T10:00:00,202,GET /data/m/amelie+2001/0.mpg",
			wantUserID:  "202",
			wantMovieID: "amelie+2001",
			wantMinute:  0,
		},
		{
			name:      "bad timestamp",
			line:      "yesterday,101,GET /data/m/the+matrix+1999/27.mpg",
			wantError: true,
		},
		{
			name:      "minute segment is not a number",
			line:      "2026-08-20T10:05:00,101,GET /data/m/the+matrix+1999/final.mpg",
			wantError: true,
		},
		{
			name:      "negative minute",
			line:      "2026-08-20T10:05:00,101,GET /data/m/the+matrix+1999/-3.mpg",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := services.ParseWatchEvent(splitLine(tt.line))
			if tt.wantError {
				require.Error(t, err)
				assert.ErrorIs(t, err, services.ErrMalformedPath)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantUserID, event.UserID)
			assert.Equal(t, tt.wantMovieID, event.MovieID)
			assert.Equal(t, tt.wantMinute, event.Minute)
			assert.Equal(t, time.UTC, event.Timestamp.Location())
		})
	}
}

func TestParseRatingEvent(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		wantError   bool
		wantMovieID string
		wantRating  int
	}{
		{
			name:        "standard rating",
			line:        "2026-08-20T12:00:00,101,GET /rate/the+matrix+1999=5",
			wantMovieID: "the+matrix+1999",
			wantRating:  5,
		},
		{
			name:      "movie id containing equals is dropped",
			line:      "2026-08-20T12:00:00,101,GET /rate/e=mc2+2008=3",
			wantError: true,
		},
		{
			name:      "missing separator",
			line:      "2026-08-20T12:00:00,101,GET /rate/the+matrix+1999",
			wantError: true,
		},
		{
			name:      "rating is not an integer",
			line:      "2026-08-20T12:00:00,101,GET /rate/the+matrix+1999=great",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := services.ParseRatingEvent(splitLine(tt.line))
			if tt.wantError {
				require.Error(t, err)
				assert.ErrorIs(t, err, services.ErrMalformedPath)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "101", event.UserID)
			assert.Equal(t, tt.wantMovieID, event.MovieID)
			assert.Equal(t, tt.wantRating, event.Rating)
		})
	}
}

func recommendationLine(timestamp string) string {
	fields := []string{timestamp, "101", "recommendation request 17645-team.stream.svc", "status 200"}
	movies := []string{
		"result: the+matrix+1999", "inception+2010", "heat+1995", "alien+1979",
		"blade+runner+1982", "seven+1995", "fargo+1996", "casino+1995",
		"gattaca+1997", "contact+1997", "dark+city+1998", "sphere+1998",
		"the+game+1997", "ronin+1998", "cube+1997", "pi+1998",
		"the+truman+show+1998", "twelve+monkeys+1995", "the+fifth+element+1997", "event+horizon+1997",
	}
	fields = append(fields, movies...)
	fields = append(fields, "120 ms")
	return strings.Join(fields, ", ")
}

func TestParseRecommendationEvent(t *testing.T) {
	t.Run("full line keeps twenty movies in rank order", func(t *testing.T) {
		event, err := services.ParseRecommendationEvent(
			splitLine(recommendationLine("2026-08-20T09:00:00.152")),
		)
		require.NoError(t, err)

		assert.Equal(t, "101", event.UserID)
		assert.Len(t, event.RecommendedMovies, 20)
		assert.Equal(t, "result: the+matrix+1999", event.RecommendedMovies[0])
		assert.Equal(t, "event+horizon+1997", event.RecommendedMovies[19])
		assert.True(t, event.Recommends("cube+1997"))
		assert.False(t, event.Recommends("120 ms"))
	})

	t.Run("naive fractional timestamp is treated as UTC", func(t *testing.T) {
		event, err := services.ParseRecommendationEvent(
			splitLine(recommendationLine("2026-08-20T09:00:00.152845")),
		)
		require.NoError(t, err)

		want := time.Date(2026, time.August, 20, 9, 0, 0, 152845000, time.UTC)
		assert.True(t, event.Timestamp.Equal(want))
	})

	t.Run("zoned timestamp is normalized to UTC", func(t *testing.T) {
		event, err := services.ParseRecommendationEvent(
			splitLine(recommendationLine("2026-08-20T09:00:00.5-05:00")),
		)
		require.NoError(t, err)

		want := time.Date(2026, time.August, 20, 14, 0, 0, 500000000, time.UTC)
		assert.True(t, event.Timestamp.Equal(want))
		assert.Equal(t, time.UTC, event.Timestamp.Location())
	})

	t.Run("truncated line is rejected", func(t *testing.T) {
		_, err := services.ParseRecommendationEvent(
			splitLine("2026-08-20T09:00:00,101,recommendation request, status 200, result: only+one+movie"),
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrTruncatedRecord)
	})

	t.Run("unparseable timestamp is rejected", func(t *testing.T) {
		_, err := services.ParseRecommendationEvent(splitLine(recommendationLine("noon")))
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrTruncatedRecord)
	})
}
