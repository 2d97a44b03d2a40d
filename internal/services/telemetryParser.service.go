package services

import (
	. "cinelog/internal/models"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// EventKind is the closed set of telemetry line categories.
type EventKind int

const (
	EventWatch EventKind = iota
	EventRate
	EventRecommendation
	EventInvalid
)

func (k EventKind) String() string {
	switch k {
	case EventWatch:
		return "watch"
	case EventRate:
		return "rate"
	case EventRecommendation:
		return "recommendation"
	default:
		return "invalid"
	}
}

const (
	watchPathMarker      = "/data/"
	ratePathMarker       = "/rate/"
	recommendationMarker = "recommendation"

	// watch/rate lines carry naive second-precision timestamps; they are
	// treated as UTC (see decision log in DESIGN.md)
	watchTimeLayout = "2006-01-02T15:04:05"

	recommendationFieldCount = 24
	recommendedMovieCount    = 20
)

var (
	ErrMalformedPath         = errors.New("malformed path")
	ErrTruncatedRecord       = errors.New("truncated record")
	ErrInvalidClassification = errors.New("invalid classification")
	ErrStoreUnavailable      = errors.New("event store unavailable")
)

// Classify determines the category of one raw line split into fields.
// Precedence is fixed: a 3-field line carrying both the watch and rate
// markers is a watch line.
func Classify(fields []string) EventKind {
	if len(fields) < 3 {
		return EventInvalid
	}

	switch {
	case len(fields) == 3 && strings.Contains(fields[2], watchPathMarker):
		return EventWatch
	case len(fields) == 3 && strings.Contains(fields[2], ratePathMarker):
		return EventRate
	case strings.Contains(fields[2], recommendationMarker):
		return EventRecommendation
	default:
		return EventInvalid
	}
}

// ParseWatchEvent normalizes a watch line (timestamp, user, path). The last
// two path segments are the movie id and "<minute>.<ext>".
func ParseWatchEvent(fields []string) (*WatchEvent, error) {
	timestamp, err := time.ParseInLocation(watchTimeLayout, fields[0], time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: bad watch timestamp %q", ErrMalformedPath, fields[0])
	}

	segments := strings.Split(fields[2], "/")
	if len(segments) < 2 {
		return nil, fmt.Errorf("%w: watch path %q has too few segments", ErrMalformedPath, fields[2])
	}

	movieID := segments[len(segments)-2]
	minuteSegment := segments[len(segments)-1]

	minute, err := strconv.Atoi(strings.SplitN(minuteSegment, ".", 2)[0])
	if err != nil || minute < 0 {
		return nil, fmt.Errorf("%w: bad minute segment %q", ErrMalformedPath, minuteSegment)
	}

	return &WatchEvent{
		UserID:    fields[1],
		MovieID:   movieID,
		Timestamp: timestamp,
		Minute:    minute,
	}, nil
}

// ParseRatingEvent normalizes a rate line (timestamp, user, path). The final
// path segment is "<movie>=<rating>". The 1-5 range is a modeled invariant,
// not a parse-time check.
func ParseRatingEvent(fields []string) (*RatingEvent, error) {
	timestamp, err := time.ParseInLocation(watchTimeLayout, fields[0], time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: bad rating timestamp %q", ErrMalformedPath, fields[0])
	}

	segments := strings.Split(fields[2], "/")
	lastSegment := segments[len(segments)-1]

	parts := strings.SplitN(lastSegment, "=", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: rating segment %q missing separator", ErrMalformedPath, lastSegment)
	}

	rating, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: rating value %q is not an integer", ErrMalformedPath, parts[1])
	}

	return &RatingEvent{
		UserID:    fields[1],
		MovieID:   parts[0],
		Timestamp: timestamp,
		Rating:    rating,
	}, nil
}

// ParseRecommendationEvent normalizes a recommendation-serving line. Fields 2
// and 3 carry server/status metadata and are ignored; fields 4 through 23 are
// the served top-20 list in rank order.
func ParseRecommendationEvent(fields []string) (*RecommendationEvent, error) {
	if len(fields) < recommendationFieldCount {
		return nil, fmt.Errorf(
			"%w: recommendation line has %d fields, need %d",
			ErrTruncatedRecord, len(fields), recommendationFieldCount,
		)
	}

	timestamp, err := parseRecommendationTime(fields[0])
	if err != nil {
		return nil, fmt.Errorf("%w: bad recommendation timestamp %q", ErrTruncatedRecord, fields[0])
	}

	movies := make([]string, recommendedMovieCount)
	copy(movies, fields[4:recommendationFieldCount])

	return &RecommendationEvent{
		UserID:            fields[1],
		RecommendedMovies: movies,
		Timestamp:         timestamp,
	}, nil
}

// parseRecommendationTime accepts the zoned and naive ISO-8601 variants the
// serving layer emits, keeps fractional seconds, and normalizes to UTC.
func parseRecommendationTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.UTC(), nil
	}

	if t, err := time.ParseInLocation("2006-01-02T15:04:05.999999999", value, time.UTC); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("unsupported timestamp format %q", value)
}
