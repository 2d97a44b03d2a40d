package services

import (
	"cinelog/internal/database"
	"cinelog/internal/logger"
	. "cinelog/internal/models"
	"cinelog/internal/repositories"
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// a recommendation followed by no watch, or by a watch outside the
	// served list, scores the worst possible rating
	penaltyRating = 1

	WAR_SCORE_CACHE_PREFIX = "war_day"
	WAR_SCORE_CACHE_EXPIRY = 1 * time.Hour

	dayLayout = "2006-01-02"
)

// PerformanceService computes the online quality metric (WAR, weighted
// average rating) by joining each served recommendation against the user's
// next watch and the eventual rating of that watched title.
type PerformanceService struct {
	repos repositories.Repository
	db    database.DB
	cache database.CacheClient
	log   logger.Logger
}

func NewPerformanceService(
	repos repositories.Repository,
	db database.DB,
	cache database.CacheClient,
) *PerformanceService {
	return &PerformanceService{
		repos: repos,
		db:    db,
		cache: cache,
		log:   logger.New("performanceService"),
	}
}

type NextWatch struct {
	MovieID   string    `json:"movieId"`
	WatchedAt time.Time `json:"watchedAt"`
}

type NextRating struct {
	Rating  int       `json:"rating"`
	RatedAt time.Time `json:"ratedAt"`
}

// FindNextWatch returns the earliest watch event for the user strictly after
// the given instant, or nil when none exists. The earliest post-cutoff
// checkpoint identifies what the user watched next regardless of how long
// they watched it.
func (s *PerformanceService) FindNextWatch(
	ctx context.Context,
	userID string,
	after time.Time,
) (*NextWatch, error) {
	event, err := s.repos.WatchEvent.FindFirstAfter(ctx, s.db.SQL, userID, after)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	if event == nil {
		return nil, nil
	}

	return &NextWatch{MovieID: event.MovieID, WatchedAt: event.Timestamp}, nil
}

// FindNextRating returns the earliest rating the user gave movieID strictly
// after the given instant, or nil when the movie was never rated past it.
func (s *PerformanceService) FindNextRating(
	ctx context.Context,
	userID string,
	after time.Time,
	movieID string,
) (*NextRating, error) {
	event, err := s.repos.RatingEvent.FindFirstAfter(ctx, s.db.SQL, userID, movieID, after)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	if event == nil {
		return nil, nil
	}

	return &NextRating{Rating: event.Rating, RatedAt: event.Timestamp}, nil
}

// CalculateMetricForDay computes the mean outcome score across every
// recommendation served on the given UTC calendar day. The result is nil
// (undefined) when the day has no recommendations, or when every served
// recommendation was watched but never rated and so contributed nothing.
func (s *PerformanceService) CalculateMetricForDay(
	ctx context.Context,
	date time.Time,
) (*float64, error) {
	log := s.log.Function("CalculateMetricForDay")

	startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	endOfDay := startOfDay.AddDate(0, 0, 1)

	recommendations, err := s.repos.RecommendationEvent.FindInTimeRange(
		ctx, s.db.SQL, startOfDay, endOfDay,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if len(recommendations) == 0 {
		log.Info("no recommendations served", "date", startOfDay.Format(dayLayout))
		return nil, nil
	}

	var sum decimal.Decimal
	var contributed int

	for _, recommendation := range recommendations {
		score, counted, err := s.scoreRecommendation(ctx, recommendation)
		if err != nil {
			return nil, err
		}
		if !counted {
			continue
		}
		sum = sum.Add(decimal.NewFromInt(int64(score)))
		contributed++
	}

	if contributed == 0 {
		log.Info(
			"every recommendation was watched but unrated, score undefined",
			"date", startOfDay.Format(dayLayout),
			"recommendations", len(recommendations),
		)
		return nil, nil
	}

	mean, _ := sum.Div(decimal.NewFromInt(int64(contributed))).Float64()

	log.Info(
		"calculated daily metric",
		"date", startOfDay.Format(dayLayout),
		"recommendations", len(recommendations),
		"contributed", contributed,
		"score", mean,
	)
	return &mean, nil
}

// scoreRecommendation resolves one recommendation's outcome: the user's
// eventual rating of the next-watched title when it was in the served list, a
// penalty of 1 when nothing (or something off-list) was watched next, and no
// contribution at all when the watched title was never rated.
func (s *PerformanceService) scoreRecommendation(
	ctx context.Context,
	recommendation *RecommendationEvent,
) (score int, counted bool, err error) {
	nextWatch, err := s.FindNextWatch(ctx, recommendation.UserID, recommendation.Timestamp)
	if err != nil {
		return 0, false, err
	}

	if nextWatch == nil || !recommendation.Recommends(nextWatch.MovieID) {
		return penaltyRating, true, nil
	}

	nextRating, err := s.FindNextRating(
		ctx,
		recommendation.UserID,
		recommendation.Timestamp,
		nextWatch.MovieID,
	)
	if err != nil {
		return 0, false, err
	}

	if nextRating == nil {
		return 0, false, nil
	}

	return nextRating.Rating, true, nil
}

// CalculateMetricForDayCached consults the Valkey score cache before
// computing. Cached values are advisory; a miss or cache failure falls back
// to the store.
func (s *PerformanceService) CalculateMetricForDayCached(
	ctx context.Context,
	date time.Time,
) (*float64, error) {
	log := s.log.Function("CalculateMetricForDayCached")
	day := date.UTC().Format(dayLayout)

	if s.cache != nil {
		var cached float64
		found, err := database.NewCacheBuilder(s.cache, day).
			WithContext(ctx).
			WithHash(WAR_SCORE_CACHE_PREFIX).
			Get(&cached)
		if err != nil {
			log.Warn("failed to get day score from cache", "date", day, "error", err)
		}
		if found {
			return &cached, nil
		}
	}

	score, err := s.CalculateMetricForDay(ctx, date)
	if err != nil {
		return nil, err
	}

	if score != nil && s.cache != nil {
		err := database.NewCacheBuilder(s.cache, day).
			WithContext(ctx).
			WithHash(WAR_SCORE_CACHE_PREFIX).
			WithStruct(*score).
			WithTTL(WAR_SCORE_CACHE_EXPIRY).
			Set()
		if err != nil {
			log.Warn("failed to cache day score", "date", day, "error", err)
		}
	}

	return score, nil
}

type DayScore struct {
	Date    string  `json:"date"`
	Score   float64 `json:"score"`
	Defined bool    `json:"defined"`
}

type PeriodReport struct {
	Days        []DayScore `json:"days"`
	DefinedDays int        `json:"definedDays"`
	Min         float64    `json:"min"`
	Max         float64    `json:"max"`
	Mean        float64    `json:"mean"`
}

// WarOverPeriod computes the daily metric for each UTC calendar day in the
// inclusive range, ascending. Undefined days enter the range statistics as 0
// (kept for parity with downstream consumers; the Defined flag and
// DefinedDays count expose the substitution). An empty range returns nil.
func (s *PerformanceService) WarOverPeriod(
	ctx context.Context,
	startDate time.Time,
	endDate time.Time,
) (*PeriodReport, error) {
	log := s.log.Function("WarOverPeriod")

	start := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 0, 0, 0, 0, time.UTC)

	if end.Before(start) {
		log.Warn("empty period", "start", start.Format(dayLayout), "end", end.Format(dayLayout))
		return nil, nil
	}

	report := &PeriodReport{}
	var sum decimal.Decimal
	var minScore, maxScore decimal.Decimal

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		score, err := s.CalculateMetricForDayCached(ctx, day)
		if err != nil {
			return nil, err
		}

		dayScore := DayScore{Date: day.Format(dayLayout)}
		value := decimal.Zero
		if score != nil {
			dayScore.Score = *score
			dayScore.Defined = true
			value = decimal.NewFromFloat(*score)
			report.DefinedDays++
		}

		if len(report.Days) == 0 {
			minScore, maxScore = value, value
		} else {
			if value.LessThan(minScore) {
				minScore = value
			}
			if value.GreaterThan(maxScore) {
				maxScore = value
			}
		}

		sum = sum.Add(value)
		report.Days = append(report.Days, dayScore)
	}

	count := decimal.NewFromInt(int64(len(report.Days)))
	report.Min, _ = minScore.Float64()
	report.Max, _ = maxScore.Float64()
	report.Mean, _ = sum.Div(count).Float64()

	log.Info(
		"calculated period metric",
		"start", start.Format(dayLayout),
		"end", end.Format(dayLayout),
		"days", len(report.Days),
		"definedDays", report.DefinedDays,
		"mean", report.Mean,
	)
	return report, nil
}
