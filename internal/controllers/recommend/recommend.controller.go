package recommendController

import (
	"cinelog/internal/database"
	"cinelog/internal/logger"
	"cinelog/internal/services"
	"context"
	"errors"
	"strconv"
	"strings"
	"time"
)

const (
	minUserID = 1
	maxUserID = 1_000_000

	RECOMMEND_CACHE_PREFIX = "recommend"
	RECOMMEND_CACHE_EXPIRY = 5 * time.Minute
)

var ErrValidation = errors.New("validation error")

type RecommendControllerInterface interface {
	RecommendForUser(ctx context.Context, userIDParam string) (string, error)
}

type RecommendController struct {
	recommender *services.RecommenderService
	cache       database.CacheClient
	log         logger.Logger
}

func New(services services.Service, db database.DB) RecommendControllerInterface {
	return &RecommendController{
		recommender: services.Recommender,
		cache:       db.Cache.Recommendations,
		log:         logger.New("recommendController"),
	}
}

// RecommendForUser validates the raw user id and returns the comma-joined
// top-20 list for it. Out-of-range and non-integer ids fail with
// ErrValidation.
func (c *RecommendController) RecommendForUser(ctx context.Context, userIDParam string) (string, error) {
	log := c.log.Function("RecommendForUser")

	userID, err := ParseUserID(userIDParam)
	if err != nil {
		return "", err
	}

	key := strconv.Itoa(userID)

	if c.cache != nil {
		var cached string
		found, err := database.NewCacheBuilder(c.cache, key).
			WithContext(ctx).
			WithHash(RECOMMEND_CACHE_PREFIX).
			Get(&cached)
		if err != nil {
			log.Warn("failed to get recommendation from cache", "userID", userID, "error", err)
		}
		if found {
			return cached, nil
		}
	}

	response := strings.Join(c.recommender.PredictTopMovies(userID), ",")

	if c.cache != nil {
		err := database.NewCacheBuilder(c.cache, key).
			WithContext(ctx).
			WithHash(RECOMMEND_CACHE_PREFIX).
			WithStruct(response).
			WithTTL(RECOMMEND_CACHE_EXPIRY).
			Set()
		if err != nil {
			log.Warn("failed to cache recommendation", "userID", userID, "error", err)
		}
	}

	return response, nil
}

// ParseUserID enforces the serving contract: an integer in [1, 1_000_000].
func ParseUserID(param string) (int, error) {
	userID, err := strconv.Atoi(param)
	if err != nil {
		return 0, ErrValidation
	}

	if userID < minUserID || userID > maxUserID {
		return 0, ErrValidation
	}

	return userID, nil
}
