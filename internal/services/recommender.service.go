package services

import (
	"cinelog/config"
	"cinelog/internal/logger"
	"encoding/json"
	"math/rand"
	"os"
	"sort"
	"strconv"
	"strings"
)

// MovieScorer predicts a user's rating for a movie. The model itself is a
// black box trained by a sibling subsystem; this core only runs inference.
type MovieScorer interface {
	Score(userID string, movieID string) float64
}

// RecommenderService serves top-20 movie lists. Users outside the trained
// set get 20 titles sampled uniformly from the catalog instead of a failure.
type RecommenderService struct {
	catalog    []string
	knownUsers map[string]struct{}
	scorer     MovieScorer
	log        logger.Logger
}

func NewRecommenderService(config config.Config) (*RecommenderService, error) {
	log := logger.New("recommenderService").Function("NewRecommenderService")

	catalog, err := loadStringList(config.ModelMoviesPath)
	if err != nil {
		return nil, log.Err("failed to load movie catalog", err, "path", config.ModelMoviesPath)
	}

	users, err := loadStringList(config.ModelUsersPath)
	if err != nil {
		return nil, log.Err("failed to load user list", err, "path", config.ModelUsersPath)
	}

	scorer, err := LoadLatentFactorScorer(config.ModelPath)
	if err != nil {
		return nil, log.Err("failed to load model", err, "path", config.ModelPath)
	}

	knownUsers := make(map[string]struct{}, len(users))
	for _, user := range users {
		knownUsers[user] = struct{}{}
	}

	log.Info("recommender initialized", "catalogSize", len(catalog), "knownUsers", len(users))
	return &RecommenderService{
		catalog:    catalog,
		knownUsers: knownUsers,
		scorer:     scorer,
		log:        logger.New("recommenderService"),
	}, nil
}

// NewRecommenderServiceWithModel wires an already-built catalog, user set,
// and scorer. Used by tests and anywhere the model is not file-backed.
func NewRecommenderServiceWithModel(
	catalog []string,
	users []string,
	scorer MovieScorer,
) *RecommenderService {
	knownUsers := make(map[string]struct{}, len(users))
	for _, user := range users {
		knownUsers[user] = struct{}{}
	}

	return &RecommenderService{
		catalog:    catalog,
		knownUsers: knownUsers,
		scorer:     scorer,
		log:        logger.New("recommenderService"),
	}
}

type scoredMovie struct {
	movieID string
	score   float64
}

// PredictTopMovies returns the 20 highest-predicted catalog titles for a
// known user, or 20 uniform-random titles for an unknown one. Every returned
// identifier has spaces replaced by "+".
func (s *RecommenderService) PredictTopMovies(userID int) []string {
	log := s.log.Function("PredictTopMovies")

	user := strconv.Itoa(userID)
	count := min(recommendedMovieCount, len(s.catalog))

	if _, known := s.knownUsers[user]; !known {
		log.Debug("unknown user, sampling catalog", "userID", userID)
		return s.sampleCatalog(count)
	}

	scored := make([]scoredMovie, 0, len(s.catalog))
	for _, movieID := range s.catalog {
		scored = append(scored, scoredMovie{
			movieID: movieID,
			score:   s.scorer.Score(user, movieID),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	top := make([]string, 0, count)
	for _, movie := range scored[:count] {
		top = append(top, formatMovieID(movie.movieID))
	}

	return top
}

func (s *RecommenderService) sampleCatalog(count int) []string {
	sampled := make([]string, 0, count)
	for _, index := range rand.Perm(len(s.catalog))[:count] {
		sampled = append(sampled, formatMovieID(s.catalog[index]))
	}
	return sampled
}

func formatMovieID(movieID string) string {
	return strings.ReplaceAll(movieID, " ", "+")
}

func loadStringList(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, err
	}

	return list, nil
}
