package repositories

type Repository struct {
	WatchEvent          WatchEventRepository
	RatingEvent         RatingEventRepository
	RecommendationEvent RecommendationEventRepository
}

func New() Repository {
	return Repository{
		WatchEvent:          NewWatchEventRepository(),
		RatingEvent:         NewRatingEventRepository(),
		RecommendationEvent: NewRecommendationEventRepository(),
	}
}
