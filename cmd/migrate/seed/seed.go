package seed

import (
	"time"

	"cinelog/config"
	"cinelog/internal/logger"

	. "cinelog/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func day(hour, min int) time.Time {
	return time.Date(2026, time.August, 20, hour, min, 0, 0, time.UTC)
}

// Seed loads a small development dataset: one served recommendation list
// per user plus the watch and rating activity that follows it, enough to
// exercise the daily score pipeline end to end.
func Seed(db *gorm.DB, config config.Config, log logger.Logger) error {
	log = log.Function("seed")
	log.Info("Seeding development data")

	recommendations := []RecommendationEvent{
		{
			UserID: "101",
			RecommendedMovies: datatypes.JSONSlice[string]{
				"the+matrix+1999", "inception+2010", "heat+1995", "alien+1979",
				"blade+runner+1982", "seven+1995", "fargo+1996", "casino+1995",
				"gattaca+1997", "contact+1997", "dark+city+1998", "sphere+1998",
				"the+game+1997", "ronin+1998", "cube+1997", "pi+1998",
				"the+truman+show+1998", "twelve+monkeys+1995", "the+fifth+element+1997", "event+horizon+1997",
			},
			Timestamp: day(9, 0),
		},
		{
			UserID: "202",
			RecommendedMovies: datatypes.JSONSlice[string]{
				"amelie+2001", "chocolat+2000", "big+fish+2003", "the+prestige+2006",
				"stardust+2007", "pans+labyrinth+2006", "the+fall+2006", "coraline+2009",
				"hugo+2011", "life+of+pi+2012", "the+shape+of+water+2017", "paddington+2014",
				"matilda+1996", "hook+1991", "labyrinth+1986", "willow+1988",
				"the+neverending+story+1984", "time+bandits+1981", "legend+1985", "ladyhawke+1985",
			},
			Timestamp: day(9, 30),
		},
	}

	watches := []WatchEvent{
		{UserID: "101", MovieID: "the+matrix+1999", Timestamp: day(10, 0), Minute: 0},
		{UserID: "101", MovieID: "the+matrix+1999", Timestamp: day(10, 1), Minute: 1},
		{UserID: "101", MovieID: "the+matrix+1999", Timestamp: day(10, 2), Minute: 2},
		{UserID: "202", MovieID: "amelie+2001", Timestamp: day(11, 0), Minute: 0},
		{UserID: "202", MovieID: "amelie+2001", Timestamp: day(11, 1), Minute: 1},
		// Off-list watch, should not rescue the recommendation score
		{UserID: "202", MovieID: "office+space+1999", Timestamp: day(20, 0), Minute: 0},
	}

	ratings := []RatingEvent{
		{UserID: "101", MovieID: "the+matrix+1999", Timestamp: day(12, 0), Rating: 5},
		{UserID: "202", MovieID: "amelie+2001", Timestamp: day(13, 0), Rating: 4},
	}

	for i := range recommendations {
		if err := db.Create(&recommendations[i]).Error; err != nil {
			return log.Err("failed to seed recommendation event", err, "userId", recommendations[i].UserID)
		}
	}

	for i := range watches {
		if err := db.Create(&watches[i]).Error; err != nil {
			return log.Err("failed to seed watch event", err, "userId", watches[i].UserID)
		}
	}

	for i := range ratings {
		if err := db.Create(&ratings[i]).Error; err != nil {
			return log.Err("failed to seed rating event", err, "userId", ratings[i].UserID)
		}
	}

	log.Info("Seed complete",
		"recommendations", len(recommendations),
		"watches", len(watches),
		"ratings", len(ratings),
	)
	return nil
}
