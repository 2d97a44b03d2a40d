package database

import (
	"cinelog/config"
	"fmt"

	"github.com/valkey-io/valkey-go"
)

// Valkey database index organization. Each index gives logical separation
// between cache categories.
const (
	// GENERAL_CACHE_INDEX (DB 0) - miscellaneous cache operations
	GENERAL_CACHE_INDEX = iota

	// RECOMMENDATIONS_CACHE_INDEX (DB 1) - per-user serving responses
	RECOMMENDATIONS_CACHE_INDEX

	// SCORES_CACHE_INDEX (DB 2) - per-day WAR scores. Advisory only: a past
	// day's score can still drift as late ratings arrive, so entries carry a
	// short TTL and the store remains authoritative.
	SCORES_CACHE_INDEX
)

func (s *DB) initializeCacheDB(config config.Config) error {
	log := s.log.Function("initializeCacheDB")
	log.Info("initializing cache database")

	address := config.DatabaseCacheAddress
	port := config.DatabaseCachePort
	if address == "" || port == 0 {
		return log.ErrMsg("cache address or port is empty")
	}

	var cacheDB Cache

	var err error
	cacheDB.General, err = valkey.NewClient(
		valkey.ClientOption{
			InitAddress: []string{fmt.Sprintf("%s:%d", address, port)},
			SelectDB:    GENERAL_CACHE_INDEX,
		},
	)
	if err != nil {
		return log.Err("failed to create general valkey client", err)
	}

	cacheDB.Recommendations, err = valkey.NewClient(
		valkey.ClientOption{
			InitAddress: []string{fmt.Sprintf("%s:%d", address, port)},
			SelectDB:    RECOMMENDATIONS_CACHE_INDEX,
		},
	)
	if err != nil {
		return log.Err("failed to create recommendations valkey client", err)
	}

	cacheDB.Scores, err = valkey.NewClient(
		valkey.ClientOption{
			InitAddress: []string{fmt.Sprintf("%s:%d", address, port)},
			SelectDB:    SCORES_CACHE_INDEX,
		},
	)
	if err != nil {
		return log.Err("failed to create scores valkey client", err)
	}

	s.Cache = cacheDB

	log.Info("Successfully initialized cache database")
	return nil
}
