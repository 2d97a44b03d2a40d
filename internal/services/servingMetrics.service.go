package services

import (
	"cinelog/config"
	"cinelog/internal/logger"
	"cinelog/internal/utils"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
)

var defaultMetricsThresholds = []int{1000, 2000, 5000}

// ServingMetricsService tracks serving-quality counters for the recommend
// endpoint: total requests, non-200 responses, and the number of distinct
// response bodies. Counters live on this object, reset with the process, and
// are flushed to a report file each time the total crosses a configured
// threshold.
type ServingMetricsService struct {
	mu               sync.Mutex
	totalRequests    int
	invalidResponses int
	uniqueResponses  map[string]struct{}
	thresholds       []int
	flushed          map[int]bool
	outputDir        string
	log              logger.Logger
}

func NewServingMetricsService(config config.Config) *ServingMetricsService {
	log := logger.New("servingMetricsService")

	thresholds := parseThresholds(config.MetricsThresholds)
	if len(thresholds) == 0 {
		thresholds = defaultMetricsThresholds
	}

	outputDir := config.MetricsOutputDir
	if outputDir == "" {
		outputDir = "."
	}

	log.Info("serving metrics initialized", "thresholds", thresholds, "outputDir", outputDir)
	return &ServingMetricsService{
		uniqueResponses: make(map[string]struct{}),
		thresholds:      thresholds,
		flushed:         make(map[int]bool),
		outputDir:       outputDir,
		log:             log,
	}
}

// Record accounts one completed serving request.
func (s *ServingMetricsService) Record(statusCode int, body []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.totalRequests++

	if statusCode != http.StatusOK {
		s.invalidResponses++
	} else {
		s.uniqueResponses[utils.HashBytes(body)] = struct{}{}
	}

	for _, threshold := range s.thresholds {
		if s.totalRequests == threshold && !s.flushed[threshold] {
			s.flushed[threshold] = true
			s.flushLocked(threshold)
		}
	}
}

type ServingMetricsSnapshot struct {
	TotalRequests    int `json:"totalRequests"`
	InvalidResponses int `json:"invalidResponses"`
	UniqueResponses  int `json:"uniqueResponses"`
}

func (s *ServingMetricsService) Snapshot() ServingMetricsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return ServingMetricsSnapshot{
		TotalRequests:    s.totalRequests,
		InvalidResponses: s.invalidResponses,
		UniqueResponses:  len(s.uniqueResponses),
	}
}

func (s *ServingMetricsService) flushLocked(limit int) {
	log := s.log.Function("flushLocked")

	valid := s.totalRequests - s.invalidResponses
	uniqueRate := 0.0
	if valid > 0 {
		uniqueRate = float64(len(s.uniqueResponses)) / float64(valid)
	}

	var report strings.Builder
	fmt.Fprintf(&report, "Number of Invalid Responses: %d\n", s.invalidResponses)
	fmt.Fprintf(&report, "Number of Unique Responses: %d\n", len(s.uniqueResponses))
	fmt.Fprintf(&report, "Unique Responses Rate: %g\n", uniqueRate)
	fmt.Fprintf(&report, "Total Number of Requests: %d\n", s.totalRequests)

	path := filepath.Join(s.outputDir, fmt.Sprintf("serving_metrics_%d.txt", limit))
	if err := os.WriteFile(path, []byte(report.String()), 0o644); err != nil {
		log.Er("failed to write serving metrics report", err, "path", path)
		return
	}

	log.Info("flushed serving metrics", "path", path, "totalRequests", s.totalRequests)
}

func parseThresholds(value string) []int {
	if value == "" {
		return nil
	}

	var thresholds []int
	for _, part := range strings.Split(value, ",") {
		threshold, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || threshold <= 0 {
			continue
		}
		thresholds = append(thresholds, threshold)
	}

	sort.Ints(thresholds)
	return thresholds
}
