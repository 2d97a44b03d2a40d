package main

import (
	"cinelog/config"
	"cinelog/internal/database"
	"cinelog/internal/logger"
	"cinelog/internal/repositories"
	"cinelog/internal/services"
	"context"
	"flag"
	"fmt"
	"os"
	"time"
)

const dayLayout = "2006-01-02"

// Computes the weighted average rating (WAR) of served recommendations for
// one day or a date range.
//
//	war -day 2024-03-15
//	war -start 2024-03-17 -end 2024-03-18
func main() {
	log := logger.New("war").Function("main")

	dayFlag := flag.String("day", "", "single day to score (YYYY-MM-DD)")
	startFlag := flag.String("start", "", "period start (YYYY-MM-DD)")
	endFlag := flag.String("end", "", "period end (YYYY-MM-DD)")
	flag.Parse()

	config, err := config.InitConfig()
	if err != nil {
		os.Exit(1)
	}

	db, err := database.New(config)
	if err != nil {
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Er("failed to close database", err)
		}
	}()

	repos := repositories.New()
	performanceService := services.NewPerformanceService(repos, db, db.Cache.Scores)

	ctx := context.Background()

	switch {
	case *dayFlag != "":
		runDay(ctx, performanceService, *dayFlag, log)
	case *startFlag != "" && *endFlag != "":
		runPeriod(ctx, performanceService, *startFlag, *endFlag, log)
	default:
		fmt.Fprintln(os.Stderr, "usage: war -day YYYY-MM-DD | war -start YYYY-MM-DD -end YYYY-MM-DD")
		os.Exit(2)
	}
}

func runDay(
	ctx context.Context,
	performanceService *services.PerformanceService,
	dayParam string,
	log logger.Logger,
) {
	day, err := time.ParseInLocation(dayLayout, dayParam, time.UTC)
	if err != nil {
		log.Er("invalid day", err, "day", dayParam)
		os.Exit(2)
	}

	score, err := performanceService.CalculateMetricForDay(ctx, day)
	if err != nil {
		log.Er("failed to calculate daily score", err, "day", dayParam)
		os.Exit(1)
	}

	if score == nil {
		fmt.Printf("Average Model Rating for %s: undefined\n", dayParam)
		return
	}
	fmt.Printf("Average Model Rating for %s: %g\n", dayParam, *score)
}

func runPeriod(
	ctx context.Context,
	performanceService *services.PerformanceService,
	startParam, endParam string,
	log logger.Logger,
) {
	start, err := time.ParseInLocation(dayLayout, startParam, time.UTC)
	if err != nil {
		log.Er("invalid start day", err, "start", startParam)
		os.Exit(2)
	}

	end, err := time.ParseInLocation(dayLayout, endParam, time.UTC)
	if err != nil {
		log.Er("invalid end day", err, "end", endParam)
		os.Exit(2)
	}

	report, err := performanceService.WarOverPeriod(ctx, start, end)
	if err != nil {
		log.Er("failed to calculate period scores", err)
		os.Exit(1)
	}

	if report == nil {
		fmt.Println("No ratings found for the specified period.")
		return
	}

	for _, day := range report.Days {
		fmt.Printf("Average Model Rating for %s: %g\n", day.Date, day.Score)
	}
	fmt.Printf("Minimum Rating over the period: %g\n", report.Min)
	fmt.Printf("Maximum Rating over the period: %g\n", report.Max)
	fmt.Printf("Average Rating over the period: %g\n", report.Mean)
}
