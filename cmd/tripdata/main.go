package main

import (
	"context"
	"flag"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/bikeshare-tripdata/config"
	"github.com/theoremus-urban-solutions/bikeshare-tripdata/fetcher"
)

func main() {
	cityList := flag.String("cities", "", "comma-separated city identifiers, e.g. chicago,new_york")
	year := flag.Int("year", 0, "year to fetch trip data for")
	debug := flag.Bool("debug", false, "verbose development logging")
	flag.Parse()

	_ = godotenv.Load()

	log := newLogger(*debug)
	defer func() { _ = log.Sync() }()

	if *cityList == "" || *year == 0 {
		flag.Usage()
		os.Exit(2)
	}
	if err := config.LoadAppConfig(); err != nil {
		log.Fatal("loading configuration", zap.Error(err))
	}

	ctx := context.Background()
	for _, city := range strings.Split(*cityList, ",") {
		city = strings.TrimSpace(city)
		if city == "" {
			continue
		}
		f, err := fetcher.New(city, *year, config.Config, log)
		if err != nil {
			log.Fatal("unsupported city", zap.String("city", city), zap.Error(err))
		}
		// Download-only batch: archives are cached on disk, nothing is
		// loaded into memory here.
		if _, _, err := f.LoadRange(ctx, nil, false); err != nil {
			log.Fatal("fetching trip data", zap.String("city", city), zap.Error(err))
		}
	}
}

func newLogger(debug bool) *zap.Logger {
	var log *zap.Logger
	var err error
	if debug {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	return log
}
