package fetcher

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"time"

	"github.com/bluele/gcache"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/bikeshare-tripdata/cities"
	"github.com/theoremus-urban-solutions/bikeshare-tripdata/config"
	"github.com/theoremus-urban-solutions/bikeshare-tripdata/trips"
)

// probeCache memoizes portal availability per city so repeated batches
// don't re-hit the portal within the configured TTL.
var probeCache = gcache.New(32).LRU().Build()

// Fetcher downloads, caches and loads one city's monthly trip archives
// for a single year.
type Fetcher struct {
	city     cities.City
	year     int
	root     string
	keep     bool
	probeTTL time.Duration
	client   *http.Client
	clock    Clock
	log      *zap.Logger
}

// Option customizes a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient overrides the HTTP client used for probes and downloads.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) { f.client = c }
}

// WithClock overrides the time source used for month defaulting.
func WithClock(c Clock) Option {
	return func(f *Fetcher) { f.clock = c }
}

// New constructs a Fetcher for one city and year. An identifier missing
// from the city registry is a configuration error; it fails here, before
// any network access.
func New(cityID string, year int, cfg config.AppConfig, log *zap.Logger, opts ...Option) (*Fetcher, error) {
	city, err := cities.Lookup(cityID)
	if err != nil {
		return nil, err
	}
	f := &Fetcher{
		city:     city,
		year:     year,
		root:     cfg.DataRoot,
		keep:     cfg.KeepArchives,
		probeTTL: time.Duration(cfg.Probe.CacheTTLMS) * time.Millisecond,
		client:   &http.Client{Timeout: time.Duration(cfg.HTTP.TimeoutMS) * time.Millisecond},
		clock:    systemClock{},
		log:      log.With(zap.String("city", city.ID), zap.Int("year", year)),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Probe checks whether the city's data portal publishes anything. Only an
// HTTP 200 counts as available; a transport failure or any other status is
// treated as "no data". Results are memoized per city for the probe TTL.
func (f *Fetcher) Probe(ctx context.Context) bool {
	if v, err := probeCache.Get(f.city.ID); err == nil {
		return v.(bool)
	}
	url := f.city.PortalURL()
	f.log.Info("checking whether trip data is published", zap.String("url", url))
	ok := false
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		f.log.Error("building portal probe request", zap.Error(err))
		return false
	}
	resp, err := f.client.Do(req)
	if err != nil {
		f.log.Warn("portal unreachable", zap.Error(err))
	} else {
		resp.Body.Close()
		ok = resp.StatusCode == http.StatusOK
		if !ok {
			f.log.Warn("no trip data published", zap.Int("status", resp.StatusCode))
		}
	}
	_ = probeCache.SetWithExpire(f.city.ID, ok, f.probeTTL)
	return ok
}

// FileName returns the deterministic base name of a month's trip-data
// file, per the city's template.
func (f *Fetcher) FileName(month int) (string, error) {
	return f.city.FileName(f.year, month)
}

// ArchiveURL returns the download URL of a month's zip archive.
func (f *Fetcher) ArchiveURL(month int) (string, error) {
	return f.city.ArchiveURL(f.year, month)
}

// CacheDir returns the directory a month's extracted CSV lives in.
func (f *Fetcher) CacheDir(fileName string) string {
	return filepath.Join(f.root, f.city.ID, fileName)
}

// Cached reports whether the extracted data for fileName is already on
// disk. Presence of the directory is the sole cache-hit signal; contents
// are not validated.
func (f *Fetcher) Cached(fileName string) bool {
	_, err := os.Stat(f.CacheDir(fileName))
	return err == nil
}

// MonthResult is the outcome of fetching a single month. Err is set when
// the month could not be fetched; callers must tolerate missing months.
type MonthResult struct {
	Month int
	Table *trips.Table // nil unless the caller asked for the data to be loaded
	Err   error
}

// OK reports whether the month was fetched successfully.
func (r MonthResult) OK() bool { return r.Err == nil }

// FetchMonth fetches a single month: derive file name, check the cache,
// download and extract on a miss, and optionally load the CSV into a
// table. Failures are captured in the result, never panicked.
func (f *Fetcher) FetchMonth(ctx context.Context, month int, loadTable bool) MonthResult {
	name, err := f.FileName(month)
	if err != nil {
		return MonthResult{Month: month, Err: err}
	}
	if f.Cached(name) {
		f.log.Info("already saved to disk", zap.String("file", name))
	} else {
		url, err := f.ArchiveURL(month)
		if err != nil {
			f.log.Error("cannot derive archive URL", zap.Int("month", month), zap.Error(err))
			return MonthResult{Month: month, Err: err}
		}
		if err := f.download(ctx, url, name); err != nil {
			f.log.Error("download failed", zap.String("file", name), zap.Error(err))
			return MonthResult{Month: month, Err: err}
		}
	}
	if !loadTable {
		return MonthResult{Month: month}
	}
	table, err := trips.Load(filepath.Join(f.CacheDir(name), name+".csv"))
	if err != nil {
		f.log.Error("loading cached CSV", zap.String("file", name), zap.Error(err))
		return MonthResult{Month: month, Err: err}
	}
	return MonthResult{Month: month, Table: table}
}

// LoadRange fetches a batch of months in ascending order and concatenates
// their tables. A nil months slice selects 1..current-month when the
// requested year is the clock's current year, 1..12 otherwise.
//
// When every requested month is already cached no network I/O happens at
// all. Otherwise the portal is probed first; if it reports no data the
// batch returns a nil table and nil results without attempting downloads.
// Individual month failures are recorded in the results and skipped.
func (f *Fetcher) LoadRange(ctx context.Context, months []int, loadTable bool) (*trips.Table, []MonthResult, error) {
	if months == nil {
		months = f.defaultMonths()
	} else {
		for _, m := range months {
			if m < 1 || m > 12 {
				return nil, nil, errors.Errorf("month out of range: %d", m)
			}
		}
		months = append([]int(nil), months...)
		sort.Ints(months)
	}

	if !f.allCached(months) && !f.Probe(ctx) {
		f.log.Error("no trip data available", zap.String("portal", f.city.PortalURL()))
		return nil, nil, nil
	}

	var combined trips.Table
	results := make([]MonthResult, 0, len(months))
	for _, m := range months {
		res := f.FetchMonth(ctx, m, loadTable)
		results = append(results, res)
		if !res.OK() {
			continue
		}
		if loadTable {
			if err := combined.Append(res.Table); err != nil {
				return nil, results, err
			}
		}
	}
	return &combined, results, nil
}

func (f *Fetcher) allCached(months []int) bool {
	for _, m := range months {
		name, err := f.FileName(m)
		if err != nil || !f.Cached(name) {
			return false
		}
	}
	return true
}

func (f *Fetcher) defaultMonths() []int {
	now := f.clock.Now()
	end := 12
	if f.year == now.Year() {
		end = int(now.Month())
	}
	months := make([]int, 0, end)
	for m := 1; m <= end; m++ {
		months = append(months, m)
	}
	return months
}

var archiveNamePattern = regexp.MustCompile(`[^/]+$`)

// archiveNameFromURL extracts the archive file name (the last path
// segment) from a download URL. A URL this fails on indicates a bug in
// URL construction, so the error is returned rather than swallowed.
func archiveNameFromURL(rawURL string) (string, error) {
	name := archiveNamePattern.FindString(rawURL)
	if name == "" {
		return "", errors.Errorf("cannot parse archive name from URL %q", rawURL)
	}
	return name, nil
}
