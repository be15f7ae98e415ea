package cities

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// City describes one bike-share system operated by Lyft.
type City struct {
	ID            string
	DisplayName   string
	Service       string // portal service slug, e.g. "divvybikes"
	FileSlug      string // trip-archive slug, e.g. "divvy"; empty means the bare YYYYMM.csv layout
	URLPrefix     string // archive host+path prefix; empty means downloads are unsupported
	MaxYear       int    // last year with published archives; 0 means unbounded
	PortalViaLyft bool   // portal lives under lyft.com/bikes/<service> instead of <service>.com
}

// ErrUnknownCity is returned when a city identifier is not in the registry.
var ErrUnknownCity = errors.New("no bike-share system registered for city")

// registry is the fixed city table, built once at startup.
var registry = buildRegistry()

func buildRegistry() map[string]City {
	cs := []City{
		{ID: "bay_area", Service: "bay-wheels", PortalViaLyft: true},
		{ID: "chicago", Service: "divvybikes", FileSlug: "divvy", URLPrefix: "divvy-tripdata.s3.amazonaws.com/"},
		{ID: "new_york", Service: "citibikenyc", FileSlug: "citibike", URLPrefix: "s3.amazonaws.com/tripdata/"},
		{ID: "columbus", Service: "cogobikeshare", FileSlug: "cogo", URLPrefix: "cogo-sys-data.s3.amazonaws.com/"},
		{ID: "washington_dc", Service: "capitalbikeshare", FileSlug: "capitalbikeshare", URLPrefix: "s3.amazonaws.com/capitalbikeshare-data/"},
		{ID: "portland", Service: "biketownpdx", URLPrefix: "s3.amazonaws.com/biketown-tripdata-public/", MaxYear: 2020},
	}
	m := make(map[string]City, len(cs))
	for _, c := range cs {
		c.DisplayName = displayName(c.ID)
		m[c.ID] = c
	}
	return m
}

// Lookup returns the registry entry for a city identifier.
func Lookup(id string) (City, error) {
	c, ok := registry[strings.ToLower(id)]
	if !ok {
		return City{}, errors.Wrap(ErrUnknownCity, id)
	}
	return c, nil
}

// IDs returns all registered city identifiers.
func IDs() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	return ids
}

// PortalURL returns the URL of the city's system-data page.
func (c City) PortalURL() string {
	if c.PortalViaLyft {
		return fmt.Sprintf("https://lyft.com/bikes/%s", c.Service)
	}
	return fmt.Sprintf("https://%s.com/system-data", c.Service)
}

// FileName returns the base name of the monthly trip-data file, e.g.
// "202403-divvy-tripdata". Portland publishes bare "YYYYMM.csv" files.
func (c City) FileName(year, month int) (string, error) {
	if month < 1 || month > 12 {
		return "", errors.Errorf("month out of range: %d", month)
	}
	if c.URLPrefix == "" {
		return "", errors.Errorf("no trip-data file template for %s", c.DisplayName)
	}
	if c.FileSlug == "" {
		return fmt.Sprintf("%d%02d.csv", year, month), nil
	}
	return fmt.Sprintf("%d%02d-%s-tripdata", year, month, c.FileSlug), nil
}

// ArchiveURL returns the download URL of the monthly zip archive.
func (c City) ArchiveURL(year, month int) (string, error) {
	if c.URLPrefix == "" {
		return "", errors.Errorf("no trip-data downloads published for %s", c.DisplayName)
	}
	if c.MaxYear != 0 && year > c.MaxYear {
		return "", errors.Errorf("no trip data published for %s after %d", c.DisplayName, c.MaxYear)
	}
	name, err := c.FileName(year, month)
	if err != nil {
		return "", err
	}
	return "https://" + c.URLPrefix + name + ".zip", nil
}

func displayName(id string) string {
	parts := strings.Split(id, "_")
	for i, p := range parts {
		if p == "dc" {
			parts[i] = "DC"
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
