// Package cities holds the fixed registry of supported bike-share systems.
//
// The registry maps a lowercase city identifier (e.g. "chicago") to the
// metadata needed to probe the city's data portal and derive the names and
// URLs of its monthly trip-history archives. The table is immutable for the
// lifetime of the process; an identifier missing from it is a configuration
// error, not a runtime condition to recover from.
package cities
