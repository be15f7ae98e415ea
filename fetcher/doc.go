/*
Package fetcher downloads and caches monthly bike-share trip archives.

A Fetcher is bound to one city and year. It probes the city's data portal,
derives per-month archive names and URLs from the static city registry,
downloads and extracts archives that are not yet cached under the raw-data
root, and optionally loads the extracted CSVs into an in-memory table.

# Cache layout

Relative to the configured raw-data root:

	<root>/<city>/<file-name>/<file-name>.csv   extracted trip data
	<root>/<city>/<file-name>.zip               archive, removed after extraction

A cache entry is identified purely by the existence of its directory; no
checksum or freshness validation is performed.

# Error model

Configuration errors (unknown city, unsupported year/city combination,
out-of-range month) fail loudly and immediately. Availability and transport
failures are logged and converted into an absent result for that city or
month, so batch operations keep going with whatever months succeed.
*/
package fetcher
