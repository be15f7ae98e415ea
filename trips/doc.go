// Package trips loads extracted trip-history CSV files into an in-memory
// tabular structure and concatenates them month over month.
package trips
