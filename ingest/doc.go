// Package ingest reads price and return tables from CSV and JSON sources.
//
// Ingestion is eager: every date and every cell is parsed and validated
// up front, and any malformed value is reported as a
// riskstat.ErrMalformedInput instead of silently producing a wrong column.
// Currency formatted cells like "$2,933.68" are parsed exactly with a
// decimal before being converted to float64.
package ingest
