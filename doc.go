// Package riskstat computes returns, risk and performance statistics over
// date-indexed tables of prices or returns.
//
// The core functionalities include:
//   - Tables: a Table is an immutable date-indexed set of named float64
//     columns. Missing observations are NaN and are never coerced to zero.
//   - Returns: PercentChange derives period-over-period returns from prices,
//     CumulativeReturn compounds them back.
//   - Alignment: InnerJoin restricts several tables to their common dates, so
//     that every cross-portfolio statistic is computed over the same rows.
//   - Risk: StdDev, RollingStdDev, EWMStdDev, RollingCovariance,
//     RollingVariance, Beta and CorrelationMatrix.
//   - Performance: AnnualizedSharpeRatio and WeightedReturn to build a
//     synthetic portfolio out of several assets.
//
// Every function is pure: inputs are never modified and the same inputs give
// the same outputs. Aggregates skip NaN values, window statistics return NaN
// until the window is full.
//
// Ingestion lives in package ingest, the end-to-end analysis in package
// analysis, and presentation in packages renderer and chart.
package riskstat
