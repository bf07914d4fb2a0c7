// Package report provides types for city weather queries and their results.
//
// A query is a city name with an optional verbosity suffix: "london" asks for
// basic conditions, "london+" adds coordinates and the observation time, and
// "london++" adds the full set of fields (timezone, pressure, humidity,
// visibility, wind). The Report type carries everything the API returned and
// knows which subset of fields to expose for each detail level.
package report
