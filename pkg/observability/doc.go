/*
Package observability provides tools for monitoring the orderbot engine.

It includes Prometheus metrics fed by lifecycle hooks, an instrumented menu
service that times every validation fetch, and an HTTP handler exposing the
collected series.
*/
package observability
