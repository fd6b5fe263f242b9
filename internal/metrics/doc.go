// Package metrics records client-side Prometheus metrics on a private
// registry: submission outcomes and latency, and UI state transitions.
// A CLI run can dump the registry to a text file in the node_exporter
// textfile format.
package metrics
