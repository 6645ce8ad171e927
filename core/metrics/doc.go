// Package metrics defines the interfaces used to observe schedule ingestion.
// Sinks record per-file outcomes and run summaries; several sinks can be
// combined with NewMultiSink and built from configuration through the
// factory registry.
package metrics
