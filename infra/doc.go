// Package infra holds the adapters behind the core interfaces: the xlsx
// sheet reader, schedule exporters, the MQTT publisher, Prometheus sinks and
// the zerolog logger. Adapters register themselves with the core factories
// from init, so importing a package is enough to make it configurable.
package infra
