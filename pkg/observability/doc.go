// Package observability provides an optional Prometheus collector fed by the
// client's run lifecycle hooks. The library itself never registers metrics;
// hosts that want them attach the collector's hooks and register it on their
// own registry.
package observability
