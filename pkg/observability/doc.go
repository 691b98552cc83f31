/*
Package observability provides ready-made implementations of the engine's
lifecycle hooks, currently a Prometheus metrics collector.
*/
package observability
