/*
Package observability provides Prometheus instrumentation for the intake flow.

Metrics are exposed as lifecycle hooks, so any component that accepts
domain.LifecycleHooks (the controller, the HTTP adapter, the runner) can be
instrumented without knowing about Prometheus.
*/
package observability
