package fetcher

// WithMemoryCap exposes withMemoryCap for tests.
var WithMemoryCap = withMemoryCap
