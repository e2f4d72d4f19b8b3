package utils

import (
	"strconv"
)

const (
	defaultServiceName  = "lixi-landing"
	defaultOTLPEndpoint = "http://localhost:4318"
)

// TracingSettings is the OTEL_* environment as the server reads it.
type TracingSettings struct {
	Enabled     bool
	ServiceName string
	Endpoint    string
	// SampleRatio is clamped to [0, 1]; 1 records every root span.
	SampleRatio float64
}

func IsTracingEnabled() bool {
	return GetEnvBool("OTEL_TRACES_ENABLED", false)
}

func OTelServiceName() string {
	return GetEnvTrimmedOrDefault("OTEL_SERVICE_NAME", defaultServiceName)
}

func TracingSettingsFromEnv() TracingSettings {
	return TracingSettings{
		Enabled:     IsTracingEnabled(),
		ServiceName: OTelServiceName(),
		Endpoint:    GetEnvTrimmedOrDefault("OTEL_EXPORTER_OTLP_ENDPOINT", defaultOTLPEndpoint),
		SampleRatio: sampleRatio(GetEnvTrimmed("OTEL_TRACES_SAMPLER_ARG")),
	}
}

func sampleRatio(raw string) float64 {
	if raw == "" {
		return 1
	}

	ratio, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 1
	}

	return min(max(ratio, 0), 1)
}
