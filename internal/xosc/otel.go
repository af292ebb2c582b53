package xosc

import (
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/carla-simulator/traffic-generation-editor-sub000/internal/xosc"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

var (
	countersOnce   sync.Once
	encodedCounter metric.Int64Counter
	decodedCounter metric.Int64Counter
)

// Counters come from the global OTel provider (no-op if not configured),
// so creation cannot fail in practice.
func initCounters() {
	m := meter()
	encodedCounter, _ = m.Int64Counter(
		"xosc.documents.encoded",
		metric.WithDescription("Total scenario documents encoded"),
	)
	decodedCounter, _ = m.Int64Counter(
		"xosc.documents.decoded",
		metric.WithDescription("Total scenario documents decoded"),
	)
}

func documentsEncoded() metric.Int64Counter {
	countersOnce.Do(initCounters)
	return encodedCounter
}

func documentsDecoded() metric.Int64Counter {
	countersOnce.Do(initCounters)
	return decodedCounter
}
