package translator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "faq_translation_cache_hits_total",
		Help: "Количество обращений за переводом, закрытых кешем.",
	})
	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "faq_translation_cache_misses_total",
		Help: "Количество обращений за переводом, ушедших во внешний API.",
	})
	providerRetries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "faq_translation_provider_retries_total",
		Help: "Количество повторов вызова внешнего API после rate-limit.",
	})
)
