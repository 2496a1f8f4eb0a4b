// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"github.com/prometheus/client_golang/prometheus"
)

// collector exports the statistics of a BDD as Prometheus metrics. Values are
// read at scrape time.
type collector struct {
	b            *BDD
	nodes        *prometheus.Desc
	variables    *prometheus.Desc
	produced     *prometheus.Desc
	uniqueHits   *prometheus.Desc
	uniqueMisses *prometheus.Desc
	cacheEntries *prometheus.Desc
	cacheHits    *prometheus.Desc
	cacheMisses  *prometheus.Desc
}

// NewCollector returns a Prometheus collector for the statistics of b. Labels
// in constLabels are added to every metric, which is useful to tell apart
// several BDD registered with the same registry.
func NewCollector(b *BDD, constLabels prometheus.Labels) prometheus.Collector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName("robdd", "", name), help, nil, constLabels)
	}
	return &collector{
		b:            b,
		nodes:        desc("nodes", "Number of nodes in the node table, constants included."),
		variables:    desc("variables", "Number of variables created with Leaf."),
		produced:     desc("produced_nodes_total", "Total number of nodes ever produced."),
		uniqueHits:   desc("unique_hits_total", "Lookups that found an existing node in the unique table."),
		uniqueMisses: desc("unique_misses_total", "Lookups that did not find a node in the unique table."),
		cacheEntries: desc("ite_cache_entries", "Number of results memoized by ITE."),
		cacheHits:    desc("ite_cache_hits_total", "Lookups that found a result in the ITE cache."),
		cacheMisses:  desc("ite_cache_misses_total", "Lookups that did not find a result in the ITE cache."),
	}
}

// Describe implements prometheus.Collector.
func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.nodes
	ch <- c.variables
	ch <- c.produced
	ch <- c.uniqueHits
	ch <- c.uniqueMisses
	ch <- c.cacheEntries
	ch <- c.cacheHits
	ch <- c.cacheMisses
}

// Collect implements prometheus.Collector.
func (c *collector) Collect(ch chan<- prometheus.Metric) {
	s := c.b.Statistics()
	ch <- prometheus.MustNewConstMetric(c.nodes, prometheus.GaugeValue, float64(s.Nodes))
	ch <- prometheus.MustNewConstMetric(c.variables, prometheus.GaugeValue, float64(s.Variables))
	ch <- prometheus.MustNewConstMetric(c.produced, prometheus.CounterValue, float64(s.Produced))
	ch <- prometheus.MustNewConstMetric(c.uniqueHits, prometheus.CounterValue, float64(s.UniqueHit))
	ch <- prometheus.MustNewConstMetric(c.uniqueMisses, prometheus.CounterValue, float64(s.UniqueMiss))
	ch <- prometheus.MustNewConstMetric(c.cacheEntries, prometheus.GaugeValue, float64(s.CacheEntries))
	ch <- prometheus.MustNewConstMetric(c.cacheHits, prometheus.CounterValue, float64(s.CacheHit))
	ch <- prometheus.MustNewConstMetric(c.cacheMisses, prometheus.CounterValue, float64(s.CacheMiss))
}
