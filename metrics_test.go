// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	bdd := newTestBDD(t)
	x1, x2 := bdd.Leaf("x1"), bdd.Leaf("x2")
	bdd.And(x1, x2)

	c := NewCollector(bdd, prometheus.Labels{"bdd": "test"})
	assert.Equal(t, 8, testutil.CollectAndCount(c))

	expected := `
# HELP robdd_nodes Number of nodes in the node table, constants included.
# TYPE robdd_nodes gauge
robdd_nodes{bdd="test"} 5
# HELP robdd_variables Number of variables created with Leaf.
# TYPE robdd_variables gauge
robdd_variables{bdd="test"} 2
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected), "robdd_nodes", "robdd_variables"))

	// values are read at scrape time
	bdd.Leaf("x3")
	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(c))
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == "robdd_variables" {
			assert.Equal(t, 3.0, mf.GetMetric()[0].GetGauge().GetValue())
		}
	}
}
