package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveDeletion(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveDeletion("institution", "blocked", time.Now())
	m.ObserveDeletion("institution", "blocked", time.Now())
	m.ObserveDeletion("student", "deleted", time.Now())

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Deletions.WithLabelValues("institution", "blocked")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Deletions.WithLabelValues("student", "deleted")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.DeletionDuration))
}

func TestMetricNames(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.ObserveDeletion("group", "deleted", time.Now())

	assert.Equal(t, 1, testutil.CollectAndCount(reg, "schooladmin_deletions_total"))
	assert.Equal(t, 1, testutil.CollectAndCount(reg, "schooladmin_deletion_duration_seconds"))
}
