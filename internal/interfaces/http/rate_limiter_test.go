package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoginLimiter_EvictsIdleVisitors(t *testing.T) {
	l := NewLoginLimiter(5)
	l.visitor("10.0.0.1")
	l.visitor("10.0.0.2")
	l.visitors["10.0.0.1"].lastSeen = time.Now().Add(-10 * time.Minute)

	l.evict(time.Now())

	assert.NotContains(t, l.visitors, "10.0.0.1")
	assert.Contains(t, l.visitors, "10.0.0.2")
}

func TestLoginLimiter_BurstPerIP(t *testing.T) {
	l := NewLoginLimiter(2)
	assert.True(t, l.visitor("a").Allow())
	assert.True(t, l.visitor("a").Allow())
	assert.False(t, l.visitor("a").Allow())
	assert.True(t, l.visitor("b").Allow(), "cada IP tiene su propio cupo")
}
