package middleware

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/vishalpatil-45/Adventour/metrics"
)

func TestMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Metrics())
	r.GET("/ping/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	before := testutil.ToFloat64(metrics.TotalRequests.WithLabelValues("/ping/:id", "204", "GET"))
	doGet(r, "/ping/1", "")
	doGet(r, "/ping/2", "")

	after := testutil.ToFloat64(metrics.TotalRequests.WithLabelValues("/ping/:id", "204", "GET"))
	assert.Equal(t, before+2, after)
	assert.GreaterOrEqual(t, testutil.CollectAndCount(metrics.HTTPDuration), 1)
}
