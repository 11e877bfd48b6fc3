package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"pesquisa-fei/backend/pkg/metrics"
)

// Metrics 记录 HTTP 请求计数与耗时
func Metrics() gin.HandlerFunc {
	metrics.Init()
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		// 使用路由模板避免按 ID 产生高基数标签
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		method := c.Request.Method

		metrics.HTTPRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPRequestDurationSeconds.WithLabelValues(method, endpoint).Observe(time.Since(start).Seconds())
	}
}
