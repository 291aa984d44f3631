package app

import "github.com/gin-gonic/gin"

const metricsRealm = "metrics"

// metricsAuth guards /metrics with Basic Auth once a password is set.
// Without one the endpoint is open, for scrapers on a private network.
func metricsAuth(username, password string) gin.HandlerFunc {
	if password == "" {
		return func(c *gin.Context) { c.Next() }
	}
	return gin.BasicAuthForRealm(gin.Accounts{username: password}, metricsRealm)
}
