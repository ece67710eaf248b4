package server

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func newRouter(h *handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	v1 := router.Group("/api/v1")
	{
		v1.POST("/register", h.register)
		v1.POST("/login", h.login)
	}

	authed := v1.Group("")
	authed.Use(h.authenticate)
	{
		authed.POST("/logout", h.logout)

		authed.GET("/users", h.listUsers)
		authed.GET("/users/:username", h.userPage)
		authed.POST("/users/:username/follow", h.follow)
		authed.POST("/users/:username/unfollow", h.unfollow)
		authed.GET("/users/:username/followers", h.followers)
		authed.GET("/users/:username/following", h.followees)

		authed.POST("/tweets", h.createTweet)
		authed.GET("/tweets", h.listTweets)
		authed.GET("/tweets/:id", h.getTweet)
		authed.DELETE("/tweets/:id", h.deleteTweet)
		authed.POST("/tweets/:id/like", h.like)
		authed.POST("/tweets/:id/unlike", h.unlike)
		authed.GET("/tweets/:id/likes", h.likers)
	}

	return router
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logrus.Infof("%s %s %d %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(header string) string {
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}
