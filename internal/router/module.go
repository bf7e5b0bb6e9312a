package router

import "github.com/gin-gonic/gin"

// Module is one feature area (auth, bookings, posts, ...) mounting its routes on /api.
type Module interface {
	Register(rg *gin.RouterGroup)
}
