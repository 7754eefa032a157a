package api

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

func parseInt64Param(ctx *gin.Context, name string) (int64, bool) {
	value, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || value <= 0 {
		return 0, false
	}
	return value, true
}
