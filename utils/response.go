package utils

import "github.com/gin-gonic/gin"

func JSONOK(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"ok": true, "message": message})
}

func JSONFail(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"ok": false, "message": message})
}

func JSONError(c *gin.Context, code int, err error) {
	c.JSON(code, gin.H{"ok": false, "error": err.Error()})
}
