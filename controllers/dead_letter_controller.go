package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HandleDeadLetter 死信处理端点，供运维手工回放失败事件
func (h *Handler) HandleDeadLetter(c *gin.Context) {
	defer recordOperation(c, "dead_letter")

	var deadLetter struct {
		EventType string `json:"event_type" binding:"required"`
		OrderID   int64  `json:"order_id"`
		Reason    string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&deadLetter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.log.Warn("handling dead letter",
		zap.String("event_type", deadLetter.EventType),
		zap.Int64("order_id", deadLetter.OrderID),
		zap.String("reason", deadLetter.Reason),
	)
	c.JSON(http.StatusOK, gin.H{"message": "Dead letter processed"})
}
