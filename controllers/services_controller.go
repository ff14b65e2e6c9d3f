package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"storefront/format"
	"storefront/installment"
	"storefront/middlewares"
	"storefront/models"
	"storefront/notify"
	"storefront/tradein"
)

const newsletterThanks = "Спасибо за подписку! Мы будем держать вас в курсе новинок."

func (h *Handler) Subscribe(c *gin.Context) {
	defer recordOperation(c, "newsletter")

	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":          "Это поле обязательно для заполнения",
			"invalid_fields": []string{"email"},
		})
		return
	}

	h.publish(c.Request.Context(), models.StorefrontEvent{
		Type:      models.EventNewsletterSubscribed,
		ProfileID: middlewares.ProfileID(c),
		Message:   strings.TrimSpace(req.Email),
	})
	c.JSON(http.StatusOK, gin.H{"notification": h.toast(c, notify.KindSuccess, newsletterThanks)})
}

func (h *Handler) GetTradeInDevices(c *gin.Context) {
	t := c.Query("type")
	if t == "" {
		c.JSON(http.StatusOK, gin.H{"device_types": tradein.DeviceTypes})
		return
	}
	list, err := tradein.Models(tradein.DeviceType(t))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"type": t, "models": list})
}

type tradeInRequest struct {
	Wizard *tradein.Wizard `json:"wizard"`
	Intent struct {
		Action    string `json:"action" binding:"required,oneof=select_type select_model select_condition back"`
		Type      string `json:"type"`
		Model     int    `json:"model"`
		Condition string `json:"condition"`
	} `json:"intent"`
}

func (r tradeInRequest) intent() tradein.Intent {
	switch r.Intent.Action {
	case "select_type":
		return tradein.SelectType{Type: tradein.DeviceType(r.Intent.Type)}
	case "select_model":
		return tradein.SelectModel{Index: r.Intent.Model}
	case "select_condition":
		return tradein.SelectCondition{Condition: tradein.Condition(r.Intent.Condition)}
	default:
		return tradein.Back{}
	}
}

// AdvanceTradeIn 向导状态由客户端保存，每次请求携带当前状态和一个意图
func (h *Handler) AdvanceTradeIn(c *gin.Context) {
	defer recordOperation(c, "tradein")

	var req tradeInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	w := tradein.NewWizard()
	if req.Wizard != nil {
		w = *req.Wizard
	}

	w, err := w.Apply(req.intent())
	if err != nil {
		h.fail(c, err)
		return
	}

	resp := gin.H{"wizard": w}
	if w.Step == tradein.StepResult {
		resp["condition_label"] = w.Condition.Label()
		resp["estimate_formatted"] = format.Price(w.Estimate)
		resp["hand_off"] = tradein.HandOff
	}
	c.JSON(http.StatusOK, resp)
}

// GetInstallment 期数不合法时返回 204，客户端保留上一次结果
func (h *Handler) GetInstallment(c *gin.Context) {
	defer recordOperation(c, "installment")

	price, err := decimal.NewFromString(c.DefaultQuery("price", "0"))
	if err != nil || price.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
		return
	}
	percent, err := strconv.Atoi(c.DefaultQuery("percent", "0"))
	if err != nil || percent < 0 || percent > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid down payment percent"})
		return
	}
	period, err := strconv.Atoi(c.Query("period"))
	if err != nil {
		period = 0
	}

	result, ok := installment.Calculate(price, period, percent)
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"result":                    result,
		"initial_payment_formatted": format.Amount(result.InitialPayment),
		"monthly_formatted":         format.Amount(result.Monthly),
		"total_formatted":           format.Amount(result.Total),
		"overpayment_formatted":     format.Amount(result.Overpayment),
		"down_payment_options":      installment.DownPaymentOptions(price),
	})
}
