package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/cart"
	"storefront/catalog"
	"storefront/format"
	"storefront/middlewares"
	"storefront/models"
	"storefront/notify"
	"storefront/session"
)

func (h *Handler) GetCart(c *gin.Context) {
	defer recordOperation(c, "cart_view")

	var view cartView
	if err := h.do(c, func(s *session.State) error {
		view = newCartView(s.Cart)
		return nil
	}); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) AddToCart(c *gin.Context) {
	defer recordOperation(c, "cart_add")

	var req struct {
		ProductID int64 `json:"product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var (
		line models.CartLine
		view cartView
	)
	if err := h.do(c, func(s *session.State) error {
		p, ok := catalog.Find(s.Catalog(), req.ProductID)
		if !ok {
			return errProductNotFound
		}
		line = s.Cart.Add(p)
		view = newCartView(s.Cart)
		return nil
	}); err != nil {
		h.fail(c, err)
		return
	}

	message := line.Name + " добавлен в корзину"
	h.publish(c.Request.Context(), models.StorefrontEvent{
		Type:      models.EventCartItemAdded,
		ProfileID: middlewares.ProfileID(c),
		ProductID: line.ID,
		Message:   message,
	})
	c.JSON(http.StatusOK, gin.H{
		"line":         line,
		"cart":         view,
		"notification": h.toast(c, notify.KindSuccess, message),
	})
}

// lineOp 对单个购物车行执行增减或删除
func (h *Handler) lineOp(c *gin.Context, op func(ct *cart.Cart, id int64) error) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var view cartView
	if err := h.do(c, func(s *session.State) error {
		if err := op(s.Cart, id); err != nil {
			return err
		}
		view = newCartView(s.Cart)
		return nil
	}); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) IncrementLine(c *gin.Context) {
	defer recordOperation(c, "cart_increment")
	h.lineOp(c, func(ct *cart.Cart, id int64) error {
		_, err := ct.Increment(id)
		return err
	})
}

func (h *Handler) DecrementLine(c *gin.Context) {
	defer recordOperation(c, "cart_decrement")
	h.lineOp(c, func(ct *cart.Cart, id int64) error {
		_, err := ct.Decrement(id)
		return err
	})
}

func (h *Handler) RemoveLine(c *gin.Context) {
	defer recordOperation(c, "cart_remove")
	h.lineOp(c, (*cart.Cart).Remove)
}

// DrawerTransition 计算抽屉状态迁移；状态只存在于客户端
func (h *Handler) DrawerTransition(c *gin.Context) {
	var req struct {
		State cart.DrawerState `json:"state"`
		Event cart.DrawerEvent `json:"event" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.State == "" {
		req.State = cart.DrawerClosed
	}
	c.JSON(http.StatusOK, gin.H{"state": req.State.Next(req.Event)})
}

func (h *Handler) Checkout(c *gin.Context) {
	defer recordOperation(c, "checkout")

	var form cart.CheckoutForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var order models.Order
	if err := h.do(c, func(s *session.State) error {
		var err error
		order, err = s.Orders.Place(s.Cart, form, h.now())
		return err
	}); err != nil {
		h.fail(c, err)
		return
	}

	h.publish(c.Request.Context(), models.StorefrontEvent{
		Type:      models.EventOrderCreated,
		ProfileID: middlewares.ProfileID(c),
		OrderID:   order.ID,
		Status:    order.Status,
		Total:     order.Total,
	})
	c.JSON(http.StatusCreated, gin.H{
		"order":           order,
		"total_formatted": format.Price(order.Total),
		"notification":    h.toast(c, notify.KindSuccess, "Спасибо! Заказ оформлен. Мы свяжемся с вами."),
	})
}

func (h *Handler) GetOrders(c *gin.Context) {
	defer recordOperation(c, "orders")

	var list []models.Order
	if err := h.do(c, func(s *session.State) error {
		list = s.Orders.List()
		return nil
	}); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": list})
}
