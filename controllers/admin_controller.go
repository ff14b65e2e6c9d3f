package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/admin"
	"storefront/catalog"
	"storefront/middlewares"
	"storefront/models"
	"storefront/notify"
	"storefront/session"
)

// adminDo 所有后台操作都要求已登录
func (h *Handler) adminDo(c *gin.Context, fn func(s *session.State) error) bool {
	if err := h.do(c, func(s *session.State) error {
		if err := admin.RequireLogin(s.User); err != nil {
			return err
		}
		return fn(s)
	}); err != nil {
		h.fail(c, err)
		return false
	}
	return true
}

func adminStats(s *session.State) admin.Stats {
	return admin.ComputeStats(s.User, s.Products, len(catalog.Seed()), s.Orders.Len(), s.Users)
}

func (h *Handler) AdminStats(c *gin.Context) {
	defer recordOperation(c, "admin_stats")

	var stats admin.Stats
	if h.adminDo(c, func(s *session.State) error {
		stats = adminStats(s)
		return nil
	}) {
		c.JSON(http.StatusOK, stats)
	}
}

func (h *Handler) AdminListProducts(c *gin.Context) {
	defer recordOperation(c, "admin_products")

	var products []models.Product
	if h.adminDo(c, func(s *session.State) error {
		products = append([]models.Product{}, s.Products...)
		return nil
	}) {
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

// AdminSaveProduct POST 新建，PUT /products/:id 编辑
func (h *Handler) AdminSaveProduct(c *gin.Context) {
	defer recordOperation(c, "admin_save_product")

	var form admin.ProductForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	form.ID = 0
	if c.Param("id") != "" {
		id, ok := paramID(c)
		if !ok {
			return
		}
		form.ID = id
	}

	var saved models.Product
	if h.adminDo(c, func(s *session.State) error {
		var err error
		s.Products, saved, err = admin.SaveProduct(s.Products, form, h.now())
		return err
	}) {
		status := http.StatusCreated
		if form.ID != 0 {
			status = http.StatusOK
		}
		c.JSON(status, gin.H{
			"product":      saved,
			"notification": h.toast(c, notify.KindSuccess, "Товар сохранен"),
		})
	}
}

func (h *Handler) AdminDeleteProduct(c *gin.Context) {
	defer recordOperation(c, "admin_delete_product")

	id, ok := paramID(c)
	if !ok {
		return
	}
	if h.adminDo(c, func(s *session.State) error {
		var err error
		s.Products, err = admin.DeleteProduct(s.Products, id)
		return err
	}) {
		c.JSON(http.StatusOK, gin.H{"notification": h.toast(c, notify.KindSuccess, "Товар удален")})
	}
}

func (h *Handler) AdminListOrders(c *gin.Context) {
	defer recordOperation(c, "admin_orders")

	var list []models.Order
	if h.adminDo(c, func(s *session.State) error {
		list = s.Orders.List()
		return nil
	}) {
		c.JSON(http.StatusOK, gin.H{"orders": list})
	}
}

func (h *Handler) AdminCycleOrder(c *gin.Context) {
	defer recordOperation(c, "admin_cycle_order")

	id, ok := paramID(c)
	if !ok {
		return
	}
	var order models.Order
	if !h.adminDo(c, func(s *session.State) error {
		var err error
		order, err = s.Orders.Cycle(id)
		return err
	}) {
		return
	}

	h.publish(c.Request.Context(), models.StorefrontEvent{
		Type:      models.EventOrderStatusChanged,
		ProfileID: middlewares.ProfileID(c),
		OrderID:   order.ID,
		Status:    order.Status,
		Total:     order.Total,
	})
	c.JSON(http.StatusOK, gin.H{
		"order":        order,
		"notification": h.toast(c, notify.KindSuccess, "Статус обновлен"),
	})
}

func (h *Handler) AdminDeleteOrder(c *gin.Context) {
	defer recordOperation(c, "admin_delete_order")

	id, ok := paramID(c)
	if !ok {
		return
	}
	if !h.adminDo(c, func(s *session.State) error {
		return s.Orders.Delete(id)
	}) {
		return
	}

	h.publish(c.Request.Context(), models.StorefrontEvent{
		Type:      models.EventOrderDeleted,
		ProfileID: middlewares.ProfileID(c),
		OrderID:   id,
	})
	c.JSON(http.StatusOK, gin.H{"notification": h.toast(c, notify.KindSuccess, "Заказ удален")})
}

func (h *Handler) AdminListUsers(c *gin.Context) {
	defer recordOperation(c, "admin_users")

	var users []models.User
	if h.adminDo(c, func(s *session.State) error {
		users = admin.Users(s.User, s.Users)
		return nil
	}) {
		c.JSON(http.StatusOK, gin.H{"users": users})
	}
}

func (h *Handler) AdminDeleteUser(c *gin.Context) {
	defer recordOperation(c, "admin_delete_user")

	email := c.Param("email")
	if h.adminDo(c, func(s *session.State) error {
		var err error
		s.Users, err = admin.DeleteUser(s.Users, email)
		return err
	}) {
		c.JSON(http.StatusOK, gin.H{"notification": h.toast(c, notify.KindSuccess, "Пользователь удален")})
	}
}
