package controllers

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront/admin"
	"storefront/cart"
	"storefront/middlewares"
	"storefront/models"
	"storefront/notify"
	"storefront/orders"
	"storefront/pages"
	"storefront/profile"
	"storefront/session"
	"storefront/tradein"
)

var errProductNotFound = errors.New("product not found")

type Deps struct {
	Sessions *session.Manager
	Events   notify.Publisher
	Toasts   *notify.Toasts
	Logger   *zap.Logger
	Now      func() time.Time
	Rand     *rand.Rand
}

// Handler 把 HTTP 请求转换为对档案状态的意图
type Handler struct {
	sessions *session.Manager
	events   notify.Publisher
	toasts   *notify.Toasts
	log      *zap.Logger
	now      func() time.Time

	rngMu sync.Mutex
	rng   *rand.Rand

	pageInit pages.Table[pageInitializer]
}

func NewHandler(d Deps) *Handler {
	h := &Handler{
		sessions: d.Sessions,
		events:   d.Events,
		toasts:   d.Toasts,
		log:      d.Logger,
		now:      d.Now,
		rng:      d.Rand,
	}
	if h.events == nil {
		h.events = notify.Log{Logger: h.log}
	}
	if h.now == nil {
		h.now = time.Now
	}
	if h.rng == nil {
		h.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	h.pageInit = h.pageInitializers().MustCheck()
	return h
}

// RegisterRoutes 注册需要档案身份的 API 路由
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/page", h.GetPage)
	api.GET("/notification", h.GetNotification)

	api.GET("/catalog", h.GetCatalog)
	api.GET("/home", h.GetHome)

	api.GET("/cart", h.GetCart)
	api.POST("/cart/items", h.AddToCart)
	api.POST("/cart/items/:id/increment", h.IncrementLine)
	api.POST("/cart/items/:id/decrement", h.DecrementLine)
	api.DELETE("/cart/items/:id", h.RemoveLine)
	api.POST("/cart/drawer", h.DrawerTransition)

	api.POST("/checkout", h.Checkout)
	api.GET("/orders", h.GetOrders)

	api.POST("/wishlist/:id", h.ToggleWishlist)
	api.POST("/theme/toggle", h.ToggleTheme)

	api.POST("/auth/login", h.Login)
	api.POST("/auth/register", h.Register)
	api.GET("/profile", h.GetProfile)
	api.PUT("/profile", h.UpdateProfile)
	api.DELETE("/profile", h.Logout)

	api.POST("/newsletter", h.Subscribe)
	api.GET("/tradein/devices", h.GetTradeInDevices)
	api.POST("/tradein", h.AdvanceTradeIn)
	api.GET("/installment", h.GetInstallment)

	adminGroup := api.Group("/admin")
	{
		adminGroup.GET("/stats", h.AdminStats)
		adminGroup.GET("/products", h.AdminListProducts)
		adminGroup.POST("/products", h.AdminSaveProduct)
		adminGroup.PUT("/products/:id", h.AdminSaveProduct)
		adminGroup.DELETE("/products/:id", h.AdminDeleteProduct)
		adminGroup.GET("/orders", h.AdminListOrders)
		adminGroup.POST("/orders/:id/cycle", h.AdminCycleOrder)
		adminGroup.DELETE("/orders/:id", h.AdminDeleteOrder)
		adminGroup.GET("/users", h.AdminListUsers)
		adminGroup.DELETE("/users/:email", h.AdminDeleteUser)
	}
}

// recordOperation 在 defer 中调用，按响应码记录操作结果
func recordOperation(c *gin.Context, operation string) {
	status := c.Writer.Status() >= 200 && c.Writer.Status() < 300
	middlewares.RecordOperation(operation, status)
}

func (h *Handler) do(c *gin.Context, fn func(s *session.State) error) error {
	return h.sessions.Do(c.Request.Context(), middlewares.ProfileID(c), fn)
}

// publish 发布事件；失败只记录日志，不影响请求
func (h *Handler) publish(ctx context.Context, ev models.StorefrontEvent) {
	if ev.Occurred.IsZero() {
		ev.Occurred = h.now().UTC()
	}
	if err := h.events.Publish(ctx, ev); err != nil {
		h.log.Error("failed to publish event", zap.String("type", ev.Type), zap.Error(err))
	}
}

func (h *Handler) toast(c *gin.Context, kind notify.Kind, message string) notify.Toast {
	return h.toasts.Show(middlewares.ProfileID(c), kind, message)
}

// withRand 串行使用随机数生成器（rand.Rand 非并发安全）
func (h *Handler) withRand(fn func(rng *rand.Rand)) {
	h.rngMu.Lock()
	defer h.rngMu.Unlock()
	fn(h.rng)
}

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}

// fail 将领域错误映射为 HTTP 响应
func (h *Handler) fail(c *gin.Context, err error) {
	var verr *cart.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":          "Это поле обязательно для заполнения",
			"invalid_fields": verr.Fields,
		})
	case errors.Is(err, cart.ErrCartEmpty):
		c.JSON(http.StatusConflict, gin.H{"error": "Корзина пуста"})
	case errors.Is(err, admin.ErrLoginRequired), errors.Is(err, profile.ErrNotLoggedIn):
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":        "Требуется вход",
			"notification": h.toast(c, notify.KindWarning, "Требуется вход"),
		})
	case errors.Is(err, errProductNotFound),
		errors.Is(err, cart.ErrLineNotFound),
		errors.Is(err, orders.ErrOrderNotFound),
		errors.Is(err, admin.ErrProductNotFound),
		errors.Is(err, admin.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, tradein.ErrOutOfStep),
		errors.Is(err, tradein.ErrUnknownDeviceType),
		errors.Is(err, tradein.ErrUnknownModel),
		errors.Is(err, tradein.ErrUnknownCondition):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// GetNotification 返回当前仍有效的提示
func (h *Handler) GetNotification(c *gin.Context) {
	toast, ok := h.toasts.Current(middlewares.ProfileID(c))
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notification": toast})
}
