package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/JPVargas2025/storefront/internal/api/metrics"
	"github.com/JPVargas2025/storefront/internal/core/domain"
	"github.com/JPVargas2025/storefront/internal/core/ports"
)

type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// Create handles POST /v1/orders for the authenticated user.
//
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string             false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      placeOrderRequest  true   "Product and quantity"
// @Success      201              {object}  domain.Order
// @Failure      400              {object}  errorResponse
// @Failure      401              {object}  errorResponse
// @Failure      409              {object}  errorResponse
// @Router       /v1/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.service.PlaceOrder(c.Request().Context(), session, ports.PlaceOrderInput{
		ProductID:      req.ProductID,
		Quantity:       req.Quantity,
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateOrder) {
			metrics.OrdersPlacedTotal.WithLabelValues("duplicate").Inc()
		} else {
			metrics.OrdersPlacedTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.OrdersPlacedTotal.WithLabelValues("ok").Inc()
	metrics.OrderedItemsTotal.Add(float64(order.Quantity))
	return c.JSON(http.StatusCreated, order)
}

// ListMine handles GET /v1/orders.
//
// @Summary      List my orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ordersResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/orders [get]
func (h *OrderHandler) ListMine(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	lines, err := h.service.MyOrders(c.Request().Context(), session)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrdersResponse(session.Username, lines))
}

// ListForUser handles GET /v1/admin/users/:username/orders.
//
// @Summary      Review a user's orders
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  ordersResponse
// @Failure      403       {object}  errorResponse
// @Router       /v1/admin/users/{username}/orders [get]
func (h *OrderHandler) ListForUser(c echo.Context) error {
	res, err := h.service.OrdersOfUser(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrdersResponse(res.Username, res.Orders))
}
