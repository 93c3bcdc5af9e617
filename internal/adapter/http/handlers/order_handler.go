package handlers

import (
	"errors"
	"net/http"

	"rocket_help/internal/adapter/http/dto/request"
	"rocket_help/internal/adapter/http/dto/response"
	"rocket_help/internal/adapter/http/middleware"
	"rocket_help/internal/domain/entities"
	"rocket_help/internal/usecase"
	"rocket_help/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
	errOrderNotFound       = pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
)

// OrderHandler serves the signed-in user's support requests.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
	logger  *zap.Logger
}

func NewOrderHandler(uc usecase.IOrderUseCase, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{usecase: uc, logger: logger}
}

// ListOrders godoc
// @Summary      List my orders
// @Description  Orders owned by the caller, newest first. Optional status filter.
// @Tags         orders
// @Produce      json
// @Param        status  query     string  false  "open or closed"
// @Success      200     {array}   response.OrderResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      401     {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	claims, ok := middleware.Claims(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	var query request.ListOrdersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		appErr := mapOrderError(usecase.ErrInvalidOrderStatus)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	orders, err := h.usecase.ListByOwner(c.Request.Context(), claims.UserID, query.ResolveStatus())
	if err != nil {
		h.respondError(c, "list", "", err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// CreateOrder godoc
// @Summary      Open a new order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateOrderRequest  true  "Order"
// @Success      201   {object}  response.OrderResponse
// @Failure      400   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	claims, ok := middleware.Claims(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.CreateOrder(c.Request.Context(), claims.UserID, payload.Patrimony, payload.Description)
	if err != nil {
		h.respondError(c, "create", "", err)
		return
	}
	h.logger.Info("[order][handler] created", zap.String("order_id", order.ID), zap.String("owner_id", claims.UserID))
	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// GetOrder godoc
// @Summary      Order details
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, ok := h.ownedOrder(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// CloseOrder godoc
// @Summary      Close an order
// @Description  Sets status=closed, the solution and a server-assigned closed_at. Fails with 409 if the order is already closed.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path      string                     true  "Order ID"
// @Param        body  body      request.CloseOrderRequest  true  "Solution"
// @Success      200   {object}  response.OrderResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /orders/{id}/close [patch]
func (h *OrderHandler) CloseOrder(c *gin.Context) {
	var payload request.CloseOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	if _, ok := h.ownedOrder(c); !ok {
		return
	}

	id := c.Param("id")
	closed, err := h.usecase.CloseOrder(c.Request.Context(), id, payload.Solution)
	if err != nil {
		h.respondError(c, "close", id, err)
		return
	}
	h.logger.Info("[order][handler] closed", zap.String("order_id", closed.ID))
	c.JSON(http.StatusOK, response.FromOrder(closed))
}

// ownedOrder loads the order in the path and hides orders of other users.
func (h *OrderHandler) ownedOrder(c *gin.Context) (entities.Order, bool) {
	claims, ok := middleware.Claims(c)
	if !ok {
		abortUnauthenticated(c)
		return entities.Order{}, false
	}

	id := c.Param("id")
	order, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, "get", id, err)
		return entities.Order{}, false
	}
	if order.OwnerID != claims.UserID {
		c.JSON(errOrderNotFound.HTTPStatus, errOrderNotFound.ToHTTPError())
		return entities.Order{}, false
	}
	return order, true
}

func (h *OrderHandler) respondError(c *gin.Context, op, id string, err error) {
	appErr := mapOrderError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.logger.Error("[order][handler] "+op+" failed", zap.String("order_id", id), zap.Error(err))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidPatrimony),
		errors.Is(err, usecase.ErrInvalidDescription):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOrderStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Status must be open or closed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSolutionRequired):
		return pkg.NewDomainErrorSimple("SOLUTION_REQUIRED", "Solution is required to close an order", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return errOrderNotFound
	case errors.Is(err, usecase.ErrOrderAlreadyClosed):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_CLOSED", "Order is already closed", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidOwnerID):
		return errUnauthenticated
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
