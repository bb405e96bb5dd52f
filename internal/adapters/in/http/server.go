// Package http exposes the order lifecycle over REST. Handlers stay thin:
// parse the request, build a command or query, hand it to the application
// layer and translate the outcome.
package http

import (
	"net/http"
	"time"

	"purelife/internal/core/application/usecases/commands"
	"purelife/internal/core/application/usecases/queries"
	"purelife/internal/core/domain/model/kernel"
	"purelife/internal/core/domain/model/order"
	"purelife/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler          commands.CreateOrderCommandHandler
	changeOrderStatusHandler    commands.ChangeOrderStatusCommandHandler
	assignAgentHandler          commands.AssignAgentCommandHandler
	scheduleInstallationHandler commands.ScheduleInstallationCommandHandler
	initiatePaymentHandler      commands.InitiatePaymentCommandHandler
	verifyPaymentHandler        commands.VerifyPaymentCommandHandler

	getOrdersHandler          queries.GetOrdersQueryHandler
	getCustomerOrdersHandler  queries.GetCustomerOrdersQueryHandler
	getAvailableAgentsHandler queries.GetAvailableAgentsQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	assignAgentHandler commands.AssignAgentCommandHandler,
	scheduleInstallationHandler commands.ScheduleInstallationCommandHandler,
	initiatePaymentHandler commands.InitiatePaymentCommandHandler,
	verifyPaymentHandler commands.VerifyPaymentCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	getAvailableAgentsHandler queries.GetAvailableAgentsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		changeOrderStatusHandler:    changeOrderStatusHandler,
		assignAgentHandler:          assignAgentHandler,
		scheduleInstallationHandler: scheduleInstallationHandler,
		initiatePaymentHandler:      initiatePaymentHandler,
		verifyPaymentHandler:        verifyPaymentHandler,
		getOrdersHandler:            getOrdersHandler,
		getCustomerOrdersHandler:    getCustomerOrdersHandler,
		getAvailableAgentsHandler:   getAvailableAgentsHandler,
	}
}

// RegisterRoutes mounts the API under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/my", s.GetMyOrders)
	api.PATCH("/orders/:orderId/status", s.ChangeOrderStatus)
	api.POST("/orders/:orderId/assign", s.AssignAgent)
	api.POST("/orders/:orderId/installation", s.ScheduleInstallation)
	api.GET("/orders/:orderId/available-agents", s.GetAvailableAgents)
	api.POST("/orders/:orderId/payment", s.InitiatePayment)
	api.POST("/orders/:orderId/payment/verify", s.VerifyPayment)
}

// CreateOrder handles POST /api/v1/orders - places a purchase or rental order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req CreateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("productId", err))
	}
	orderType, err := order.TypeFromString(req.OrderType)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(actor, productID, orderType)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{OrderID: orderID.String()})
}

// GetOrders handles GET /api/v1/orders - lists orders scoped to the caller's
// role, optionally filtered by status and type.
func (s *Server) GetOrders(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	status, orderType, err := listFilters(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrdersQuery(actor, status, orderType)
	if err != nil {
		return writeError(ctx, err)
	}

	views, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(views))
}

// GetMyOrders handles GET /api/v1/orders/my - the customer's own order history.
func (s *Server) GetMyOrders(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	status, orderType, err := listFilters(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetCustomerOrdersQuery(actor.ID, status, orderType)
	if err != nil {
		return writeError(ctx, err)
	}

	views, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(views))
}

// ChangeOrderStatus handles PATCH /api/v1/orders/:orderId/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := orderIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req ChangeOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}
	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(actor, orderID, target)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignAgent handles POST /api/v1/orders/:orderId/assign.
func (s *Server) AssignAgent(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := orderIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req AssignAgentRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}
	agentID, err := kernel.UUIDFromString(req.AgentID)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("agentId", err))
	}

	cmd, err := commands.NewAssignAgentCommand(actor, orderID, agentID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.assignAgentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ScheduleInstallation handles POST /api/v1/orders/:orderId/installation.
func (s *Server) ScheduleInstallation(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := orderIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req ScheduleInstallationRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}
	installationDate, err := time.Parse(time.RFC3339, req.InstallationDate)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("installationDate", err))
	}

	cmd, err := commands.NewScheduleInstallationCommand(actor, orderID, installationDate)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.scheduleInstallationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAvailableAgents handles GET /api/v1/orders/:orderId/available-agents -
// agents eligible for assignment to the order, area agents first.
func (s *Server) GetAvailableAgents(ctx echo.Context) error {
	if _, err := actorFromRequest(ctx); err != nil {
		return writeError(ctx, err)
	}

	orderID, err := orderIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetAvailableAgentsQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	views, err := s.getAvailableAgentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	responses := make([]AgentResponse, len(views))
	for i, view := range views {
		responses[i] = toAgentResponse(view)
	}
	return ctx.JSON(http.StatusOK, responses)
}

// InitiatePayment handles POST /api/v1/orders/:orderId/payment - opens a
// Razorpay checkout for the order.
func (s *Server) InitiatePayment(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := orderIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewInitiatePaymentCommand(actor, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.initiatePaymentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPaymentIntentResponse(result))
}

// VerifyPayment handles POST /api/v1/orders/:orderId/payment/verify - settles
// the checkout callback. A failed signature check is a clean 200 with
// verified=false; the payment row records the failure.
func (s *Server) VerifyPayment(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := orderIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req VerifyPaymentRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewVerifyPaymentCommand(actor, orderID,
		req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature)
	if err != nil {
		return writeError(ctx, err)
	}

	verified, err := s.verifyPaymentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, VerifyPaymentResponse{Verified: verified})
}

func orderIDParam(ctx echo.Context) (kernel.UUID, error) {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}
	return orderID, nil
}

func listFilters(ctx echo.Context) (*order.Status, *order.Type, error) {
	var status *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.StatusFromString(raw)
		if err != nil {
			return nil, nil, err
		}
		status = &parsed
	}

	var orderType *order.Type
	if raw := ctx.QueryParam("type"); raw != "" {
		parsed, err := order.TypeFromString(raw)
		if err != nil {
			return nil, nil, err
		}
		orderType = &parsed
	}

	return status, orderType, nil
}
