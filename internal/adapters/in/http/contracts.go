package http

import (
	"time"

	"purelife/internal/core/application/usecases/commands"
	"purelife/internal/core/application/usecases/queries"
)

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	ProductID string `json:"productId"`
	OrderType string `json:"orderType"`
}

// CreateOrderResponse returns the id of the freshly created order.
type CreateOrderResponse struct {
	OrderID string `json:"orderId"`
}

// ChangeOrderStatusRequest is the body of PATCH /api/v1/orders/:orderId/status.
type ChangeOrderStatusRequest struct {
	Status string `json:"status"`
}

// AssignAgentRequest is the body of POST /api/v1/orders/:orderId/assign.
type AssignAgentRequest struct {
	AgentID string `json:"agentId"`
}

// ScheduleInstallationRequest is the body of POST /api/v1/orders/:orderId/installation.
// The date is RFC 3339.
type ScheduleInstallationRequest struct {
	InstallationDate string `json:"installationDate"`
}

// VerifyPaymentRequest is the checkout callback relayed by the client after
// the Razorpay widget closes.
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpayOrderId"`
	RazorpayPaymentID string `json:"razorpayPaymentId"`
	RazorpaySignature string `json:"razorpaySignature"`
}

// VerifyPaymentResponse reports the verification outcome.
type VerifyPaymentResponse struct {
	Verified bool `json:"verified"`
}

// PaymentIntentResponse carries everything the client needs to open the
// Razorpay checkout widget, prefill included.
type PaymentIntentResponse struct {
	OrderID         string `json:"orderId"`
	PaymentID       string `json:"paymentId"`
	RazorpayOrderID string `json:"razorpayOrderId"`
	RazorpayKeyID   string `json:"razorpayKeyId"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
	ProductName     string `json:"productName"`
	CustomerName    string `json:"customerName"`
	CustomerEmail   string `json:"customerEmail"`
	CustomerPhone   string `json:"customerPhone"`
}

// OrderResponse is one row of an order listing.
type OrderResponse struct {
	ID               string     `json:"id"`
	CustomerID       string     `json:"customerId"`
	CustomerName     string     `json:"customerName"`
	ProductID        string     `json:"productId"`
	ProductName      string     `json:"productName"`
	ServiceAgentID   *string    `json:"serviceAgentId,omitempty"`
	ServiceAgentName *string    `json:"serviceAgentName,omitempty"`
	OrderType        string     `json:"orderType"`
	Status           string     `json:"status"`
	PaymentState     string     `json:"paymentState"`
	TotalAmount      int64      `json:"totalAmount"`
	Currency         string     `json:"currency"`
	InstallationDate *time.Time `json:"installationDate,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
}

// AgentResponse is one row of the available agents listing.
type AgentResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	Phone             string  `json:"phone"`
	FranchiseAreaID   *string `json:"franchiseAreaId,omitempty"`
	FranchiseAreaName string  `json:"franchiseAreaName"`
	IsGlobalAgent     bool    `json:"isGlobalAgent"`
}

func toOrderResponse(view queries.OrderView) OrderResponse {
	response := OrderResponse{
		ID:               view.ID.String(),
		CustomerID:       view.CustomerID.String(),
		CustomerName:     view.CustomerName,
		ProductID:        view.ProductID.String(),
		ProductName:      view.ProductName,
		ServiceAgentName: view.ServiceAgentName,
		OrderType:        view.OrderType.String(),
		Status:           view.Status.String(),
		PaymentState:     view.PaymentState.String(),
		TotalAmount:      view.TotalAmount.Amount(),
		Currency:         view.TotalAmount.Currency(),
		InstallationDate: view.InstallationDate,
		CreatedAt:        view.CreatedAt,
	}
	if view.ServiceAgentID != nil {
		agentID := view.ServiceAgentID.String()
		response.ServiceAgentID = &agentID
	}
	return response
}

func toOrderResponses(views []queries.OrderView) []OrderResponse {
	responses := make([]OrderResponse, len(views))
	for i, view := range views {
		responses[i] = toOrderResponse(view)
	}
	return responses
}

func toAgentResponse(view queries.AgentView) AgentResponse {
	response := AgentResponse{
		ID:                view.ID.String(),
		Name:              view.Name,
		Email:             view.Email,
		Phone:             view.Phone,
		FranchiseAreaName: view.FranchiseAreaName,
		IsGlobalAgent:     view.IsGlobalAgent,
	}
	if view.FranchiseAreaID != nil {
		areaID := view.FranchiseAreaID.String()
		response.FranchiseAreaID = &areaID
	}
	return response
}

func toPaymentIntentResponse(result commands.InitiatePaymentResult) PaymentIntentResponse {
	return PaymentIntentResponse{
		OrderID:         result.OrderID.String(),
		PaymentID:       result.PaymentID.String(),
		RazorpayOrderID: result.GatewayOrderID,
		RazorpayKeyID:   result.GatewayKeyID,
		Amount:          result.Amount.Amount(),
		Currency:        result.Amount.Currency(),
		ProductName:     result.ProductName,
		CustomerName:    result.CustomerName,
		CustomerEmail:   result.CustomerEmail,
		CustomerPhone:   result.CustomerPhone,
	}
}
