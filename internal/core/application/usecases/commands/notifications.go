package commands

import (
	"context"
	"fmt"
	"log/slog"

	"purelife/internal/core/domain/model/kernel"
	"purelife/internal/core/domain/model/order"
	"purelife/internal/core/ports"
)

// notify sends a single notification and logs the failure instead of
// propagating it. Every notification in the order lifecycle is best effort:
// a broken push provider must never fail a business operation.
func notify(ctx context.Context, notifier ports.Notifier, logger *slog.Logger, n ports.Notification) {
	if err := notifier.Send(ctx, n); err != nil {
		logger.Warn("notification delivery failed",
			"recipientId", n.RecipientID.String(),
			"title", n.Title,
			"error", err)
	}
}

// allChannels is the delivery set every order-lifecycle notification goes out
// on. The dispatcher decides per recipient which channels actually apply.
func allChannels() []ports.NotificationChannel {
	return []ports.NotificationChannel{ports.ChannelPush, ports.ChannelEmail}
}

func orderCreatedNotification(ord *order.Order) ports.Notification {
	return ports.Notification{
		RecipientID: ord.CustomerID(),
		Channels:    allChannels(),
		Title:       "Order created",
		Body:        fmt.Sprintf("Your order has been created. Complete the payment of %s to proceed.", ord.TotalAmount()),
		Data:        map[string]string{"orderId": ord.ID().String()},
	}
}

func orderStatusChangedNotification(ord *order.Order) ports.Notification {
	return ports.Notification{
		RecipientID: ord.CustomerID(),
		Channels:    allChannels(),
		Title:       "Order update",
		Body:        fmt.Sprintf("Your order is now %s", ord.Status()),
		Data:        map[string]string{"orderId": ord.ID().String(), "status": ord.Status().String()},
	}
}

func rentalActivatedNotification(ord *order.Order) ports.Notification {
	return ports.Notification{
		RecipientID: ord.CustomerID(),
		Channels:    allChannels(),
		Title:       "Rental started",
		Body:        "Your rental is now active. The first billing period runs for three months.",
		Data:        map[string]string{"orderId": ord.ID().String()},
	}
}

func paymentCompletedNotification(ord *order.Order) ports.Notification {
	return ports.Notification{
		RecipientID: ord.CustomerID(),
		Channels:    allChannels(),
		Title:       "Payment received",
		Body:        fmt.Sprintf("We received %s for your order. Installation will be scheduled shortly.", ord.TotalAmount()),
		Data:        map[string]string{"orderId": ord.ID().String()},
	}
}

func paymentFailedNotification(ord *order.Order) ports.Notification {
	return ports.Notification{
		RecipientID: ord.CustomerID(),
		Channels:    allChannels(),
		Title:       "Payment failed",
		Body:        "Your payment could not be verified. Please try again.",
		Data:        map[string]string{"orderId": ord.ID().String()},
	}
}

func newPaidOrderAgentNotification(ord *order.Order, agentID kernel.UUID) ports.Notification {
	return ports.Notification{
		RecipientID: agentID,
		Channels:    allChannels(),
		Title:       "New installation available",
		Body:        "A paid order in your area is waiting for installation.",
		Data:        map[string]string{"orderId": ord.ID().String()},
	}
}

func agentAssignedCustomerNotification(ord *order.Order, agentName string) ports.Notification {
	return ports.Notification{
		RecipientID: ord.CustomerID(),
		Channels:    allChannels(),
		Title:       "Service agent assigned",
		Body:        fmt.Sprintf("%s will handle your installation.", agentName),
		Data:        map[string]string{"orderId": ord.ID().String()},
	}
}

func agentAssignedAgentNotification(ord *order.Order, agentID kernel.UUID) ports.Notification {
	return ports.Notification{
		RecipientID: agentID,
		Channels:    allChannels(),
		Title:       "New assignment",
		Body:        "An installation has been assigned to you.",
		Data:        map[string]string{"orderId": ord.ID().String()},
	}
}

func installationScheduledNotification(ord *order.Order) ports.Notification {
	date := ""
	if ord.InstallationDate() != nil {
		date = ord.InstallationDate().Format("02 Jan 2006")
	}
	return ports.Notification{
		RecipientID: ord.CustomerID(),
		Channels:    allChannels(),
		Title:       "Installation scheduled",
		Body:        fmt.Sprintf("Your installation is scheduled for %s.", date),
		Data:        map[string]string{"orderId": ord.ID().String()},
	}
}
