package usecase

import (
	"go.uber.org/fx"

	"github.com/freshdairy/freshdairy/internal/config"
	"github.com/freshdairy/freshdairy/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewAuthUseCase,
	NewOrderUseCase,
	newNotificationUseCase,
	newAdminUseCase,
	NewContactUseCase,
	NewCatalogUseCase,
)

type notificationParams struct {
	fx.In

	Notifications repository.NotificationRepository
	Config        *config.Config
}

func newNotificationUseCase(p notificationParams) *NotificationUseCase {
	return NewNotificationUseCase(p.Notifications, p.Config.NotificationLimit)
}

type adminParams struct {
	fx.In

	Orders    repository.OrderRepository
	Customers repository.CustomerRepository
	Contacts  repository.ContactRepository
	Config    *config.Config
}

func newAdminUseCase(p adminParams) *AdminUseCase {
	return NewAdminUseCase(p.Orders, p.Customers, p.Contacts, AdminOptions{
		DisplayIDPrefix: p.Config.DisplayIDPrefix,
		DisplayIDWidth:  p.Config.DisplayIDWidth,
		Statuses:        p.Config.OrderStatuses,
	})
}
