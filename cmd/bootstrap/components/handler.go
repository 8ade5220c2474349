package components

import (
	"hotelhub/internal/handler"
	"hotelhub/internal/handler/api"
	"hotelhub/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewRoomHandler,
		api.NewBookingHandler,
		api.NewPaymentHandler,
		api.NewReviewHandler,
		api.NewAdminHandler,
		api.NewManagerHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	room *api.RoomHandler,
	booking *api.BookingHandler,
	payment *api.PaymentHandler,
	review *api.ReviewHandler,
	admin *api.AdminHandler,
	manager *api.ManagerHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:    auth,
		Room:    room,
		Booking: booking,
		Payment: payment,
		Review:  review,
		Admin:   admin,
		Manager: manager,
	}
}
