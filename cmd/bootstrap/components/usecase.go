package components

import (
	"hotelhub/internal/pkg/clock"
	"hotelhub/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewTokenValidator,
		usecase.NewAuthUseCase,
		usecase.NewRoomUseCase,
		usecase.NewBookingUseCase,
		usecase.NewPaymentUseCase,
		usecase.NewReviewUseCase,
		usecase.NewDashboardUseCase,
	),
)
