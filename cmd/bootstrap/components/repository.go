package components

import (
	"hotelhub/internal/infra/db"
	"hotelhub/internal/infra/gateway"
	repo_impl "hotelhub/internal/infra/repository"
	"hotelhub/internal/pkg/config"
	"hotelhub/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewRoomRepository,
			fx.As(new(usecase.RoomRepository)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(usecase.BookingRepository)),
		),
		fx.Annotate(
			repo_impl.NewPaymentRepository,
			fx.As(new(usecase.PaymentRepository)),
		),
		fx.Annotate(
			repo_impl.NewReviewRepository,
			fx.As(new(usecase.ReviewRepository)),
		),
		fx.Annotate(
			repo_impl.NewDashboardRepository,
			fx.As(new(usecase.DashboardRepository)),
		),
		NewCardGateway,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewCardGateway(cfg config.Config) usecase.CardGateway {
	return gateway.NewCardClient(cfg.Gateway)
}
