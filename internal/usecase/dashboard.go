package usecase

import (
	"context"
	"time"

	"hotelhub/internal/domain/booking"
	"hotelhub/internal/domain/loyalty"
	"hotelhub/internal/domain/room"
	"hotelhub/internal/infra"
	"hotelhub/internal/pkg/clock"
	"hotelhub/internal/pkg/errs"
	"hotelhub/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CreateHourlyBookingInput struct {
	RoomID  uuid.UUID
	GuestID uuid.UUID
	Hours   int
	Climate string
	Guests  int
}

type AdminUserEntry struct {
	readmodel.AdminUserRM
	Standing loyalty.Standing `json:"standing"`
}

type DashboardUseCase interface {
	AdminDashboard(ctx context.Context) (*readmodel.AdminDashboardRM, error)
	AdminUsers(ctx context.Context) ([]*AdminUserEntry, error)
	ManagerDashboard(ctx context.Context) (*readmodel.ManagerDashboardRM, error)
	CreateHourlyBooking(ctx context.Context, input CreateHourlyBookingInput) (*readmodel.BookingRM, error)
}

type dashboardUseCase struct {
	pool          *pgxpool.Pool
	dashboardRepo DashboardRepository
	userRepo      UserRepository
	roomRepo      RoomRepository
	bookingRepo   BookingRepository
	clk           clock.Clock
}

func NewDashboardUseCase(
	pool *pgxpool.Pool,
	dashboardRepo DashboardRepository,
	userRepo UserRepository,
	roomRepo RoomRepository,
	bookingRepo BookingRepository,
	clk clock.Clock,
) DashboardUseCase {
	return &dashboardUseCase{
		pool:          pool,
		dashboardRepo: dashboardRepo,
		userRepo:      userRepo,
		roomRepo:      roomRepo,
		bookingRepo:   bookingRepo,
		clk:           clk,
	}
}

func (u *dashboardUseCase) AdminDashboard(ctx context.Context) (*readmodel.AdminDashboardRM, error) {
	stats, err := u.dashboardRepo.AdminStats(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load dashboard stats")
	}
	return stats, nil
}

// AdminUsers decorates the stored aggregates with each guest's computed
// loyalty standing.
func (u *dashboardUseCase) AdminUsers(ctx context.Context) ([]*AdminUserEntry, error) {
	users, err := u.userRepo.ListAdminUsers(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list users")
	}

	entries := make([]*AdminUserEntry, 0, len(users))
	for _, usr := range users {
		entries = append(entries, &AdminUserEntry{
			AdminUserRM: *usr,
			Standing:    loyalty.StandingForPoints(int(usr.LoyaltyPoints)),
		})
	}
	return entries, nil
}

// ManagerDashboard builds the front-desk board: every active room classified
// by remaining time, plus the counts the header badges show.
func (u *dashboardUseCase) ManagerDashboard(ctx context.Context) (*readmodel.ManagerDashboardRM, error) {
	rooms, err := u.roomRepo.List(ctx, true)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list rooms")
	}

	now := u.clk.Now()
	snapshot, err := u.roomRepo.OccupancySnapshot(ctx, now)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load occupancy snapshot")
	}
	byRoom := make(map[uuid.UUID]*readmodel.RoomOccupancyRM, len(snapshot))
	for _, s := range snapshot {
		byRoom[s.RoomID] = s
	}

	board := &readmodel.ManagerDashboardRM{GeneratedAt: now}
	for _, rm := range rooms {
		tile := readmodel.ManagerRoomRM{RoomRM: *toRoomRM(rm)}

		var in room.OccupancyInput
		if s, ok := byRoom[rm.ID()]; ok {
			in = room.OccupancyInput{ActiveCheckOut: s.ActiveCheckOut, LastCheckOut: s.LastCheckOut}
		}
		occ := room.ClassifyOccupancy(in, now)
		tile.Occupancy = occ.String()

		if in.ActiveCheckOut != nil {
			end := *in.ActiveCheckOut
			minutes := int64(end.Sub(now) / time.Minute)
			tile.CurrentBookingEnd = &end
			tile.MinutesLeft = &minutes
		}

		switch occ {
		case room.OccupancyAvailable:
			board.Available++
		case room.OccupancyCleaningBuffer:
			board.InBuffer++
		case room.OccupancyOverdue:
			board.Overdue++
			board.Occupied++
		default:
			board.Occupied++
		}
		board.Rooms = append(board.Rooms, tile)
	}
	return board, nil
}

// CreateHourlyBooking is the walk-in flow: the guest is checked in on the
// spot and the room is priced from the shared hourly rate table.
func (u *dashboardUseCase) CreateHourlyBooking(ctx context.Context, input CreateHourlyBookingInput) (*readmodel.BookingRM, error) {
	rm, err := u.roomRepo.FindByID(ctx, input.RoomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrRoomNotFound)
		}
		return nil, errs.Wrap(err, "failed to find room")
	}

	climate, err := room.NewClimateOption(input.Climate)
	if err != nil {
		return nil, err
	}

	b, err := booking.NewHourlyBooking(rm, input.GuestID, u.clk.Now(), input.Hours, climate, input.Guests)
	if err != nil {
		return nil, err
	}

	if err := u.bookingRepo.Create(ctx, u.pool, b); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, ErrRoomUnavailable)
		}
		return nil, errs.Wrap(err, "failed to create hourly booking")
	}

	return u.bookingRepo.FindViewByID(ctx, b.ID())
}
