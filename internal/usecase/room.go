package usecase

import (
	"context"

	"hotelhub/internal/domain/room"
	"hotelhub/internal/infra"
	"hotelhub/internal/pkg/clock"
	"hotelhub/internal/pkg/errs"
	"hotelhub/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var ErrRoomNotFound = errs.New("room not found")

type CreateRoomInput struct {
	Name             string
	Type             string
	NightlyRateCents int64
	Capacity         int
	SizeSqm          *int
	Amenities        []string
	Climate          *string
}

type RoomUseCase interface {
	List(ctx context.Context, includeInactive bool) ([]*readmodel.RoomRM, error)
	Get(ctx context.Context, id uuid.UUID) (*readmodel.RoomRM, error)
	Create(ctx context.Context, input CreateRoomInput) (*readmodel.RoomRM, error)
	Update(ctx context.Context, id uuid.UUID, input CreateRoomInput) (*readmodel.RoomRM, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type roomUseCase struct {
	roomRepo RoomRepository
	clk      clock.Clock
}

func NewRoomUseCase(roomRepo RoomRepository, clk clock.Clock) RoomUseCase {
	return &roomUseCase{roomRepo: roomRepo, clk: clk}
}

// List returns rooms with their live occupancy state attached. The state is
// classified in memory from one snapshot query so a page of rooms costs two
// round trips, not N.
func (u *roomUseCase) List(ctx context.Context, includeInactive bool) ([]*readmodel.RoomRM, error) {
	rooms, err := u.roomRepo.List(ctx, !includeInactive)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list rooms")
	}

	occupancies, err := u.occupancyByRoom(ctx)
	if err != nil {
		return nil, err
	}

	now := u.clk.Now()
	result := make([]*readmodel.RoomRM, 0, len(rooms))
	for _, rm := range rooms {
		view := toRoomRM(rm)
		view.Occupancy = room.ClassifyOccupancy(occupancies[rm.ID()], now).String()
		result = append(result, view)
	}
	return result, nil
}

func (u *roomUseCase) Get(ctx context.Context, id uuid.UUID) (*readmodel.RoomRM, error) {
	found, err := u.roomRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrRoomNotFound)
		}
		return nil, errs.Wrap(err, "failed to find room")
	}

	occupancies, err := u.occupancyByRoom(ctx)
	if err != nil {
		return nil, err
	}

	view := toRoomRM(found)
	view.Occupancy = room.ClassifyOccupancy(occupancies[found.ID()], u.clk.Now()).String()
	return view, nil
}

func (u *roomUseCase) Create(ctx context.Context, input CreateRoomInput) (*readmodel.RoomRM, error) {
	newRoom, err := buildRoom(input)
	if err != nil {
		return nil, err
	}

	if err := u.roomRepo.Create(ctx, newRoom); err != nil {
		return nil, errs.Wrap(err, "failed to create room")
	}

	view := toRoomRM(newRoom)
	view.Occupancy = room.OccupancyAvailable.String()
	return view, nil
}

func (u *roomUseCase) Update(ctx context.Context, id uuid.UUID, input CreateRoomInput) (*readmodel.RoomRM, error) {
	current, err := u.roomRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrRoomNotFound)
		}
		return nil, errs.Wrap(err, "failed to find room")
	}

	updated, err := buildRoom(input)
	if err != nil {
		return nil, err
	}
	updated = room.ReconstructRoom(
		current.ID(), updated.Name(), updated.Type(), updated.NightlyRateCents(),
		updated.Capacity(), updated.SizeSqm(), updated.Amenities(), updated.Climate(),
		current.IsActive(), current.CreatedAt(), current.UpdatedAt(),
	)

	if err := u.roomRepo.Update(ctx, updated); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrRoomNotFound)
		}
		return nil, errs.Wrap(err, "failed to update room")
	}

	return u.Get(ctx, id)
}

// Deactivate soft-deletes: the room stops being bookable but history keeps
// referencing it.
func (u *roomUseCase) Deactivate(ctx context.Context, id uuid.UUID) error {
	if err := u.roomRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrRoomNotFound)
		}
		return errs.Wrap(err, "failed to deactivate room")
	}
	return nil
}

func (u *roomUseCase) occupancyByRoom(ctx context.Context) (map[uuid.UUID]room.OccupancyInput, error) {
	snapshot, err := u.roomRepo.OccupancySnapshot(ctx, u.clk.Now())
	if err != nil {
		return nil, errs.Wrap(err, "failed to load occupancy snapshot")
	}

	byRoom := make(map[uuid.UUID]room.OccupancyInput, len(snapshot))
	for _, s := range snapshot {
		byRoom[s.RoomID] = room.OccupancyInput{
			ActiveCheckOut: s.ActiveCheckOut,
			LastCheckOut:   s.LastCheckOut,
		}
	}
	return byRoom, nil
}

func buildRoom(input CreateRoomInput) (*room.Room, error) {
	roomType, err := room.NewRoomType(input.Type)
	if err != nil {
		return nil, err
	}

	var climate *room.ClimateOption
	if input.Climate != nil {
		c, err := room.NewClimateOption(*input.Climate)
		if err != nil {
			return nil, err
		}
		climate = &c
	}

	return room.NewRoom(input.Name, roomType, input.NightlyRateCents, input.Capacity, input.SizeSqm, input.Amenities, climate)
}

func toRoomRM(rm *room.Room) *readmodel.RoomRM {
	var view readmodel.RoomRM
	// copier matches the entity getters (Name(), Capacity(), ...) to the
	// read model fields by name.
	_ = copier.Copy(&view, rm)
	view.ID = rm.ID()
	view.Type = rm.Type().String()
	if c := rm.Climate(); c != nil {
		s := c.String()
		view.Climate = &s
	}
	if sz := rm.SizeSqm(); sz != nil {
		v := int32(*sz)
		view.SizeSqm = &v
	}
	view.Capacity = int32(rm.Capacity())
	return &view
}
