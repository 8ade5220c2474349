package repository

import (
	"context"
	"time"

	"hotelhub/internal/domain/review"
	"hotelhub/internal/infra"
	"hotelhub/internal/infra/db"
	"hotelhub/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReviewRepository struct {
	db db.DBTX
}

func NewReviewRepository(dbtx db.DBTX) *ReviewRepository {
	return &ReviewRepository{db: dbtx}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *review.Review) error {
	const q = `
		INSERT INTO reviews (id, room_id, user_id, booking_id, rating, title, comment, pros, cons, recommend, helpful_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(ctx, q,
		rv.ID(), rv.RoomID(), rv.UserID(), rv.BookingID(),
		rv.Rating().Value(), rv.Title().String(), rv.Comment().String(),
		rv.Pros(), rv.Cons(), rv.Recommend(), rv.HelpfulCount(),
	)
	if err != nil {
		return wrapQueryErr("failed to create review", err)
	}
	return nil
}

func (r *ReviewRepository) Update(ctx context.Context, rv *review.Review) error {
	const q = `
		UPDATE reviews
		SET rating = $2, title = $3, comment = $4, pros = $5, cons = $6,
		    recommend = $7, helpful_count = $8, response = $9, responded_at = $10, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, q,
		rv.ID(), rv.Rating().Value(), rv.Title().String(), rv.Comment().String(),
		rv.Pros(), rv.Cons(), rv.Recommend(), rv.HelpfulCount(),
		rv.Response(), rv.RespondedAt(),
	)
	if err != nil {
		return wrapQueryErr("failed to update review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("review not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM reviews WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return wrapQueryErr("failed to delete review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("review not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *ReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*review.Review, error) {
	const q = `
		SELECT id, room_id, user_id, booking_id, rating, title, comment, pros, cons, recommend, helpful_count, response, responded_at, created_at, updated_at
		FROM reviews
		WHERE id = $1`

	var (
		reviewID, roomID, userID uuid.UUID
		bookingID                *uuid.UUID
		ratingValue              int
		titleText, commentText   string
		pros, cons               []string
		recommend                bool
		helpfulCount             int
		response                 *string
		respondedAt              *time.Time
		createdAt, updatedAt     time.Time
	)
	err := r.db.QueryRow(ctx, q, id).Scan(
		&reviewID, &roomID, &userID, &bookingID, &ratingValue, &titleText, &commentText,
		&pros, &cons, &recommend, &helpfulCount, &response, &respondedAt, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, wrapQueryErr("failed to find review", err)
	}

	rating, err := review.NewRating(ratingValue)
	if err != nil {
		return nil, infra.WrapRepoErr("stored rating is invalid", err)
	}
	title, err := review.NewTitle(titleText)
	if err != nil {
		return nil, infra.WrapRepoErr("stored title is invalid", err)
	}
	comment, err := review.NewComment(commentText)
	if err != nil {
		return nil, infra.WrapRepoErr("stored comment is invalid", err)
	}

	return review.ReconstructReview(
		reviewID, roomID, userID, bookingID,
		rating, title, comment, pros, cons, recommend, helpfulCount,
		response, respondedAt, createdAt, updatedAt,
	), nil
}

func (r *ReviewRepository) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]*readmodel.ReviewRM, error) {
	const q = `
		SELECT rv.id, rv.room_id, rv.user_id, u.name, rv.booking_id,
		       rv.rating, rv.title, rv.comment, rv.pros, rv.cons, rv.recommend,
		       rv.helpful_count, rv.response, rv.responded_at, rv.created_at, rv.updated_at
		FROM reviews rv
		JOIN users u ON u.id = rv.user_id
		WHERE rv.room_id = $1
		ORDER BY rv.created_at DESC`

	rows, err := r.db.Query(ctx, q, roomID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews", err)
	}
	defer rows.Close()

	var result []*readmodel.ReviewRM
	for rows.Next() {
		var rm readmodel.ReviewRM
		if err := rows.Scan(
			&rm.ID, &rm.RoomID, &rm.UserID, &rm.UserName, &rm.BookingID,
			&rm.Rating, &rm.Title, &rm.Comment, &rm.Pros, &rm.Cons, &rm.Recommend,
			&rm.HelpfulCount, &rm.Response, &rm.RespondedAt, &rm.CreatedAt, &rm.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan review row", err)
		}
		rm.Verified = rm.BookingID != nil
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate review rows", err)
	}
	return result, nil
}
