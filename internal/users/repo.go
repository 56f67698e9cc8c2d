package users

import (
	"context"
	"errors"

	"github.com/2beens/gearfitness/internal/telemetry/tracing"
	"github.com/2beens/gearfitness/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context, userID uuid.UUID) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	var u User
	err = r.db.QueryRow(ctx, `
		SELECT user_id, username, email, weight_lbs, height_inches, age, is_private, created_at
		FROM app_user
		WHERE user_id = $1`,
		userID,
	).Scan(&u.ID, &u.Username, &u.Email, &u.WeightLbs, &u.HeightInches, &u.Age, &u.IsPrivate, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *Repo) Update(ctx context.Context, user User) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", user.ID.String()))

	tag, err := r.db.Exec(ctx, `
		UPDATE app_user
		SET username = $2, weight_lbs = $3, height_inches = $4, age = $5, is_private = $6
		WHERE user_id = $1`,
		user.ID, user.Username, user.WeightLbs, user.HeightInches, user.Age, user.IsPrivate,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return ErrUsernameTaken
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *Repo) FollowCounts(ctx context.Context, userID uuid.UUID) (_ int, _ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.followcounts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	var followers, following int
	err = r.db.QueryRow(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE followee_id = $1),
			COUNT(*) FILTER (WHERE follower_id = $1)
		FROM follow
		WHERE status = 'ACCEPTED' AND (followee_id = $1 OR follower_id = $1)`,
		userID,
	).Scan(&followers, &following)
	if err != nil {
		return 0, 0, err
	}
	return followers, following, nil
}

func (r *Repo) IsFollowing(ctx context.Context, viewerID, userID uuid.UUID) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.isfollowing")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var following bool
	err = r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM follow
			WHERE follower_id = $1 AND followee_id = $2 AND status = 'ACCEPTED'
		)`,
		viewerID, userID,
	).Scan(&following)
	if err != nil {
		return false, err
	}
	return following, nil
}
