package follows

import (
	"context"
	"errors"
	"fmt"

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

func (r *Repo) UserByID(ctx context.Context, id uuid.UUID) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.follows.userbyid")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", id.String()))

	return r.user(ctx, `SELECT user_id, username, is_private FROM app_user WHERE user_id = $1`, id)
}

func (r *Repo) UserByUsername(ctx context.Context, username string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.follows.userbyusername")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("username", username))

	return r.user(ctx, `SELECT user_id, username, is_private FROM app_user WHERE username = $1`, username)
}

func (r *Repo) user(ctx context.Context, query string, arg any) (*User, error) {
	var u User
	if err := r.db.QueryRow(ctx, query, arg).Scan(&u.ID, &u.Username, &u.IsPrivate); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *Repo) FindEdge(ctx context.Context, followerID, followeeID uuid.UUID) (_ *Edge, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.follows.findedge")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var e Edge
	err = r.db.QueryRow(ctx, `
		SELECT follower_id, followee_id, status, created_at, responded_at
		FROM follow
		WHERE follower_id = $1 AND followee_id = $2`,
		followerID, followeeID,
	).Scan(&e.FollowerID, &e.FolloweeID, &e.Status, &e.CreatedAt, &e.RespondedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

// InsertEdge stores a new edge. A concurrent follow of the same pair surfaces as a conflict.
func (r *Repo) InsertEdge(ctx context.Context, edge Edge) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.follows.insertedge")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("status", string(edge.Status)))

	_, err = r.db.Exec(ctx, `
		INSERT INTO follow (follower_id, followee_id, status, created_at, responded_at)
		VALUES ($1, $2, $3, $4, $5)`,
		edge.FollowerID, edge.FolloweeID, edge.Status, edge.CreatedAt, edge.RespondedAt,
	)
	switch {
	case err == nil:
		return nil
	case pkg.IsUniqueViolationError(err):
		return ErrEdgeExists
	case pkg.IsForeignKeyViolationError(err):
		return ErrUserNotFound
	default:
		return err
	}
}

func (r *Repo) UpdateEdge(ctx context.Context, edge Edge) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.follows.updateedge")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("status", string(edge.Status)))

	tag, err := r.db.Exec(ctx, `
		UPDATE follow SET status = $3, responded_at = $4
		WHERE follower_id = $1 AND followee_id = $2`,
		edge.FollowerID, edge.FolloweeID, edge.Status, edge.RespondedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrFollowRequestNotFound
	}
	return nil
}

func (r *Repo) DeleteEdge(ctx context.Context, followerID, followeeID uuid.UUID) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.follows.deleteedge")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM follow WHERE follower_id = $1 AND followee_id = $2`, followerID, followeeID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repo) Followers(ctx context.Context, userID uuid.UUID, status Status) (_ []UserRef, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.follows.followers")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))
	span.SetAttributes(attribute.String("status", string(status)))

	rows, err := r.db.Query(ctx, `
		SELECT u.user_id, u.username, f.created_at
		FROM follow f
		JOIN app_user u ON u.user_id = f.follower_id
		WHERE f.followee_id = $1 AND f.status = $2
		ORDER BY f.created_at DESC, u.username`,
		userID, status,
	)
	if err != nil {
		return nil, fmt.Errorf("query followers: %w", err)
	}
	return rows2refs(rows)
}

func (r *Repo) Following(ctx context.Context, userID uuid.UUID, status Status) (_ []UserRef, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.follows.following")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))
	span.SetAttributes(attribute.String("status", string(status)))

	rows, err := r.db.Query(ctx, `
		SELECT u.user_id, u.username, f.created_at
		FROM follow f
		JOIN app_user u ON u.user_id = f.followee_id
		WHERE f.follower_id = $1 AND f.status = $2
		ORDER BY f.created_at DESC, u.username`,
		userID, status,
	)
	if err != nil {
		return nil, fmt.Errorf("query following: %w", err)
	}
	return rows2refs(rows)
}

func rows2refs(rows pgx.Rows) ([]UserRef, error) {
	defer rows.Close()

	refs := []UserRef{}
	for rows.Next() {
		var ref UserRef
		if err := rows.Scan(&ref.UserID, &ref.Username, &ref.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user ref: %w", err)
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return refs, nil
}
