package social

import (
	"time"

	"github.com/2beens/gearfitness/internal/errs"
	"github.com/2beens/gearfitness/internal/workouts"
	"github.com/2beens/gearfitness/pkg"

	"github.com/google/uuid"
)

var (
	ErrPostNotFound = errs.NotFound("Post not found")
	ErrUserNotFound = errs.NotFound("User not found")
)

// Post is a published workout together with its author.
type Post struct {
	ID        uuid.UUID
	AuthorID  uuid.UUID
	Username  string
	ImageURL  string
	Caption   string
	CreatedAt time.Time
	Workout   workouts.Summary
}

// FeedEntry is the view of a single post in a feed page.
type FeedEntry struct {
	PostID    uuid.UUID `json:"postId"`
	ImageURL  *string   `json:"imageUrl"`
	Caption   *string   `json:"caption"`
	CreatedAt time.Time `json:"createdAt"`
	UserID    uuid.UUID `json:"userId"`
	Username  string    `json:"username"`
	workouts.Summary
	LikeCount          int64 `json:"likeCount"`
	CommentCount       int64 `json:"commentCount"`
	LikedByCurrentUser bool  `json:"likedByCurrentUser"`
}

type FeedResponse struct {
	Posts      []FeedEntry    `json:"posts"`
	Pagination pkg.Pagination `json:"pagination"`
}

type Comment struct {
	ID        uuid.UUID `json:"commentId"`
	PostID    uuid.UUID `json:"postId"`
	UserID    uuid.UUID `json:"userId"`
	Username  string    `json:"username"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

type CommentsResponse struct {
	Comments   []Comment      `json:"comments"`
	Pagination pkg.Pagination `json:"pagination"`
}

type LikeResult struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"likeCount"`
}

func newPageRequest(page, size, maxSize int) (pkg.PageRequest, error) {
	req, err := pkg.NewPageRequest(page, size, maxSize)
	if err != nil {
		return pkg.PageRequest{}, errs.Invalid("Invalid page request: %s", err)
	}
	return req, nil
}
