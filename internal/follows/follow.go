package follows

import (
	"fmt"
	"strings"
	"time"

	"github.com/2beens/gearfitness/internal/errs"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusAccepted Status = "ACCEPTED"
	StatusDeclined Status = "DECLINED"
	StatusBlocked  Status = "BLOCKED"
)

var (
	ErrUserNotFound          = errs.NotFound("User not found")
	ErrFollowRequestNotFound = errs.NotFound("Follow request not found")
	ErrNotFollowing          = errs.NotFound("Not following this user")
	ErrSelfFollow            = errs.Conflict("Cannot follow yourself")
	// ErrEdgeExists is returned by stores when an edge for the pair was created concurrently.
	ErrEdgeExists = errs.Conflict("Follow already exists")
)

// InitialStatus is the status of a newly created edge: private accounts have to approve followers.
func InitialStatus(followeePrivate bool) Status {
	if followeePrivate {
		return StatusPending
	}
	return StatusAccepted
}

// Edge is the follow relation of follower to followee. There is at most one per pair.
type Edge struct {
	FollowerID  uuid.UUID
	FolloweeID  uuid.UUID
	Status      Status
	CreatedAt   time.Time
	RespondedAt *time.Time
}

func NewEdge(followerID, followeeID uuid.UUID, followeePrivate bool, now time.Time) Edge {
	e := Edge{
		FollowerID: followerID,
		FolloweeID: followeeID,
		Status:     InitialStatus(followeePrivate),
		CreatedAt:  now,
	}
	if e.Status == StatusAccepted {
		e.RespondedAt = &now
	}
	return e
}

// Respond applies an accept or decline decision. Only PENDING edges change.
// Repeating the decision that produced the current status is a no-op,
// reversing a decision or deciding a blocked edge is a conflict.
func (e *Edge) Respond(accept bool, now time.Time) (changed bool, err error) {
	switch {
	case e.Status == StatusPending:
		e.Status = StatusDeclined
		if accept {
			e.Status = StatusAccepted
		}
		e.RespondedAt = &now
		return true, nil
	case e.Status == StatusAccepted && accept, e.Status == StatusDeclined && !accept:
		return false, nil
	default:
		return false, errs.Conflict("Follow request already %s", strings.ToLower(string(e.Status)))
	}
}

// existingEdgeError describes why a new follow of username is refused.
func existingEdgeError(status Status, username string) error {
	switch status {
	case StatusAccepted:
		return errs.Conflict("Already following %s", username)
	case StatusPending:
		return errs.Conflict("Follow request already sent to %s", username)
	case StatusDeclined:
		return errs.Conflict("Follow request was declined by %s", username)
	default:
		return errs.Conflict("Cannot follow %s: relationship is %s", username, strings.ToLower(string(status)))
	}
}

type User struct {
	ID        uuid.UUID
	Username  string
	IsPrivate bool
}

type FollowResponse struct {
	FolloweeID       uuid.UUID `json:"followeeId"`
	FolloweeUsername string    `json:"followeeUsername"`
	Status           string    `json:"status"`
	Message          string    `json:"message"`
}

func newFollowResponse(followee *User, status Status) *FollowResponse {
	message := fmt.Sprintf("Now following %s", followee.Username)
	if status == StatusPending {
		message = fmt.Sprintf("Follow request sent to %s", followee.Username)
	}
	return &FollowResponse{
		FolloweeID:       followee.ID,
		FolloweeUsername: followee.Username,
		Status:           strings.ToLower(string(status)),
		Message:          message,
	}
}

// UserRef is the other side of an edge, with the time the edge was created.
type UserRef struct {
	UserID    uuid.UUID `json:"userId"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

type FollowStatus struct {
	IsFollowing bool   `json:"isFollowing"`
	Status      string `json:"status,omitempty"`
}
