package users

import (
	"time"

	"github.com/2beens/gearfitness/internal/errs"
	"github.com/2beens/gearfitness/internal/stats"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrUserNotFound  = errs.NotFound("User not found")
	ErrUsernameTaken = errs.Conflict("Username already taken")
)

type User struct {
	ID           uuid.UUID
	Username     string
	Email        *string
	WeightLbs    decimal.NullDecimal
	HeightInches decimal.NullDecimal
	Age          *int
	IsPrivate    bool
	CreatedAt    time.Time
}

type Profile struct {
	UserID       uuid.UUID           `json:"userId"`
	Username     string              `json:"username"`
	Email        *string             `json:"email,omitempty"`
	WeightLbs    decimal.NullDecimal `json:"weightLbs"`
	HeightInches decimal.NullDecimal `json:"heightInches"`
	Age          *int                `json:"age"`
	IsPrivate    bool                `json:"isPrivate"`
	CreatedAt    time.Time           `json:"createdAt"`

	WorkoutStats   stats.WorkoutStats `json:"workoutStats"`
	FollowersCount int                `json:"followersCount"`
	FollowingCount int                `json:"followingCount"`
	// IsFollowing is absent for anonymous viewers and for the owner.
	IsFollowing *bool `json:"isFollowing,omitempty"`
}

// UpdateProfileRequest changes only the fields that are present.
type UpdateProfileRequest struct {
	Username     *string          `json:"username" validate:"omitnil,min=3,max=64"`
	WeightLbs    *decimal.Decimal `json:"weightLbs"`
	HeightInches *decimal.Decimal `json:"heightInches"`
	Age          *int             `json:"age" validate:"omitnil,min=1,max=130"`
	IsPrivate    *bool            `json:"isPrivate"`
}

type PrivacyRequest struct {
	// IsPrivate flips the current setting when omitted.
	IsPrivate *bool `json:"isPrivate"`
}

// apply copies the present fields of req onto u and reports whether the username changed.
func (req UpdateProfileRequest) apply(u *User) (usernameChanged bool) {
	if req.Username != nil && *req.Username != u.Username {
		u.Username = *req.Username
		usernameChanged = true
	}
	if req.WeightLbs != nil {
		u.WeightLbs = decimal.NewNullDecimal(*req.WeightLbs)
	}
	if req.HeightInches != nil {
		u.HeightInches = decimal.NewNullDecimal(*req.HeightInches)
	}
	if req.Age != nil {
		u.Age = req.Age
	}
	if req.IsPrivate != nil {
		u.IsPrivate = *req.IsPrivate
	}
	return usernameChanged
}
