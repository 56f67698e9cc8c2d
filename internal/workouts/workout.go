package workouts

import (
	"fmt"
	"strings"
	"time"

	"github.com/2beens/gearfitness/pkg"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BodyTag string

const (
	BodyTagFullBody   BodyTag = "FULL_BODY"
	BodyTagChest      BodyTag = "CHEST"
	BodyTagBack       BodyTag = "BACK"
	BodyTagShoulders  BodyTag = "SHOULDERS"
	BodyTagBiceps     BodyTag = "BICEPS"
	BodyTagTriceps    BodyTag = "TRICEPS"
	BodyTagLegs       BodyTag = "LEGS"
	BodyTagGlutes     BodyTag = "GLUTES"
	BodyTagHamstrings BodyTag = "HAMSTRINGS"
	BodyTagQuads      BodyTag = "QUADS"
	BodyTagCalves     BodyTag = "CALVES"
	BodyTagCore       BodyTag = "CORE"
	BodyTagOther      BodyTag = "OTHER"
)

var knownBodyTags = map[BodyTag]bool{
	BodyTagFullBody: true, BodyTagChest: true, BodyTagBack: true, BodyTagShoulders: true,
	BodyTagBiceps: true, BodyTagTriceps: true, BodyTagLegs: true, BodyTagGlutes: true,
	BodyTagHamstrings: true, BodyTagQuads: true, BodyTagCalves: true, BodyTagCore: true,
	BodyTagOther: true,
}

func (t BodyTag) Valid() bool {
	return knownBodyTags[t]
}

func ParseBodyTag(s string) (BodyTag, error) {
	tag := BodyTag(strings.ToUpper(strings.TrimSpace(s)))
	if !tag.Valid() {
		return "", fmt.Errorf("unknown body tag: %s", s)
	}
	return tag, nil
}

type Exercise struct {
	ID          uuid.UUID `json:"exerciseId"`
	Name        string    `json:"name"`
	BodyPart    BodyTag   `json:"bodyPart"`
	Description string    `json:"description,omitempty"`
}

type WorkoutSet struct {
	ID        uuid.UUID           `json:"setId"`
	SetNumber int                 `json:"setNumber"`
	Reps      int                 `json:"reps"`
	WeightLbs decimal.NullDecimal `json:"weightLbs"`
	IsPR      bool                `json:"isPr"`
}

// Volume is reps x weight; sets without a weight contribute nothing.
func (s WorkoutSet) Volume() decimal.Decimal {
	if !s.WeightLbs.Valid {
		return decimal.Zero
	}
	return s.WeightLbs.Decimal.Mul(decimal.NewFromInt(int64(s.Reps)))
}

type WorkoutExercise struct {
	ID       uuid.UUID    `json:"workoutExerciseId"`
	Exercise Exercise     `json:"exercise"`
	Position int          `json:"position"`
	Note     string       `json:"note,omitempty"`
	Sets     []WorkoutSet `json:"sets"`
}

type Workout struct {
	ID            uuid.UUID         `json:"workoutId"`
	UserID        uuid.UUID         `json:"userId"`
	Name          string            `json:"name"`
	DatePerformed pkg.Date          `json:"datePerformed"`
	DurationMin   *int              `json:"durationMin"`
	BodyTags      []BodyTag         `json:"bodyTags"`
	CreatedAt     time.Time         `json:"createdAt"`
	Exercises     []WorkoutExercise `json:"exercises"`
}

func (w Workout) Volume() decimal.Decimal {
	total := decimal.Zero
	for _, we := range w.Exercises {
		for _, s := range we.Sets {
			total = total.Add(s.Volume())
		}
	}
	return total
}

// Summary is the slice of a workout shown on feed entries.
type Summary struct {
	WorkoutID     uuid.UUID `json:"workoutId"`
	Name          string    `json:"workoutName"`
	DatePerformed pkg.Date  `json:"datePerformed"`
	DurationMin   *int      `json:"durationMin"`
	BodyTags      []BodyTag `json:"bodyTags"`
}

func (w Workout) Summary() Summary {
	tags := w.BodyTags
	if tags == nil {
		tags = []BodyTag{}
	}
	return Summary{
		WorkoutID:     w.ID,
		Name:          w.Name,
		DatePerformed: w.DatePerformed,
		DurationMin:   w.DurationMin,
		BodyTags:      tags,
	}
}

func bodyTagsToStrings(tags []BodyTag) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, string(t))
	}
	return out
}

func BodyTagsFromStrings(raw []string) []BodyTag {
	out := make([]BodyTag, 0, len(raw))
	for _, r := range raw {
		out = append(out, BodyTag(r))
	}
	return out
}
