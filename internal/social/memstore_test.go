package social_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/2beens/gearfitness/internal/social"
	"github.com/2beens/gearfitness/internal/workouts"
	"github.com/2beens/gearfitness/pkg"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
)

type followKey struct {
	follower uuid.UUID
	followee uuid.UUID
}

// memStore is an in-memory social store with the same semantics as the postgres repo.
type memStore struct {
	mu       sync.Mutex
	users    map[uuid.UUID]string
	private  map[uuid.UUID]bool
	follows  map[followKey]string
	posts    []social.Post
	likes    map[uuid.UUID]map[uuid.UUID]bool
	comments []social.Comment

	metricsCalls [][]uuid.UUID
}

func newMemStore() *memStore {
	return &memStore{
		users:   map[uuid.UUID]string{},
		private: map[uuid.UUID]bool{},
		follows: map[followKey]string{},
		likes:   map[uuid.UUID]map[uuid.UUID]bool{},
	}
}

func (s *memStore) addUser(faker *gofakeit.Faker) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.users[id] = faker.Username()
	return id
}

func (s *memStore) addPrivateUser(faker *gofakeit.Faker) uuid.UUID {
	id := s.addUser(faker)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.private[id] = true
	return id
}

func (s *memStore) follow(follower, followee uuid.UUID, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.follows[followKey{follower, followee}] = status
}

func (s *memStore) addPost(author uuid.UUID, createdAt time.Time, tags ...workouts.BodyTag) social.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := social.Post{
		ID:        uuid.New(),
		AuthorID:  author,
		Username:  s.users[author],
		CreatedAt: createdAt,
		Workout: workouts.Summary{
			WorkoutID:     uuid.New(),
			Name:          "Workout " + createdAt.Format(time.RFC3339),
			DatePerformed: pkg.DateOf(createdAt),
			BodyTags:      tags,
		},
	}
	s.posts = append(s.posts, p)
	return p
}

func (s *memStore) page(match func(social.Post) bool, req pkg.PageRequest) ([]social.Post, int) {
	var matched []social.Post
	for _, p := range s.posts {
		if match(p) {
			matched = append(matched, p)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := len(matched)
	from := req.Offset()
	if from >= total {
		return []social.Post{}, total
	}
	to := from + req.Size
	if to > total {
		to = total
	}
	return matched[from:to], total
}

func (s *memStore) PageFolloweePosts(_ context.Context, viewerID uuid.UUID, req pkg.PageRequest) ([]social.Post, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	posts, total := s.page(func(p social.Post) bool {
		return s.follows[followKey{viewerID, p.AuthorID}] == "ACCEPTED"
	}, req)
	return posts, total, nil
}

func (s *memStore) PageUserPosts(_ context.Context, viewerID, authorID uuid.UUID, req pkg.PageRequest) ([]social.Post, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	visible := !s.private[authorID] ||
		viewerID == authorID ||
		s.follows[followKey{viewerID, authorID}] == "ACCEPTED"
	posts, total := s.page(func(p social.Post) bool {
		return visible && p.AuthorID == authorID
	}, req)
	return posts, total, nil
}

func (s *memStore) PostMetrics(_ context.Context, postIDs []uuid.UUID, viewerID uuid.UUID) (*social.PostMetrics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metricsCalls = append(s.metricsCalls, postIDs)

	m := social.NewPostMetrics()
	for _, id := range postIDs {
		if n := len(s.likes[id]); n > 0 {
			m.LikeCounts[id] = int64(n)
		}
		if viewerID != uuid.Nil && s.likes[id][viewerID] {
			m.Liked[id] = true
		}
		for _, c := range s.comments {
			if c.PostID == id {
				m.CommentCounts[id]++
			}
		}
	}
	return m, nil
}

func (s *memStore) postExists(postID uuid.UUID) bool {
	for _, p := range s.posts {
		if p.ID == postID {
			return true
		}
	}
	return false
}

func (s *memStore) ToggleLike(_ context.Context, postID, userID uuid.UUID) (social.LikeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.postExists(postID) {
		return social.LikeResult{}, social.ErrPostNotFound
	}
	if _, ok := s.users[userID]; !ok {
		return social.LikeResult{}, social.ErrUserNotFound
	}

	if s.likes[postID] == nil {
		s.likes[postID] = map[uuid.UUID]bool{}
	}
	liked := !s.likes[postID][userID]
	if liked {
		s.likes[postID][userID] = true
	} else {
		delete(s.likes[postID], userID)
	}
	return social.LikeResult{Liked: liked, LikeCount: int64(len(s.likes[postID]))}, nil
}

func (s *memStore) AddComment(_ context.Context, comment social.Comment) (*social.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.postExists(comment.PostID) {
		return nil, social.ErrPostNotFound
	}
	username, ok := s.users[comment.UserID]
	if !ok {
		return nil, social.ErrUserNotFound
	}
	comment.Username = username
	s.comments = append(s.comments, comment)
	return &comment, nil
}

func (s *memStore) PageComments(_ context.Context, postID uuid.UUID, req pkg.PageRequest) ([]social.Comment, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []social.Comment
	for _, c := range s.comments {
		if c.PostID == postID {
			matched = append(matched, c)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	total := len(matched)
	from := req.Offset()
	if from >= total {
		return []social.Comment{}, total, nil
	}
	to := from + req.Size
	if to > total {
		to = total
	}
	return matched[from:to], total, nil
}

func (s *memStore) PostExists(_ context.Context, postID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.postExists(postID), nil
}
