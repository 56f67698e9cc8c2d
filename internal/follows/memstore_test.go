package follows_test

import (
	"context"
	"sort"
	"sync"

	"github.com/2beens/gearfitness/internal/follows"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
)

type edgeKey struct {
	follower uuid.UUID
	followee uuid.UUID
}

// memStore keeps users and edges in memory, one edge per ordered pair like the follow table.
type memStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]follows.User
	edges map[edgeKey]follows.Edge
}

func newMemStore() *memStore {
	return &memStore{
		users: map[uuid.UUID]follows.User{},
		edges: map[edgeKey]follows.Edge{},
	}
}

func (s *memStore) addUser(faker *gofakeit.Faker, private bool) follows.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := follows.User{
		ID:        uuid.New(),
		Username:  faker.Username(),
		IsPrivate: private,
	}
	s.users[u.ID] = u
	return u
}

func (s *memStore) edge(follower, followee uuid.UUID) (follows.Edge, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.edges[edgeKey{follower, followee}]
	return e, ok
}

func (s *memStore) UserByID(_ context.Context, id uuid.UUID) (*follows.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, follows.ErrUserNotFound
	}
	return &u, nil
}

func (s *memStore) UserByUsername(_ context.Context, username string) (*follows.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, follows.ErrUserNotFound
}

func (s *memStore) FindEdge(_ context.Context, followerID, followeeID uuid.UUID) (*follows.Edge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.edges[edgeKey{followerID, followeeID}]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (s *memStore) InsertEdge(_ context.Context, edge follows.Edge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := edgeKey{edge.FollowerID, edge.FolloweeID}
	if _, ok := s.edges[key]; ok {
		return follows.ErrEdgeExists
	}
	s.edges[key] = edge
	return nil
}

func (s *memStore) UpdateEdge(_ context.Context, edge follows.Edge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := edgeKey{edge.FollowerID, edge.FolloweeID}
	if _, ok := s.edges[key]; !ok {
		return follows.ErrFollowRequestNotFound
	}
	s.edges[key] = edge
	return nil
}

func (s *memStore) DeleteEdge(_ context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := edgeKey{followerID, followeeID}
	if _, ok := s.edges[key]; !ok {
		return false, nil
	}
	delete(s.edges, key)
	return true, nil
}

func (s *memStore) Followers(_ context.Context, userID uuid.UUID, status follows.Status) ([]follows.UserRef, error) {
	return s.refs(func(e follows.Edge) (uuid.UUID, bool) {
		return e.FollowerID, e.FolloweeID == userID && e.Status == status
	}), nil
}

func (s *memStore) Following(_ context.Context, userID uuid.UUID, status follows.Status) ([]follows.UserRef, error) {
	return s.refs(func(e follows.Edge) (uuid.UUID, bool) {
		return e.FolloweeID, e.FollowerID == userID && e.Status == status
	}), nil
}

func (s *memStore) refs(match func(follows.Edge) (uuid.UUID, bool)) []follows.UserRef {
	s.mu.Lock()
	defer s.mu.Unlock()
	var refs []follows.UserRef
	for _, e := range s.edges {
		other, ok := match(e)
		if !ok {
			continue
		}
		refs = append(refs, follows.UserRef{
			UserID:    other,
			Username:  s.users[other].Username,
			CreatedAt: e.CreatedAt,
		})
	}
	sort.Slice(refs, func(i, j int) bool {
		return refs[i].CreatedAt.After(refs[j].CreatedAt)
	})
	return refs
}
