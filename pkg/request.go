package pkg

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// UUIDVar parses the named mux path variable as a UUID.
func UUIDVar(r *http.Request, name string) (uuid.UUID, error) {
	raw := mux.Vars(r)[name]
	if raw == "" {
		return uuid.Nil, fmt.Errorf("%s empty", name)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s invalid: %w", name, err)
	}
	return id, nil
}

// IntQuery returns the named query param as int, or def when absent.
func IntQuery(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s NaN", name)
	}
	return v, nil
}
