package pkg

import (
	"errors"
	"fmt"
)

var ErrInvalidPage = errors.New("invalid page request")

type PageRequest struct {
	Page int
	Size int
}

// NewPageRequest validates a zero-based page index and a page size in [1, maxSize].
func NewPageRequest(page, size, maxSize int) (PageRequest, error) {
	if page < 0 {
		return PageRequest{}, fmt.Errorf("%w: page must be >= 0", ErrInvalidPage)
	}
	if size < 1 {
		return PageRequest{}, fmt.Errorf("%w: size must be positive", ErrInvalidPage)
	}
	if maxSize > 0 && size > maxSize {
		return PageRequest{}, fmt.Errorf("%w: size must be <= %d", ErrInvalidPage, maxSize)
	}
	return PageRequest{Page: page, Size: size}, nil
}

func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

type Pagination struct {
	Page          int  `json:"page"`
	Size          int  `json:"size"`
	TotalElements int  `json:"totalElements"`
	TotalPages    int  `json:"totalPages"`
	HasNext       bool `json:"hasNext"`
}

func NewPagination(req PageRequest, total int) Pagination {
	totalPages := 0
	if req.Size > 0 {
		totalPages = (total + req.Size - 1) / req.Size
	}
	return Pagination{
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    totalPages,
		HasNext:       req.Page+1 < totalPages,
	}
}
