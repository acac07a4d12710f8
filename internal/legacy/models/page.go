package models

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// PageRequest is a limit/offset window. Use NewPageRequest to clamp it.
type PageRequest struct {
	Limit  int
	Offset int
}

// NewPageRequest applies the default limit to non-positive values, caps it
// at MaxPageLimit, and floors the offset at zero.
func NewPageRequest(limit, offset int) PageRequest {
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	return PageRequest{Limit: limit, Offset: offset}
}

// Window returns the slice bounds of the page within total items.
func (p PageRequest) Window(total int) (int, int) {
	start := min(p.Offset, total)
	end := min(start+p.Limit, total)
	return start, end
}

// Page is one window of a share set. TotalCount counts the whole set.
type Page[T any] struct {
	Items      []T
	TotalCount int
}
