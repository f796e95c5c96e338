package restaurant

import (
	"math"

	"github.com/tavola/restaurant-hours/internal/dto"
	"github.com/tavola/restaurant-hours/internal/httperr"
)

// paginate computes the listing envelope. Page 1 is always addressable
// so an empty collection does not 404 its first page.
func paginate(total int64, page, limit int) (dto.Pagination, error) {
	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	if page > totalPages && page != 1 {
		return dto.Pagination{}, httperr.ErrBusiness(httperr.CodePageNotFound)
	}

	p := dto.Pagination{
		TotalPages:  totalPages,
		CurrentPage: page,
	}
	if next := page + 1; next <= totalPages {
		p.NextPage = &next
	}
	return p, nil
}
