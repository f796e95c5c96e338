package restaurant

import (
	"context"
	"fmt"
	"strings"

	domain "github.com/tavola/restaurant-hours/internal/domain/restaurant"
	"github.com/tavola/restaurant-hours/internal/httperr"
	"github.com/tavola/restaurant-hours/internal/models"
)

// fakeRepo keeps restaurants in insertion order so listing pages are
// deterministic.
type fakeRepo struct {
	byID  map[string]*models.Restaurant
	order []string

	getCalls    int
	listCalls   int
	searchCalls int
}

func newFakeRepo(seed ...*models.Restaurant) *fakeRepo {
	f := &fakeRepo{byID: make(map[string]*models.Restaurant)}
	for _, r := range seed {
		f.byID[r.ID] = r
		f.order = append(f.order, r.ID)
	}
	return f
}

func (f *fakeRepo) Create(ctx context.Context, r *models.Restaurant) error {
	if r.ID == "" {
		r.ID = fmt.Sprintf("rest-%d", len(f.order))
	}
	for _, existing := range f.byID {
		if existing.CNPJ == r.CNPJ {
			return httperr.ErrBusiness(httperr.CodeAlreadyRegistered)
		}
	}
	f.byID[r.ID] = r
	f.order = append(f.order, r.ID)
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*models.Restaurant, error) {
	f.getCalls++
	r, ok := f.byID[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeRestaurantNotFound)
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRepo) ExistsByCNPJ(ctx context.Context, cnpj string) (bool, error) {
	for _, r := range f.byID {
		if r.CNPJ == cnpj {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) List(ctx context.Context, filter domain.ListFilter) ([]models.Restaurant, int64, error) {
	f.listCalls++
	total := int64(len(f.order))

	start := filter.Offset()
	if start > len(f.order) {
		return nil, total, nil
	}
	end := start + filter.Limit
	if end > len(f.order) {
		end = len(f.order)
	}

	out := make([]models.Restaurant, 0, end-start)
	for _, id := range f.order[start:end] {
		out = append(out, *f.byID[id])
	}
	return out, total, nil
}

func (f *fakeRepo) Search(ctx context.Context, term string, page, limit int) ([]models.Restaurant, int64, error) {
	f.searchCalls++
	term = strings.ToLower(term)

	var hits []models.Restaurant
	for _, id := range f.order {
		r := f.byID[id]
		if strings.Contains(strings.ToLower(r.TradeName), term) ||
			strings.Contains(strings.ToLower(r.LegalName), term) {
			hits = append(hits, *r)
		}
	}
	return hits, int64(len(hits)), nil
}

func (f *fakeRepo) Update(ctx context.Context, r *models.Restaurant) error {
	if _, ok := f.byID[r.ID]; !ok {
		return httperr.ErrBusiness(httperr.CodeRestaurantNotFound)
	}
	cp := *r
	f.byID[r.ID] = &cp
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return httperr.ErrBusiness(httperr.CodeRestaurantNotFound)
	}
	delete(f.byID, id)
	for i, existing := range f.order {
		if existing == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func seedRestaurant(id, cnpj string) *models.Restaurant {
	return &models.Restaurant{
		ID:        id,
		TradeName: "Cantina da Praca",
		LegalName: "Cantina da Praca LTDA",
		CNPJ:      cnpj,
		Category:  models.CategoryItalian,
		Address: &models.Address{
			Street:  "Rua das Flores",
			Number:  "100",
			City:    "Sao Paulo",
			State:   "SP",
			ZipCode: "01001000",
		},
	}
}

func seedMany(n int) []*models.Restaurant {
	out := make([]*models.Restaurant, n)
	for i := range out {
		out[i] = seedRestaurant(
			fmt.Sprintf("rest-%02d", i),
			fmt.Sprintf("%014d", i),
		)
	}
	return out
}
