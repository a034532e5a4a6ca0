package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/YudheerRM/bidding-insights/internal/domain"
	"github.com/YudheerRM/bidding-insights/internal/domain/entity"
	"github.com/YudheerRM/bidding-insights/internal/domain/repository"
)

var _ repository.TenderRepository = (*TenderRepository)(nil)

// TenderRepository in-memory tenders table.
type TenderRepository struct {
	s  *Store
	tx bool
}

func cloneTender(t entity.Tender) *entity.Tender {
	t.OpeningDate = clonePtr(t.OpeningDate)
	t.ClosingDate = clonePtr(t.ClosingDate)
	return &t
}

func (r *TenderRepository) Create(ctx context.Context, tender *entity.Tender) error {
	return r.s.write(r.tx, func() error {
		r.s.tenders[tender.ID] = *cloneTender(*tender)
		return nil
	})
}

func (r *TenderRepository) GetByID(ctx context.Context, id string) (*entity.Tender, error) {
	var out *entity.Tender
	r.s.read(func() {
		if t, ok := r.s.tenders[id]; ok {
			out = cloneTender(t)
		}
	})
	return out, nil
}

func (r *TenderRepository) Update(ctx context.Context, tender *entity.Tender) error {
	return r.s.write(r.tx, func() error {
		if _, ok := r.s.tenders[tender.ID]; !ok {
			return domain.ErrTenderNotFound
		}
		r.s.tenders[tender.ID] = *cloneTender(*tender)
		return nil
	})
}

// List newest closing date first, tenders without one last.
func (r *TenderRepository) List(ctx context.Context, f repository.TenderFilter) ([]*entity.Tender, int, error) {
	var matches []*entity.Tender
	search := strings.ToLower(strings.TrimSpace(f.Search))
	r.s.read(func() {
		for _, t := range r.s.tenders {
			if f.Status != "" && !t.Status.Is(entity.TenderStatus(f.Status)) {
				continue
			}
			if search != "" &&
				!strings.Contains(strings.ToLower(t.Title), search) &&
				!strings.Contains(strings.ToLower(t.RefNumber), search) {
				continue
			}
			matches = append(matches, cloneTender(t))
		}
	})
	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i].ClosingDate, matches[j].ClosingDate
		switch {
		case a == nil && b == nil:
			return matches[i].ID < matches[j].ID
		case a == nil:
			return false
		case b == nil:
			return true
		case a.Equal(*b):
			return matches[i].ID < matches[j].ID
		}
		return a.After(*b)
	})
	total := len(matches)
	return page(matches, f.Offset, f.Limit), total, nil
}
