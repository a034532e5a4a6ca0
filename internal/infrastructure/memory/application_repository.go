package memory

import (
	"context"
	"sort"

	"github.com/YudheerRM/bidding-insights/internal/domain"
	"github.com/YudheerRM/bidding-insights/internal/domain/entity"
	"github.com/YudheerRM/bidding-insights/internal/domain/repository"
)

var _ repository.ApplicationRepository = (*ApplicationRepository)(nil)

// ApplicationRepository in-memory tender_applications table.
type ApplicationRepository struct {
	s  *Store
	tx bool
}

func cloneApplication(a entity.TenderApplication) *entity.TenderApplication {
	a.Notes = clonePtr(a.Notes)
	return &a
}

// Create enforces unique (user_id, tender_id) and both foreign keys.
func (r *ApplicationRepository) Create(ctx context.Context, app *entity.TenderApplication) error {
	return r.s.write(r.tx, func() error {
		if _, ok := r.s.tenders[app.TenderID]; !ok {
			return domain.ErrTenderNotFound
		}
		if _, ok := r.s.users[app.UserID]; !ok {
			return domain.ErrUserNotFound
		}
		for _, a := range r.s.applications {
			if a.UserID == app.UserID && a.TenderID == app.TenderID {
				return domain.ErrAlreadyApplied
			}
		}
		r.s.applications[app.ID] = *cloneApplication(*app)
		return nil
	})
}

func (r *ApplicationRepository) GetByUserAndTender(ctx context.Context, userID, tenderID string) (*entity.TenderApplication, error) {
	var out *entity.TenderApplication
	r.s.read(func() {
		for _, a := range r.s.applications {
			if a.UserID == userID && a.TenderID == tenderID {
				out = cloneApplication(a)
				return
			}
		}
	})
	return out, nil
}

func (r *ApplicationRepository) GetByIDForUser(ctx context.Context, id, userID string) (*entity.TenderApplication, error) {
	var out *entity.TenderApplication
	r.s.read(func() {
		if a, ok := r.s.applications[id]; ok && a.UserID == userID {
			out = cloneApplication(a)
		}
	})
	return out, nil
}

func (r *ApplicationRepository) ListByUser(ctx context.Context, userID string) ([]entity.ApplicationWithTender, error) {
	out := []entity.ApplicationWithTender{}
	r.s.read(func() {
		for _, a := range r.s.applications {
			if a.UserID != userID {
				continue
			}
			t, ok := r.s.tenders[a.TenderID]
			if !ok {
				continue
			}
			out = append(out, entity.ApplicationWithTender{
				Application: *cloneApplication(a),
				Tender: entity.TenderSummary{
					ID:          t.ID,
					Title:       t.Title,
					RefNumber:   t.RefNumber,
					Status:      t.Status,
					OpeningDate: clonePtr(t.OpeningDate),
					ClosingDate: clonePtr(t.ClosingDate),
				},
			})
		}
	})
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Application, out[j].Application
		if a.CreatedAt.Equal(b.CreatedAt) {
			return a.ID > b.ID
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
	return out, nil
}

func (r *ApplicationRepository) DeleteForUser(ctx context.Context, id, userID string) error {
	return r.s.write(r.tx, func() error {
		a, ok := r.s.applications[id]
		if !ok || a.UserID != userID {
			return domain.ErrApplicationNotFound
		}
		delete(r.s.applications, id)
		return nil
	})
}
