package services

import (
	"context"
	"fmt"
	"strings"

	"trace-backend/internal/apperrors"
	"trace-backend/internal/models"
)

// In-memory stores backing the service tests. They mirror the pgx
// repositories' behavior: NotFound on missing rows, insertion-order
// activity listing, status written together with the activity.

type fakeLotStore struct {
	lots   map[int]*models.Lot
	nextID int
}

func newFakeLotStore() *fakeLotStore {
	return &fakeLotStore{lots: make(map[int]*models.Lot)}
}

func (s *fakeLotStore) Create(ctx context.Context, l *models.Lot) error {
	for _, existing := range s.lots {
		if existing.LotNumber == l.LotNumber {
			return apperrors.Conflict("lot", "lot_number", l.LotNumber)
		}
	}
	s.nextID++
	l.ID = s.nextID
	cp := *l
	s.lots[l.ID] = &cp
	return nil
}

func (s *fakeLotStore) Get(ctx context.Context, id int) (*models.Lot, error) {
	l, ok := s.lots[id]
	if !ok {
		return nil, apperrors.NotFound("lot", id)
	}
	cp := *l
	return &cp, nil
}

func (s *fakeLotStore) GetByNumber(ctx context.Context, lotNumber string) (*models.Lot, error) {
	for _, l := range s.lots {
		if l.LotNumber == lotNumber {
			cp := *l
			return &cp, nil
		}
	}
	return nil, apperrors.NotFound("lot", lotNumber)
}

func (s *fakeLotStore) List(ctx context.Context) ([]*models.Lot, error) {
	var lots []*models.Lot
	for id := 1; id <= s.nextID; id++ {
		if l, ok := s.lots[id]; ok {
			cp := *l
			lots = append(lots, &cp)
		}
	}
	return lots, nil
}

func (s *fakeLotStore) Update(ctx context.Context, l *models.Lot) error {
	if _, ok := s.lots[l.ID]; !ok {
		return apperrors.NotFound("lot", l.ID)
	}
	cp := *l
	s.lots[l.ID] = &cp
	return nil
}

func (s *fakeLotStore) CountByDatePrefix(ctx context.Context, prefix string) (int, error) {
	count := 0
	for _, l := range s.lots {
		if strings.HasPrefix(l.LotNumber, prefix) {
			count++
		}
	}
	return count, nil
}

func (s *fakeLotStore) Stats(ctx context.Context) (*models.LotStats, error) {
	stats := &models.LotStats{ByStatus: make(map[string]int)}
	for _, l := range s.lots {
		stats.ByStatus[l.CurrentStatus]++
		stats.TotalLots++
	}
	return stats, nil
}

// seed pre-fills lots so the generator sees an arbitrary daily sequence
// without going through CreateLot hundreds of times.
func (s *fakeLotStore) seed(prefix string, n int) {
	for i := 0; i < n; i++ {
		s.nextID++
		s.lots[s.nextID] = &models.Lot{
			ID:        s.nextID,
			LotNumber: fmt.Sprintf("%s-%03d", prefix, i+1),
		}
	}
}

type fakeActivityStore struct {
	activities []*models.LotActivity
	lots       *fakeLotStore
	nextID     int
}

func newFakeActivityStore(lots *fakeLotStore) *fakeActivityStore {
	return &fakeActivityStore{lots: lots}
}

func (s *fakeActivityStore) CreateWithStatus(ctx context.Context, a *models.LotActivity, newStatus string) error {
	lot, ok := s.lots.lots[a.LotID]
	if !ok {
		return apperrors.NotFound("lot", a.LotID)
	}
	s.nextID++
	a.ID = s.nextID
	cp := *a
	s.activities = append(s.activities, &cp)
	lot.CurrentStatus = newStatus
	return nil
}

func (s *fakeActivityStore) Get(ctx context.Context, id int) (*models.LotActivity, error) {
	for _, a := range s.activities {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, apperrors.NotFound("activity", id)
}

func (s *fakeActivityStore) ListByLot(ctx context.Context, lotID int) ([]*models.LotActivity, error) {
	var out []*models.LotActivity
	for _, a := range s.activities {
		if a.LotID == lotID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *fakeActivityStore) AppendAttachment(ctx context.Context, id int, key string) error {
	for _, a := range s.activities {
		if a.ID == id {
			a.Attachments = append(a.Attachments, key)
			return nil
		}
	}
	return apperrors.NotFound("activity", id)
}

type fakeFarmStore struct {
	farms  map[int]*models.Farm
	nextID int
}

func newFakeFarmStore() *fakeFarmStore {
	return &fakeFarmStore{farms: make(map[int]*models.Farm)}
}

func (s *fakeFarmStore) add(name, code string) *models.Farm {
	s.nextID++
	f := &models.Farm{ID: s.nextID, Name: name, Code: code, Location: "Azrou", Active: true}
	s.farms[f.ID] = f
	return f
}

func (s *fakeFarmStore) Create(ctx context.Context, f *models.Farm) error {
	s.nextID++
	f.ID = s.nextID
	cp := *f
	s.farms[f.ID] = &cp
	return nil
}

func (s *fakeFarmStore) Get(ctx context.Context, id int) (*models.Farm, error) {
	f, ok := s.farms[id]
	if !ok {
		return nil, apperrors.NotFound("farm", id)
	}
	cp := *f
	return &cp, nil
}

func (s *fakeFarmStore) GetByCode(ctx context.Context, code string) (*models.Farm, error) {
	for _, f := range s.farms {
		if f.Code == code {
			cp := *f
			return &cp, nil
		}
	}
	return nil, apperrors.NotFound("farm", code)
}

func (s *fakeFarmStore) List(ctx context.Context) ([]*models.Farm, error) {
	var farms []*models.Farm
	for id := 1; id <= s.nextID; id++ {
		if f, ok := s.farms[id]; ok {
			cp := *f
			farms = append(farms, &cp)
		}
	}
	return farms, nil
}

func (s *fakeFarmStore) Update(ctx context.Context, f *models.Farm) error {
	if _, ok := s.farms[f.ID]; !ok {
		return apperrors.NotFound("farm", f.ID)
	}
	cp := *f
	s.farms[f.ID] = &cp
	return nil
}

func (s *fakeFarmStore) Delete(ctx context.Context, id int) error {
	if _, ok := s.farms[id]; !ok {
		return apperrors.NotFound("farm", id)
	}
	delete(s.farms, id)
	return nil
}
