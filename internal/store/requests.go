package store

import (
	"fmt"
	"sort"
	"strings"

	"staff-portal/internal/models"

	"github.com/google/uuid"
)

const DefaultRequestType = "Equipment"

// CreateRequest отбрасывает позиции без названия; если не осталось ни одной —
// ErrEmptyItems. Количество меньше 1 считается равным 1.
func (s *Store) CreateRequest(ownerEmail, typ string, items []models.Item) (models.Request, error) {
	valid := make([]models.Item, 0, len(items))
	for _, it := range items {
		name := strings.TrimSpace(it.Name)
		if name == "" {
			continue
		}
		qty := it.Qty
		if qty < 1 {
			qty = 1
		}
		valid = append(valid, models.Item{Name: name, Qty: qty})
	}
	if len(valid) == 0 {
		return models.Request{}, ErrEmptyItems
	}

	typ = strings.TrimSpace(typ)
	if typ == "" {
		typ = DefaultRequestType
	}

	r := models.Request{
		ID:            uuid.NewString(),
		EmployeeEmail: ownerEmail,
		Type:          typ,
		Items:         valid,
		Status:        models.StatusPending,
		Date:          s.today(),
	}
	s.data.Requests = append(s.data.Requests, r)
	s.Save()
	return r, nil
}

// CancelRequest удаляет заявку владельца, пока она в статусе Pending.
// Чужая заявка выглядит как несуществующая.
func (s *Store) CancelRequest(id, requesterEmail string) error {
	if err := s.CheckCancelRequest(id, requesterEmail); err != nil {
		return err
	}

	kept := make([]models.Request, 0, len(s.data.Requests)-1)
	for _, r := range s.data.Requests {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	s.data.Requests = kept
	s.Save()
	return nil
}

// CheckCancelRequest проверяет, можно ли отменить заявку, ничего не меняя.
func (s *Store) CheckCancelRequest(id, requesterEmail string) error {
	idx := s.requestIndex(id)
	if idx < 0 || s.data.Requests[idx].EmployeeEmail != requesterEmail {
		return fmt.Errorf("request %s: %w", id, ErrNotFound)
	}
	if s.data.Requests[idx].Status != models.StatusPending {
		return ErrInvalidState
	}
	return nil
}

// SetRequestStatus — решение админа по заявке; менять можно только Pending.
func (s *Store) SetRequestStatus(id string, status models.RequestStatus) (models.Request, error) {
	switch status {
	case models.StatusApproved, models.StatusRejected:
	default:
		return models.Request{}, fmt.Errorf("%w: cannot set status %q", ErrInvalidState, status)
	}
	idx := s.requestIndex(id)
	if idx < 0 {
		return models.Request{}, fmt.Errorf("request %s: %w", id, ErrNotFound)
	}
	r := &s.data.Requests[idx]
	if r.Status != models.StatusPending {
		return models.Request{}, ErrInvalidState
	}
	r.Status = status
	s.Save()
	return cloneRequest(*r), nil
}

// RequestsFor — заявки владельца, новые сверху.
func (s *Store) RequestsFor(email string) []models.Request {
	out := make([]models.Request, 0)
	for _, r := range s.data.Requests {
		if r.EmployeeEmail == email {
			out = append(out, cloneRequest(r))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

func (s *Store) Requests() []models.Request {
	out := make([]models.Request, 0, len(s.data.Requests))
	for _, r := range s.data.Requests {
		out = append(out, cloneRequest(r))
	}
	return out
}

func (s *Store) RequestByID(id string) (models.Request, bool) {
	idx := s.requestIndex(id)
	if idx < 0 {
		return models.Request{}, false
	}
	return cloneRequest(s.data.Requests[idx]), true
}

func (s *Store) requestIndex(id string) int {
	for i, r := range s.data.Requests {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func cloneRequest(r models.Request) models.Request {
	r.Items = append([]models.Item(nil), r.Items...)
	return r
}
