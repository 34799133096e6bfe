package store

import (
	"fmt"
	"strings"

	"staff-portal/internal/models"
)

type AccountInput struct {
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Email     string          `json:"email"`
	Password  string          `json:"password"`
	Role      models.UserRole `json:"role"`
	Verified  bool            `json:"verified"`
}

func (in *AccountInput) normalize() error {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.TrimSpace(in.Email)
	if in.FirstName == "" || in.LastName == "" || in.Email == "" {
		return fmt.Errorf("first name, last name and email: %w", ErrMissingField)
	}
	switch in.Role {
	case "", models.RoleAdmin, models.RoleUser:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidRole, in.Role)
	}
	return nil
}

// CreateAccount — самостоятельная регистрация: аккаунт всегда
// неподтверждённый и с ролью user, что бы ни пришло во входных данных.
func (s *Store) CreateAccount(in AccountInput) (models.Account, error) {
	in.Role = models.RoleUser
	in.Verified = false
	return s.createAccount(in)
}

// CreateAccountAsAdmin позволяет сразу задать роль и подтверждение.
func (s *Store) CreateAccountAsAdmin(in AccountInput) (models.Account, error) {
	if in.Role == "" {
		in.Role = models.RoleUser
	}
	return s.createAccount(in)
}

func (s *Store) createAccount(in AccountInput) (models.Account, error) {
	if err := in.normalize(); err != nil {
		return models.Account{}, err
	}
	if in.Password == "" {
		return models.Account{}, fmt.Errorf("password: %w", ErrMissingField)
	}
	if _, ok := s.findAccountByEmail(in.Email); ok {
		return models.Account{}, ErrDuplicateEmail
	}

	acc := models.Account{
		ID:        s.nextID(),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  in.Password,
		Verified:  in.Verified,
		Role:      in.Role,
	}
	s.data.Accounts = append(s.data.Accounts, acc)
	s.Save()
	return acc, nil
}

// UpdateAccount — правка админом. Пустой пароль означает "оставить текущий",
// пустая роль тоже не меняется.
func (s *Store) UpdateAccount(id int64, in AccountInput) (models.Account, error) {
	idx := s.accountIndex(id)
	if idx < 0 {
		return models.Account{}, fmt.Errorf("account %d: %w", id, ErrNotFound)
	}
	if err := in.normalize(); err != nil {
		return models.Account{}, err
	}
	if other, ok := s.findAccountByEmail(in.Email); ok && other.ID != id {
		return models.Account{}, ErrDuplicateEmail
	}

	acc := &s.data.Accounts[idx]
	acc.FirstName = in.FirstName
	acc.LastName = in.LastName
	acc.Email = in.Email
	acc.Verified = in.Verified
	if in.Role != "" {
		acc.Role = in.Role
	}
	if in.Password != "" {
		acc.Password = in.Password
	}
	s.Save()
	return *acc, nil
}

func (s *Store) ResetPassword(id int64, password string) (models.Account, error) {
	idx := s.accountIndex(id)
	if idx < 0 {
		return models.Account{}, fmt.Errorf("account %d: %w", id, ErrNotFound)
	}
	if len(password) < 6 {
		return models.Account{}, ErrPasswordTooShort
	}
	s.data.Accounts[idx].Password = password
	s.Save()
	return s.data.Accounts[idx], nil
}

// VerifyAccount имитирует переход по ссылке из письма.
func (s *Store) VerifyAccount(email string) (models.Account, error) {
	for i := range s.data.Accounts {
		if s.data.Accounts[i].Email == email {
			s.data.Accounts[i].Verified = true
			s.Save()
			return s.data.Accounts[i], nil
		}
	}
	return models.Account{}, fmt.Errorf("account %q: %w", email, ErrNotFound)
}

// DeleteAccount не проверяет ссылки из Employee.UserID — такие сотрудники
// потом показываются как "Unknown".
func (s *Store) DeleteAccount(id, actorID int64) error {
	if err := s.CheckDeleteAccount(id, actorID); err != nil {
		return err
	}

	kept := make([]models.Account, 0, len(s.data.Accounts)-1)
	for _, a := range s.data.Accounts {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	s.data.Accounts = kept
	s.Save()
	return nil
}

// CheckDeleteAccount — те же проверки, что и в DeleteAccount, без удаления.
func (s *Store) CheckDeleteAccount(id, actorID int64) error {
	if id == actorID {
		return ErrSelfDeletion
	}
	if s.accountIndex(id) < 0 {
		return fmt.Errorf("account %d: %w", id, ErrNotFound)
	}
	return nil
}

func (s *Store) Accounts() []models.Account {
	out := make([]models.Account, len(s.data.Accounts))
	copy(out, s.data.Accounts)
	return out
}

func (s *Store) AccountByID(id int64) (models.Account, bool) {
	idx := s.accountIndex(id)
	if idx < 0 {
		return models.Account{}, false
	}
	return s.data.Accounts[idx], true
}

// AccountByEmail — точное совпадение, с учётом регистра.
func (s *Store) AccountByEmail(email string) (models.Account, bool) {
	return s.findAccountByEmail(email)
}

func (s *Store) findAccountByEmail(email string) (models.Account, bool) {
	for _, a := range s.data.Accounts {
		if a.Email == email {
			return a, true
		}
	}
	return models.Account{}, false
}

func (s *Store) accountIndex(id int64) int {
	for i, a := range s.data.Accounts {
		if a.ID == id {
			return i
		}
	}
	return -1
}
