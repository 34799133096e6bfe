// Package session хранит текущую личность (кто сейчас действует) и
// выводит из неё два флага: аутентифицирован и админ.
//
// Состояние пишется в тот же storage.Slot, что и store, тремя ключами,
// поэтому перезапуск процесса не разлогинивает пользователя.
package session

import (
	"encoding/json"
	"errors"
	"log"
	"os"

	"staff-portal/internal/models"
	"staff-portal/internal/storage"
)

const (
	keyLoggedIn     = "isLoggedIn"
	keyAdmin        = "isAdmin"
	keyCurrentUser  = "currentUser"
	keyPendingEmail = "pendingEmail"
)

var (
	ErrAccountNotFound    = errors.New("no account found for this email, please register first")
	ErrNotVerified        = errors.New("email not verified, please verify first")
	ErrInvalidCredentials = errors.New("incorrect password")
)

// Accounts — то, что сессии нужно от store.
type Accounts interface {
	AccountByEmail(email string) (models.Account, bool)
}

type Session struct {
	accounts Accounts
	slot     storage.Slot
	logger   *log.Logger

	loggedIn bool
	admin    bool
	current  *models.Identity
}

func New(accounts Accounts, slot storage.Slot, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(os.Stderr, "session: ", log.LstdFlags)
	}
	return &Session{accounts: accounts, slot: slot, logger: logger}
}

// Restore поднимает сессию из ячейки. Мусор в ключах трактуется как
// отсутствие сессии. Личность не сверяется со store.
func (s *Session) Restore() {
	s.loggedIn = s.get(keyLoggedIn) == "true"
	s.admin = s.get(keyAdmin) == "true"
	s.current = nil

	raw := s.get(keyCurrentUser)
	if raw == "" {
		return
	}
	var id models.Identity
	if err := json.Unmarshal([]byte(raw), &id); err != nil {
		s.logger.Printf("invalid %s in storage: %v", keyCurrentUser, err)
		return
	}
	s.current = &id
}

func (s *Session) Login(email, password string) (models.Identity, error) {
	acc, ok := s.accounts.AccountByEmail(email)
	if !ok {
		return models.Identity{}, ErrAccountNotFound
	}
	if !acc.Verified {
		return models.Identity{}, ErrNotVerified
	}
	// пароли хранятся открытым текстом
	if acc.Password != password {
		return models.Identity{}, ErrInvalidCredentials
	}

	id := acc.Identity()
	s.loggedIn = true
	s.admin = acc.Role == models.RoleAdmin
	s.current = &id

	raw, err := json.Marshal(id)
	if err != nil {
		return models.Identity{}, err
	}
	s.set(keyLoggedIn, "true")
	s.set(keyAdmin, boolString(s.admin))
	s.set(keyCurrentUser, string(raw))
	return id, nil
}

func (s *Session) Logout() {
	s.loggedIn = false
	s.admin = false
	s.current = nil
	for _, k := range []string{keyLoggedIn, keyCurrentUser, keyAdmin} {
		if err := s.slot.Remove(k); err != nil {
			s.logger.Printf("failed to remove %s: %v", k, err)
		}
	}
}

// IsAuthenticated требует и флаг, и личность.
func (s *Session) IsAuthenticated() bool {
	return s.loggedIn && s.current != nil
}

func (s *Session) IsAdmin() bool {
	return s.IsAuthenticated() && s.admin
}

func (s *Session) Current() (models.Identity, bool) {
	if !s.IsAuthenticated() {
		return models.Identity{}, false
	}
	return *s.current, true
}

// SetPendingEmail запоминает email, ожидающий подтверждения после регистрации.
func (s *Session) SetPendingEmail(email string) {
	s.set(keyPendingEmail, email)
}

func (s *Session) PendingEmail() string {
	return s.get(keyPendingEmail)
}

func (s *Session) get(key string) string {
	v, err := s.slot.Get(key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Printf("failed to read %s: %v", key, err)
		}
		return ""
	}
	return v
}

func (s *Session) set(key, value string) {
	if err := s.slot.Set(key, value); err != nil {
		s.logger.Printf("failed to persist %s: %v", key, err)
	}
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
