// Package store держит все коллекции приложения в памяти и после каждой
// мутации целиком сериализует их в одну ячейку storage.Slot.
//
// Store не потокобезопасен: вызовы должны идти по одному (см. middleware.Serialize).
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"staff-portal/internal/models"
	"staff-portal/internal/storage"
)

type snapshot struct {
	Accounts    []models.Account    `json:"accounts"`
	Departments []models.Department `json:"departments"`
	Employees   []models.Employee   `json:"employees"`
	Requests    []models.Request    `json:"requests"`
}

var collections = []string{"accounts", "departments", "employees", "requests"}

type Options struct {
	Key           string
	AdminEmail    string
	AdminPassword string
	Logger        *log.Logger
	Now           func() time.Time
}

type Store struct {
	slot   storage.Slot
	key    string
	admin  models.Account
	logger *log.Logger
	now    func() time.Time

	data   snapshot
	lastID int64
}

func New(slot storage.Slot, opts Options) *Store {
	if opts.Key == "" {
		opts.Key = DefaultKey
	}
	if opts.AdminEmail == "" {
		opts.AdminEmail = DefaultAdminEmail
	}
	if opts.AdminPassword == "" {
		opts.AdminPassword = DefaultAdminPassword
	}
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr, "store: ", log.LstdFlags)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	s := &Store{
		slot:   slot,
		key:    opts.Key,
		admin:  seedAdmin(opts.AdminEmail, opts.AdminPassword),
		logger: opts.Logger,
		now:    opts.Now,
	}
	s.data = seedSnapshot(s.admin)
	return s
}

// Load заменяет состояние содержимым ячейки. Отсутствующие или битые данные
// не считаются ошибкой: хранилище пересоздаётся из seed.
func (s *Store) Load() {
	raw, err := s.slot.Get(s.key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Printf("failed to read storage, seeding defaults: %v", err)
		}
		s.reseed()
		return
	}

	snap, err := decodeSnapshot(raw)
	if err != nil {
		s.logger.Printf("storage corrupt or missing, seeding defaults: %v", err)
		s.reseed()
		return
	}

	s.data = snap
	s.syncLastID()

	// админ должен быть всегда
	if _, ok := s.findAccountByEmail(s.admin.Email); !ok {
		admin := s.admin
		// id 1 может остаться за переименованным бывшим админом
		if s.accountIndex(admin.ID) >= 0 {
			admin.ID = s.nextID()
		}
		s.data.Accounts = append([]models.Account{admin}, s.data.Accounts...)
		s.logger.Printf("seeded admin %s was missing, restored with id %d", admin.Email, admin.ID)
		s.Save()
	}
}

// Reset выбрасывает текущее состояние и записывает seed.
func (s *Store) Reset() {
	s.reseed()
}

func (s *Store) reseed() {
	s.data = seedSnapshot(s.admin)
	s.syncLastID()
	s.Save()
}

// Save пишет снимок целиком. Ошибка записи только логируется:
// состояние в памяти остаётся главным до конца сессии.
func (s *Store) Save() {
	raw, err := json.Marshal(s.data)
	if err != nil {
		s.logger.Printf("%v: encode: %v", ErrStorageWriteFailed, err)
		return
	}
	if err := s.slot.Set(s.key, string(raw)); err != nil {
		s.logger.Printf("%v: %v", ErrStorageWriteFailed, err)
	}
}

func decodeSnapshot(raw string) (snapshot, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return snapshot{}, fmt.Errorf("%w: %v", ErrStorageCorrupt, err)
	}
	for _, name := range collections {
		v, ok := fields[name]
		if !ok {
			return snapshot{}, fmt.Errorf("%w: missing %s", ErrStorageCorrupt, name)
		}
		v = bytes.TrimSpace(v)
		if len(v) == 0 || v[0] != '[' {
			return snapshot{}, fmt.Errorf("%w: %s is not a list", ErrStorageCorrupt, name)
		}
	}

	var snap snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return snapshot{}, fmt.Errorf("%w: %v", ErrStorageCorrupt, err)
	}
	return snap, nil
}

func (s *Store) syncLastID() {
	var top int64
	for _, a := range s.data.Accounts {
		if a.ID > top {
			top = a.ID
		}
	}
	for _, d := range s.data.Departments {
		if d.ID > top {
			top = d.ID
		}
	}
	s.lastID = top
}

// nextID — id на основе времени (мс), строго возрастающий
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *Store) today() string {
	return s.now().UTC().Format("2006-01-02")
}

// AdminEmail — email seed-админа, который восстанавливается при Load.
func (s *Store) AdminEmail() string {
	return s.admin.Email
}
