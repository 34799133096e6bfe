// Package storage описывает key-value ячейку, в которой живёт всё состояние
// приложения (аналог localStorage), и её in-memory реализацию.
package storage

import (
	"errors"
	"sync"
)

// ErrNotFound возвращается Get, если ключа нет.
var ErrNotFound = errors.New("storage: key not found")

type Slot interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error
}

type Memory struct {
	mu   sync.RWMutex
	data map[string]string

	// для тестов: ошибка, которую вернёт следующий Set
	FailWrites error
}

func NewMemory() *Memory {
	return &Memory{data: map[string]string{}}
}

func (m *Memory) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}
	m.data[key] = value
	return nil
}

func (m *Memory) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
