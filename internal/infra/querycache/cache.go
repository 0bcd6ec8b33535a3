package querycache

import (
	"encoding/json"
	"sync"
)

// Cache явное key-value хранилище закэшированных ответов booking-сервиса.
// Значения хранятся как сырой JSON: snapshot/rollback восстанавливает записи
// байт-в-байт. Создается при старте и передается явно (не ambient singleton).
type Cache struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// New создает пустой кэш
func New() *Cache {
	return &Cache{
		entries: make(map[string][]byte),
	}
}

// Get возвращает копию значения по ключу
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	value, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return cloneBytes(value), true
}

// Set сохраняет копию значения по ключу
func (c *Cache) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cloneBytes(value)
}

// Delete удаляет запись по ключу
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
}

// Invalidate удаляет записи по всем указанным ключам
// Следующее чтение этих ключей уйдет за свежими данными в booking-сервис
func (c *Cache) Invalidate(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range keys {
		delete(c.entries, key)
	}
}

// GetJSON читает значение по ключу и демаршалит его в dst
// Возвращает false, если ключа нет в кэше
func (c *Cache) GetJSON(key string, dst interface{}) (bool, error) {
	value, ok := c.Get(key)
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(value, dst); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON маршалит значение в JSON и сохраняет по ключу
func (c *Cache) SetJSON(key string, v interface{}) error {
	value, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.Set(key, value)
	return nil
}

func cloneBytes(b []byte) []byte {
	cloned := make([]byte, len(b))
	copy(cloned, b)
	return cloned
}
