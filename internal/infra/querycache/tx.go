package querycache

// snapEntry снимок одной записи кэша на момент Begin
// present=false означает, что ключа не было: rollback удалит его
type snapEntry struct {
	value   []byte
	present bool
}

// Tx транзакция оптимистичного обновления кэша.
// Begin снимает снапшот перечисленных ключей, Rollback восстанавливает их
// байт-в-байт, Commit фиксирует оптимистичное состояние.
// Rollback и Commit идемпотентны: сработает только первый вызов.
type Tx struct {
	cache *Cache
	snap  map[string]snapEntry
	done  bool
}

// Begin снимает снапшот указанных ключей и открывает транзакцию
func (c *Cache) Begin(keys ...string) *Tx {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap := make(map[string]snapEntry, len(keys))
	for _, key := range keys {
		value, ok := c.entries[key]
		if ok {
			snap[key] = snapEntry{value: cloneBytes(value), present: true}
		} else {
			snap[key] = snapEntry{present: false}
		}
	}

	return &Tx{cache: c, snap: snap}
}

// Rollback восстанавливает все ключи снапшота в состояние на момент Begin
func (tx *Tx) Rollback() {
	if tx.done {
		return
	}
	tx.done = true

	tx.cache.mu.Lock()
	defer tx.cache.mu.Unlock()

	for key, entry := range tx.snap {
		if entry.present {
			tx.cache.entries[key] = cloneBytes(entry.value)
		} else {
			delete(tx.cache.entries, key)
		}
	}
}

// Commit фиксирует оптимистичное состояние, снапшот больше не нужен
func (tx *Tx) Commit() {
	if tx.done {
		return
	}
	tx.done = true
	tx.snap = nil
}
