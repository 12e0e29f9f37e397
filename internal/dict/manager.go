package dict

// Manager implements entry-level semantics over a store: upsert, remove,
// find and clear. Every operation is a read-modify-write of the whole entry
// set; the manager keeps no state besides the store reference.
type Manager struct {
	store *Store
}

func NewManager(store *Store) *Manager {
	return &Manager{store: store}
}

// Add upserts an entry. If an entry with the same comparison key and
// language already exists it is replaced in place, keeping its position;
// otherwise the entry is appended. The incoming entry has defaults applied
// before it is compared or stored.
func (m *Manager) Add(e Entry) error {
	entries, err := m.store.ReadAll()
	if err != nil {
		return err
	}

	e = ApplyDefaults(e)
	policy := m.store.Policy()
	key := policy.Key(e)

	replaced := false
	for i, existing := range entries {
		if policy.Key(existing) == key && languageOf(existing) == e.Language {
			entries[i] = e
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, e)
	}
	return m.store.WriteAll(entries)
}

// Remove deletes every entry matching the comparison key and language and
// reports whether anything was deleted. An empty language means "ja". The
// file is only rewritten when something actually matched.
func (m *Manager) Remove(key, language string) (bool, error) {
	if language == "" {
		language = DefaultLanguage
	}
	entries, err := m.store.ReadAll()
	if err != nil {
		return false, err
	}

	policy := m.store.Policy()
	kept := entries[:0:0]
	for _, e := range entries {
		if policy.Key(e) == key && languageOf(e) == language {
			continue
		}
		kept = append(kept, e)
	}
	if len(kept) == len(entries) {
		return false, nil
	}
	return true, m.store.WriteAll(kept)
}

// Find returns every entry whose comparison key matches, across all
// languages. An absent key yields an empty result, not an error.
func (m *Manager) Find(key string) ([]Entry, error) {
	entries, err := m.store.ReadAll()
	if err != nil {
		return nil, err
	}

	policy := m.store.Policy()
	var matches []Entry
	for _, e := range entries {
		if policy.Key(e) == key {
			matches = append(matches, e)
		}
	}
	return matches, nil
}

// All returns the full entry set in file order.
func (m *Manager) All() ([]Entry, error) {
	return m.store.ReadAll()
}

// Clear replaces the dictionary with an empty entry set.
func (m *Manager) Clear() error {
	return m.store.WriteAll(nil)
}
