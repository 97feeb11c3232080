package deck

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/umputun/deckwatch/pkg/domain"
	"github.com/umputun/deckwatch/pkg/nav"
	"github.com/umputun/deckwatch/pkg/store"
)

//go:generate moq -out mocks/persister.go -pkg mocks -skip-ensure -fmt goimports . Persister

// Persister stores the application config under its fixed key
type Persister interface {
	Load(ctx context.Context, key string, v any) error
	Save(ctx context.Context, key string, v any) error
}

// Manager owns the persisted application config, the column list, filter
// rules and display settings. It is the single writer of the app-config store
// key, other components read through it or observe the store subscription.
type Manager struct {
	store Persister

	mu  sync.RWMutex
	cfg domain.AppConfig
}

// NewManager loads the persisted config or initializes the default one
func NewManager(ctx context.Context, persister Persister) (*Manager, error) {
	m := &Manager{store: persister}

	err := persister.Load(ctx, store.KeyAppConfig, &m.cfg)
	switch {
	case errors.Is(err, store.ErrNotFound):
		m.cfg = domain.DefaultAppConfig()
		if err := persister.Save(ctx, store.KeyAppConfig, m.cfg); err != nil {
			return nil, fmt.Errorf("save initial config: %w", err)
		}
		lgr.Printf("[INFO] initialized default app config")
	case err != nil:
		return nil, fmt.Errorf("load app config: %w", err)
	}

	return m, nil
}

// Columns returns a copy of the column list in display order
func (m *Manager) Columns() []domain.Column {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]domain.Column, len(m.cfg.Columns))
	copy(res, m.cfg.Columns)
	return res
}

// Column returns the column with the given id
func (m *Manager) Column(id string) (domain.Column, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.cfg.Columns {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Column{}, false
}

// AddColumn appends a new content column for the given location
func (m *Manager) AddColumn(ctx context.Context, rawURL string) (domain.Column, error) {
	kind := nav.Classify(rawURL)
	col := domain.Column{
		ID:    uuid.NewString(),
		Type:  domain.ColumnContent,
		Title: nav.DefaultTitle(rawURL, kind),
		URL:   rawURL,
	}

	m.mu.Lock()
	m.cfg.Columns = append(m.cfg.Columns, col)
	m.mu.Unlock()

	if err := m.persist(ctx); err != nil {
		return domain.Column{}, err
	}
	lgr.Printf("[INFO] added column %s for %s", col.ID, rawURL)
	return col, nil
}

// RemoveColumn deletes a content column, the settings column can not be removed
func (m *Manager) RemoveColumn(ctx context.Context, id string) error {
	m.mu.Lock()
	idx := -1
	for i, c := range m.cfg.Columns {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		m.mu.Unlock()
		return fmt.Errorf("column %s not found", id)
	}
	if m.cfg.Columns[idx].IsSettings() {
		m.mu.Unlock()
		return fmt.Errorf("settings column can not be removed")
	}
	m.cfg.Columns = append(m.cfg.Columns[:idx], m.cfg.Columns[idx+1:]...)
	m.mu.Unlock()

	if err := m.persist(ctx); err != nil {
		return err
	}
	lgr.Printf("[INFO] removed column %s", id)
	return nil
}

// MoveColumn moves a column to the given position in display order
func (m *Manager) MoveColumn(ctx context.Context, id string, pos int) error {
	m.mu.Lock()
	idx := -1
	for i, c := range m.cfg.Columns {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		m.mu.Unlock()
		return fmt.Errorf("column %s not found", id)
	}
	if pos < 0 || pos >= len(m.cfg.Columns) {
		m.mu.Unlock()
		return fmt.Errorf("position %d out of range", pos)
	}

	col := m.cfg.Columns[idx]
	m.cfg.Columns = append(m.cfg.Columns[:idx], m.cfg.Columns[idx+1:]...)
	m.cfg.Columns = append(m.cfg.Columns[:pos], append([]domain.Column{col}, m.cfg.Columns[pos:]...)...)
	m.mu.Unlock()

	return m.persist(ctx)
}

// UpdateColumnNav records a navigation result on the owning column, called by
// the navigation watcher only
func (m *Manager) UpdateColumnNav(ctx context.Context, id, rawURL, title string) error {
	m.mu.Lock()
	found := false
	for i := range m.cfg.Columns {
		if m.cfg.Columns[i].ID == id {
			m.cfg.Columns[i].URL = rawURL
			m.cfg.Columns[i].Title = title
			found = true
			break
		}
	}
	m.mu.Unlock()

	if !found {
		return fmt.Errorf("column %s not found", id)
	}
	return m.persist(ctx)
}

// Filters returns a copy of all filter rules
func (m *Manager) Filters() []domain.FilterRule {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]domain.FilterRule, len(m.cfg.Filters))
	copy(res, m.cfg.Filters)
	return res
}

// EnabledRules returns the enabled subset for the filter engine
func (m *Manager) EnabledRules() []domain.FilterRule {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]domain.FilterRule, 0, len(m.cfg.Filters))
	for _, r := range m.cfg.Filters {
		if r.Enabled {
			res = append(res, r)
		}
	}
	return res
}

// AddFilter creates a new filter rule, identity is assigned here and is
// immutable afterwards
func (m *Manager) AddFilter(ctx context.Context, rule domain.FilterRule) (domain.FilterRule, error) {
	rule.ID = uuid.NewString()

	m.mu.Lock()
	m.cfg.Filters = append(m.cfg.Filters, rule)
	m.mu.Unlock()

	if err := m.persist(ctx); err != nil {
		return domain.FilterRule{}, err
	}
	return rule, nil
}

// UpdateFilter replaces an existing rule, matched by id
func (m *Manager) UpdateFilter(ctx context.Context, rule domain.FilterRule) error {
	m.mu.Lock()
	found := false
	for i := range m.cfg.Filters {
		if m.cfg.Filters[i].ID == rule.ID {
			m.cfg.Filters[i] = rule
			found = true
			break
		}
	}
	m.mu.Unlock()

	if !found {
		return fmt.Errorf("filter %s not found", rule.ID)
	}
	return m.persist(ctx)
}

// RemoveFilter deletes a rule by id
func (m *Manager) RemoveFilter(ctx context.Context, id string) error {
	m.mu.Lock()
	idx := -1
	for i, r := range m.cfg.Filters {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		m.mu.Unlock()
		return fmt.Errorf("filter %s not found", id)
	}
	m.cfg.Filters = append(m.cfg.Filters[:idx], m.cfg.Filters[idx+1:]...)
	m.mu.Unlock()

	return m.persist(ctx)
}

// Settings returns the display settings
func (m *Manager) Settings() domain.DisplaySettings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cfg.Settings
}

// UpdateSettings replaces the display settings
func (m *Manager) UpdateSettings(ctx context.Context, s domain.DisplaySettings) error {
	m.mu.Lock()
	m.cfg.Settings = s
	m.mu.Unlock()
	return m.persist(ctx)
}

// Export returns a deep copy of the full config, the import/export document
func (m *Manager) Export() domain.AppConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := domain.AppConfig{
		Columns:  make([]domain.Column, len(m.cfg.Columns)),
		Filters:  make([]domain.FilterRule, len(m.cfg.Filters)),
		Settings: m.cfg.Settings,
	}
	copy(out.Columns, m.cfg.Columns)
	for i, r := range m.cfg.Filters {
		if r.Retweet != nil {
			v := *r.Retweet
			r.Retweet = &v
		}
		if r.HasMedia != nil {
			v := *r.HasMedia
			r.HasMedia = &v
		}
		out.Filters[i] = r
	}
	return out
}

// Import validates and replaces the full config, persisting the result.
// A failed persistence keeps the previous in-memory state.
func (m *Manager) Import(ctx context.Context, cfg domain.AppConfig) error {
	if err := validate(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	m.mu.Lock()
	prev := m.cfg
	m.cfg = cfg
	m.mu.Unlock()

	if err := m.persist(ctx); err != nil {
		m.mu.Lock()
		m.cfg = prev
		m.mu.Unlock()
		return err
	}
	lgr.Printf("[INFO] imported config with %d columns and %d filters", len(cfg.Columns), len(cfg.Filters))
	return nil
}

// persist saves the current config under the fixed key
func (m *Manager) persist(ctx context.Context) error {
	m.mu.RLock()
	cfg := m.cfg
	m.mu.RUnlock()

	if err := m.store.Save(ctx, store.KeyAppConfig, cfg); err != nil {
		return fmt.Errorf("persist app config: %w", err)
	}
	return nil
}

// validate checks structural sanity of an imported config
func validate(cfg domain.AppConfig) error {
	colIDs := map[string]struct{}{}
	for _, c := range cfg.Columns {
		if c.ID == "" {
			return fmt.Errorf("column with empty id")
		}
		if _, dup := colIDs[c.ID]; dup {
			return fmt.Errorf("duplicate column id %s", c.ID)
		}
		colIDs[c.ID] = struct{}{}
	}

	ruleIDs := map[string]struct{}{}
	for _, r := range cfg.Filters {
		if r.ID == "" {
			return fmt.Errorf("filter with empty id")
		}
		if _, dup := ruleIDs[r.ID]; dup {
			return fmt.Errorf("duplicate filter id %s", r.ID)
		}
		ruleIDs[r.ID] = struct{}{}
	}
	return nil
}
