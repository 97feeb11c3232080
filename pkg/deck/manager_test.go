package deck

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/deckwatch/pkg/deck/mocks"
	"github.com/umputun/deckwatch/pkg/domain"
	"github.com/umputun/deckwatch/pkg/store"
)

// memPersister keeps the saved config in memory like the real store would
type memPersister struct {
	mu    sync.Mutex
	data  map[string][]byte
	saves int
	fail  bool
}

func newMemPersister() *memPersister {
	return &memPersister{data: map[string][]byte{}}
}

func (p *memPersister) Load(_ context.Context, key string, v any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	raw, ok := p.data[key]
	if !ok {
		return store.ErrNotFound
	}
	return json.Unmarshal(raw, v)
}

func (p *memPersister) Save(_ context.Context, key string, v any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail {
		return errors.New("save failed")
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	p.data[key] = raw
	p.saves++
	return nil
}

func boolPtr(v bool) *bool { return &v }

func TestNewManager(t *testing.T) {
	ctx := context.Background()

	t.Run("fresh start initializes defaults", func(t *testing.T) {
		p := newMemPersister()
		m, err := NewManager(ctx, p)
		require.NoError(t, err)

		cols := m.Columns()
		require.Len(t, cols, 1)
		assert.True(t, cols[0].IsSettings())
		assert.Equal(t, 400, m.Settings().ColumnWidth)
		assert.Equal(t, "dark", m.Settings().Theme)
		assert.Equal(t, 1, p.saves, "defaults persisted immediately")
	})

	t.Run("existing config loaded", func(t *testing.T) {
		p := newMemPersister()
		first, err := NewManager(ctx, p)
		require.NoError(t, err)
		col, err := first.AddColumn(ctx, "https://x.com/home")
		require.NoError(t, err)

		second, err := NewManager(ctx, p)
		require.NoError(t, err)
		got, ok := second.Column(col.ID)
		require.True(t, ok)
		assert.Equal(t, "Home", got.Title)
	})

	t.Run("initial save failure reported", func(t *testing.T) {
		p := newMemPersister()
		p.fail = true
		_, err := NewManager(ctx, p)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "save initial config")
	})

	t.Run("load failure reported", func(t *testing.T) {
		p := &mocks.PersisterMock{
			LoadFunc: func(ctx context.Context, key string, v any) error { return errors.New("corrupt") },
		}
		_, err := NewManager(ctx, p)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "load app config")
	})
}

func TestManager_Columns(t *testing.T) {
	ctx := context.Background()

	t.Run("add classifies and titles", func(t *testing.T) {
		m, err := NewManager(ctx, newMemPersister())
		require.NoError(t, err)

		col, err := m.AddColumn(ctx, "https://x.com/search?q=golang")
		require.NoError(t, err)
		assert.NotEmpty(t, col.ID)
		assert.Equal(t, domain.ColumnContent, col.Type)
		assert.Equal(t, "Search: golang", col.Title)
		assert.Equal(t, "https://x.com/search?q=golang", col.URL)
	})

	t.Run("remove", func(t *testing.T) {
		m, err := NewManager(ctx, newMemPersister())
		require.NoError(t, err)
		col, err := m.AddColumn(ctx, "https://x.com/home")
		require.NoError(t, err)

		require.NoError(t, m.RemoveColumn(ctx, col.ID))
		_, ok := m.Column(col.ID)
		assert.False(t, ok)

		err = m.RemoveColumn(ctx, col.ID)
		assert.Error(t, err, "second removal fails")
	})

	t.Run("settings column protected", func(t *testing.T) {
		m, err := NewManager(ctx, newMemPersister())
		require.NoError(t, err)

		err = m.RemoveColumn(ctx, "settings")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "can not be removed")
	})

	t.Run("move reorders", func(t *testing.T) {
		m, err := NewManager(ctx, newMemPersister())
		require.NoError(t, err)
		a, err := m.AddColumn(ctx, "https://x.com/home")
		require.NoError(t, err)
		b, err := m.AddColumn(ctx, "https://x.com/notifications")
		require.NoError(t, err)

		require.NoError(t, m.MoveColumn(ctx, b.ID, 0))
		cols := m.Columns()
		require.Len(t, cols, 3)
		assert.Equal(t, b.ID, cols[0].ID)
		assert.Equal(t, "settings", cols[1].ID)
		assert.Equal(t, a.ID, cols[2].ID)
	})

	t.Run("move out of range", func(t *testing.T) {
		m, err := NewManager(ctx, newMemPersister())
		require.NoError(t, err)
		a, err := m.AddColumn(ctx, "https://x.com/home")
		require.NoError(t, err)

		assert.Error(t, m.MoveColumn(ctx, a.ID, 5))
		assert.Error(t, m.MoveColumn(ctx, a.ID, -1))
		assert.Error(t, m.MoveColumn(ctx, "nope", 0))
	})

	t.Run("update nav state", func(t *testing.T) {
		p := newMemPersister()
		m, err := NewManager(ctx, p)
		require.NoError(t, err)
		col, err := m.AddColumn(ctx, "https://x.com/home")
		require.NoError(t, err)

		require.NoError(t, m.UpdateColumnNav(ctx, col.ID, "https://x.com/i/lists/123", "Gophers"))
		got, ok := m.Column(col.ID)
		require.True(t, ok)
		assert.Equal(t, "https://x.com/i/lists/123", got.URL)
		assert.Equal(t, "Gophers", got.Title)

		// survives a reload through the persister
		m2, err := NewManager(ctx, p)
		require.NoError(t, err)
		got, ok = m2.Column(col.ID)
		require.True(t, ok)
		assert.Equal(t, "Gophers", got.Title)

		assert.Error(t, m.UpdateColumnNav(ctx, "nope", "u", "t"))
	})
}

func TestManager_Filters(t *testing.T) {
	ctx := context.Background()

	t.Run("add assigns identity", func(t *testing.T) {
		m, err := NewManager(ctx, newMemPersister())
		require.NoError(t, err)

		rule, err := m.AddFilter(ctx, domain.FilterRule{Name: "no spam", Enabled: true, TextPattern: "spam"})
		require.NoError(t, err)
		assert.NotEmpty(t, rule.ID)

		rules := m.Filters()
		require.Len(t, rules, 1)
		assert.Equal(t, rule.ID, rules[0].ID)
	})

	t.Run("enabled subset only", func(t *testing.T) {
		m, err := NewManager(ctx, newMemPersister())
		require.NoError(t, err)
		_, err = m.AddFilter(ctx, domain.FilterRule{Name: "on", Enabled: true, TextPattern: "a"})
		require.NoError(t, err)
		_, err = m.AddFilter(ctx, domain.FilterRule{Name: "off", Enabled: false, TextPattern: "b"})
		require.NoError(t, err)

		enabled := m.EnabledRules()
		require.Len(t, enabled, 1)
		assert.Equal(t, "on", enabled[0].Name)
	})

	t.Run("update and remove", func(t *testing.T) {
		m, err := NewManager(ctx, newMemPersister())
		require.NoError(t, err)
		rule, err := m.AddFilter(ctx, domain.FilterRule{Name: "r", Enabled: true, Author: "alice"})
		require.NoError(t, err)

		rule.Enabled = false
		rule.Author = "bob"
		require.NoError(t, m.UpdateFilter(ctx, rule))
		assert.Equal(t, "bob", m.Filters()[0].Author)
		assert.Empty(t, m.EnabledRules())

		require.NoError(t, m.RemoveFilter(ctx, rule.ID))
		assert.Empty(t, m.Filters())

		assert.Error(t, m.UpdateFilter(ctx, domain.FilterRule{ID: "nope"}))
		assert.Error(t, m.RemoveFilter(ctx, "nope"))
	})
}

func TestManager_Settings(t *testing.T) {
	ctx := context.Background()
	p := newMemPersister()
	m, err := NewManager(ctx, p)
	require.NoError(t, err)

	s := domain.DisplaySettings{ColumnWidth: 320, FontSize: 15, Theme: "light", HideAds: true}
	require.NoError(t, m.UpdateSettings(ctx, s))
	assert.Equal(t, s, m.Settings())

	m2, err := NewManager(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, s, m2.Settings())
}

func TestManager_ExportImport(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip reproduces state", func(t *testing.T) {
		src, err := NewManager(ctx, newMemPersister())
		require.NoError(t, err)
		_, err = src.AddColumn(ctx, "https://x.com/home")
		require.NoError(t, err)
		_, err = src.AddFilter(ctx, domain.FilterRule{Name: "r", Enabled: true, Retweet: boolPtr(true), HasMedia: boolPtr(false)})
		require.NoError(t, err)
		require.NoError(t, src.UpdateSettings(ctx, domain.DisplaySettings{ColumnWidth: 300, FontSize: 14, Theme: "light"}))

		exported := src.Export()

		dst, err := NewManager(ctx, newMemPersister())
		require.NoError(t, err)
		require.NoError(t, dst.Import(ctx, exported))

		assert.Equal(t, exported, dst.Export())
		assert.Equal(t, src.Columns(), dst.Columns())
		assert.Equal(t, src.Filters(), dst.Filters())
		assert.Equal(t, src.Settings(), dst.Settings())
	})

	t.Run("export is a deep copy", func(t *testing.T) {
		m, err := NewManager(ctx, newMemPersister())
		require.NoError(t, err)
		_, err = m.AddFilter(ctx, domain.FilterRule{Name: "r", Enabled: true, Retweet: boolPtr(true)})
		require.NoError(t, err)

		exported := m.Export()
		*exported.Filters[0].Retweet = false
		exported.Columns[0].Title = "mutated"

		assert.True(t, *m.Filters()[0].Retweet, "pointer predicate must be cloned")
		assert.Equal(t, "Settings", m.Columns()[0].Title)
	})

	t.Run("import rejects duplicate ids", func(t *testing.T) {
		m, err := NewManager(ctx, newMemPersister())
		require.NoError(t, err)

		err = m.Import(ctx, domain.AppConfig{Columns: []domain.Column{{ID: "x"}, {ID: "x"}}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate column id")

		err = m.Import(ctx, domain.AppConfig{Filters: []domain.FilterRule{{ID: "f"}, {ID: "f"}}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate filter id")
	})

	t.Run("import rejects empty ids", func(t *testing.T) {
		m, err := NewManager(ctx, newMemPersister())
		require.NoError(t, err)

		assert.Error(t, m.Import(ctx, domain.AppConfig{Columns: []domain.Column{{}}}))
		assert.Error(t, m.Import(ctx, domain.AppConfig{Filters: []domain.FilterRule{{}}}))
	})

	t.Run("failed persistence rolls back", func(t *testing.T) {
		p := newMemPersister()
		m, err := NewManager(ctx, p)
		require.NoError(t, err)
		col, err := m.AddColumn(ctx, "https://x.com/home")
		require.NoError(t, err)

		p.fail = true
		err = m.Import(ctx, domain.AppConfig{Columns: []domain.Column{{ID: "new"}}})
		require.Error(t, err)

		_, ok := m.Column(col.ID)
		assert.True(t, ok, "previous state must survive a failed import")
	})
}
