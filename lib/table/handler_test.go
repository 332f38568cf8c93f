package tablehandler

import (
	"context"
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	tablestore "scheduler-backend/lib/table/store"
	apimodels "scheduler-backend/models/api"
)

type listCall struct {
	table string
	opts  tablestore.ListOptions
}

type fakeStore struct {
	lists   []listCall
	records map[string][]apimodels.Record
	err     error
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: map[string][]apimodels.Record{}}
}

func (f *fakeStore) List(ctx context.Context, table string, opts tablestore.ListOptions) ([]apimodels.Record, error) {
	f.lists = append(f.lists, listCall{table: table, opts: opts})
	if f.err != nil {
		return nil, f.err
	}
	return f.records[table], nil
}

func (f *fakeStore) Insert(ctx context.Context, table string, rec apimodels.Record) (apimodels.Record, error) {
	if f.err != nil {
		return nil, f.err
	}
	created := apimodels.Record{"id": int64(len(f.records[table]) + 1)}
	for k, v := range rec {
		created[k] = v
	}
	f.records[table] = append(f.records[table], created)
	return created, nil
}

func (f *fakeStore) Update(ctx context.Context, table, id string, rec apimodels.Record) (apimodels.Record, error) {
	for _, existing := range f.records[table] {
		if fmt.Sprint(existing["id"]) == id {
			for k, v := range rec {
				existing[k] = v
			}
			return existing, nil
		}
	}
	return nil, tablestore.ErrNotFound
}

func (f *fakeStore) Delete(ctx context.Context, table, id string) error {
	for idx, existing := range f.records[table] {
		if fmt.Sprint(existing["id"]) == id {
			f.records[table] = append(f.records[table][:idx], f.records[table][idx+1:]...)
			return nil
		}
	}
	return tablestore.ErrNotFound
}

func TestHandler(t *testing.T) {
	ctx := context.TODO()
	registry := NewRegistry("shifts", "employees")

	t.Run(`unknown resource check`, func(t *testing.T) {
		store := newFakeStore()
		h := NewHandler(store, registry)
		_, err := h.List(ctx, "payments")
		require.True(t, errors.Is(err, ErrUnknownResource))
		_, err = h.Create(ctx, "payments", apimodels.Record{})
		require.True(t, errors.Is(err, ErrUnknownResource))
		_, err = h.Update(ctx, "payments", "1", apimodels.Record{"a": 1})
		require.True(t, errors.Is(err, ErrUnknownResource))
		require.True(t, errors.Is(h.Delete(ctx, "payments", "1"), ErrUnknownResource))
		require.Empty(t, store.lists)
		require.Empty(t, store.records)
	})

	t.Run(`create then list check`, func(t *testing.T) {
		h := NewHandler(newFakeStore(), registry)
		created, err := h.Create(ctx, "employees", apimodels.Record{"name": "Anna"})
		require.Nil(t, err)
		require.Equal(t, int64(1), created["id"])

		list, err := h.List(ctx, "employees")
		require.Nil(t, err)
		require.Equal(t, []apimodels.Record{created}, list)
	})

	t.Run(`update and delete check`, func(t *testing.T) {
		h := NewHandler(newFakeStore(), registry)
		created, err := h.Create(ctx, "employees", apimodels.Record{"name": "Anna"})
		require.Nil(t, err)

		updated, err := h.Update(ctx, "employees", "1", apimodels.Record{"name": "Boris"})
		require.Nil(t, err)
		require.Equal(t, "Boris", updated["name"])
		require.Equal(t, created["id"], updated["id"])

		require.Nil(t, h.Delete(ctx, "employees", "1"))
		require.Equal(t, tablestore.ErrNotFound, h.Delete(ctx, "employees", "1"))
		list, err := h.List(ctx, "employees")
		require.Nil(t, err)
		require.Empty(t, list)
	})

	t.Run(`shifts week check`, func(t *testing.T) {
		store := newFakeStore()
		h := NewHandler(store, registry)
		_, err := h.ListShiftsWeek(ctx, "2024-01-01")
		require.Nil(t, err)
		require.Len(t, store.lists, 1)
		require.Equal(t, "shifts", store.lists[0].table)
		require.Equal(t, &tablestore.Range{Column: "date", From: "2024-01-01", To: "2024-01-07"}, store.lists[0].opts.Range)
	})

	t.Run(`shifts week invalid date check`, func(t *testing.T) {
		store := newFakeStore()
		h := NewHandler(store, registry)
		_, err := h.ListShiftsWeek(ctx, "2024-02-30")
		require.Equal(t, ErrInvalidDate, err)
		require.Empty(t, store.lists)
	})

	t.Run(`shifts week not allowed check`, func(t *testing.T) {
		h := NewHandler(newFakeStore(), NewRegistry("employees"))
		_, err := h.ListShiftsWeek(ctx, "2024-01-01")
		require.True(t, errors.Is(err, ErrUnknownResource))
	})

	t.Run(`store error check`, func(t *testing.T) {
		store := newFakeStore()
		store.err = errors.New("relation \"shifts\" does not exist")
		h := NewHandler(store, registry)
		_, err := h.List(ctx, "shifts")
		require.Equal(t, store.err, err)
	})

	t.Run(`nil store check`, func(t *testing.T) {
		require.Panics(t, func() {
			NewHandler(nil, registry)
		})
	})

	t.Run(`Registry check`, func(t *testing.T) {
		r := NewRegistry("shifts", "", "appointments", "shifts")
		require.True(t, r.Allowed("shifts"))
		require.True(t, r.Allowed("appointments"))
		require.False(t, r.Allowed(""))
		require.False(t, r.Allowed("Shifts"))
		require.Equal(t, []string{"appointments", "shifts"}, r.Names())
	})
}
