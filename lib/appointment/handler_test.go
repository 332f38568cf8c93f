package appointmenthandler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	tablestore "scheduler-backend/lib/table/store"
	apimodels "scheduler-backend/models/api"
	appointmentapimodels "scheduler-backend/models/api/appointment"
)

type fakeStore struct {
	tablestore.Provider
	listTable string
	listOpts  tablestore.ListOptions
	inserted  []apimodels.Record
}

func (f *fakeStore) List(ctx context.Context, table string, opts tablestore.ListOptions) ([]apimodels.Record, error) {
	f.listTable = table
	f.listOpts = opts
	return []apimodels.Record{}, nil
}

func (f *fakeStore) Insert(ctx context.Context, table string, rec apimodels.Record) (apimodels.Record, error) {
	f.inserted = append(f.inserted, rec)
	created := apimodels.Record{"id": int64(len(f.inserted))}
	for k, v := range rec {
		created[k] = v
	}
	return created, nil
}

func TestHandler(t *testing.T) {
	ctx := context.TODO()

	t.Run(`List ordered by start_time check`, func(t *testing.T) {
		store := &fakeStore{}
		_, err := NewHandler(store).List(ctx)
		require.Nil(t, err)
		require.Equal(t, "appointments", store.listTable)
		require.Equal(t, "start_time", store.listOpts.OrderBy)
		require.False(t, store.listOpts.Desc)
	})

	t.Run(`Create check`, func(t *testing.T) {
		store := &fakeStore{}
		created, err := NewHandler(store).Create(ctx, appointmentapimodels.AppointmentData{
			Title:     "Haircut",
			StartTime: "2024-01-01T10:00:00Z",
			EndTime:   "2024-01-01T11:00:00Z",
		})
		require.Nil(t, err)
		require.Equal(t, int64(1), created["id"])
		require.Equal(t, "Haircut", created["title"])
		require.Len(t, store.inserted, 1)
	})

	t.Run(`Create without required fields check`, func(t *testing.T) {
		store := &fakeStore{}
		_, err := NewHandler(store).Create(ctx, appointmentapimodels.AppointmentData{Title: "Haircut"})
		require.Equal(t, appointmentapimodels.ErrMissingFields, err)
		require.Empty(t, store.inserted)
	})

	t.Run(`Create with unconfigured store check`, func(t *testing.T) {
		_, err := NewHandler(tablestore.NewUnconfigured()).Create(ctx, appointmentapimodels.AppointmentData{})
		require.Equal(t, tablestore.ErrNotConfigured, err)
	})
}
