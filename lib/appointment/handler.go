package appointmenthandler

import (
	"context"

	tablestore "scheduler-backend/lib/table/store"
	initchecker "scheduler-backend/lib/utils/init-checker"
	apimodels "scheduler-backend/models/api"
	appointmentapimodels "scheduler-backend/models/api/appointment"
)

const (
	AppointmentsTable = "appointments"
	orderColumn       = "start_time"
)

type Provider interface {
	List(ctx context.Context) ([]apimodels.Record, error)
	Create(ctx context.Context, data appointmentapimodels.AppointmentData) (apimodels.Record, error)
}

func NewHandler(store tablestore.Provider) Provider {
	instance := impl{
		store: store,
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	return instance
}

type impl struct {
	store tablestore.Provider
}

func (i impl) List(ctx context.Context) ([]apimodels.Record, error) {
	return i.store.List(ctx, AppointmentsTable, tablestore.ListOptions{OrderBy: orderColumn})
}

// Create хранилище проверяется раньше тела запроса
func (i impl) Create(ctx context.Context, data appointmentapimodels.AppointmentData) (apimodels.Record, error) {
	if !tablestore.Configured(i.store) {
		return nil, tablestore.ErrNotConfigured
	}
	if err := data.Validate(); err != nil {
		return nil, err
	}
	return i.store.Insert(ctx, AppointmentsTable, data.ToRecord())
}
