package tablestore

import (
	"context"

	apimodels "scheduler-backend/models/api"
)

// NewUnconfigured хранилище-заглушка на случай, когда подключение к БД не задано
func NewUnconfigured() Provider {
	return unconfigured{}
}

type unconfigured struct{}

func (unconfigured) List(ctx context.Context, table string, opts ListOptions) ([]apimodels.Record, error) {
	return nil, ErrNotConfigured
}

func (unconfigured) Insert(ctx context.Context, table string, rec apimodels.Record) (apimodels.Record, error) {
	return nil, ErrNotConfigured
}

func (unconfigured) Update(ctx context.Context, table, id string, rec apimodels.Record) (apimodels.Record, error) {
	return nil, ErrNotConfigured
}

func (unconfigured) Delete(ctx context.Context, table, id string) error {
	return ErrNotConfigured
}

// Configured false для заглушки без подключения к БД
func Configured(store Provider) bool {
	_, stub := store.(unconfigured)
	return !stub
}
