package tablehandler

import (
	"context"

	"github.com/pkg/errors"
	tablestore "scheduler-backend/lib/table/store"
	initchecker "scheduler-backend/lib/utils/init-checker"
	"scheduler-backend/lib/utils/helpers"
	apimodels "scheduler-backend/models/api"
)

const (
	ShiftsTable      = "shifts"
	ShiftsDateColumn = "date"
)

var (
	ErrUnknownResource = errors.New("unknown resource")
	ErrInvalidDate     = errors.New("invalid date, expected YYYY-MM-DD")
)

type Provider interface {
	List(ctx context.Context, resource string) ([]apimodels.Record, error)
	ListShiftsWeek(ctx context.Context, startDate string) ([]apimodels.Record, error)
	Create(ctx context.Context, resource string, rec apimodels.Record) (apimodels.Record, error)
	Update(ctx context.Context, resource, id string, rec apimodels.Record) (apimodels.Record, error)
	Delete(ctx context.Context, resource, id string) error
}

func NewHandler(store tablestore.Provider, registry Registry) Provider {
	instance := impl{
		store:    store,
		registry: registry,
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	return instance
}

type impl struct {
	store    tablestore.Provider
	registry Registry
}

func (i impl) List(ctx context.Context, resource string) ([]apimodels.Record, error) {
	if err := i.checkResource(resource); err != nil {
		return nil, err
	}
	return i.store.List(ctx, resource, tablestore.ListOptions{})
}

func (i impl) ListShiftsWeek(ctx context.Context, startDate string) ([]apimodels.Record, error) {
	if err := i.checkResource(ShiftsTable); err != nil {
		return nil, err
	}
	from, to, err := helpers.WeekRange(startDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	return i.store.List(ctx, ShiftsTable, tablestore.ListOptions{
		Range: &tablestore.Range{
			Column: ShiftsDateColumn,
			From:   from,
			To:     to,
		},
	})
}

func (i impl) Create(ctx context.Context, resource string, rec apimodels.Record) (apimodels.Record, error) {
	if err := i.checkResource(resource); err != nil {
		return nil, err
	}
	return i.store.Insert(ctx, resource, rec)
}

func (i impl) Update(ctx context.Context, resource, id string, rec apimodels.Record) (apimodels.Record, error) {
	if err := i.checkResource(resource); err != nil {
		return nil, err
	}
	return i.store.Update(ctx, resource, id, rec)
}

func (i impl) Delete(ctx context.Context, resource, id string) error {
	if err := i.checkResource(resource); err != nil {
		return err
	}
	return i.store.Delete(ctx, resource, id)
}

func (i impl) checkResource(resource string) error {
	if !i.registry.Allowed(resource) {
		return errors.Wrap(ErrUnknownResource, resource)
	}
	return nil
}
