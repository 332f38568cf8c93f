package appointmentapimodels

import (
	"github.com/pkg/errors"
	apimodels "scheduler-backend/models/api"
)

var ErrMissingFields = errors.New("Missing required fields: title, start_time, end_time")

// AppointmentData значения передаются в хранилище как пришли
type AppointmentData struct {
	Title     interface{} `json:"title" swaggertype:"string"`
	StartTime interface{} `json:"start_time" swaggertype:"string"` // ISO 8601
	EndTime   interface{} `json:"end_time" swaggertype:"string"`   // ISO 8601
}

func (r AppointmentData) Validate() error {
	if !apimodels.Present(r.Title) ||
		!apimodels.Present(r.StartTime) ||
		!apimodels.Present(r.EndTime) {
		return ErrMissingFields
	}
	return nil
}

// ToRecord в хранилище пишутся только обязательные поля
func (r AppointmentData) ToRecord() apimodels.Record {
	return apimodels.Record{
		"title":      r.Title,
		"start_time": r.StartTime,
		"end_time":   r.EndTime,
	}
}
