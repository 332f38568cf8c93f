package tablestore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	apimodels "scheduler-backend/models/api"
)

const (
	IDColumn = "id"

	dateType   = "DATE"
	dateLayout = "2006-01-02"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrNotConfigured = errors.New("database not configured")
	ErrEmptyRecord   = errors.New("record has no fields")
)

// Range отбор по колонке в границах [From, To] включительно
type Range struct {
	Column string
	From   interface{}
	To     interface{}
}

type ListOptions struct {
	Range   *Range
	OrderBy string
	Desc    bool
}

type Provider interface {
	List(ctx context.Context, table string, opts ListOptions) ([]apimodels.Record, error)
	Insert(ctx context.Context, table string, rec apimodels.Record) (apimodels.Record, error)
	Update(ctx context.Context, table, id string, rec apimodels.Record) (apimodels.Record, error)
	Delete(ctx context.Context, table, id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) getDB(ctx context.Context) *gorm.DB {
	return i.db.WithContext(ctx)
}

func (i impl) List(ctx context.Context, table string, opts ListOptions) ([]apimodels.Record, error) {
	tx := i.getDB(ctx).Table(table)
	if opts.Range != nil {
		column := clause.Column{Name: opts.Range.Column}
		tx = tx.
			Where(clause.Gte{Column: column, Value: opts.Range.From}).
			Where(clause.Lte{Column: column, Value: opts.Range.To})
	}
	if opts.OrderBy != "" {
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: opts.OrderBy}, Desc: opts.Desc})
	}
	list, err := i.scanRecords(tx.Select("*"))
	if err != nil {
		return nil, errors.Wrapf(err, "ошибка получения списка записей из %s", table)
	}
	return list, nil
}

func (i impl) Insert(ctx context.Context, table string, rec apimodels.Record) (apimodels.Record, error) {
	tx := i.getDB(ctx)
	columns, values, err := i.splitRecord(tx, rec)
	if err != nil {
		return nil, err
	}
	sql := fmt.Sprintf("INSERT INTO %s DEFAULT VALUES RETURNING *", tx.Statement.Quote(table))
	if len(columns) != 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(values)), ", ")
		sql = fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING *",
			tx.Statement.Quote(table), strings.Join(columns, ", "), placeholders)
	}

	rows, err := i.scanRecords(tx.Raw(sql, values...))
	if err != nil {
		return nil, errors.Wrapf(err, "ошибка добавления записи в %s", table)
	}
	if len(rows) == 0 {
		return nil, errors.Errorf("хранилище не вернуло добавленную запись %s", table)
	}
	return rows[0], nil
}

func (i impl) Update(ctx context.Context, table, id string, rec apimodels.Record) (apimodels.Record, error) {
	if len(rec) == 0 {
		return nil, ErrEmptyRecord
	}
	tx := i.getDB(ctx)
	columns, values, err := i.splitRecord(tx, rec)
	if err != nil {
		return nil, err
	}
	assignments := make([]string, 0, len(columns))
	for _, column := range columns {
		assignments = append(assignments, column+" = ?")
	}
	sql := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ? RETURNING *",
		tx.Statement.Quote(table), strings.Join(assignments, ", "), tx.Statement.Quote(IDColumn))

	rows, err := i.scanRecords(tx.Raw(sql, append(values, id)...))
	if err != nil {
		return nil, errors.Wrapf(err, "ошибка изменения записи %s в %s", id, table)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows[0], nil
}

func (i impl) Delete(ctx context.Context, table, id string) error {
	tx := i.getDB(ctx)
	sql := fmt.Sprintf("DELETE FROM %s WHERE %s = ?", tx.Statement.Quote(table), tx.Statement.Quote(IDColumn))
	res := tx.Exec(sql, id)
	if res.Error != nil {
		return errors.Wrapf(res.Error, "ошибка удаления записи %s из %s", id, table)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// splitRecord возвращает экранированные имена колонок и значения в порядке колонок
func (i impl) splitRecord(tx *gorm.DB, rec apimodels.Record) (columns []string, values []interface{}, err error) {
	keys := make([]string, 0, len(rec))
	for key := range rec {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		value, err := toColumnValue(rec[key])
		if err != nil {
			return nil, nil, errors.Wrapf(err, "некорректное значение поля %s", key)
		}
		columns = append(columns, tx.Statement.Quote(key))
		values = append(values, value)
	}
	return columns, values, nil
}

// вложенные объекты и массивы передаются в хранилище как json
func toColumnValue(value interface{}) (interface{}, error) {
	switch value.(type) {
	case map[string]interface{}, []interface{}:
		body, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		return string(body), nil
	}
	return value, nil
}

// scanRecords читает строки запроса, колонки типа date отдаются как YYYY-MM-DD
func (i impl) scanRecords(tx *gorm.DB) ([]apimodels.Record, error) {
	rows, err := tx.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columnTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, err
	}
	dateColumns := map[string]bool{}
	for _, columnType := range columnTypes {
		if strings.EqualFold(columnType.DatabaseTypeName(), dateType) {
			dateColumns[columnType.Name()] = true
		}
	}

	result := []apimodels.Record{}
	for rows.Next() {
		row := map[string]interface{}{}
		if err = tx.ScanRows(rows, &row); err != nil {
			return nil, err
		}
		result = append(result, toRecord(row, dateColumns))
	}
	return result, rows.Err()
}

func toRecord(row map[string]interface{}, dateColumns map[string]bool) apimodels.Record {
	rec := make(apimodels.Record, len(row))
	for key, value := range row {
		switch v := value.(type) {
		case []byte:
			value = string(v)
		case time.Time:
			if dateColumns[key] {
				value = v.Format(dateLayout)
			}
		}
		rec[key] = value
	}
	return rec
}
