package tablestore

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"scheduler-backend/db"
	apimodels "scheduler-backend/models/api"
)

func getTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	conn, err := db.Connect(db.DriverSqlite, dsn, false, false)
	require.Nil(t, err)
	sqlDB, err := conn.DB()
	require.Nil(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	err = conn.Exec(`CREATE TABLE shifts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		date TEXT NOT NULL DEFAULT '1970-01-01',
		employee TEXT,
		meta TEXT
	)`).Error
	require.Nil(t, err)
	return conn
}

func TestStore(t *testing.T) {
	ctx := context.TODO()

	t.Run(`Insert and List check`, func(t *testing.T) {
		store := NewInstance(getTestDB(t))
		created, err := store.Insert(ctx, "shifts", apimodels.Record{"date": "2024-01-01", "employee": "Anna"})
		require.Nil(t, err)
		require.Equal(t, int64(1), created["id"])
		require.Equal(t, "2024-01-01", created["date"])
		require.Equal(t, "Anna", created["employee"])

		list, err := store.List(ctx, "shifts", ListOptions{})
		require.Nil(t, err)
		require.Len(t, list, 1)
		require.Equal(t, created["id"], list[0]["id"])
	})

	t.Run(`Insert nested value check`, func(t *testing.T) {
		store := NewInstance(getTestDB(t))
		created, err := store.Insert(ctx, "shifts", apimodels.Record{
			"date": "2024-01-01",
			"meta": map[string]interface{}{"room": "A"},
		})
		require.Nil(t, err)
		require.Equal(t, `{"room":"A"}`, created["meta"])
	})

	t.Run(`Insert empty record uses defaults check`, func(t *testing.T) {
		store := NewInstance(getTestDB(t))
		created, err := store.Insert(ctx, "shifts", apimodels.Record{})
		require.Nil(t, err)
		require.Equal(t, "1970-01-01", created["date"])
	})

	t.Run(`Insert unknown column check`, func(t *testing.T) {
		store := NewInstance(getTestDB(t))
		_, err := store.Insert(ctx, "shifts", apimodels.Record{"salary": 100})
		require.NotNil(t, err)
		require.Contains(t, err.Error(), "salary")
	})

	t.Run(`List unknown table check`, func(t *testing.T) {
		store := NewInstance(getTestDB(t))
		_, err := store.List(ctx, "payments", ListOptions{})
		require.NotNil(t, err)
		require.Contains(t, err.Error(), "payments")
	})

	t.Run(`List empty table check`, func(t *testing.T) {
		store := NewInstance(getTestDB(t))
		list, err := store.List(ctx, "shifts", ListOptions{})
		require.Nil(t, err)
		require.NotNil(t, list)
		require.Len(t, list, 0)
	})

	t.Run(`List with range and order check`, func(t *testing.T) {
		store := NewInstance(getTestDB(t))
		for _, date := range []string{"2023-12-31", "2024-01-03", "2024-01-01", "2024-01-07", "2024-01-08"} {
			_, err := store.Insert(ctx, "shifts", apimodels.Record{"date": date})
			require.Nil(t, err)
		}
		list, err := store.List(ctx, "shifts", ListOptions{
			Range:   &Range{Column: "date", From: "2024-01-01", To: "2024-01-07"},
			OrderBy: "date",
		})
		require.Nil(t, err)
		dates := []interface{}{}
		for _, rec := range list {
			dates = append(dates, rec["date"])
		}
		require.Equal(t, []interface{}{"2024-01-01", "2024-01-03", "2024-01-07"}, dates)

		list, err = store.List(ctx, "shifts", ListOptions{OrderBy: "date", Desc: true})
		require.Nil(t, err)
		require.Len(t, list, 5)
		require.Equal(t, "2024-01-08", list[0]["date"])
	})

	t.Run(`Update check`, func(t *testing.T) {
		store := NewInstance(getTestDB(t))
		created, err := store.Insert(ctx, "shifts", apimodels.Record{"date": "2024-01-01", "employee": "Anna"})
		require.Nil(t, err)

		updated, err := store.Update(ctx, "shifts", fmt.Sprint(created["id"]), apimodels.Record{"employee": "Boris"})
		require.Nil(t, err)
		require.Equal(t, created["id"], updated["id"])
		require.Equal(t, "Boris", updated["employee"])
		require.Equal(t, "2024-01-01", updated["date"])

		_, err = store.Update(ctx, "shifts", "100500", apimodels.Record{"employee": "Boris"})
		require.Equal(t, ErrNotFound, err)

		_, err = store.Update(ctx, "shifts", fmt.Sprint(created["id"]), apimodels.Record{})
		require.Equal(t, ErrEmptyRecord, err)
	})

	t.Run(`Delete check`, func(t *testing.T) {
		store := NewInstance(getTestDB(t))
		created, err := store.Insert(ctx, "shifts", apimodels.Record{"date": "2024-01-01"})
		require.Nil(t, err)

		require.Nil(t, store.Delete(ctx, "shifts", fmt.Sprint(created["id"])))
		list, err := store.List(ctx, "shifts", ListOptions{})
		require.Nil(t, err)
		require.Len(t, list, 0)

		require.Equal(t, ErrNotFound, store.Delete(ctx, "shifts", fmt.Sprint(created["id"])))
	})

	t.Run(`Date column check`, func(t *testing.T) {
		conn := getTestDB(t)
		require.Nil(t, conn.Exec(`CREATE TABLE visits (id INTEGER PRIMARY KEY AUTOINCREMENT, day DATE NOT NULL)`).Error)
		store := NewInstance(conn)

		created, err := store.Insert(ctx, "visits", apimodels.Record{"day": "2024-01-01"})
		require.Nil(t, err)
		require.Equal(t, "2024-01-01", created["day"])

		list, err := store.List(ctx, "visits", ListOptions{})
		require.Nil(t, err)
		require.Len(t, list, 1)
		require.Equal(t, "2024-01-01", list[0]["day"])
	})

	t.Run(`toRecord date formatting check`, func(t *testing.T) {
		day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		created := time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC)
		rec := toRecord(map[string]interface{}{
			"day":        day,
			"created_at": created,
			"title":      []byte("Haircut"),
		}, map[string]bool{"day": true})
		require.Equal(t, "2024-01-01", rec["day"])
		require.Equal(t, created, rec["created_at"])
		require.Equal(t, "Haircut", rec["title"])
	})

	t.Run(`Unconfigured check`, func(t *testing.T) {
		store := NewUnconfigured()
		_, err := store.List(ctx, "shifts", ListOptions{})
		require.Equal(t, ErrNotConfigured, err)
		_, err = store.Insert(ctx, "shifts", apimodels.Record{})
		require.Equal(t, ErrNotConfigured, err)
		_, err = store.Update(ctx, "shifts", "1", apimodels.Record{})
		require.Equal(t, ErrNotConfigured, err)
		require.Equal(t, ErrNotConfigured, store.Delete(ctx, "shifts", "1"))

		require.False(t, Configured(store))
		require.True(t, Configured(NewInstance(getTestDB(t))))
	})
}
