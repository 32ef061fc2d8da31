package store

import sq "github.com/Masterminds/squirrel"

// Slot queries are built with squirrel against the schema created by the
// embedded migrations (see migrations/001_create_slots.sql).

func selectSlot(key string) (string, []any, error) {
	return sq.Select("value").
		From("slots").
		Where(sq.Eq{"key": key}).
		ToSql()
}

func upsertSlot(key, value string) (string, []any, error) {
	return sq.Insert("slots").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		ToSql()
}

func deleteSlot(key string) (string, []any, error) {
	return sq.Delete("slots").
		Where(sq.Eq{"key": key}).
		ToSql()
}
