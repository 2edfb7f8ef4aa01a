package tests

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"boum-cafe/broadcast-svc/internal/domain"
	"boum-cafe/broadcast-svc/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scheduleRowColumns = []string{"id", "broadcast_type", "days_of_week", "hour", "minute",
	"vibration_number", "vehicle_number", "custom_text", "closing_type", "is_active", "created_at"}

var playlistRowColumns = []string{"id", "title", "description", "audio_url", "artist", "artwork_url", "version_tag", "is_active"}

func newMockRepo(t *testing.T) (*storage.PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return storage.NewPostgresRepository(db), mock
}

func TestPostgresRepository_ListActiveSchedules(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	rows := sqlmock.NewRows(scheduleRowColumns).
		AddRow("s1", "vibration", "{MON,WED}", 9, 0, "12", "", "", "", true, now).
		AddRow("s2", "closing", "{SAT}", 21, 50, "", "", "", "store", true, now)
	mock.ExpectQuery(`FROM broadcast_schedules\s+WHERE is_active = TRUE`).WillReturnRows(rows)

	schedules, err := repo.ListActiveSchedules()
	require.NoError(t, err)
	require.Len(t, schedules, 2)
	assert.Equal(t, []domain.Day{domain.Monday, domain.Wednesday}, schedules[0].Days)
	assert.Equal(t, domain.KindVibration, schedules[0].Kind)
	assert.Equal(t, "12", schedules[0].VibrationNumber)
	assert.Equal(t, domain.ClosingStore, schedules[1].ClosingType)
	assert.Equal(t, 50, schedules[1].Minute)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_CreateSchedule(t *testing.T) {
	repo, mock := newMockRepo(t)
	created := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)

	s := &domain.Schedule{
		ID:            "0b5c9a3e-2f0e-4c1a-9d59-7f1f8d2a6b10",
		Kind:          domain.KindVehicle,
		Days:          []domain.Day{domain.Friday},
		Hour:          18,
		Minute:        30,
		VehicleNumber: "1234",
		IsActive:      true,
	}
	mock.ExpectQuery(`INSERT INTO broadcast_schedules`).
		WithArgs(s.ID, "vehicle", pq.Array([]string{"FRI"}), 18, 30, nil, "1234", nil, nil, true).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	require.NoError(t, repo.CreateSchedule(s))
	assert.Equal(t, created, s.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_DeleteSchedule(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec(`DELETE FROM broadcast_schedules WHERE id=\$1`).WithArgs("s1").WillReturnResult(sqlmock.NewResult(0, 1))

	rows, err := repo.DeleteSchedule("s1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_Playlists(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`FROM playlists WHERE is_active = TRUE ORDER BY title ASC`).
		WillReturnRows(sqlmock.NewRows(playlistRowColumns).
			AddRow("p1", "Lo-fi", "", "https://cdn.example/lofi.mp3", "", "", "v2", true))
	playlists, err := repo.ListActivePlaylists()
	require.NoError(t, err)
	require.Len(t, playlists, 1)
	assert.Equal(t, "v2", playlists[0].VersionTag)

	mock.ExpectQuery(`FROM playlists WHERE id = \$1`).WithArgs("nope").WillReturnRows(sqlmock.NewRows(playlistRowColumns))
	_, err = repo.GetPlaylist("nope")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_EnsureSchema(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS broadcast_schedules`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS playlists`).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.EnsureSchema())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func newFiredGuard(t *testing.T) (*storage.RedisFiredGuard, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return storage.NewRedisFiredGuard(client, 2*time.Minute), mr
}

func TestRedisFiredGuard_MarkFired(t *testing.T) {
	guard, mr := newFiredGuard(t)
	ctx := context.Background()
	seoul := time.FixedZone("KST", 9*60*60)
	bucket := time.Date(2024, 3, 4, 9, 0, 0, 0, seoul)

	first, err := guard.MarkFired(ctx, "s1", bucket)
	require.NoError(t, err)
	assert.True(t, first)
	assert.True(t, mr.Exists("broadcast:fired:s1:202403040000"))

	again, err := guard.MarkFired(ctx, "s1", bucket.UTC())
	require.NoError(t, err)
	assert.False(t, again, "the same instant in another zone is the same bucket")

	mr.FastForward(3 * time.Minute)
	expired, err := guard.MarkFired(ctx, "s1", bucket)
	require.NoError(t, err)
	assert.True(t, expired)
}

func TestRedisFiredGuard_Forget(t *testing.T) {
	guard, mr := newFiredGuard(t)
	ctx := context.Background()
	bucket := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)

	_, err := guard.MarkFired(ctx, "s1", bucket)
	require.NoError(t, err)
	_, err = guard.MarkFired(ctx, "s1", bucket.Add(time.Minute))
	require.NoError(t, err)
	_, err = guard.MarkFired(ctx, "s2", bucket)
	require.NoError(t, err)

	require.NoError(t, guard.Forget(ctx, "s1"))
	assert.False(t, mr.Exists(guard.Key("s1", bucket)))
	assert.False(t, mr.Exists(guard.Key("s1", bucket.Add(time.Minute))))
	assert.True(t, mr.Exists(guard.Key("s2", bucket)))

	assert.NoError(t, guard.Forget(ctx, "never-fired"))
}

type recordingWriter struct {
	messages []kafka.Message
}

func (w *recordingWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	w.messages = append(w.messages, msgs...)
	return nil
}

func TestKafkaPublisher_PublishChange(t *testing.T) {
	writer := &recordingWriter{}
	pub := storage.NewKafkaPublisher(writer)

	err := pub.PublishChange(context.Background(), domain.ChangeEvent{Type: "schedule_created", Table: "broadcast_schedules", ID: "s1", Timestamp: time.Now()})
	require.NoError(t, err)

	require.Len(t, writer.messages, 1)
	assert.Equal(t, "s1", string(writer.messages[0].Key))
	var event domain.ChangeEvent
	require.NoError(t, json.Unmarshal(writer.messages[0].Value, &event))
	assert.Equal(t, "broadcast_schedules", event.Table)
}
