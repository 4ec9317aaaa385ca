package postgres

import (
	"context"
	"database/sql"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/dacaceros97/mentorias-backend/config"
	"github.com/dacaceros97/mentorias-backend/internal/entities"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRepositoryIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })
	require.NoError(t, repo.Ping(ctx))

	_, err := repo.SelectMentorID(ctx)
	require.ErrorIs(t, err, entities.ErrNoMentorAvailable)

	ids := seedMentors(t, repo, "Alice", "Bob")

	mentorID, err := repo.SelectMentorID(ctx)
	require.NoError(t, err)
	require.Equal(t, ids[0], mentorID)

	name, err := repo.MentorName(ctx, ids[1])
	require.NoError(t, err)
	require.Equal(t, "Bob", name)

	_, err = repo.MentorName(ctx, 999999)
	require.ErrorIs(t, err, entities.ErrMentorNotFound)

	explicit := 45
	later, err := repo.InsertAppointment(ctx, entities.AppointmentRequest{
		StudentName: "Ana", StudentEmail: "ana@example.com",
		AppointmentDate: "2024-06-01", AppointmentTime: "09:00",
	}, mentorID)
	require.NoError(t, err)
	require.NotZero(t, later.ID)
	require.Equal(t, entities.StatusPending, later.Status)
	require.Equal(t, entities.DefaultDurationMinutes, later.DurationMinutes)
	require.Equal(t, "2024-06-01", later.AppointmentDate)
	require.Equal(t, "09:00", later.AppointmentTime)
	require.False(t, later.CreatedAt.IsZero())

	earlier, err := repo.InsertAppointment(ctx, entities.AppointmentRequest{
		StudentName: "Luis", StudentEmail: "luis@example.com",
		AppointmentDate: "2024-06-01", AppointmentTime: "08:00", DurationMinutes: &explicit,
	}, mentorID)
	require.NoError(t, err)
	require.Equal(t, 45, earlier.DurationMinutes)

	first, err := repo.InsertAppointment(ctx, entities.AppointmentRequest{
		StudentName: "Eva", StudentEmail: "eva@example.com",
		AppointmentDate: "2024-05-01", AppointmentTime: "10:00",
	}, ids[1])
	require.NoError(t, err)

	list, err := repo.ListAppointments(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, []int64{first.ID, earlier.ID, later.ID}, []int64{list[0].ID, list[1].ID, list[2].ID})
	require.Equal(t, *later, list[2])

	withSeconds, err := repo.InsertAppointment(ctx, entities.AppointmentRequest{
		StudentName: "Sol", StudentEmail: "sol@example.com",
		AppointmentDate: "2024-07-01", AppointmentTime: "09:30:45",
	}, mentorID)
	require.NoError(t, err)
	require.Equal(t, "09:30:45", withSeconds.AppointmentTime)

	onTheMinute, err := repo.InsertAppointment(ctx, entities.AppointmentRequest{
		StudentName: "Teo", StudentEmail: "teo@example.com",
		AppointmentDate: "2024-07-01", AppointmentTime: "09:30",
	}, mentorID)
	require.NoError(t, err)
	require.Equal(t, "09:30", onTheMinute.AppointmentTime)

	list, err = repo.ListAppointments(ctx)
	require.NoError(t, err)
	require.Len(t, list, 5)
	require.Equal(t, *onTheMinute, list[3])
	require.Equal(t, *withSeconds, list[4])

	_, err = repo.InsertAppointment(ctx, entities.AppointmentRequest{
		StudentName: "Bad", StudentEmail: "bad@example.com",
		AppointmentDate: "2024-13-45", AppointmentTime: "09:00",
	}, mentorID)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestRepositoryRandomPolicyIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)
	cfg.Assignment.Policy = config.PolicyRandom

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	_, err := repo.SelectMentorID(ctx)
	require.ErrorIs(t, err, entities.ErrNoMentorAvailable)

	ids := seedMentors(t, repo, "Alice", "Bob", "Carla")
	for i := 0; i < 20; i++ {
		id, err := repo.SelectMentorID(ctx)
		require.NoError(t, err)
		require.Contains(t, ids, id)
	}
}

func seedMentors(t *testing.T, repo *Postgres, names ...string) []int64 {
	t.Helper()

	ids := make([]int64, 0, len(names))
	for _, n := range names {
		var id int64
		err := repo.db.QueryRow(context.Background(),
			`INSERT INTO mentoring.mentors(name) VALUES ($1) RETURNING id`, n).Scan(&id)
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

func setupPostgres(t *testing.T) (*config.Config, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("docker unavailable: %v", err)
	}
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("docker unavailable: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=mentorias",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)

	hostPort := resource.GetPort("5432/tcp")

	port, err := strconv.Atoi(hostPort)
	require.NoError(t, err)
	migrationsDir, err := filepath.Abs(filepath.Join("..", "..", "..", "db", "migrations"))
	require.NoError(t, err)
	require.DirExists(t, migrationsDir)

	cfg := &config.Config{
		Server:     config.ServerConfig{Host: "0.0.0.0", Port: 5000, ShutdownTimeout: 5 * time.Second},
		HTTP:       config.HTTPConfig{RequestTimeout: 5 * time.Second},
		Storage:    config.StorageConfig{Backend: config.BackendPostgres},
		Assignment: config.AssignmentConfig{Policy: config.PolicyLowestID},
		Postgres: config.PostgresConfig{
			Host:           "localhost",
			Port:           port,
			User:           "postgres",
			Password:       "postgres",
			DBName:         "mentorias",
			SSLMode:        "disable",
			MigrationsDir:  migrationsDir,
			QueryTimeout:   10 * time.Second,
			MigrateTimeout: 20 * time.Second,
			MaxConns:       4,
			MinConns:       1,
		},
	}

	require.NoError(t, pool.Retry(func() error {
		db, err := sql.Open("postgres", "host=localhost port="+hostPort+" user=postgres password=postgres dbname=mentorias sslmode=disable")
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	}))

	cleanup := func() {
		_ = pool.Purge(resource)
	}

	return cfg, cleanup
}

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()

	l, _ := zap.NewDevelopment()
	t.Cleanup(func() { _ = l.Sync() })
	return l.Sugar()
}
