package postgresql_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"wedding_service/internal/storage/postgresql"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	defaultWait  = 30 * time.Second
	pollInterval = 500 * time.Millisecond
)

func startPostgres(t *testing.T) string {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()

	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "test",
				"POSTGRES_PASSWORD": "test",
				"POSTGRES_DB":       "testdb",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgContainer.Terminate(ctx) })

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)

	port, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)

	return fmt.Sprintf("postgres://test:test@%s:%s/testdb?sslmode=disable", host, port.Port())
}

func TestStorage_Migrate(t *testing.T) {
	dsn := startPostgres(t)
	ctx := context.Background()

	var (
		s   *postgresql.Storage
		err error
	)
	// postgres перезапускается после init-скриптов, первые подключения могут падать
	require.Eventually(t, func() bool {
		s, err = postgresql.New(ctx, dsn)
		return err == nil
	}, defaultWait, pollInterval)
	defer s.Stop()

	require.NoError(t, s.Migrate(ctx))
	// повторное применение не должно падать
	require.NoError(t, s.Migrate(ctx))

	var tables int
	err = s.Pool().QueryRow(ctx, `
		SELECT count(*) FROM information_schema.tables
		WHERE table_schema = 'public'
		  AND table_name IN ('weddings', 'media', 'guests', 'timeline_events', 'gifts')`).Scan(&tables)
	require.NoError(t, err)
	require.Equal(t, 5, tables)
}
