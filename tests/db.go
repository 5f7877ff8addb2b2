package tests

import (
	"context"
	"database/sql"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/DIMO-Network/shared/pkg/db"
	"github.com/casperdash/discord-interactions-api/internal/db/migrations"
	_ "github.com/lib/pq" // postgres driver
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

// TestContainer is a postgres container shared by every test in a package.
type TestContainer struct {
	container testcontainers.Container
	DB        *sql.DB
	Settings  db.Settings
	onceSetup sync.Once
	refs      atomic.Int64
}

var globalTestContainer TestContainer

func (tc *TestContainer) TeardownIfLastTest(t *testing.T) {
	tc.refs.Add(1)
	t.Cleanup(func() {
		refs := tc.refs.Add(-1)
		if refs != 0 {
			return
		}
		tc.Close()
		// reset the onceSetup to allow the next test to run if this one is closed
		globalTestContainer.onceSetup = sync.Once{}
	})
}

func (tc *TestContainer) Close() {
	_ = tc.container.Terminate(context.Background())
	_ = tc.DB.Close()
}

// SetupTestContainer starts the shared postgres container on first use and runs the migrations.
// The container is terminated once the last test that requested it finishes.
func SetupTestContainer(t *testing.T) *TestContainer {
	t.Helper()
	globalTestContainer.onceSetup.Do(func() {
		ctx := context.Background()
		var err error
		globalTestContainer.container, err = postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase(migrations.SchemaName),
			postgres.WithUsername("postgres"),
			postgres.WithPassword("postgres"),
			postgres.BasicWaitStrategies(),
		)
		require.NoError(t, err)

		host, err := globalTestContainer.container.Host(ctx)
		require.NoError(t, err)
		port, err := globalTestContainer.container.MappedPort(ctx, "5432")
		require.NoError(t, err)

		globalTestContainer.Settings = db.Settings{
			Host:     host,
			Port:     port.Port(),
			User:     "postgres",
			Password: "postgres",
			Name:     migrations.SchemaName,
			SSLMode:  "disable",
		}

		globalTestContainer.DB, err = sql.Open("postgres", globalTestContainer.Settings.BuildConnectionString(true))
		require.NoError(t, err)

		err = migrations.RunGoose(ctx, []string{"up"}, globalTestContainer.Settings)
		require.NoError(t, err)
	})
	globalTestContainer.TeardownIfLastTest(t)
	return &globalTestContainer
}

// InsertProfile writes a profile row the way the wallet verification site would.
func (tc *TestContainer) InsertProfile(t *testing.T, userID string, publicKeyAddress *string, isWhitelistWinner bool) {
	t.Helper()
	_, err := tc.DB.ExecContext(t.Context(),
		"INSERT INTO "+migrations.SchemaName+".profiles (user_id, public_key_address, is_whitelist_winner) VALUES ($1, $2, $3)",
		userID, publicKeyAddress, isWhitelistWinner)
	require.NoError(t, err)
}
