package e2e_test

import (
	"os"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/casperdash/discord-interactions-api/internal/config"
	"github.com/casperdash/discord-interactions-api/tests"
	"github.com/rs/zerolog"
)

var (
	testServices        *TestServices
	globalTestContainer sync.Once
	srvcLock            sync.Mutex
)

type TestServices struct {
	Postgres *tests.TestContainer
	Signer   *tests.Signer
	refs     atomic.Int64
	Settings config.Settings
}

func GetTestServices(t *testing.T) *TestServices {
	t.Helper()
	srvcLock.Lock()
	globalTestContainer.Do(func() {
		logger := zerolog.New(os.Stdout).Level(zerolog.WarnLevel)
		zerolog.DefaultContextLogger = &logger
		signer := tests.NewSigner(t)
		db := tests.SetupTestContainer(t)
		testServices = &TestServices{
			Postgres: db,
			Signer:   signer,
			Settings: config.Settings{
				Port:             8080,
				MonPort:          9090,
				DiscordPublicKey: signer.PublicKeyHex,
				DB:               db.Settings,
			},
		}
	})
	srvcLock.Unlock()
	testServices.TeardownIfLastTest(t)
	testServices.Postgres.TeardownIfLastTest(t)
	return testServices
}

func (tc *TestServices) TeardownIfLastTest(t *testing.T) {
	tc.refs.Add(1)
	t.Cleanup(func() {
		refs := tc.refs.Add(-1)
		if refs != 0 {
			return
		}
		// reset the onceSetup to allow the next test to run if this one is closed
		globalTestContainer = sync.Once{}
	})
}
