package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/estofados/outlet/internal/config"
	"github.com/estofados/outlet/internal/repo"
)

type testEnv struct {
	Repo    *repo.GormRepo
	Auth    *AuthService
	Catalog *CatalogService
	Cart    *CartService
	Review  *ReviewService
}

// newTestEnv wires the services onto an in-memory sqlite database. The
// pool is pinned to one connection: every :memory: connection is its own
// database, and a single connection also keeps concurrent writers on the
// version-conflict path instead of sqlite busy errors.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	gormRepo := &repo.GormRepo{DB: db}
	return &testEnv{
		Repo: gormRepo,
		Auth: &AuthService{
			Repo:      gormRepo,
			JWTSecret: []byte("test-jwt-secret"),
			TokenTTL:  30 * time.Minute,
		},
		Catalog: &CatalogService{Repo: gormRepo},
		Cart:    &CartService{Repo: gormRepo},
		Review:  &ReviewService{Repo: gormRepo, Limit: 10},
	}
}
