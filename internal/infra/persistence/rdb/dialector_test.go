package rdb

import (
	"testing"

	"bookseed/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDSN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  config.DatabaseConfig
		want string
	}{
		{
			name: "explicit dsn wins",
			cfg:  config.DatabaseConfig{Provider: config.ProviderPostgres, DSN: "postgres://x", Host: "ignored"},
			want: "postgres://x",
		},
		{
			name: "postgres defaults port and sslmode",
			cfg: config.DatabaseConfig{
				Provider: config.ProviderPostgres,
				Host:     "db",
				UserName: "seed",
				Password: "secret",
				DBName:   "books",
			},
			want: "host=db port=5432 user=seed password=secret dbname=books sslmode=disable",
		},
		{
			name: "mysql parses times",
			cfg: config.DatabaseConfig{
				Provider: config.ProviderMySQL,
				Host:     "db",
				Port:     "3307",
				UserName: "seed",
				Password: "secret",
				DBName:   "books",
			},
			want: "seed:secret@tcp(db:3307)/books?charset=utf8mb4&parseTime=true&loc=Local",
		},
		{
			name: "sqlite enables foreign keys",
			cfg:  config.DatabaseConfig{Provider: config.ProviderSQLite, Path: "bookseed.db"},
			want: "bookseed.db?_foreign_keys=on",
		},
		{
			name: "sqlite keeps existing query",
			cfg:  config.DatabaseConfig{Provider: config.ProviderSQLite, Path: "file:seed.db?cache=shared"},
			want: "file:seed.db?cache=shared&_foreign_keys=on",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, BuildDSN(&tt.cfg))
		})
	}
}

func TestNewDialector(t *testing.T) {
	t.Parallel()

	for _, provider := range []string{config.ProviderPostgres, config.ProviderMySQL, config.ProviderSQLite} {
		dialector, err := NewDialector(provider, "dsn")
		require.NoError(t, err)
		assert.Equal(t, provider, dialector.Name())
	}

	_, err := NewDialector("oracle", "dsn")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database provider")
}

func TestOpen_RequiresDatabaseConfig(t *testing.T) {
	t.Parallel()

	_, err := Open(&config.Config{}, nil)
	require.Error(t, err)
}
