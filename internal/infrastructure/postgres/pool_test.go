package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-ledger/pkg/config"
)

func TestPoolConfig_TiemposYConexiones(t *testing.T) {
	pc, err := poolConfig(config.DBConfig{
		Host: "db", Port: 5432, User: "app", DBName: "ledger", SSLMode: "disable",
		MaxConns: 1, StatementTimeout: 30 * time.Second, LockTimeout: 1500 * time.Millisecond,
	})
	require.NoError(t, err)

	assert.EqualValues(t, 1, pc.MaxConns)
	assert.EqualValues(t, 1, pc.MinConns, "MinConns no supera MaxConns")
	assert.Equal(t, "30000", pc.ConnConfig.RuntimeParams["statement_timeout"])
	assert.Equal(t, "1500", pc.ConnConfig.RuntimeParams["lock_timeout"])
	assert.Equal(t, "inventario-ledger", pc.ConnConfig.RuntimeParams["application_name"])
	assert.NotNil(t, pc.AfterConnect)
}

func TestPoolConfig_DatabaseURL(t *testing.T) {
	pc, err := poolConfig(config.DBConfig{DatabaseURL: "postgres://u:p@pg.internal:6543/ledger?application_name=importador"})
	require.NoError(t, err)

	assert.Equal(t, "pg.internal", pc.ConnConfig.Host)
	assert.EqualValues(t, 6543, pc.ConnConfig.Port)
	assert.EqualValues(t, 25, pc.MaxConns)
	assert.Equal(t, "importador", pc.ConnConfig.RuntimeParams["application_name"])
	_, ok := pc.ConnConfig.RuntimeParams["lock_timeout"]
	assert.False(t, ok)
}

func TestPoolConfig_DSNInvalido(t *testing.T) {
	_, err := poolConfig(config.DBConfig{DatabaseURL: "postgres://u:p@host:notaport/db"})
	assert.Error(t, err)
}
