package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

func TestNew_JSONConServicioYComponente(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "WARN", Service: "inventario-ledger", Output: &buf})

	log.Info().Msg("descartado por nivel")
	log.Component("ledger").Warn().Str("product_id", "p-1").Msg("recepción por encima de lo pedido")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line), "una sola línea JSON: %s", buf.String())
	assert.Equal(t, "inventario-ledger", line["service"])
	assert.Equal(t, "ledger", line["component"])
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, "p-1", line["product_id"])
}

func TestNew_NivelDesconocidoUsaInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Level: "verboso", Output: &buf})

	log.Debug().Msg("no")
	log.Info().Msg("si")
	assert.NotContains(t, buf.String(), `"no"`)
	assert.Contains(t, buf.String(), `"si"`)
}
