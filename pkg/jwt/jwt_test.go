package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-ledger/pkg/jwt"
)

func TestParse_TokenValido(t *testing.T) {
	tok, err := jwt.Generate("secreto", "u-1", "c-1", "bodeguero", "erp", time.Hour)
	require.NoError(t, err)

	id, err := jwt.Parse("secreto", "erp", tok)
	require.NoError(t, err)
	assert.Equal(t, jwt.Identity{UserID: "u-1", CompanyID: "c-1", Role: "bodeguero"}, id)
}

func TestParse_Rechazos(t *testing.T) {
	tok, err := jwt.Generate("secreto", "u-1", "c-1", "", "erp", time.Hour)
	require.NoError(t, err)

	_, err = jwt.Parse("otro", "", tok)
	assert.Error(t, err, "firma incorrecta")

	_, err = jwt.Parse("secreto", "otro-emisor", tok)
	assert.Error(t, err, "emisor distinto")

	vencido, err := jwt.Generate("secreto", "u-1", "c-1", "", "erp", -time.Minute)
	require.NoError(t, err)
	_, err = jwt.Parse("secreto", "", vencido)
	assert.Error(t, err, "token vencido")

	sinEmpresa, err := jwt.Generate("secreto", "u-1", "", "", "erp", time.Hour)
	require.NoError(t, err)
	_, err = jwt.Parse("secreto", "", sinEmpresa)
	assert.Error(t, err, "token sin empresa")
}
