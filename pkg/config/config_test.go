package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/oaky-desktop/pkg/config"
)

// ──────────────────────────────────────────────────────────────────────────────
// Load: valores por defecto y overrides por entorno
// ──────────────────────────────────────────────────────────────────────────────

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "oaky.db", cfg.DB.Path)
	assert.Equal(t, 5, cfg.Inventory.LowStockBelow)
}

func TestLoad_UmbralDesdeEntorno(t *testing.T) {
	t.Setenv("OAKY_LOW_STOCK", "8")
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Inventory.LowStockBelow)
}

func TestLoad_UmbralNoNumerico_UsaElPorDefecto(t *testing.T) {
	t.Setenv("OAKY_LOW_STOCK", "muchos")
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Inventory.LowStockBelow, "un valor no numérico no debe dejar el umbral en cero")
}
