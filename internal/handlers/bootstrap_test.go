package handlers_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visa-eligibility-engine/internal/catalog"
	"visa-eligibility-engine/internal/config"
	"visa-eligibility-engine/internal/handlers"
	"visa-eligibility-engine/internal/models"
)

func stateFromJSON(t *testing.T, body string) models.EligibilityState {
	t.Helper()
	var state models.EligibilityState
	require.NoError(t, json.Unmarshal([]byte(body), &state))
	return state
}

func TestBootstrap_Embedded(t *testing.T) {
	rt, err := handlers.Bootstrap(context.Background(), &config.Config{Version: "1.2.3", Stage: "test"}, nil)
	require.NoError(t, err)
	defer rt.Close()

	assert.Nil(t, rt.DB)
	assert.Equal(t, "embedded", rt.Source.Name())
	assert.Equal(t, 4, rt.Engine.CountEligibleVisas(stateFromJSON(t, scenarioA)))

	_, health := rt.API.Health()
	assert.Equal(t, "1.2.3", health.Version)
	assert.Equal(t, "embedded", health.CatalogSource)
}

func TestBootstrap_FileSource(t *testing.T) {
	data, err := catalog.Marshal(catalog.Default(), "test")
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg := &config.Config{CatalogSource: config.CatalogSourceFile, CatalogPath: path}
	rt, err := handlers.Bootstrap(context.Background(), cfg, nil)
	require.NoError(t, err)

	assert.Equal(t, "file:"+path, rt.Source.Name())
	assert.Equal(t, 15, rt.Engine.Catalog().Len())
}

func TestBootstrap_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := handlers.Bootstrap(ctx, &config.Config{CatalogSource: "ftp"}, nil)
	assert.ErrorContains(t, err, "unknown catalog source")

	_, err = handlers.Bootstrap(ctx, &config.Config{
		CatalogSource: config.CatalogSourceFile,
		CatalogPath:   filepath.Join(t.TempDir(), "missing.json"),
	}, nil)
	assert.Error(t, err)

	scoring := filepath.Join(t.TempDir(), "scoring.yaml")
	require.NoError(t, os.WriteFile(scoring, []byte("weights:\n  vibes: 1\n"), 0o600))
	_, err = handlers.Bootstrap(ctx, &config.Config{ScoringConfigFile: scoring}, nil)
	assert.ErrorIs(t, err, config.ErrUnknownDimension)
}
