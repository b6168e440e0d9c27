package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/testutil"
	"github.com/runoshun/todo/internal/usecase"
)

func TestShowConfig_Execute(t *testing.T) {
	t.Run("returns both config infos and effective config", func(t *testing.T) {
		manager := &testutil.MockConfigManager{
			LocalInfo: domain.ConfigInfo{
				Path:    "/home/test/.local/share/todo/config.toml",
				Content: "[store]\nbackend = \"sqlite\"",
				Exists:  true,
			},
			GlobalInfo: domain.ConfigInfo{
				Path:    "/home/test/.config/todo/config.toml",
				Content: "[log]\nlevel = \"debug\"",
				Exists:  true,
			},
		}
		cfg := domain.NewDefaultConfig()
		cfg.Store.Backend = domain.BackendSQLite
		loader := &testutil.MockConfigLoader{Config: cfg}

		out, err := usecase.NewShowConfig(manager, loader).Execute(context.Background(), usecase.ShowConfigInput{})

		require.NoError(t, err)
		assert.Equal(t, manager.LocalInfo, out.LocalConfig)
		assert.Equal(t, manager.GlobalInfo, out.GlobalConfig)
		assert.Equal(t, domain.BackendSQLite, out.EffectiveConfig.Store.Backend)
	})

	t.Run("loader error", func(t *testing.T) {
		loader := &testutil.MockConfigLoader{Err: errors.New("bad toml")}

		_, err := usecase.NewShowConfig(&testutil.MockConfigManager{}, loader).Execute(context.Background(), usecase.ShowConfigInput{})
		assert.EqualError(t, err, "bad toml")
	})
}

func TestInitConfig_Execute(t *testing.T) {
	t.Run("local", func(t *testing.T) {
		manager := &testutil.MockConfigManager{
			LocalInfo: domain.ConfigInfo{Path: "/data/config.toml"},
		}

		out, err := usecase.NewInitConfig(manager).Execute(context.Background(), usecase.InitConfigInput{})

		require.NoError(t, err)
		assert.Equal(t, "/data/config.toml", out.Path)
		assert.True(t, manager.InitLocalCalled)
		assert.False(t, manager.InitGlobalCalled)
	})

	t.Run("global", func(t *testing.T) {
		manager := &testutil.MockConfigManager{
			GlobalInfo: domain.ConfigInfo{Path: "/config/todo/config.toml"},
		}

		out, err := usecase.NewInitConfig(manager).Execute(context.Background(), usecase.InitConfigInput{Global: true})

		require.NoError(t, err)
		assert.Equal(t, "/config/todo/config.toml", out.Path)
		assert.True(t, manager.InitGlobalCalled)
	})

	t.Run("already exists", func(t *testing.T) {
		manager := &testutil.MockConfigManager{InitErr: domain.ErrConfigExists}

		_, err := usecase.NewInitConfig(manager).Execute(context.Background(), usecase.InitConfigInput{})
		assert.ErrorIs(t, err, domain.ErrConfigExists)
	})
}
