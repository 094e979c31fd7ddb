package serverinfofile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/code-open/code-open-server/src/codeopen/internal/core"
	"github.com/code-open/code-open-server/src/codeopen/internal/fs"
	"github.com/code-open/code-open-server/src/codeopen/internal/fs/fsmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/config"
	"go.uber.org/fx/fxtest"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		config   string
		wantErr  bool
		wantFile string
	}{
		{
			name:     "configured file name",
			config:   "serverInfoFileName: info.json",
			wantFile: "info.json",
		},
		{
			name:     "default file name",
			config:   "otherKey: sample",
			wantFile: "server-info.json",
		},
		{
			name:    "config processing error",
			config:  `serverInfoFileName: ""`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paths := core.Paths{ConfigBase: t.TempDir()}
			sif, err := New(Params{
				Config:    newConfigProvider(t, tt.config),
				Lifecycle: fxtest.NewLifecycle(t),
				Logger:    zap.NewNop().Sugar(),
				FS:        fs.New(),
				Paths:     paths,
			})

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(paths.ConfigBase, tt.wantFile), sif.(*module).infofile)
		})
	}
}

func TestLifecycleRemovesFile(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	paths := core.Paths{ConfigBase: filepath.Join(t.TempDir(), "code-open-server")}
	sif, err := New(Params{
		Config:    newConfigProvider(t, "otherKey: sample"),
		Lifecycle: lc,
		Logger:    zap.NewNop().Sugar(),
		FS:        fs.New(),
		Paths:     paths,
	})
	require.NoError(t, err)

	lc.RequireStart()
	require.NoError(t, sif.UpdateField("address", "127.0.0.1:7878"))
	infofile := sif.(*module).infofile
	_, err = os.Stat(infofile)
	require.NoError(t, err)

	lc.RequireStop()
	_, err = os.Stat(infofile)
	assert.True(t, os.IsNotExist(err))
}

func TestOnStop(t *testing.T) {
	t.Run("nothing written", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := module{
			fs:       fsmock.NewMockCodeOpenFS(ctrl),
			logger:   zap.NewNop().Sugar(),
			infofile: "/never/written.json",
		}
		assert.NoError(t, m.OnStop(context.Background()))
	})

	t.Run("file removal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fsys := fsmock.NewMockCodeOpenFS(ctrl)
		fsys.EXPECT().Remove("/config/server-info.json").Return(errors.New("permission denied"))

		m := module{
			fs:       fsys,
			logger:   zap.NewNop().Sugar(),
			infofile: "/config/server-info.json",
			written:  true,
		}

		err := m.OnStop(context.Background())
		assert.ErrorContains(t, err, "removing info file")
	})
}

func TestUpdateField(t *testing.T) {
	t.Run("multiple successful updates", func(t *testing.T) {
		infofile := filepath.Join(t.TempDir(), "server-info.json")
		m := module{
			infofile:     infofile,
			fs:           fs.New(),
			logger:       zap.NewNop().Sugar(),
			fileContents: make(map[string]string),
		}

		steps := []struct {
			key        string
			value      string
			expectJSON string
		}{
			{
				key:        "address",
				value:      "127.0.0.1:7878",
				expectJSON: `{"address":"127.0.0.1:7878"}`,
			},
			{
				key:        "address",
				value:      "127.0.0.1:40000",
				expectJSON: `{"address":"127.0.0.1:40000"}`,
			},
			{
				key:        "pid",
				value:      "42",
				expectJSON: `{"address":"127.0.0.1:40000","pid":"42"}`,
			},
		}

		for _, step := range steps {
			require.NoError(t, m.UpdateField(step.key, step.value))
			assert.Equal(t, step.value, m.fileContents[step.key])
			contents, err := os.ReadFile(infofile)
			require.NoError(t, err)
			assert.JSONEq(t, step.expectJSON, string(contents))
		}
	})

	t.Run("directory creation failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fsys := fsmock.NewMockCodeOpenFS(ctrl)
		fsys.EXPECT().MkdirAll("/config").Return(errors.New("read-only file system"))

		m := module{
			infofile:     "/config/server-info.json",
			fs:           fsys,
			logger:       zap.NewNop().Sugar(),
			fileContents: make(map[string]string),
		}
		err := m.UpdateField("key", "value")
		assert.ErrorContains(t, err, "creating info file directory")
		assert.False(t, m.written)
	})

	t.Run("file write failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fsys := fsmock.NewMockCodeOpenFS(ctrl)
		fsys.EXPECT().MkdirAll("/config").Return(nil)
		fsys.EXPECT().WriteFile("/config/server-info.json", `{"key":"value"}`).Return(errors.New("disk full"))

		m := module{
			infofile:     "/config/server-info.json",
			fs:           fsys,
			logger:       zap.NewNop().Sugar(),
			fileContents: make(map[string]string),
		}
		err := m.UpdateField("key", "value")
		assert.ErrorContains(t, err, "creating info file")
	})
}

func TestProcessConfig(t *testing.T) {
	tests := []struct {
		name        string
		config      string
		want        string
		errorString string
	}{
		{
			name:   "valid configuration",
			config: "serverInfoFileName: custom.json",
			want:   "custom.json",
		},
		{
			name:   "missing key uses default",
			config: "otherKey: sample",
			want:   "server-info.json",
		},
		{
			name:        "empty value",
			config:      `serverInfoFileName: ""`,
			errorString: "missing field \"serverInfoFileName\" in config",
		},
		{
			name: "incorrectly formatted entry",
			config: `
serverInfoFileName:
  nested: value`,
			errorString: "getting config field \"serverInfoFileName\"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := processConfig(newConfigProvider(t, tt.config))
			if tt.errorString != "" {
				assert.ErrorContains(t, err, tt.errorString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func newConfigProvider(t *testing.T, yaml string) config.Provider {
	t.Helper()
	provider, err := config.NewYAML(config.Source(strings.NewReader(yaml)))
	require.NoError(t, err)
	return provider
}
