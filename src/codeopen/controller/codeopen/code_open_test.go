package codeopen

import (
	"context"
	"errors"
	"testing"

	"github.com/code-open/code-open-server/src/codeopen/entity"
	"github.com/code-open/code-open-server/src/codeopen/gateway/editor/editormock"
	"github.com/code-open/code-open-server/src/codeopen/repository/nametable"
	"github.com/code-open/code-open-server/src/codeopen/repository/nametable/nametablemock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestResolve(t *testing.T) {
	table := nametable.Table{
		"devbox-1234.internal.example.com": "devbox",
		"devbox":                           "devbox-alt",
		"10.0.0.5":                         "lab",
	}

	tests := []struct {
		name  string
		table nametable.Table
		info  entity.CodeOpenInfo
		want  entity.CodeOpenInfo
	}{
		{
			name:  "mapped host",
			table: table,
			info:  entity.NewCodeOpenInfo("devbox-1234.internal.example.com", "/home/dev/project"),
			want:  entity.NewCodeOpenInfo("devbox", "/home/dev/project"),
		},
		{
			name:  "unmapped host",
			table: table,
			info:  entity.NewCodeOpenInfo("other.example.com", "/srv"),
			want:  entity.NewCodeOpenInfo("other.example.com", "/srv"),
		},
		{
			name:  "alias is looked up again",
			table: table,
			info:  entity.NewCodeOpenInfo("devbox", "/srv"),
			want:  entity.NewCodeOpenInfo("devbox-alt", "/srv"),
		},
		{
			name:  "empty table",
			table: nametable.Table{},
			info:  entity.NewCodeOpenInfo("10.0.0.5", "/srv"),
			want:  entity.NewCodeOpenInfo("10.0.0.5", "/srv"),
		},
		{
			name:  "nil table",
			info:  entity.NewCodeOpenInfo("10.0.0.5", "/srv"),
			want:  entity.NewCodeOpenInfo("10.0.0.5", "/srv"),
		},
		{
			name:  "empty strings",
			table: table,
			info:  entity.NewCodeOpenInfo("", ""),
			want:  entity.NewCodeOpenInfo("", ""),
		},
		{
			name:  "path is not validated",
			table: table,
			info:  entity.NewCodeOpenInfo("10.0.0.5", "relative/../path with spaces"),
			want:  entity.NewCodeOpenInfo("lab", "relative/../path with spaces"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.info
			assert.Equal(t, tt.want, Resolve(tt.info, tt.table))
			assert.Equal(t, before, tt.info)
		})
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("opens resolved host", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		names := nametablemock.NewMockRepository(ctrl)
		gw := editormock.NewMockGateway(ctrl)
		c := New(Params{NameTable: names, Editor: gw, Logger: zap.NewNop().Sugar()})

		names.EXPECT().Table().Return(nametable.Table{"a.example": "a"})
		gw.EXPECT().Open(ctx, entity.NewCodeOpenInfo("a", "/x")).Return(nil)

		assert.NoError(t, c.Open(ctx, entity.NewCodeOpenInfo("a.example", "/x")))
	})

	t.Run("passes unknown host through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		names := nametablemock.NewMockRepository(ctrl)
		gw := editormock.NewMockGateway(ctrl)
		c := New(Params{NameTable: names, Editor: gw, Logger: zap.NewNop().Sugar()})

		names.EXPECT().Table().Return(nametable.Table{})
		gw.EXPECT().Open(ctx, entity.NewCodeOpenInfo("b.example", "/y")).Return(nil)

		assert.NoError(t, c.Open(ctx, entity.NewCodeOpenInfo("b.example", "/y")))
	})

	t.Run("editor error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		names := nametablemock.NewMockRepository(ctrl)
		gw := editormock.NewMockGateway(ctrl)
		c := New(Params{NameTable: names, Editor: gw, Logger: zap.NewNop().Sugar()})

		spawnErr := errors.New("spawn failed")
		names.EXPECT().Table().Return(nametable.Table{})
		gw.EXPECT().Open(ctx, gomock.Any()).Return(spawnErr)

		assert.ErrorIs(t, c.Open(ctx, entity.NewCodeOpenInfo("b.example", "/y")), spawnErr)
	})
}
