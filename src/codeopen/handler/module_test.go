package handler

import (
	"context"
	"testing"

	ctrlcodeopen "github.com/code-open/code-open-server/src/codeopen/controller/codeopen"
	"github.com/code-open/code-open-server/src/codeopen/entity"
	"github.com/code-open/code-open-server/src/codeopen/gateway/editor"
	"github.com/code-open/code-open-server/src/codeopen/gateway/editor/editormock"
	"github.com/code-open/code-open-server/src/codeopen/internal/listener"
	"github.com/code-open/code-open-server/src/codeopen/internal/listener/listenermock"
	"github.com/code-open/code-open-server/src/codeopen/internal/protocol"
	"github.com/code-open/code-open-server/src/codeopen/internal/serverinfofile"
	"github.com/code-open/code-open-server/src/codeopen/internal/serverinfofile/serverinfofilemock"
	"github.com/code-open/code-open-server/src/codeopen/repository/nametable"
	"github.com/code-open/code-open-server/src/codeopen/repository/nametable/nametablemock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tally "github.com/uber-go/tally/v4"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestModule(t *testing.T) {
	ctrl := gomock.NewController(t)
	l := listenermock.NewMockListener(ctrl)
	infofile := serverinfofilemock.NewMockServerInfoFile(ctrl)
	names := nametablemock.NewMockRepository(ctrl)
	gw := editormock.NewMockGateway(ctrl)

	var registered listener.Handler
	l.EXPECT().RegisterHandler(gomock.Any()).DoAndReturn(func(h listener.Handler) error {
		registered = h
		return nil
	})
	infofile.EXPECT().UpdateField("pid", gomock.Any()).Return(nil)

	var c ctrlcodeopen.Controller
	app := fxtest.New(t,
		fx.Provide(
			func() listener.Listener { return l },
			func() serverinfofile.ServerInfoFile { return infofile },
			func() nametable.Repository { return names },
			func() editor.Gateway { return gw },
			func() tally.Scope { return tally.NoopScope },
			func() *zap.SugaredLogger { return zap.NewNop().Sugar() },
		),
		Module,
		fx.Populate(&c),
	)
	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, registered)
	assert.NotNil(t, c)

	names.EXPECT().Table().Return(nametable.Table{"devbox-1234.internal": "devbox"})
	gw.EXPECT().Open(gomock.Any(), entity.NewCodeOpenInfo("devbox", "/srv")).Return(nil)
	assert.NoError(t, registered.HandleRequest(context.Background(),
		protocol.Open{Info: entity.NewCodeOpenInfo("devbox-1234.internal", "/srv")}))
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
