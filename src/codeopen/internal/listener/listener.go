// Package listener accepts framed requests over TCP and hands them to the registered Handler.
//
// Connections are served strictly one after another: a connection is read, decoded and
// dispatched to completion before the next one is accepted. A failure on one connection is
// logged and counted, and the listener keeps accepting.
package listener

import (
	"context"
	stderr "errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/code-open/code-open-server/src/codeopen/entity"
	"github.com/code-open/code-open-server/src/codeopen/internal/clock"
	"github.com/code-open/code-open-server/src/codeopen/internal/envelope"
	"github.com/code-open/code-open-server/src/codeopen/internal/errors"
	"github.com/code-open/code-open-server/src/codeopen/internal/protocol"
	"github.com/code-open/code-open-server/src/codeopen/internal/serverinfofile"
	"github.com/gofrs/uuid"
	tally "github.com/uber-go/tally/v4"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	_configKeyServer = "server"
	_outputKey       = "address"

	_acceptBackoff = 100 * time.Millisecond
)

// Module is an fx module serving code-open requests.
var Module = fx.Provide(New)

// Listener binds the server socket and serves one request per connection.
type Listener interface {
	OnStart(ctx context.Context) error
	OnStop(ctx context.Context) error
	ServeConn(ctx context.Context, conn net.Conn) error
	RegisterHandler(handler Handler) error
	// Addr is the bound address, nil before start.
	Addr() net.Addr
}

// Handler processes one decoded request.
type Handler interface {
	HandleRequest(ctx context.Context, req protocol.Request) error
}

type serverConfig struct {
	entity.CodeOpenConfig `yaml:",inline"`

	ReadTimeout  time.Duration `yaml:"readTimeout"`
	MaxFrameSize uint64        `yaml:"maxFrameSize"`
}

type module struct {
	cfg serverConfig

	mu      sync.Mutex
	handler Handler
	ln      net.Listener
	done    chan struct{}

	clock          clock.Clock
	logger         *zap.SugaredLogger
	serverInfoFile serverinfofile.ServerInfoFile
	stats          tally.Scope
}

// Params define values to be used by Listener.
type Params struct {
	fx.In

	Config         config.Provider
	Lifecycle      fx.Lifecycle
	Logger         *zap.SugaredLogger
	ServerInfoFile serverinfofile.ServerInfoFile
	Clock          clock.Clock
	Stats          tally.Scope
}

// New creates a listener for the configured address. The socket is bound when the app starts.
func New(p Params) (Listener, error) {
	if p.Lifecycle == nil || p.Config == nil {
		return nil, errors.New("required parameters are missing")
	}

	m := &module{
		clock:          p.Clock,
		logger:         p.Logger,
		serverInfoFile: p.ServerInfoFile,
		stats:          p.Stats,
	}

	if err := m.processConfig(p.Config); err != nil {
		return nil, err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: m.OnStart,
		OnStop:  m.OnStop,
	})

	return m, nil
}

// OnStart binds the socket, publishes the bound address and starts the accept loop.
func (m *module) OnStart(ctx context.Context) error {
	address := m.cfg.Address()
	ln, err := net.Listen("tcp", address)
	if err != nil {
		return &errors.BindError{Address: address, Err: err}
	}

	if err := m.serverInfoFile.UpdateField(_outputKey, ln.Addr().String()); err != nil {
		return multierr.Append(err, ln.Close())
	}

	m.mu.Lock()
	m.ln = ln
	m.done = make(chan struct{})
	m.mu.Unlock()

	m.logger.Infow("listening", zap.Stringer("address", ln.Addr()))
	go m.serve(ln, m.done)
	return nil
}

// OnStop closes the socket and waits for the connection being served to finish.
func (m *module) OnStop(ctx context.Context) error {
	m.mu.Lock()
	ln, done := m.ln, m.done
	m.mu.Unlock()

	if ln == nil {
		return nil
	}

	var err error
	if cerr := ln.Close(); cerr != nil && !stderr.Is(cerr, net.ErrClosed) {
		err = multierr.Append(err, fmt.Errorf("closing listener: %w", cerr))
	}

	select {
	case <-done:
	case <-ctx.Done():
		err = multierr.Append(err, fmt.Errorf("waiting for accept loop: %w", ctx.Err()))
	}
	return err
}

func (m *module) Addr() net.Addr {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ln == nil {
		return nil
	}
	return m.ln.Addr()
}

// RegisterHandler sets the Handler requests are dispatched to.
func (m *module) RegisterHandler(handler Handler) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.handler != nil {
		return errors.New("cannot register a duplicate request handler")
	}
	m.handler = handler
	return nil
}

func (m *module) serve(ln net.Listener, done chan<- struct{}) {
	defer close(done)

	for {
		conn, err := ln.Accept()
		if err != nil {
			if stderr.Is(err, net.ErrClosed) {
				m.logger.Info("listener closed")
				return
			}
			m.logger.Warnw("accept failed", zap.Error(err))
			m.clock.Sleep(_acceptBackoff)
			continue
		}

		// Failures are logged and counted by ServeConn.
		_ = m.ServeConn(context.Background(), conn)
	}
}

// ServeConn reads one framed request from conn, dispatches it and closes conn.
func (m *module) ServeConn(ctx context.Context, conn net.Conn) (err error) {
	id, uerr := uuid.NewV4()
	if uerr != nil {
		id = uuid.Nil
	}
	logger := m.logger.With(zap.Stringer("connection", id), zap.Stringer("remote", conn.RemoteAddr()))
	m.stats.Counter("requests").Inc(1)

	defer func() {
		if cerr := conn.Close(); cerr != nil {
			logger.Debugw("closing connection", zap.Error(cerr))
		}
		if err != nil {
			stage := errors.Stage(err)
			logger.Errorw("request failed", zap.String("stage", stage), zap.Error(err))
			m.stats.Tagged(map[string]string{"stage": stage}).Counter("request_errors").Inc(1)
		}
	}()

	if m.cfg.ReadTimeout > 0 {
		if err := conn.SetReadDeadline(m.clock.Now().Add(m.cfg.ReadTimeout)); err != nil {
			return &errors.FramingError{Err: err}
		}
	}

	c, err := envelope.ReadWithLimit(conn, m.cfg.MaxFrameSize)
	if err != nil {
		return err
	}

	msg, err := envelope.Decode[protocol.Message](c)
	if err != nil {
		return err
	}
	if msg.Request == nil {
		return &errors.DecodeError{Type: "protocol.Message", Err: errors.New("message has no request")}
	}
	logger.Infow("request received", zap.String("kind", string(msg.Request.Kind())))

	m.mu.Lock()
	handler := m.handler
	m.mu.Unlock()
	if handler == nil {
		return errors.NoHandlerError
	}

	return handler.HandleRequest(ctx, msg.Request)
}

// processConfig will parse the configuration for any values required by this module.
func (m *module) processConfig(cfg config.Provider) error {
	for _, key := range []string{"server.ip", "server.port"} {
		if !cfg.Get(key).HasValue() {
			return fmt.Errorf("missing field %q in config", key)
		}
	}

	if err := cfg.Get(_configKeyServer).Populate(&m.cfg); err != nil {
		// incorrectly formatted config
		return fmt.Errorf("getting config field %q: %w", _configKeyServer, err)
	}

	if m.cfg.IP == "" {
		return fmt.Errorf("missing field %q in config", "server.ip")
	}
	if m.cfg.MaxFrameSize == 0 {
		m.cfg.MaxFrameSize = envelope.DefaultMaxPayloadSize
	}
	if m.cfg.ReadTimeout < 0 {
		return fmt.Errorf("config field %q must not be negative", "server.readTimeout")
	}

	return nil
}
