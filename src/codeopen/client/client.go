// Package client sends requests to a running code-open server.
package client

import (
	"bufio"
	"context"
	"fmt"
	"net"

	"github.com/code-open/code-open-server/src/codeopen/entity"
	"github.com/code-open/code-open-server/src/codeopen/internal/envelope"
	"github.com/code-open/code-open-server/src/codeopen/internal/errors"
	"github.com/code-open/code-open-server/src/codeopen/internal/protocol"
	"go.uber.org/multierr"
)

// Send dials address, writes req as a single frame and closes the connection.
// The server sends no reply, so a nil error only means the frame was written.
func Send(ctx context.Context, address string, req protocol.Request) (err error) {
	if req == nil {
		return errors.New("no request to send")
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", address)
	if err != nil {
		return fmt.Errorf("dialing %s: %w", address, err)
	}
	defer func() {
		err = multierr.Append(err, conn.Close())
	}()

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetWriteDeadline(deadline); err != nil {
			return err
		}
	}

	w := bufio.NewWriter(conn)
	if err := envelope.Write(w, protocol.NewMessage(req)); err != nil {
		return fmt.Errorf("sending %s request: %w", req.Kind(), err)
	}
	return nil
}

// Open asks the server at address to open dir on host.
func Open(ctx context.Context, address, host, dir string) error {
	return Send(ctx, address, protocol.Open{Info: entity.NewCodeOpenInfo(host, dir)})
}
