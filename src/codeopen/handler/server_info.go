package handler

import (
	"fmt"
	"os"
	"strconv"

	"github.com/code-open/code-open-server/src/codeopen/internal/serverinfofile"
)

const _outputKeyPID = "pid"

// Output the process ID so local tools can signal the running server.
// The listener adds its own bound address once the socket is open.
func outputProcessInfo(infofile serverinfofile.ServerInfoFile) error {
	if err := infofile.UpdateField(_outputKeyPID, strconv.Itoa(os.Getpid())); err != nil {
		return fmt.Errorf("outputting pid to info file: %w", err)
	}
	return nil
}
