package entity

import (
	"net"
	"strconv"
)

// CodeOpenInfo identifies a directory on a remote host to be opened in the editor.
// Values are never mutated; use WithRemoteHostName to derive a new one.
type CodeOpenInfo struct {
	RemoteHostName    string `json:"remote_host_name"`
	RemoteDirFullPath string `json:"remote_dir_full_path"`
}

// NewCodeOpenInfo builds a CodeOpenInfo.
func NewCodeOpenInfo(remoteHostName, remoteDirFullPath string) CodeOpenInfo {
	return CodeOpenInfo{
		RemoteHostName:    remoteHostName,
		RemoteDirFullPath: remoteDirFullPath,
	}
}

// WithRemoteHostName returns a copy of the info addressed to a different host.
func (i CodeOpenInfo) WithRemoteHostName(remoteHostName string) CodeOpenInfo {
	return NewCodeOpenInfo(remoteHostName, i.RemoteDirFullPath)
}

// CodeOpenConfig is the address the server listens on.
type CodeOpenConfig struct {
	IP   string `yaml:"ip"`
	Port uint16 `yaml:"port"`
}

// Address joins IP and Port into a dialable host:port string.
func (c CodeOpenConfig) Address() string {
	return net.JoinHostPort(c.IP, strconv.Itoa(int(c.Port)))
}

// NameMapping is one row of the name table: an actual remote host name and the local alias it resolves to.
type NameMapping struct {
	Actual string
	Alias  string
}

// String formats the mapping the way it is printed at startup.
func (m NameMapping) String() string {
	return m.Actual + " -> " + m.Alias
}
