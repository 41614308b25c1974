package sftpfs

import (
	"context"
	"fmt"
	"io"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/pkg/sftp"
	gossh "golang.org/x/crypto/ssh"

	"github.com/Tom-Sloan/SSH-File-Browser-Appender/domain"
	"github.com/Tom-Sloan/SSH-File-Browser-Appender/logging"
	"github.com/Tom-Sloan/SSH-File-Browser-Appender/ports"
)

// DefaultPort is used when the host string carries no port
const DefaultPort = "22"

// dialTimeout bounds the TCP+handshake phase of Dial
const dialTimeout = 15 * time.Second

// Config holds the credentials for one remote backend
type Config struct {
	Host     string
	User     string
	Password string
}

// Backend browses a remote host over a single SFTP connection. Every call
// shares that connection, so calls are serialized behind callMu. Close does
// not take callMu: it tears down the transport directly, which makes an
// in-flight call return with an error instead of letting Close wait behind
// it.
type Backend struct {
	callMu sync.Mutex

	stateMu sync.Mutex
	ssh     *gossh.Client
	sftp    *sftp.Client
	closed  bool
}

// Dial connects to cfg.Host and opens an SFTP session over it. The returned
// error wraps the cause; callers decide whether to surface it as a
// *domain.ConnectionError.
func Dial(ctx context.Context, cfg Config) (*Backend, error) {
	addr := cfg.Host
	if !strings.Contains(addr, ":") {
		addr = net.JoinHostPort(addr, DefaultPort)
	}

	sshCfg := &gossh.ClientConfig{
		User: cfg.User,
		Auth: []gossh.AuthMethod{
			gossh.Password(cfg.Password),
		},
		// Host keys are not verified; a known-hosts file would break
		// browsing ad hoc lab machines.
		HostKeyCallback: gossh.InsecureIgnoreHostKey(),
		Timeout:         dialTimeout,
	}

	dialer := net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}

	sshConn, chans, reqs, err := gossh.NewClientConn(conn, addr, sshCfg)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("ssh handshake with %s: %w", addr, err)
	}
	sshClient := gossh.NewClient(sshConn, chans, reqs)

	sftpClient, err := sftp.NewClient(sshClient)
	if err != nil {
		sshClient.Close()
		return nil, fmt.Errorf("open sftp session on %s: %w", addr, err)
	}

	logging.Logger.Info("SFTP connection established", "host", addr, "user", cfg.User)
	return &Backend{ssh: sshClient, sftp: sftpClient}, nil
}

// client returns the live SFTP client or a ClosedError
func (b *Backend) client(op string) (*sftp.Client, error) {
	b.stateMu.Lock()
	defer b.stateMu.Unlock()
	if b.closed {
		return nil, &domain.ClosedError{Op: op}
	}
	return b.sftp, nil
}

// List implements ports.FileSystemBackend
func (b *Backend) List(ctx context.Context, path string) ([]ports.Entry, error) {
	b.callMu.Lock()
	defer b.callMu.Unlock()

	client, err := b.client("list")
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, domain.NewIOError(path, err)
	}

	infos, err := client.ReadDir(path)
	if err != nil {
		logging.Logger.Debug("Remote listing failed", "path", path, "error", err)
		return nil, domain.NewIOError(path, err)
	}

	entries := make([]ports.Entry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, ports.Entry{Name: info.Name(), IsDir: info.IsDir()})
	}
	return entries, nil
}

// IsDir implements ports.FileSystemBackend
func (b *Backend) IsDir(ctx context.Context, path string) (bool, error) {
	b.callMu.Lock()
	defer b.callMu.Unlock()

	client, err := b.client("stat")
	if err != nil {
		return false, err
	}
	if err := ctx.Err(); err != nil {
		return false, domain.NewIOError(path, err)
	}

	info, err := client.Lstat(path)
	if err != nil {
		return false, domain.NewIOError(path, err)
	}
	return info.IsDir(), nil
}

// ReadFile implements ports.FileSystemBackend. Content is returned exactly
// as stored; no line-ending or encoding conversion.
func (b *Backend) ReadFile(ctx context.Context, path string) ([]byte, error) {
	b.callMu.Lock()
	defer b.callMu.Unlock()

	client, err := b.client("read")
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, domain.NewIOError(path, err)
	}

	f, err := client.Open(path)
	if err != nil {
		logging.Logger.Debug("Remote open failed", "path", path, "error", err)
		return nil, domain.NewIOError(path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, domain.NewIOError(path, err)
	}
	return data, nil
}

// Join implements ports.FileSystemBackend using POSIX separators, which is
// what the SFTP protocol speaks regardless of the local OS.
func (b *Backend) Join(dir, name string) string {
	if dir == "/" {
		return "/" + name
	}
	return strings.TrimRight(dir, "/") + "/" + name
}

// Close implements ports.FileSystemBackend. Closing the SSH transport makes
// any in-flight call return promptly with a transport error; subsequent
// calls fail fast with *domain.ClosedError. Close is idempotent.
func (b *Backend) Close() error {
	b.stateMu.Lock()
	if b.closed {
		b.stateMu.Unlock()
		return nil
	}
	b.closed = true
	sftpClient, sshClient := b.sftp, b.ssh
	b.sftp, b.ssh = nil, nil
	b.stateMu.Unlock()

	var firstErr error
	if sftpClient != nil {
		if err := sftpClient.Close(); err != nil {
			firstErr = err
		}
	}
	if sshClient != nil {
		if err := sshClient.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	logging.Logger.Info("SFTP connection closed")
	return firstErr
}
