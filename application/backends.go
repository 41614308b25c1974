package application

import (
	"context"

	"github.com/Tom-Sloan/SSH-File-Browser-Appender/adapters/localfs"
	"github.com/Tom-Sloan/SSH-File-Browser-Appender/adapters/sftpfs"
	"github.com/Tom-Sloan/SSH-File-Browser-Appender/ports"
	"github.com/Tom-Sloan/SSH-File-Browser-Appender/ui"
)

// BackendFor turns the connect form's result into a backend factory. This is
// the only place that decides between the local and the SFTP provider;
// everything past the factory sees ports.FileSystemBackend.
func BackendFor(result ui.ConnectResult) ports.BackendFactory {
	if result.Mode == ui.ModeLocal {
		return func(ctx context.Context) (ports.FileSystemBackend, error) {
			return localfs.New(), nil
		}
	}

	cfg := sftpfs.Config{
		Host:     result.Host,
		User:     result.User,
		Password: result.Password,
	}
	return func(ctx context.Context) (ports.FileSystemBackend, error) {
		backend, err := sftpfs.Dial(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return backend, nil
	}
}
