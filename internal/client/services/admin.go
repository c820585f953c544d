package services

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"

	"github.com/dmitrijs2005/bowlsignup/internal/client/client"
	"github.com/dmitrijs2005/bowlsignup/internal/common"
	"github.com/dmitrijs2005/bowlsignup/internal/filex"
	"github.com/dmitrijs2005/bowlsignup/internal/logging"
	"github.com/dmitrijs2005/bowlsignup/internal/netx"
)

// download is a seam for tests.
var download = netx.DownloadFromPresignedURL

// AdminService holds the admin list operations. Callers confirm destructive
// operations with the user first.
type AdminService struct {
	client    client.Client
	mirror    RecordSource
	exportDir string
	logger    logging.Logger
}

func NewAdminService(c client.Client, mirror RecordSource, exportDir string, logger logging.Logger) *AdminService {
	return &AdminService{
		client:    c,
		mirror:    mirror,
		exportDir: exportDir,
		logger:    logger.With("module", "admin"),
	}
}

// Delete removes one record by ID.
func (s *AdminService) Delete(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, id); err != nil {
		s.logger.Error(ctx, "delete failed", "id", id, "error", err)
		return fmt.Errorf("%w: %w", common.ErrRemoteWriteFailed, err)
	}
	return nil
}

// ClearAll deletes every record the mirror holds right now, as one atomic
// batch. Records added after the call starts are not included. An empty
// mirror makes no remote call.
func (s *AdminService) ClearAll(ctx context.Context) error {
	ids := s.mirror.IDs()
	if len(ids) == 0 {
		return nil
	}

	if err := s.client.BatchDelete(ctx, ids); err != nil {
		s.logger.Error(ctx, "clear failed", "count", len(ids), "error", err)
		return fmt.Errorf("%w: %w", common.ErrRemoteWriteFailed, err)
	}

	s.logger.Info(ctx, "list cleared", "count", len(ids))
	return nil
}

// Export asks the server for a CSV export and saves it under the export
// directory. It returns the local file path.
func (s *AdminService) Export(ctx context.Context) (string, error) {
	link, err := s.client.Export(ctx)
	if err != nil {
		return "", fmt.Errorf("export error: %w", err)
	}

	name := "bowlers.csv"
	if u, err := url.Parse(link); err == nil && path.Base(u.Path) != "/" && path.Base(u.Path) != "." {
		name = path.Base(u.Path)
	}

	f, err := filex.CreateInSubdir(s.exportDir, name)
	if err != nil {
		return "", err
	}

	n, err := download(ctx, link, f)
	closeErr := f.Close()
	if err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("download error: %w", err)
	}
	if closeErr != nil {
		return "", closeErr
	}

	s.logger.Info(ctx, "export saved", "path", f.Name(), "bytes", n)
	return f.Name(), nil
}
