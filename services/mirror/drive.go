package mirror

import (
	"context"
	"fmt"
	"io"

	"github.com/tupelotree/contact-backend/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// DriveStore is the Google Drive implementation of RemoteStore. The mirror
// target is a single fixed file identified by its Drive file ID.
type DriveStore struct {
	svc    *drive.Service
	fileID string
}

// NewDriveStore builds a Drive client from the OAuth refresh-token
// credentials in the mirror configuration.
func NewDriveStore(ctx context.Context, cfg config.MirrorConfig) (*DriveStore, error) {
	oauthCfg := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{drive.DriveFileScope},
	}
	ts := oauthCfg.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken})

	svc, err := drive.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}

	return &DriveStore{svc: svc, fileID: cfg.FileID}, nil
}

// Download streams the remote file's media contents into w
func (d *DriveStore) Download(ctx context.Context, w io.Writer) error {
	resp, err := d.svc.Files.Get(d.fileID).Context(ctx).Download()
	if err != nil {
		return fmt.Errorf("download drive file %s: %w", d.fileID, err)
	}
	defer resp.Body.Close()

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("read drive file %s: %w", d.fileID, err)
	}
	return nil
}

// Upload replaces the remote file's contents with r in a single update call
func (d *DriveStore) Upload(ctx context.Context, r io.Reader) error {
	_, err := d.svc.Files.Update(d.fileID, &drive.File{}).
		Media(r).
		Fields("id").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("update drive file %s: %w", d.fileID, err)
	}
	return nil
}
