package backup

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

const folderMimeType = "application/vnd.google-apps.folder"

// DriveClient is the part of the Google Drive API the backup needs.
type DriveClient struct {
	service *drive.Service
	// ShareWith, when set, gets read access to everything the client creates.
	ShareWith string
}

func NewDriveClient(ctx context.Context, credentialsJson []byte) (*DriveClient, error) {
	creds, err := google.CredentialsFromJSON(ctx, credentialsJson, drive.DriveScope)
	if err != nil {
		return nil, fmt.Errorf("read drive credentials: %w", err)
	}

	// drive calls (and token refreshes) are traced through the base transport
	tracedCtx := context.WithValue(ctx, oauth2.HTTPClient, &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	})
	httpClient := oauth2.NewClient(tracedCtx, creds.TokenSource)

	driveService, err := drive.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve drive client: %w", err)
	}
	return &DriveClient{
		service: driveService,
	}, nil
}

// FindFolder returns the id of a non-trashed folder called name. With several
// matches the first one wins.
func (c *DriveClient) FindFolder(ctx context.Context, name string) (string, bool, error) {
	query := fmt.Sprintf("mimeType = '%s' and trashed = false and name = '%s'", folderMimeType, name)
	folders, err := c.service.
		Files.List().
		Q(query).
		Fields("files(id, name)").
		Context(ctx).
		Do()
	if err != nil {
		return "", false, fmt.Errorf("list folders: %w", err)
	}
	if len(folders.Files) == 0 {
		return "", false, nil
	}
	return folders.Files[0].Id, true, nil
}

func (c *DriveClient) CreateFolder(ctx context.Context, name string) (string, error) {
	folder, err := c.service.
		Files.Create(&drive.File{
			Name:     name,
			MimeType: folderMimeType,
		}).
		Fields("id").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("create folder %s: %w", name, err)
	}

	if err := c.share(ctx, folder.Id); err != nil {
		return folder.Id, err
	}
	return folder.Id, nil
}

func (c *DriveClient) ListFiles(ctx context.Context, folderID string) ([]File, error) {
	query := fmt.Sprintf("'%s' in parents and mimeType != '%s' and trashed = false", folderID, folderMimeType)
	list, err := c.service.
		Files.List().
		Q(query).
		Fields("files(id, name, createdTime)").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("list backup files: %w", err)
	}

	files := make([]File, 0, len(list.Files))
	for _, f := range list.Files {
		// zero when drive sends no parsable creation time
		createdAt, _ := time.Parse(time.RFC3339, f.CreatedTime)
		files = append(files, File{ID: f.Id, Name: f.Name, CreatedAt: createdAt})
	}
	return files, nil
}

func (c *DriveClient) Upload(ctx context.Context, folderID, name string, body []byte) (string, error) {
	file, err := c.service.
		Files.Create(&drive.File{
			Name:     name,
			MimeType: "application/json",
			Parents:  []string{folderID},
		}).
		Fields("id, parents").
		Media(bytes.NewReader(body)).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", name, err)
	}

	if err := c.share(ctx, file.Id); err != nil {
		return file.Id, err
	}
	return file.Id, nil
}

func (c *DriveClient) share(ctx context.Context, fileID string) error {
	if c.ShareWith == "" {
		return nil
	}
	if _, err := c.service.Permissions.
		Create(fileID, &drive.Permission{
			EmailAddress: c.ShareWith,
			Type:         "user",
			Role:         "reader",
		}).
		Context(ctx).
		Do(); err != nil {
		return fmt.Errorf("share %s with %s: %w", fileID, c.ShareWith, err)
	}
	return nil
}
