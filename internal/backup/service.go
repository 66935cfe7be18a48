// Package backup snapshots history documents to Google Drive.
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/tutostrucoscode/GymMetrics/internal/gymstats/history"
	"github.com/tutostrucoscode/GymMetrics/internal/telemetry/metrics"
	"github.com/tutostrucoscode/GymMetrics/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	RootFolderName        = "gymmetrics-history-backup"
	DefaultDocsPerFile    = 200
	backupFileNamePattern = "history-%d-%d-%d"
)

type File struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=backup_test

type historySource interface {
	All(ctx context.Context) (map[string]history.Document, error)
}

type fileStore interface {
	FindFolder(ctx context.Context, name string) (string, bool, error)
	CreateFolder(ctx context.Context, name string) (string, error)
	ListFiles(ctx context.Context, folderID string) ([]File, error)
	Upload(ctx context.Context, folderID, name string, body []byte) (string, error)
}

type Result struct {
	Documents int
	Files     []string
}

// Service writes full snapshots of the history collection. History documents are
// rewritten on every commit, so each run stores all of them again.
type Service struct {
	history        historySource
	files          fileStore
	metricsManager *metrics.Manager
	docsPerFile    int
}

func NewService(history historySource, files fileStore, metricsManager *metrics.Manager, docsPerFile int) *Service {
	if docsPerFile <= 0 {
		docsPerFile = DefaultDocsPerFile
	}
	return &Service{
		history:        history,
		files:          files,
		metricsManager: metricsManager,
		docsPerFile:    docsPerFile,
	}
}

func (s *Service) DoBackup(ctx context.Context, baseTime time.Time) (_ Result, err error) {
	ctx, span := tracing.GlobalBackupTracer.Start(ctx, "backup.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if s.metricsManager != nil {
		defer func(begin time.Time) {
			s.metricsManager.HistBackupDuration.Observe(time.Since(begin).Seconds())
		}(time.Now())
	}

	folderID, err := s.rootFolder(ctx)
	if err != nil {
		return Result{}, err
	}

	docs, err := s.history.All(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("read history: %w", err)
	}
	if len(docs) == 0 {
		log.Infoln("no history documents to back up, done")
		return Result{}, nil
	}
	span.SetAttributes(attribute.Int("documents", len(docs)))

	existing, err := s.files.ListFiles(ctx, folderID)
	if err != nil {
		return Result{}, err
	}
	baseName := nextBaseName(baseTime, existing)

	keys := make([]string, 0, len(docs))
	for key := range docs {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	result := Result{Documents: len(docs)}
	for i, chunk := 1, keys; len(chunk) > 0; i++ {
		n := min(s.docsPerFile, len(chunk))
		part := make(map[string]history.Document, n)
		for _, key := range chunk[:n] {
			part[key] = docs[key]
		}
		chunk = chunk[n:]

		body, err := json.Marshal(part)
		if err != nil {
			return result, fmt.Errorf("marshal backup chunk %d: %w", i, err)
		}

		name := fmt.Sprintf("%s_%d.json", baseName, i)
		fileID, err := s.files.Upload(ctx, folderID, name, body)
		if err != nil {
			return result, err
		}
		log.Debugf("backup file [%s] with %d documents saved: %s", name, n, fileID)
		result.Files = append(result.Files, name)
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterHistoryBackups.Add(float64(result.Documents))
	}
	log.Infof("backed up %d history documents in %d files", result.Documents, len(result.Files))

	return result, nil
}

func (s *Service) rootFolder(ctx context.Context) (string, error) {
	folderID, found, err := s.files.FindFolder(ctx, RootFolderName)
	if err != nil {
		return "", err
	}
	if found {
		return folderID, nil
	}

	log.Infoln("root backups folder not found, creating ...")
	return s.files.CreateFolder(ctx, RootFolderName)
}

// nextBaseName names the snapshot after baseTime, adding a counter when a snapshot
// of the same day exists.
func nextBaseName(baseTime time.Time, existing []File) string {
	base := fmt.Sprintf(backupFileNamePattern, baseTime.Day(), baseTime.Month(), baseTime.Year())
	taken := func(name string) bool {
		return slices.ContainsFunc(existing, func(f File) bool {
			return f.Name == name+"_1.json"
		})
	}

	name := base
	for counter := 2; taken(name); counter++ {
		name = fmt.Sprintf("%s-%d", base, counter)
	}
	return name
}
