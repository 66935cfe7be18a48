package main

import (
	"fmt"
	"os"
	"time"

	"github.com/tutostrucoscode/GymMetrics/internal/backup"
	"github.com/tutostrucoscode/GymMetrics/internal/gymstats/history"

	"github.com/spf13/cobra"
)

func backupCmd() *cobra.Command {
	var (
		credentialsFile string
		shareWith       string
		docsPerFile     int
	)

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Snapshot all history documents to Google Drive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if credentialsFile == "" {
				credentialsFile = os.Getenv("GYMMETRICS_GD_CREDS_FILE")
			}
			if credentialsFile == "" {
				return fmt.Errorf("google drive credentials json not specified, use --gd-creds or GYMMETRICS_GD_CREDS_FILE")
			}
			credentialsJson, err := os.ReadFile(credentialsFile)
			if err != nil {
				return fmt.Errorf("read credentials file: %w", err)
			}

			ctx := cmd.Context()
			driveClient, err := backup.NewDriveClient(ctx, credentialsJson)
			if err != nil {
				return err
			}
			driveClient.ShareWith = shareWith

			opened, _, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer opened.Close()

			service := backup.NewService(history.NewRepo(opened.Store), driveClient, nil, docsPerFile)
			result, err := service.DoBackup(ctx, time.Now())
			if err != nil {
				return err
			}

			fmt.Printf("backed up %d documents\n", result.Documents)
			for _, name := range result.Files {
				fmt.Println(" -", name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&credentialsFile, "gd-creds", "", "google drive service account credentials json")
	cmd.Flags().StringVar(&shareWith, "share-with", "", "email that gets read access to the backup files")
	cmd.Flags().IntVar(&docsPerFile, "docs-per-file", backup.DefaultDocsPerFile, "history documents in one backup file")
	return cmd
}
