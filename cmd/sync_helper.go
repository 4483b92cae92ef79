package cmd

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/nakachan-ing/lifeos-cli/internal/model"
	"github.com/nakachan-ing/lifeos-cli/internal/util"
)

func syncFilesWithS3(config model.Config, direction string, fileList []string) error {
	s3Client, err := util.NewS3Client(config)
	if err != nil {
		return fmt.Errorf("❌ Failed to initialize S3 client: %w", err)
	}

	for _, file := range fileList {
		localPath := filepath.Join(config.JsonDataDir, file)
		s3Key := util.DataS3Prefix + file

		if direction == "push" {
			if err := util.UploadToS3(s3Client, config.Sync.Bucket, localPath, s3Key); err != nil {
				return err
			}
		} else {
			if err := util.DownloadFromS3(s3Client, config.Sync.Bucket, s3Key, localPath); err != nil {
				return err
			}
		}
	}

	return nil
}

// SyncWithS3 mirrors the local data dir (cached plans, check-in log)
// against the configured bucket in the given direction.
func SyncWithS3(config model.Config, direction string) error {
	s3Client, err := util.NewS3Client(config)
	if err != nil {
		return fmt.Errorf("❌ Failed to initialize S3 client: %w", err)
	}

	metadataPath := filepath.Join(config.JsonDataDir, "metadata.json")

	if direction == "pull" {
		log.Println("🔄 Downloading metadata from S3...")

		remoteMetadata, err := util.DownloadMetadataFromS3(s3Client, config)
		if err != nil {
			return fmt.Errorf("❌ Failed to download metadata.json from S3: %w", err)
		}

		localMetadata, _ := util.LoadMetadata(metadataPath)

		fileList := util.DetectChanges(localMetadata, remoteMetadata, "s3")
		if len(fileList) == 0 {
			log.Println("✅ No changes detected. Everything is up-to-date.")
		} else {
			log.Println("🔄 Downloading changed files from S3...")
			if err := syncFilesWithS3(config, "pull", fileList); err != nil {
				return fmt.Errorf("❌ Sync failed: %w", err)
			}
		}

		log.Println("🔄 Saving updated metadata...")
		if err := util.SaveMetadata(metadataPath, remoteMetadata); err != nil {
			return fmt.Errorf("❌ Failed to save metadata.json: %w", err)
		}

		log.Println("✅ Sync completed successfully.")
		return nil

	} else if direction == "push" {
		log.Println("🔄 Generating metadata for push...")

		localMetadata, err := util.GenerateMetadata(config.JsonDataDir)
		if err != nil {
			return fmt.Errorf("❌ Failed to generate metadata.json: %w", err)
		}

		if err := util.SaveMetadata(metadataPath, localMetadata); err != nil {
			return fmt.Errorf("❌ Failed to save metadata.json: %w", err)
		}

		remoteMetadata, err := util.DownloadMetadataFromS3(s3Client, config)
		if err != nil {
			return fmt.Errorf("❌ Failed to download metadata.json from S3: %w", err)
		}

		fileList := util.DetectChanges(localMetadata, remoteMetadata, "local")
		if len(fileList) == 0 {
			log.Println("✅ No changes detected. Everything is up-to-date.")
		} else {
			log.Println("🔄 Uploading changed files to S3...")
			if err := syncFilesWithS3(config, "push", fileList); err != nil {
				return fmt.Errorf("❌ Sync failed: %w", err)
			}
		}

		log.Println("🔄 Uploading metadata to S3...")
		if err := util.UploadMetadataToS3(s3Client, config); err != nil {
			return fmt.Errorf("❌ Failed to upload metadata.json: %w", err)
		}

		log.Println("✅ Sync completed successfully.")
		return nil
	}
	return fmt.Errorf("❌ Unknown sync direction: %s", direction)
}

// ShowSyncStatus lists the files that a pull would update
func ShowSyncStatus(config model.Config) error {
	s3Client, err := util.NewS3Client(config)
	if err != nil {
		return fmt.Errorf("❌ Failed to initialize S3 client: %w", err)
	}

	localMetadata, _ := util.LoadMetadata(filepath.Join(config.JsonDataDir, "metadata.json"))

	remoteMetadata, err := util.DownloadMetadataFromS3(s3Client, config)
	if err != nil {
		return err
	}

	fileList := util.DetectChanges(localMetadata, remoteMetadata, "s3")

	log.Println("📌 Files to be updated from S3:")
	for _, file := range fileList {
		log.Println("   -", file)
	}

	return nil
}
