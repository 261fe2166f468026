package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"github.com/voltworks/inventory-engine/internal/config"
	"github.com/voltworks/inventory-engine/internal/drive"
	"github.com/voltworks/inventory-engine/internal/storage"
)

func newDBURLFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "db-url",
		Usage:    "Database connection string",
		Required: true,
		EnvVars:  []string{"DATABASE_URL"},
	}
}

func newDataDirFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "data-dir",
		Usage:   "Directory containing snapshot CSV tables",
		Value:   "./data/tables",
		EnvVars: []string{"DATA_DIR"},
	}
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env file: %v", err)
	}

	app := &cli.App{
		Name:  "ingest",
		Usage: "Fetch, validate and seed inventory snapshot tables",
		Commands: []*cli.Command{
			{
				Name:  "fetch",
				Usage: "Download snapshot CSV tables from a remote source",
				Flags: []cli.Flag{
					newDataDirFlag(),
					&cli.StringFlag{
						Name:  "source",
						Usage: "Remote source to fetch from (drive or s3)",
						Value: "s3",
					},
				},
				Action: runFetch,
			},
			{
				Name:  "validate",
				Usage: "Load snapshot CSV tables and report what the engine sees",
				Flags: []cli.Flag{
					newDataDirFlag(),
					&cli.StringFlag{
						Name:    "bom-file",
						Usage:   "Bill of materials CSV file",
						Value:   "./data/tables/boms.csv",
						EnvVars: []string{"DATA_BOM_FILE"},
					},
				},
				Action: runValidate,
			},
			{
				Name:  "seed",
				Usage: "Seed a Postgres database from snapshot CSV tables",
				Flags: []cli.Flag{
					newDBURLFlag(),
					newDataDirFlag(),
				},
				Action: runSeed,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runFetch(c *cli.Context) error {
	cfg := config.Load()
	destDir := c.String("data-dir")
	ctx := c.Context

	switch c.String("source") {
	case "drive":
		svc, err := drive.NewService(cfg.Drive.CredentialsJSON)
		if err != nil {
			return fmt.Errorf("failed to initialize drive client: %w", err)
		}
		files, err := drive.NewFetcher(svc).FetchSnapshot(ctx, drive.FetchOptions{
			FolderPath:  cfg.Drive.FolderPath,
			DownloadDir: destDir,
		})
		if err != nil {
			return err
		}
		log.Printf("Downloaded %d files from drive to %s", len(files), destDir)
		return nil
	case "s3":
		client, err := storage.NewMinioClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to initialize object storage client: %w", err)
		}
		files, err := storage.FetchSnapshotDir(ctx, client, cfg.Storage.Prefix, destDir)
		if err != nil {
			return err
		}
		log.Printf("Downloaded %d objects to %s", len(files), destDir)
		return nil
	default:
		return fmt.Errorf("unknown source %q (want drive or s3)", c.String("source"))
	}
}
