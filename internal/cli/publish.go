package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/hasib2k/portfolio/internal/publish"
)

// NewPublishCmd creates the publish command.
func NewPublishCmd() *cobra.Command {
	var (
		bucket   string
		prefix   string
		endpoint string
		region   string
		manifest string
		force    bool
		list     bool
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Upload the rendered site to an S3-compatible bucket",
		Long: `Render every page and upload the pages whose content changed since the last publish.

With --list nothing is uploaded; the objects recorded for the destination are printed instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			pc := cfg.Publish
			if bucket != "" {
				pc.Bucket = bucket
			}
			if prefix != "" {
				pc.Prefix = prefix
			}
			if endpoint != "" {
				pc.Endpoint = endpoint
			}
			if region != "" {
				pc.Region = region
			}
			if manifest != "" {
				pc.ManifestDB = manifest
			}
			if pc.Bucket == "" {
				return errors.New("bucket is required (--bucket or PORTFOLIO_PUBLISH_BUCKET)")
			}

			ctx := cmd.Context()

			uploader, err := publish.NewS3Uploader(ctx, publish.S3Options{
				Bucket:    pc.Bucket,
				Prefix:    pc.Prefix,
				Region:    pc.Region,
				Endpoint:  pc.Endpoint,
				AccessKey: pc.AccessKey,
				SecretKey: pc.SecretKey,
			})
			if err != nil {
				return err
			}

			m, err := publish.OpenManifest(pc.ManifestDB)
			if err != nil {
				return err
			}
			defer m.Close()

			if list {
				entries, err := m.List(ctx, uploader.Destination())
				if err != nil {
					return err
				}
				return printEntries(cmd.OutOrStdout(), entries)
			}

			files, err := publish.Site(cfg.Site.BaseURL)
			if err != nil {
				return err
			}

			result, err := publish.NewPublisher(uploader, m).Publish(ctx, files, force)
			if err != nil {
				return fmt.Errorf("publish failed: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", "", "target bucket")
	cmd.Flags().StringVar(&prefix, "prefix", "", "key prefix inside the bucket")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "S3-compatible endpoint URL")
	cmd.Flags().StringVar(&region, "region", "", "bucket region (default us-east-1)")
	cmd.Flags().StringVar(&manifest, "manifest", "", "publish manifest database path")
	cmd.Flags().BoolVar(&force, "force", false, "upload every page even when unchanged")
	cmd.Flags().BoolVar(&list, "list", false, "print the published objects recorded for the destination")

	return cmd
}

func printEntries(w io.Writer, entries []publish.Entry) error {
	if len(entries) == 0 {
		fmt.Fprintln(w, "Nothing published yet.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("Key", "Checksum", "Size", "Run", "Published")
	for _, e := range entries {
		table.Append(e.Key, e.Checksum[:12], strconv.FormatInt(e.Size, 10), e.RunID, e.PublishedAt.UTC().Format(time.RFC3339))
	}
	return table.Render()
}
