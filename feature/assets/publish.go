package assets

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"dex-viewer/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// PublishReport lists the keys written and removed by Publish.
type PublishReport struct {
	Uploaded []string `json:"uploaded"`
	Removed  []string `json:"removed"`
}

// Publish uploads every *.json file of dir under prefix. With prune, JSON
// objects under prefix without a local counterpart are removed.
func Publish(ctx context.Context, client storage.Client, cfg storage.Config, dir string, prune bool, logger *zap.Logger) (*PublishReport, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	if err := storage.EnsureBucket(ctx, client, cfg.Bucket, cfg.Region); err != nil {
		return nil, err
	}

	report := &PublishReport{Uploaded: []string{}, Removed: []string{}}
	local := make(map[string]struct{})

	for _, e := range entries {
		if e.IsDir() || !fileName.MatchString(e.Name()) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return report, fmt.Errorf("read %s: %w", e.Name(), err)
		}

		key := cfg.ObjectKey(e.Name())
		_, err = client.PutObject(ctx, cfg.Bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
			ContentType:  "application/json",
			CacheControl: CacheControl,
		})
		if err != nil {
			return report, fmt.Errorf("upload %s: %w", key, err)
		}
		logger.Info("Uploaded dataset", zap.String("key", key), zap.Int("bytes", len(data)))
		local[key] = struct{}{}
		report.Uploaded = append(report.Uploaded, key)
	}

	if !prune {
		return report, nil
	}

	prefix := strings.Trim(cfg.Prefix, "/")
	if prefix != "" {
		prefix += "/"
	}
	for obj := range client.ListObjects(ctx, cfg.Bucket, minio.ListObjectsOptions{Prefix: prefix}) {
		if obj.Err != nil {
			return report, fmt.Errorf("list %s: %w", prefix, obj.Err)
		}
		if !strings.HasSuffix(obj.Key, ".json") {
			continue
		}
		if _, ok := local[obj.Key]; ok {
			continue
		}
		if err := client.RemoveObject(ctx, cfg.Bucket, obj.Key, minio.RemoveObjectOptions{}); err != nil {
			return report, fmt.Errorf("remove %s: %w", obj.Key, err)
		}
		logger.Info("Removed stale dataset", zap.String("key", obj.Key))
		report.Removed = append(report.Removed, obj.Key)
	}
	sort.Strings(report.Removed)
	return report, nil
}
