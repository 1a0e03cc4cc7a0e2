package checks

import (
	"context"
	"fmt"

	"dex-viewer/core/catalog"
	"dex-viewer/core/storage"

	"github.com/minio/minio-go/v7"
)

// RequiredDatasets lists the dataset files that must exist under the prefix.
func RequiredDatasets() []string {
	files := make([]string, 0, len(catalog.Kinds))
	for _, kind := range catalog.Kinds {
		files = append(files, kind+".json")
	}
	return files
}

// CheckDatasets returns the dataset files missing from the bucket.
func CheckDatasets(ctx context.Context, client storage.Client, bucket, prefix string) ([]string, error) {
	missing := []string{}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	for _, name := range RequiredDatasets() {
		key := storage.ObjectKey(prefix, name)
		_, err := client.StatObject(ctx, bucket, key, minio.StatObjectOptions{})
		if storage.IsNotFound(err) {
			missing = append(missing, name)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", key, err)
		}
	}

	return missing, nil
}
