// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the Client interface so the dataset
// publisher, the asset server and the integrity checks can be tested with
// core/storage/mocks. Both AWS S3 and self-hosted MinIO work.
//
// Datasets live under Config.Prefix (data/json by default), one object per
// {kind}.json file. ReadObject downloads a whole object and maps missing
// keys to ErrNotFound.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	data, err := storage.ReadObject(ctx, client, cfg.Storage.Bucket, cfg.Storage.ObjectKey("pokemon.json"))
package storage
