package corpindex

import (
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectStoreConfig points at a corp-code XML object in S3-compatible
// storage, for deployments that do not bake the file into the image.
type ObjectStoreConfig struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	Object    string
	UseSSL    bool
}

// Enabled reports whether an object-store source is configured at all.
func (c ObjectStoreConfig) Enabled() bool {
	return strings.TrimSpace(c.Endpoint) != ""
}

// LoadFromObjectStore downloads the corp-code XML and parses it.
func LoadFromObjectStore(ctx context.Context, cfg ObjectStoreConfig) (*Index, error) {
	if strings.TrimSpace(cfg.Bucket) == "" || strings.TrimSpace(cfg.Object) == "" {
		return nil, fmt.Errorf("corpindex: object store bucket and object are required")
	}
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("corpindex: init object store: %w", err)
	}
	obj, err := client.GetObject(ctx, cfg.Bucket, cfg.Object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("corpindex: fetch %s/%s: %w", cfg.Bucket, cfg.Object, err)
	}
	defer obj.Close()
	return Parse(obj)
}
