package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	getter "github.com/hashicorp/go-getter"
)

// Fetch downloads a template pack from src into dst. src is any go-getter
// source: a local path, git::, http(s), s3:: or gcs::, optionally with a
// //subdir suffix. The pack is downloaded next to dst and only replaces it
// once the download succeeded; a failed fetch leaves dst as it was.
func Fetch(ctx context.Context, src, dst string) error {
	if src == "" || dst == "" {
		return fmt.Errorf("fetch: source and destination required")
	}
	dst = filepath.Clean(dst)
	parent := filepath.Dir(dst)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return fmt.Errorf("fetch: %w", err)
	}
	tmp, err := os.MkdirTemp(parent, "."+filepath.Base(dst)+"-fetch-")
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}
	defer os.RemoveAll(tmp)

	pwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}
	staged := filepath.Join(tmp, "new")
	client := &getter.Client{
		Ctx:  ctx,
		Src:  src,
		Dst:  staged,
		Pwd:  pwd,
		Mode: getter.ClientModeAny,
	}
	if err := client.Get(); err != nil {
		return fmt.Errorf("fetch %s: %w", src, err)
	}
	return replace(dst, staged, filepath.Join(tmp, "old"))
}

// replace moves staged to dst, parking a previous dst at old until the move
// succeeded.
func replace(dst, staged, old string) error {
	_, err := os.Lstat(dst)
	switch {
	case os.IsNotExist(err):
		if err := os.Rename(staged, dst); err != nil {
			return fmt.Errorf("fetch: install %s: %w", dst, err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("fetch: %w", err)
	}
	if err := os.Rename(dst, old); err != nil {
		return fmt.Errorf("fetch: replace %s: %w", dst, err)
	}
	if err := os.Rename(staged, dst); err != nil {
		if rerr := os.Rename(old, dst); rerr != nil {
			return fmt.Errorf("fetch: install %s: %w (restore: %v)", dst, err, rerr)
		}
		return fmt.Errorf("fetch: install %s: %w", dst, err)
	}
	return nil
}

// FetchAndLoad fetches src into dst and loads the manifest at its root.
func FetchAndLoad(ctx context.Context, src, dst string) (*Catalog, error) {
	if err := Fetch(ctx, src, dst); err != nil {
		return nil, err
	}
	return Load(os.DirFS(dst), DefaultManifest)
}
