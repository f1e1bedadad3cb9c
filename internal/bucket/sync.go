// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package bucket

import (
	"context"
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/sitectl/sitectl/internal/log"
)

// Stats summarizes a sync run.
type Stats struct {
	Uploaded int
	Deleted  int
	Bytes    uint64
}

// Sync mirrors the local directory into the bucket: every local file is
// uploaded under its relative path, and every remote key with no local
// counterpart is deleted. The result is that remote state equals local
// state.
func Sync(ctx context.Context, api API, name, dir string) (Stats, error) {
	var stats Stats

	local := make(map[string]bool)

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		local[key] = true

		info, err := d.Info()
		if err != nil {
			return err
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		if err := api.Put(ctx, name, key, contentType(key), f); err != nil {
			return fmt.Errorf("failed to upload %s: %w", key, err)
		}

		stats.Uploaded++
		stats.Bytes += uint64(info.Size())
		log.Debugf("uploaded: key=%s, size=%s", key, humanize.Bytes(uint64(info.Size())))
		return nil
	})
	if err != nil {
		return stats, err
	}

	remote, err := api.ListKeys(ctx, name)
	if err != nil {
		return stats, err
	}

	var stale []string
	for _, key := range remote {
		if !local[key] {
			stale = append(stale, key)
		}
	}
	sort.Strings(stale)

	if len(stale) > 0 {
		if err := api.Delete(ctx, name, stale); err != nil {
			return stats, fmt.Errorf("failed to delete stale objects: %w", err)
		}
		stats.Deleted = len(stale)
		log.Debugf("stale objects deleted: count=%d", len(stale))
	}

	log.Infof("sync complete: uploaded=%d (%s), deleted=%d",
		stats.Uploaded, humanize.Bytes(stats.Bytes), stats.Deleted)

	return stats, nil
}

// contentType maps a key's extension to a MIME type, defaulting to a binary
// stream when the extension is unknown.
func contentType(key string) string {
	ext := strings.ToLower(filepath.Ext(key))
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
