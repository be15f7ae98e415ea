package fetcher

import (
	"archive/zip"
	"context"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// download fetches the archive at url, extracts the contained CSV into
// the month's cache directory and removes the archive unless retention is
// configured. On failure any partially written archive or extraction
// directory is removed so a later attempt never sees a half-written
// cache entry.
func (f *Fetcher) download(ctx context.Context, url, fileName string) (err error) {
	zipName, err := archiveNameFromURL(url)
	if err != nil {
		return err
	}
	cityDir := filepath.Join(f.root, f.city.ID)
	if err := os.MkdirAll(cityDir, 0o755); err != nil {
		return errors.Wrap(err, "create city cache directory")
	}
	zipPath := filepath.Join(cityDir, zipName)
	destDir := filepath.Join(cityDir, fileName)
	defer func() {
		if err != nil {
			os.Remove(zipPath)
			os.RemoveAll(destDir)
		}
	}()

	f.log.Info("downloading", zap.String("archive", zipName), zap.String("url", url))
	if err := f.fetchArchive(ctx, url, zipPath); err != nil {
		return err
	}
	if err := extractCSV(zipPath, fileName+".csv", destDir); err != nil {
		return errors.Wrapf(err, "extract %s", zipName)
	}
	if !f.keep {
		if err := os.Remove(zipPath); err != nil {
			return errors.Wrap(err, "remove archive")
		}
	}
	f.log.Info("download successful", zap.String("file", fileName))
	return nil
}

func (f *Fetcher) fetchArchive(ctx context.Context, url, zipPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrap(err, "build download request")
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "fetch %s", url)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}
	out, err := os.Create(zipPath)
	if err != nil {
		return errors.Wrap(err, "create archive file")
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		return errors.Wrap(err, "write archive file")
	}
	return out.Close()
}

// extractCSV extracts the named CSV member of the archive into destDir.
// Member paths inside the zip are matched on base name, case-insensitive.
func extractCSV(zipPath, member, destDir string) error {
	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		return err
	}
	defer zr.Close()
	for _, zf := range zr.File {
		if !strings.EqualFold(path.Base(zf.Name), member) {
			continue
		}
		if err := os.MkdirAll(destDir, 0o755); err != nil {
			return err
		}
		rc, err := zf.Open()
		if err != nil {
			return err
		}
		defer rc.Close()
		out, err := os.Create(filepath.Join(destDir, member))
		if err != nil {
			return err
		}
		if _, err := io.Copy(out, rc); err != nil {
			out.Close()
			return err
		}
		return out.Close()
	}
	return errors.Errorf("no %s member in archive", member)
}
