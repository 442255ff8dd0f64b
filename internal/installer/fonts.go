package installer

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"machine-bootstrap/internal/config"
	"machine-bootstrap/internal/logger"
	"machine-bootstrap/internal/run"
)

// githubRelease mirrors the fields of a GitHub release JSON response that
// asset resolution needs.
type githubRelease struct {
	TagName string `json:"tag_name"`
	Assets  []struct {
		Name               string `json:"name"`                 // Asset filename
		BrowserDownloadURL string `json:"browser_download_url"` // Direct download URL
	} `json:"assets"`
}

// fetchRelease retrieves the release metadata for repo at tag from the GitHub
// API.
func fetchRelease(repo, tag string) (*githubRelease, error) {
	url := fmt.Sprintf("https://api.github.com/repos/%s/releases/tags/%s", repo, tag)
	logger.Debug("[DEBUG] Fetching GitHub release from URL: %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetching release %s@%s: %w", repo, tag, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("[WARN] Failed to close HTTP response body: %v\n", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("release fetch for %s@%s returned HTTP %d", repo, tag, resp.StatusCode)
	}

	var release githubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("decoding release JSON for %s@%s: %w", repo, tag, err)
	}
	logger.Debug("[DEBUG] Release tag: %s with %d assets\n", release.TagName, len(release.Assets))
	return &release, nil
}

// fontAsset picks the archive asset for the named font from a release.
// Nerd Font releases name their assets after the font, one archive per font,
// in .zip and .tar.xz flavors. The first matching supported format wins.
func fontAsset(release *githubRelease, fontName string) (name, url string, err error) {
	want := strings.ToLower(fontName)
	for _, asset := range release.Assets {
		lower := strings.ToLower(asset.Name)
		if !strings.HasPrefix(lower, want+".") {
			continue
		}
		if strings.HasSuffix(lower, ".zip") || strings.HasSuffix(lower, ".tar.xz") ||
			strings.HasSuffix(lower, ".tar.gz") || strings.HasSuffix(lower, ".7z") {
			logger.Debug("[DEBUG] Found matching font asset: %s\n", asset.Name)
			return asset.Name, asset.BrowserDownloadURL, nil
		}
	}
	return "", "", fmt.Errorf("no archive asset for font %q in release %s", fontName, release.TagName)
}

// downloadFile downloads the content at url to destPath.
func downloadFile(url, destPath string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to GET %s: %w", url, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Error("[ERROR] Failed to close response body: %s\n", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download of %s returned HTTP %d", url, resp.StatusCode)
	}

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", destPath, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			logger.Error("[ERROR] Failed to close destination file: %s\n", cerr)
		}
	}()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("failed to write response to file: %w", err)
	}
	logger.Debug("[DEBUG] Downloaded %s to %s\n", url, destPath)
	return nil
}

// userFontsDir is where per-user fonts live on Linux, one subdirectory per
// font family under the XDG data home (~/.local/share/fonts by default).
func userFontsDir(fontName string) string {
	return filepath.Join(xdg.DataHome, "fonts", fontName)
}

// installLinuxFont downloads the font's release archive, unpacks it into the
// per-user font directory, and refreshes the font cache.
func installLinuxFont(r run.Runner, font config.FontSpec) error {
	release, err := fetchRelease(font.Repo, font.Tag)
	if err != nil {
		return err
	}

	assetName, assetURL, err := fontAsset(release, font.Name)
	if err != nil {
		return err
	}

	tmp := filepath.Join(os.TempDir(), path.Base(assetName))
	logger.Info("[INFO] Downloading font asset %s\n", assetName)
	if err := downloadFile(assetURL, tmp); err != nil {
		return err
	}
	defer os.Remove(tmp)

	fontsDir := userFontsDir(font.Name)
	if err := os.MkdirAll(fontsDir, 0o755); err != nil {
		return fmt.Errorf("creating font directory %s: %w", fontsDir, err)
	}
	logger.Info("[INFO] Extracting %s into %s\n", assetName, fontsDir)
	if err := ExtractArchive(tmp, fontsDir); err != nil {
		return fmt.Errorf("extracting font archive: %w", err)
	}

	logger.Info("[INFO] Refreshing font cache...\n")
	return run.Checked(r, "fc-cache", "-f")
}
