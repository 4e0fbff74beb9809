// Package update compares the running version against the latest release.
package update

import (
	"fmt"
	"runtime"

	"github.com/hashicorp/go-version"

	"github.com/MarketSquare/robotfmt/cli/internal/ui"
)

// latestKnownVersion is the most recent release the build knows about.
// Release tooling bumps this alongside the version package.
const latestKnownVersion = "0.1.0"

// CheckForUpdates compares the current version against the latest known
// release and prints an upgrade hint when the build is behind.
func CheckForUpdates(currentVersion string) error {
	current, err := version.NewVersion(currentVersion)
	if err != nil {
		return fmt.Errorf("invalid version format: %w", err)
	}

	latest, err := version.NewVersion(latestKnownVersion)
	if err != nil {
		return fmt.Errorf("invalid latest version format: %w", err)
	}

	if current.LessThan(latest) {
		ui.PrintWarning("A new version is available!")
		fmt.Printf("Current version: %s\n", currentVersion)
		fmt.Printf("Latest version:  %s\n", latestKnownVersion)
		fmt.Printf("\nUpdate with: go install github.com/MarketSquare/robotfmt/cli@latest\n")
	}
	return nil
}

// GetDownloadURL returns the release download URL for the current platform.
func GetDownloadURL(ver string) string {
	return fmt.Sprintf("https://github.com/MarketSquare/robotfmt/releases/download/v%s/robotfmt-%s-%s",
		ver, runtime.GOOS, runtime.GOARCH)
}
