package fingerprint

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

type PackagesJson struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// readPackagesJson parses dir/package.json. A missing manifest is a
// definitive no-match, not an error, and returns nil.
func readPackagesJson(dir string) (*PackagesJson, error) {
	contents, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, err
	}

	var packagesJson PackagesJson
	if err := json.Unmarshal(contents, &packagesJson); err != nil {
		return nil, fmt.Errorf("parsing package.json: %w", err)
	}

	return &packagesJson, nil
}

type ionicAngularDetector struct {
}

func (d *ionicAngularDetector) Framework() Framework {
	return IonicAngular
}

func (d *ionicAngularDetector) Detect(ctx context.Context, dir string) (bool, error) {
	packagesJson, err := readPackagesJson(dir)
	if err != nil || packagesJson == nil {
		return false, err
	}

	_, ok := packagesJson.Dependencies["ionic-angular"]
	return ok, nil
}

type angularDetector struct {
}

func (d *angularDetector) Framework() Framework {
	return Angular
}

func (d *angularDetector) Detect(ctx context.Context, dir string) (bool, error) {
	packagesJson, err := readPackagesJson(dir)
	if err != nil || packagesJson == nil {
		return false, err
	}

	if _, ok := packagesJson.Dependencies["@angular/core"]; ok {
		return true, nil
	}

	_, ok := packagesJson.DevDependencies["@angular/core"]
	return ok, nil
}

type reactDetector struct {
}

func (d *reactDetector) Framework() Framework {
	return React
}

func (d *reactDetector) Detect(ctx context.Context, dir string) (bool, error) {
	packagesJson, err := readPackagesJson(dir)
	if err != nil || packagesJson == nil {
		return false, err
	}

	_, ok := packagesJson.Dependencies["react"]
	return ok, nil
}
