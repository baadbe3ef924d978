package fingerprint

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
)

type ionic1Detector struct {
}

func (d *ionic1Detector) Framework() Framework {
	return Ionic1
}

// Detect matches v1 trees by their bower manifest or, for projects that ship
// the library without bower metadata, by the www/lib/ionic directory.
func (d *ionic1Detector) Detect(ctx context.Context, dir string) (bool, error) {
	contents, err := os.ReadFile(filepath.Join(dir, "bower.json"))
	if err == nil {
		if gjson.GetBytes(contents, "dependencies.ionic").Exists() ||
			gjson.GetBytes(contents, "devDependencies.ionic").Exists() {
			return true, nil
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, err
	}

	stat, err := os.Stat(filepath.Join(dir, "www", "lib", "ionic"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}

		return false, err
	}

	return stat.IsDir(), nil
}
