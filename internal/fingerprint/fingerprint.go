// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package fingerprint

import (
	"context"
	"log"
)

// Framework is a detectable project framework tag.
type Framework string

const (
	IonicAngular Framework = "ionic-angular"
	Ionic1       Framework = "ionic1"
	Angular      Framework = "angular"
	React        Framework = "react"
)

// Detector probes a directory for one framework's fingerprint.
type Detector interface {
	Framework() Framework
	// Detect reports whether dir carries the framework's fingerprint. It is
	// side-effect free and safe to call for every candidate in sequence.
	Detect(ctx context.Context, dir string) (bool, error)
}

// Detectors returns all framework probes.
// Order here determines precedence when a directory matches more than one
// fingerprint. More specific fingerprints come first.
func Detectors() []Detector {
	return []Detector{
		&ionicAngularDetector{},
		&ionic1Detector{},
		&angularDetector{},
		&reactDetector{},
	}
}

// Match runs detectors against dir in precedence order and returns the first
// framework whose fingerprint matches. A probe failure is logged and treated
// as no-match so that one unreadable manifest never aborts the chain.
func Match(ctx context.Context, dir string, detectors []Detector) (Framework, bool) {
	for _, detector := range detectors {
		matched, err := detector.Detect(ctx, dir)
		if err != nil {
			log.Printf("fingerprint: %s probe failed: %v", detector.Framework(), err)
			continue
		}

		if matched {
			return detector.Framework(), true
		}
	}

	return "", false
}
