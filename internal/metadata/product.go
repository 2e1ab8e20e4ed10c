package metadata

import (
	"slices"

	"github.com/thoreinstein/riderctl/internal/install"
	"github.com/thoreinstein/riderctl/internal/version"
)

// DescriptorFile is the descriptor file name inside an install.
const DescriptorFile = "product-info.json"

// ReleaseThreshold is the first major build that always supports project
// files.
const ReleaseThreshold = 221

// supportKeys are the property names that carry the support state.
var supportKeys = []string{"SupportUproject", "SupportUProject"}

// Enrich populates info from the descriptor at path. It sets Build and
// Version from "buildNumber" and derives Support. A missing or malformed
// descriptor leaves info unchanged.
func Enrich(info *install.Info, path string) {
	obj, ok := readObject(path)
	if !ok {
		return
	}

	if build, ok := obj.str("buildNumber"); ok {
		info.Build = build
		info.Version = version.Parse(build)
	}

	if info.Version.Major() >= ReleaseThreshold {
		info.Support = install.SupportRelease
		return
	}

	value, ok := supportValue(obj)
	if !ok {
		return
	}
	switch value {
	case "Beta":
		info.Support = install.SupportBeta
	case "Release":
		info.Support = install.SupportRelease
	}
}

// supportValue finds the support property in either descriptor generation.
func supportValue(obj object) (string, bool) {
	if props, ok := obj.array("customProperties"); ok {
		for _, p := range props {
			item, ok := asObject(p)
			if !ok {
				continue
			}
			key, ok := item.str("key")
			if !ok {
				continue
			}
			if !slices.Contains(supportKeys, key) {
				continue
			}
			if value, ok := item.str("value"); ok {
				return value, true
			}
		}
		return "", false
	}

	if props, ok := obj.child("customProperties"); ok {
		for _, key := range supportKeys {
			if value, ok := props.str(key); ok {
				return value, true
			}
		}
	}
	return "", false
}
