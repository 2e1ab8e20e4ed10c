// Package config provides configuration management for riderctl.
//
// Configuration is optional: every key has a default and discovery runs
// without a file.
//
// # Configuration File
//
// The default location is <xdg config home>/riderctl/config.yaml. The
// directory can be replaced with RIDERCTL_CONFIG_DIR, and any key can be
// set from the environment with the RIDERCTL_ prefix
// (RIDERCTL_SEARCH_TIMEOUT=30s).
//
//	version: 1
//	search:
//	  timeout: 10s
//	  disabled: [search]        # toolbox, well-known, search, registry, override
//	  exclude:
//	    - /JetBrains/Toolbox/apps/
//	toolbox:
//	  location: /mnt/tools/Toolbox
//	custom_paths:
//	  - /opt/custom/rider/bin/rider.sh
//	resources_dir: /etc/riderctl
//	engine_root: /work/UnrealEngine
//
// # Loading Configuration
//
//	config.Init()
//	cfg, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//
// [Load] validates the result; [Validate] can also be called directly and
// returns every problem found rather than the first.
package config
