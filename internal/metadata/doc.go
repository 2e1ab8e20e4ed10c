// Package metadata reads the JSON files shipped with a Rider install.
//
// # Product Descriptor
//
// Every install carries a product-info.json descriptor. [Enrich] copies its
// build number into an [install.Info] and derives the project-file support
// state. Two descriptor generations exist: older builds list custom
// properties as an array of key/value objects, newer ones as a flat object.
//
//	{"buildNumber": "203.7717.11",
//	 "customProperties": [{"key": "SupportUproject", "value": "Beta"}]}
//
//	{"buildNumber": "203.7717.11",
//	 "customProperties": {"SupportUproject": "Beta"}}
//
// Builds with a major component of [ReleaseThreshold] or above support
// project files unconditionally.
//
// # History File
//
// Toolbox records the builds it applied in a .history.json file above the
// install directory. [FindHistory] locates it and [LastBuild] returns the
// most recent entry, which the locator uses to reject stale installs.
//
// Both readers are best effort: unreadable or malformed files leave the
// record untouched and are never reported as errors.
package metadata
