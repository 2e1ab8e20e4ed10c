// Package locator finds Rider installations on the local machine.
//
// Each operating system is described by a [Platform]: where an install
// keeps its executable, descriptor and plugin marker, where Toolbox lives,
// which directories hold manual installs and which search utility to ask.
// Platforms are plain data selected with [ForOS], so the strategies for
// every OS run on any OS given a suitable directory tree.
//
// Discovery is performed by a fixed sequence of [Strategy] values, each of
// which turns candidate paths into [install.Info] records through the
// single admission gate [Platform.Admit]. [Locator.CollectAllPaths] runs the
// strategies in order and merges their results into an [install.Set].
// Strategies never fail: unreadable directories, missing utilities and
// malformed files are logged at debug level and skipped.
package locator
