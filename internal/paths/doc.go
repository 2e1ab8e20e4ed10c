// Package paths provides cross-platform path resolution for riderctl.
//
// The package wraps github.com/adrg/xdg for XDG Base Directory compliance
// and knows where JetBrains Toolbox keeps its data on each platform:
//
//	| Platform | Toolbox directory                                  |
//	|----------|----------------------------------------------------|
//	| Linux    | ~/.local/share/JetBrains/Toolbox                   |
//	| macOS    | ~/Library/Application Support/JetBrains/Toolbox    |
//	| Windows  | %LOCALAPPDATA%\JetBrains\Toolbox                   |
//
// riderctl's own configuration lives in [ConfigDir]; the manual override
// list [ResourceFile] is looked up in a resources directory which defaults
// to [ExecutableResourcesDir].
package paths
