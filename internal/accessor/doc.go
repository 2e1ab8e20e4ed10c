// Package accessor turns discovered installs into named, launchable
// handles.
//
// [Generate] applies the selection policy: every install becomes a handle
// for opening solution files, installs that understand project files also
// get a project-file handle, and each non-empty group gets one aggregate
// handle bound to its newest install. A [Module] runs discovery, generates
// handles and registers them in a [Registry] that hosts look handles up in.
//
// Handles launch the IDE without waiting for it. The solution or project
// file to open is resolved through a shared [SolutionCache].
package accessor
