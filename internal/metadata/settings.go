package metadata

// SettingsFile is the Toolbox settings file inside the Toolbox data
// directory.
const SettingsFile = ".settings.json"

// InstallLocation returns the non-empty "install_location" recorded in the
// Toolbox settings file at path.
func InstallLocation(path string) (string, bool) {
	obj, ok := readObject(path)
	if !ok {
		return "", false
	}
	loc, ok := obj.str("install_location")
	if !ok || loc == "" {
		return "", false
	}
	return loc, true
}
