package locator

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUninstall_Find(t *testing.T) {
	p, env := testPlatform(t, "windows")
	userRoot := filepath.Join(env.LocalAppData, "Programs", "Rider")
	machineRoot := filepath.Join(env.ProgramFiles, "JetBrains", "JetBrains Rider 2022.3")
	userExe := makeInstall(t, userRoot, p.Layout, "231.1")
	machineExe := makeInstall(t, machineRoot, p.Layout, "223.8836.53")

	reg := &fakeRegistry{
		subkeys: map[string][]string{
			regKey(CurrentUser, UninstallKey, ""):  {"JetBrains Rider 2023.1", "Firefox"},
			regKey(LocalMachine, Uninstall32, ""):  {"JetBrains Rider 2022.3"},
			regKey(LocalMachine, UninstallKey, ""): {"Rider Missing"},
		},
		values: map[string]string{
			regKey(CurrentUser, UninstallKey+`\JetBrains Rider 2023.1`, "InstallLocation"): userRoot,
			regKey(CurrentUser, UninstallKey+`\Firefox`, "InstallLocation"):                env.Home,
			regKey(LocalMachine, Uninstall32+`\JetBrains Rider 2022.3`, "InstallLocation"):  machineRoot,
		},
	}

	got := (&Uninstall{Platform: p, Reader: reg}).Find(testContext(t))
	assert.Equal(t, []string{userExe, machineExe}, pathsOf(got))
}

func TestToolboxFromRegistry(t *testing.T) {
	reg := &fakeRegistry{values: map[string]string{
		regKey(CurrentUser, ToolboxKey, ""):  `C:\Users\dev\AppData\Local\JetBrains\Toolbox\bin`,
		regKey(LocalMachine, ToolboxKey, ""): `C:\NoBinHere`,
	}}

	got := ToolboxFromRegistry(reg)
	assert.Equal(t, []string{filepath.FromSlash("C:/Users/dev/AppData/Local/JetBrains/Toolbox")}, got)
}

func TestRegistryRoot_String(t *testing.T) {
	assert.Equal(t, "HKCU", CurrentUser.String())
	assert.Equal(t, "HKLM", LocalMachine.String())
}
