//go:build windows

package locator

import (
	"golang.org/x/sys/windows/registry"
)

type systemRegistry struct{}

// SystemRegistry returns a reader over the live Windows registry.
func SystemRegistry() RegistryReader {
	return systemRegistry{}
}

func hive(root RegistryRoot) registry.Key {
	if root == LocalMachine {
		return registry.LOCAL_MACHINE
	}
	return registry.CURRENT_USER
}

func (systemRegistry) SubKeys(root RegistryRoot, key string) ([]string, error) {
	k, err := registry.OpenKey(hive(root), key, registry.READ)
	if err != nil {
		return nil, err
	}
	defer k.Close()
	return k.ReadSubKeyNames(-1)
}

func (systemRegistry) String(root RegistryRoot, key, name string) (string, error) {
	k, err := registry.OpenKey(hive(root), key, registry.QUERY_VALUE)
	if err != nil {
		return "", err
	}
	defer k.Close()
	v, _, err := k.GetStringValue(name)
	return v, err
}
