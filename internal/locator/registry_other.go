//go:build !windows

package locator

// SystemRegistry returns nil: there is no registry outside Windows.
func SystemRegistry() RegistryReader {
	return nil
}
