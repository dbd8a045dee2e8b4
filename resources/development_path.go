//go:build !release
// +build !release

package resources

const configDir = ".advance"

func resourcePath() (string, error) {
	return configDir, nil
}
