package resources

import (
	"os"
	"path/filepath"
)

const portablePath = "Advance_UserData"

// the presence of portable.txt in the same directory as the program binary
// indicates that resources should be stored next to the binary rather than
// in the user's configuration directory
func checkPortable() bool {
	ex, err := os.Executable()
	if err != nil {
		return false
	}

	pth := filepath.Join(filepath.Dir(ex), "portable.txt")
	_, err = os.Stat(pth)

	return err == nil
}
