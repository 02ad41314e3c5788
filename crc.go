package leveltool

import (
	"fmt"
	"hash/crc32"
	"io"
	"os"
)

func crcFile(file string) (string, error) {
	f, err := os.Open(file)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := crc32.NewIEEE()
	if _, err = io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%.*X", crc32.Size<<1, h.Sum(nil)), nil
}

// crcInputs combines the checksums of every input file of a level build
// into one value, so a change to any of them invalidates the build.
func crcInputs(files ...string) (string, error) {
	h := crc32.NewIEEE()
	for _, file := range files {
		crc, err := crcFile(file)
		if err != nil {
			return "", err
		}
		if _, err := io.WriteString(h, crc); err != nil {
			return "", err
		}
	}
	return fmt.Sprintf("%.*X", crc32.Size<<1, h.Sum(nil)), nil
}
