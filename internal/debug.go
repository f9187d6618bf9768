package internal

import (
	"log"

	"github.com/earthboundkid/versioninfo/v2"
)

func Version() string {
	return versioninfo.Short()
}

func ShowVersion() {
	log.Printf("Version: %s\n", Version())
}
