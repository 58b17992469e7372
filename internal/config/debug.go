package config

import "os"

func IsDebug() bool {
	return os.Getenv("BODAI_DEBUG") == "1"
}
