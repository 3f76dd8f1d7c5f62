package env

import "os"

const DebugKey = "TEXTPATCH_DEBUG"

func IsSet(key string) bool {
	return os.Getenv(key) != ""
}

func IsNotSet(key string) bool {
	return !IsSet(key)
}
