package constants

import (
	"os"
	"strconv"
	"time"
)

func GetDBPath() string {
	path := os.Getenv("CHORDING_DB_PATH")
	if path != "" {
		return path
	}
	return "./chording.sqlite3"
}

func GetPort() int {
	port, err := strconv.Atoi(os.Getenv("CHORDING_PORT"))
	if err != nil || port <= 0 {
		return 8080
	}
	return port
}

func GetAllowedOrigins() string {
	origins := os.Getenv("CHORDING_ALLOWED_ORIGINS")
	if origins != "" {
		return origins
	}
	return "*"
}

// samples per analysis window; fixed for a whole session
const DefaultWindowSize = 4096

// longest window the HTTP detector accepts; autocorrelation is quadratic in it
const MaxWindowSize = 4 * DefaultWindowSize

const DefaultSampleRate = 44100

// one analysis cycle per display frame
const DefaultFrameInterval = time.Second / 60

const DefaultTuning = "standard"
