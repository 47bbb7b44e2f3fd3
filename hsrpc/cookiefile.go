package hsrpc

import (
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
)

func readCookieFile(path string) (username, password string, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return
	}

	s := strings.TrimSpace(string(b))
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		err = errors.New("malformed cookie file")
		return
	}

	username, password = parts[0], parts[1]
	return
}

// NewCookieRetriever returns a function suitable for Conn.GetAuth which
// reads credentials from the chain node's RPC cookie file. The file is
// re-read when its modification time changes, checked at most every 30
// seconds.
func NewCookieRetriever(path string) func() (username, password string, err error) {
	lastCheckTime := time.Time{}
	lastModTime := time.Time{}

	curUsername, curPassword := "", ""
	var curError error

	doUpdate := func() {
		if !lastCheckTime.IsZero() && time.Now().Before(lastCheckTime.Add(30*time.Second)) {
			return
		}

		lastCheckTime = time.Now()

		st, err := os.Stat(path)
		if err != nil {
			curError = err
			return
		}

		modTime := st.ModTime()
		if !modTime.Equal(lastModTime) {
			lastModTime = modTime
			curUsername, curPassword, curError = readCookieFile(path)
		}
	}

	return func() (username, password string, err error) {
		doUpdate()
		return curUsername, curPassword, curError
	}
}
