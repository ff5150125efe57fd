package db

import (
	"fmt"
	"net"
	"regexp"
	"strings"
)

const defaultDriver = "mysql"

// Settings describes how to reach a database. They are not modified after a
// Connection has been built from them.
type Settings struct {
	Driver   string `yaml:"driver"`
	Host     string `yaml:"host"`
	DBName   string `yaml:"dbname"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Charset  string `yaml:"charset"`
}

// DriverName returns the configured driver, mysql when none is set.
func (s Settings) DriverName() string {
	if s.Driver == "" {
		return defaultDriver
	}
	return strings.ToLower(s.Driver)
}

// String never includes the password.
func (s Settings) String() string {
	target := s.DBName
	if s.Host != "" {
		target = s.Host + "/" + s.DBName
	}
	if s.User != "" {
		target = s.User + "@" + target
	}
	return s.DriverName() + "://" + target
}

var charsetPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

func validateCharset(charset string) error {
	if !charsetPattern.MatchString(charset) {
		return fmt.Errorf("%w: %q", ErrInvalidCharset, charset)
	}
	return nil
}

// hostPort fills in the port when host carries none.
func hostPort(host, defaultHost, defaultPort string) (string, string) {
	if host == "" {
		return defaultHost, defaultPort
	}
	if h, p, err := net.SplitHostPort(host); err == nil {
		return h, p
	}
	return host, defaultPort
}
