package utils

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"os"
	"strings"

	"github.com/google/uuid"
)

// GetSecret returns the secret from the config value or, if empty, from the file.
func GetSecret(conf string, file string) string {
	if conf == "" && file == "" {
		return ""
	}

	if conf != "" {
		return conf
	}

	contents, err := ReadFile(file)
	if err != nil {
		return ""
	}

	return ParseSecretFile(contents)
}

// ParseSecretFile returns the first non-blank line of a secret file.
func ParseSecretFile(contents string) string {
	lines := strings.Split(contents, "\n")

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		return strings.TrimSpace(line)
	}

	return ""
}

// ReadFile reads a file and returns the contents.
func ReadFile(file string) (string, error) {
	_, err := os.Stat(file)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// ParseCommaString splits a comma separated string into a list, trimming
// whitespace and dropping empty items.
func ParseCommaString(str string) []string {
	if strings.TrimSpace(str) == "" {
		return []string{}
	}

	items := []string{}

	for _, item := range strings.Split(str, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		items = append(items, item)
	}

	return items
}

// GenerateUUID deterministically derives a UUID from a string.
func GenerateUUID(str string) string {
	id := uuid.NewSHA1(uuid.NameSpaceURL, []byte(str))
	return id.String()
}

// GetRandomString returns a cryptographically secure random string.
func GetRandomString(length int) (string, error) {
	if length < 1 {
		return "", errors.New("length must be greater than 0")
	}
	b := make([]byte, length)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	state := base64.RawURLEncoding.EncodeToString(b)
	return state[:length], nil
}
