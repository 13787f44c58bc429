// Copyright © 2026 The kconf authors

// Package configfile reads and writes .config files and generates the
// auto.conf/autoconf.h build artifacts from a symbol table.
package configfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// prefix is accepted on input lines for backward compatibility with configs
// written by older tools.  Output never carries it.
const prefix = "CONFIG_"

// Setting is one ID=value pair read from a .config file.
type Setting struct {
	Name  string
	Value string
}

// Read parses a .config stream into an ordered list of settings.  Lines of
// the form "# ID is not set" record the value n.  A leading CONFIG_ prefix
// on either form is stripped.  Quoted string values are unquoted.
func Read(r io.Reader) ([]Setting, error) {
	var settings []Setting
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			name, ok := parseNotSet(line)
			if !ok {
				continue
			}
			settings = append(settings, Setting{Name: name, Value: "n"})
			continue
		}
		eq := strings.IndexByte(line, '=')
		if eq < 0 {
			continue
		}
		name := strings.TrimPrefix(strings.TrimSpace(line[:eq]), prefix)
		value := strings.TrimSpace(line[eq+1:])
		settings = append(settings, Setting{Name: name, Value: unquote(value)})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return settings, nil
}

// ReadFile reads a .config file from disk.
func ReadFile(path string) ([]Setting, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	settings, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return settings, nil
}

func parseNotSet(line string) (string, bool) {
	body := strings.TrimSpace(strings.TrimPrefix(line, "#"))
	name, ok := strings.CutSuffix(body, " is not set")
	if !ok {
		return "", false
	}
	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, " \t") {
		return "", false
	}
	return strings.TrimPrefix(name, prefix), true
}

func unquote(value string) string {
	if len(value) < 2 || value[0] != '"' || value[len(value)-1] != '"' {
		return value
	}
	body := value[1 : len(value)-1]
	var text strings.Builder
	escaped := false
	for _, c := range body {
		if escaped {
			text.WriteRune(c)
			escaped = false
			continue
		}
		if c == '\\' {
			escaped = true
			continue
		}
		text.WriteRune(c)
	}
	return text.String()
}
