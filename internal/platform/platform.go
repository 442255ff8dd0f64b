package platform

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Platform identifies the host operating system family. It is determined once
// at the start of a run and threaded by value into every component that needs
// it; nothing mutates it afterwards.
type Platform int

const (
	// Unknown is the zero value, returned alongside ErrUnsupportedPlatform.
	Unknown Platform = iota
	// MacOS covers Darwin hosts using Homebrew.
	MacOS
	// Debian covers Ubuntu and other Debian-like distributions using apt.
	Debian
	// Arch covers Arch-like distributions using pacman.
	Arch
)

// String returns a human-readable name for diagnostics and logging.
func (p Platform) String() string {
	switch p {
	case MacOS:
		return "macos"
	case Debian:
		return "debian"
	case Arch:
		return "arch"
	default:
		return "unknown"
	}
}

// ErrUnsupportedPlatform is returned when the host cannot be classified as any
// supported platform. It is fatal: the run aborts before any install is
// attempted.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// Probe carries the raw signals classification is based on. Detect fills it
// from the live system; tests construct it directly.
type Probe struct {
	OSType          string   // $OSTYPE or `uname -s` output, e.g. "darwin24" or "Linux"
	OSReleaseID     string   // ID field of /etc/os-release, e.g. "ubuntu"
	OSReleaseIDLike []string // ID_LIKE field of /etc/os-release, e.g. ["debian"]
	HasPacman       bool     // whether a pacman binary is on PATH
}

// Classify maps probed signals to exactly one Platform. It is a pure function:
// no filesystem or environment access, so it is testable without mocking the
// host.
//
// Detection order matters: the Darwin kernel signature wins, then the
// os-release ID/ID_LIKE fields, then pacman presence. Anything else is
// unsupported.
func Classify(p Probe) (Platform, error) {
	if strings.Contains(strings.ToLower(p.OSType), "darwin") {
		return MacOS, nil
	}
	if strings.EqualFold(p.OSReleaseID, "ubuntu") {
		return Debian, nil
	}
	for _, like := range p.OSReleaseIDLike {
		if strings.EqualFold(like, "debian") {
			return Debian, nil
		}
	}
	if p.HasPacman {
		return Arch, nil
	}
	return Unknown, fmt.Errorf("%w (ostype=%q, os-release id=%q)", ErrUnsupportedPlatform, p.OSType, p.OSReleaseID)
}

// Detect probes the running system and classifies it.
func Detect() (Platform, error) {
	return Classify(probe())
}

// probe gathers the classification signals from the host.
func probe() Probe {
	// $OSTYPE is set by interactive shells but not always exported; fall back
	// to the kernel name from uname.
	osType := os.Getenv("OSTYPE")
	if osType == "" {
		if out, err := exec.Command("uname", "-s").Output(); err == nil {
			osType = strings.TrimSpace(string(out))
		}
	}

	id, idLike := parseOSRelease("/etc/os-release")

	_, pacErr := exec.LookPath("pacman")

	return Probe{
		OSType:          osType,
		OSReleaseID:     id,
		OSReleaseIDLike: idLike,
		HasPacman:       pacErr == nil,
	}
}

// parseOSRelease reads the ID and ID_LIKE fields from an os-release file.
// A missing file is not an error; it simply yields empty fields (macOS has no
// os-release, and classification does not need one there).
func parseOSRelease(path string) (id string, idLike []string) {
	f, err := os.Open(path)
	if err != nil {
		return "", nil
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		// os-release values may be quoted shell-style.
		val = strings.Trim(val, `"'`)
		switch key {
		case "ID":
			id = val
		case "ID_LIKE":
			// ID_LIKE is a space-separated list of related distributions.
			idLike = strings.Fields(val)
		}
	}
	return id, idLike
}
