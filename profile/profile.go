// Package profile locates Firefox profile directories and the session
// store files inside them.
package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/go-faster/errors"
)

// EnvAppData is environmental variable that points to the roaming
// application data directory on Windows.
const EnvAppData = "APPDATA"

// BackupDirName is the sub-directory of a profile where Firefox keeps
// session store backups.
const BackupDirName = "sessionstore-backups"

// Possible errors.
var (
	ErrNotFound      = errors.New("profile not found")
	ErrNoSessionFile = errors.New("no session store file")
)

// AmbiguousError is returned by Find when more than one profile
// directory matches the queried name.
type AmbiguousError struct {
	Name    string
	Matches []Profile
	Latest  string // base name of the most recently modified profile
}

func (e *AmbiguousError) Error() string {
	const maxListed = 5
	names := make([]string, 0, maxListed)
	for _, p := range e.Matches[:min(len(e.Matches), maxListed)] {
		names = append(names, p.Name())
	}
	var b strings.Builder
	fmt.Fprintf(&b, "profile %q matches multiple directories: %s", e.Name, strings.Join(names, ", "))
	if rest := len(e.Matches) - maxListed; rest > 0 {
		fmt.Fprintf(&b, " and %d more", rest)
	}
	if e.Latest != "" {
		fmt.Fprintf(&b, " (latest modified: %s)", e.Latest)
	}
	return b.String()
}

// Dir returns the default Firefox profiles directory for the current
// platform.
//
// On Windows that is %APPDATA%\Mozilla\Firefox\Profiles, on macOS
// ~/Library/Application Support/Firefox/Profiles, and everywhere else
// ~/.mozilla/firefox.
func Dir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		appData, ok := os.LookupEnv(EnvAppData)
		if !ok {
			return "", errors.Errorf("%s is not set", EnvAppData)
		}
		return filepath.Join(appData, "Mozilla", "Firefox", "Profiles"), nil
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(err, "home")
		}
		return filepath.Join(home, "Library", "Application Support", "Firefox", "Profiles"), nil
	default:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(err, "home")
		}
		return filepath.Join(home, ".mozilla", "firefox"), nil
	}
}

// Profile is a single Firefox profile directory.
type Profile struct {
	Path    string
	ModTime time.Time
}

// Name returns the base name of the profile directory, like
// "wscs2ifj.default-release".
func (p Profile) Name() string { return filepath.Base(p.Path) }

// SessionFile resolves the profile's session store file. See the
// package-level SessionFile for the resolution order.
func (p Profile) SessionFile() (string, error) {
	return SessionFile(p.Path)
}

// List returns the profile directories under root, most recently
// modified first. Entries that are not directories or whose metadata
// cannot be read are skipped.
func List(root string) ([]Profile, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, errors.Wrap(err, "read profiles dir")
	}
	profiles := make([]Profile, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		profiles = append(profiles, Profile{
			Path:    filepath.Join(root, e.Name()),
			ModTime: info.ModTime(),
		})
	}
	sort.SliceStable(profiles, func(i, j int) bool {
		return profiles[i].ModTime.After(profiles[j].ModTime)
	})
	return profiles, nil
}

// Find resolves a profile under root by name.
//
// A name containing a dot or a path separator is taken as the exact
// directory name, so "wscs2ifj.default" selects that directory and
// nothing else. Any other name is matched against the part of each
// directory name after its first dot: "default-release" selects
// "wscs2ifj.default-release". Matching several directories is an
// *AmbiguousError, matching none wraps ErrNotFound.
func Find(root, name string) (Profile, error) {
	if strings.ContainsAny(name, `./\`) {
		dir := filepath.Join(root, name)
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			return Profile{}, errors.Wrapf(ErrNotFound, "%q", name)
		}
		return Profile{Path: dir, ModTime: info.ModTime()}, nil
	}

	profiles, err := List(root)
	if err != nil {
		return Profile{}, err
	}
	var matches []Profile
	for _, p := range profiles {
		if _, suffix, ok := strings.Cut(p.Name(), "."); ok && suffix == name {
			matches = append(matches, p)
		}
	}
	switch len(matches) {
	case 0:
		return Profile{}, errors.Wrapf(ErrNotFound, "%q", name)
	case 1:
		return matches[0], nil
	default:
		e := &AmbiguousError{Name: name, Matches: matches}
		if len(profiles) > 0 {
			// List is newest first.
			e.Latest = profiles[0].Name()
		}
		return Profile{}, e
	}
}

// SessionFiles returns the candidate session store paths for a profile
// directory in resolution order: the live store first, then the
// backups Firefox writes while running and on shutdown.
func SessionFiles(dir string) []string {
	return []string{
		filepath.Join(dir, "sessionstore.jsonlz4"),
		filepath.Join(dir, BackupDirName, "recovery.jsonlz4"),
		filepath.Join(dir, BackupDirName, "previous.jsonlz4"),
	}
}

// SessionFile returns the first existing session store file for a
// profile directory. Wraps ErrNoSessionFile when none of the
// candidates exist.
func SessionFile(dir string) (string, error) {
	for _, p := range SessionFiles(dir) {
		info, err := os.Stat(p)
		if err == nil && info.Mode().IsRegular() {
			return p, nil
		}
	}
	return "", errors.Wrapf(ErrNoSessionFile, "%q", dir)
}
