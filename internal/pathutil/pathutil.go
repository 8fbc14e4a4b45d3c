// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

const envVar = "TEMPUS_ENV"

// Paths holds all application path configurations.
type Paths struct {
	configDir      string
	configFileName string
	dbFileName     string
	statusFileName string
	logFileName    string

	// Computed absolute paths
	configFilePath string
	dataDir        string
	dbFilePath     string
	statusFilePath string
	logFilePath    string
	soundDir       string
}

var (
	paths *Paths
	once  sync.Once
)

func newPaths(env string) *Paths {
	p := &Paths{
		configDir:      "tempus",
		configFileName: "config.yml",
		dbFileName:     "tempus.db",
		statusFileName: "status.json",
		logFileName:    "tempus.log",
	}

	if env != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", env)
		p.dbFileName = fmt.Sprintf("tempus_%s.db", env)
		p.statusFileName = fmt.Sprintf("status_%s.json", env)
		p.logFileName = fmt.Sprintf("tempus_%s.log", env)
	}

	return p
}

// Initialize must be called once at program startup. TEMPUS_ENV selects an
// alternate set of file names so that a development build does not touch the
// real data.
func Initialize() error {
	var initErr error

	once.Do(func() {
		p := newPaths(strings.TrimSpace(os.Getenv(envVar)))

		initErr = p.computePaths()
		if initErr == nil {
			paths = p
		}
	})

	return initErr
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func Dir() string {
	return Must().configDir
}

func ConfigFilePath() string {
	return Must().configFilePath
}

func DataDir() string {
	return Must().dataDir
}

func DBFilePath() string {
	return Must().dbFilePath
}

func StatusFilePath() string {
	return Must().statusFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

// SoundDir is where ambient sound files are looked up.
func SoundDir() string {
	return Must().soundDir
}

func (p *Paths) computePaths() error {
	var err error

	p.configFilePath, err = xdg.ConfigFile(
		filepath.Join(p.configDir, p.configFileName),
	)
	if err != nil {
		return err
	}

	// xdg.DataFile creates the parent directories of its argument
	statusFile, err := xdg.DataFile(
		filepath.Join(p.configDir, p.statusFileName),
	)
	if err != nil {
		return err
	}

	p.dataDir = filepath.Dir(statusFile)
	p.statusFilePath = statusFile
	p.dbFilePath = filepath.Join(p.dataDir, p.dbFileName)
	p.logFilePath = filepath.Join(p.dataDir, "log", p.logFileName)
	p.soundDir = filepath.Join(p.dataDir, "sounds")

	return nil
}

// StripExtension returns the input file name without its extension.
func StripExtension(fileName string) string {
	return fileName[:len(fileName)-len(filepath.Ext(fileName))]
}
