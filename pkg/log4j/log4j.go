// Package log4j synthesizes the minimal log4j2 configuration used for development runs.
package log4j

import (
	"encoding/xml"
	"fmt"
	"path/filepath"

	"github.com/aretw0/runargs/internal/fsutil"
	"github.com/aretw0/runargs/pkg/domain"
)

// FileName is the name used when only a directory is given.
const FileName = "log4j2.xml"

// LogFile is where the file appender writes, relative to the game directory.
const LogFile = "logs/latest.log"

const (
	consolePattern = "%highlight{[%d{HH:mm:ss}] [%t/%level] [%c{2.}/%markerSimpleName]: %msg%n}"
	filePattern    = "[%d{ddMMMyyyy HH:mm:ss.SSS}] [%t/%level] [%logger/%markerSimpleName]: %msg%n%xEx"
)

type configuration struct {
	XMLName      xml.Name  `xml:"Configuration"`
	Status       string    `xml:"status,attr"`
	ShutdownHook string    `xml:"shutdownHook,attr"`
	Appenders    appenders `xml:"Appenders"`
	Loggers      loggers   `xml:"Loggers"`
}

type appenders struct {
	Console console     `xml:"Console"`
	File    rollingFile `xml:"RollingRandomAccessFile"`
}

type console struct {
	Name   string          `xml:"name,attr"`
	Target string          `xml:"target,attr"`
	Filter thresholdFilter `xml:"ThresholdFilter"`
	Layout patternLayout   `xml:"PatternLayout"`
}

type rollingFile struct {
	Name        string          `xml:"name,attr"`
	FileName    string          `xml:"fileName,attr"`
	FilePattern string          `xml:"filePattern,attr"`
	Filter      thresholdFilter `xml:"ThresholdFilter"`
	Layout      patternLayout   `xml:"PatternLayout"`
	Policies    policies        `xml:"Policies"`
	Rollover    rollover        `xml:"DefaultRolloverStrategy"`
}

type thresholdFilter struct {
	Level      string `xml:"level,attr"`
	OnMatch    string `xml:"onMatch,attr"`
	OnMismatch string `xml:"onMismatch,attr"`
}

type patternLayout struct {
	Pattern string `xml:"pattern,attr"`
}

type policies struct {
	TimeBased struct{} `xml:"TimeBasedTriggeringPolicy"`
	OnStartup struct{} `xml:"OnStartupTriggeringPolicy"`
}

type rollover struct {
	Max       string `xml:"max,attr"`
	FileIndex string `xml:"fileIndex,attr"`
}

type loggers struct {
	Root rootLogger `xml:"Root"`
}

type rootLogger struct {
	Level string        `xml:"level,attr"`
	Refs  []appenderRef `xml:"AppenderRef"`
}

type appenderRef struct {
	Ref string `xml:"ref,attr"`
}

// Render returns the configuration document for the given minimum level.
// The output depends only on level. An empty level means INFO; an unknown one is a
// configuration error listing the accepted names.
func Render(level domain.Level) ([]byte, error) {
	level, err := domain.ParseLevel(string(level))
	if err != nil {
		return nil, err
	}
	filter := thresholdFilter{Level: level.String(), OnMatch: "ACCEPT", OnMismatch: "DENY"}

	cfg := configuration{
		Status:       "warn",
		ShutdownHook: "disable",
		Appenders: appenders{
			Console: console{
				Name:   "Console",
				Target: "SYSTEM_OUT",
				Filter: filter,
				Layout: patternLayout{Pattern: consolePattern},
			},
			File: rollingFile{
				Name:        "File",
				FileName:    LogFile,
				FilePattern: "logs/%d{yyyy-MM-dd}-%i.log.gz",
				Filter:      filter,
				Layout:      patternLayout{Pattern: filePattern},
				Rollover:    rollover{Max: "99", FileIndex: "min"},
			},
		},
		Loggers: loggers{
			Root: rootLogger{
				Level: level.String(),
				Refs:  []appenderRef{{Ref: "Console"}, {Ref: "File"}},
			},
		},
	}

	body, err := xml.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode log4j2 configuration: %w", err)
	}
	out := append([]byte(xml.Header), body...)
	return append(out, '\n'), nil
}

// Write renders the configuration and atomically replaces the file at path.
func Write(path string, level domain.Level) error {
	data, err := Render(level)
	if err != nil {
		return err
	}
	if err := fsutil.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write log4j2 configuration: %w", err)
	}
	return nil
}

// WriteDir writes FileName into dir and returns the absolute path of the written file.
func WriteDir(dir string, level domain.Level) (string, error) {
	path, err := filepath.Abs(filepath.Join(dir, FileName))
	if err != nil {
		return "", fmt.Errorf("invalid log4j2 directory: %w", err)
	}
	if err := Write(path, level); err != nil {
		return "", err
	}
	return path, nil
}
