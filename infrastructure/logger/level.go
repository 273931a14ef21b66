package logger

import "strings"

// Level is the level at which a logger is configured. All messages sent
// to a level which is below the current level are filtered.
type Level uint32

// Level constants.
const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelCritical
	LevelOff
)

// levelNames holds, per level, the tag printed in log headers followed by
// the long name accepted on the command line.
var levelNames = [...][2]string{
	LevelTrace:    {"TRC", "trace"},
	LevelDebug:    {"DBG", "debug"},
	LevelInfo:     {"INF", "info"},
	LevelWarn:     {"WRN", "warn"},
	LevelError:    {"ERR", "error"},
	LevelCritical: {"CRT", "critical"},
	LevelOff:      {"OFF", "off"},
}

// LevelFromString returns a level based on the input string s. Both the long
// name and the header tag are accepted, ignoring case. If the input can't be
// interpreted as a valid log level, the info level and false is returned.
func LevelFromString(s string) (l Level, ok bool) {
	s = strings.ToLower(s)
	for level, names := range levelNames {
		if s == names[1] || s == strings.ToLower(names[0]) {
			return Level(level), true
		}
	}
	return LevelInfo, false
}

// String returns the tag of the logger used in log messages, or "OFF" if
// the level will not produce any log output.
func (l Level) String() string {
	if l >= LevelOff {
		return levelNames[LevelOff][0]
	}
	return levelNames[l][0]
}
