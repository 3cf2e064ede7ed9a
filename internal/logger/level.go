package logger

import (
	"fmt"
	"strings"
)

// Level is the log level.
type Level = uint8

// levels about logger.
const (
	All Level = iota // show all log messages

	Trace // for trace function (development)
	Debug // general debug information

	Info    // common running information
	Warning // appear error but can continue
	Error   // appear error that can not continue (returned)
	Fatal   // appear panic in goroutine

	Off // stop log message
)

// TimeLayout is used to provide a parameter to time.Time.Format().
const TimeLayout = "2006-01-02 15:04:05"

// Parse is used to parse logger level from string.
func Parse(level string) (Level, error) {
	var lv Level
	switch strings.ToLower(level) {
	case "all":
		lv = All
	case "trace":
		lv = Trace
	case "debug":
		lv = Debug
	case "info":
		lv = Info
	case "warning":
		lv = Warning
	case "error":
		lv = Error
	case "fatal":
		lv = Fatal
	case "off":
		lv = Off
	default:
		return lv, fmt.Errorf("unknown logger level: %s", level)
	}
	return lv, nil
}

func dumpLevel(lv Level) string {
	switch lv {
	case All:
		return "all"
	case Trace:
		return "trace"
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Fatal:
		return "fatal"
	case Off:
		return "off"
	default:
		return fmt.Sprintf("unknown level: %d", lv)
	}
}
