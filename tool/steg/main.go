package main

import (
	"bytes"
	"flag"
	"fmt"
	"image/png"
	"math"
	"os"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"

	"stegano/internal/convert"
	"stegano/internal/logger"
	"stegano/internal/security"
	"stegano/internal/steg"
	"stegano/internal/system"
)

var (
	encode   bool
	decode   bool
	capacity bool
	imgPath  string
	message  string
	password string
	output   string
	cfgPath  string
	logLevel string

	lg *logger.MultiLogger
)

// config is used to load default options from a toml file, flags that
// are set explicitly always win.
type config struct {
	Password string `toml:"password"`
	Output   string `toml:"output"`
	LogLevel string `toml:"log_level"`
}

func init() {
	flag.CommandLine.SetOutput(os.Stdout)
	flag.CommandLine.Usage = printUsage

	flag.BoolVar(&encode, "enc", false, "embed a message into a png file")
	flag.BoolVar(&decode, "dec", false, "extract a message from a png file")
	flag.BoolVar(&capacity, "cap", false, "print the message capacity of a png file")
	flag.StringVar(&imgPath, "img", "", "cover or carrier image file path")
	flag.StringVar(&message, "msg", "", "text message for embed")
	flag.StringVar(&password, "pwd", "", "password for mask or unmask message")
	flag.StringVar(&output, "output", "carrier.png", "output file path")
	flag.StringVar(&cfgPath, "config", "", "load default options from a toml file")
	flag.StringVar(&logLevel, "log-level", "info", "set the logger level")
	flag.Parse()

	loadConfig()

	lv, err := logger.Parse(logLevel)
	system.CheckError(err)
	lg = logger.NewMultiLogger(lv, os.Stdout)
}

func loadConfig() {
	if cfgPath == "" {
		return
	}
	data, err := os.ReadFile(cfgPath)
	system.CheckError(err)
	cfg := config{}
	err = toml.Unmarshal(data, &cfg)
	system.CheckError(err)
	set := make(map[string]struct{}, 8)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = struct{}{}
	})
	if _, ok := set["pwd"]; !ok && cfg.Password != "" {
		password = cfg.Password
	}
	if _, ok := set["output"]; !ok && cfg.Output != "" {
		output = cfg.Output
	}
	if _, ok := set["log-level"]; !ok && cfg.LogLevel != "" {
		logLevel = cfg.LogLevel
	}
}

func printUsage() {
	exe, err := system.ExecutableName()
	system.CheckError(err)
	const format = `
usage:

 [embed]    %s -enc -img "cover.png" -msg "secret" -pwd "pass" -output "carrier.png"
 [extract]  %s -dec -img "carrier.png" -pwd "pass"
 [capacity] %s -cap -img "cover.png"

`
	fmt.Printf(format[1:], exe, exe, exe)
	flag.PrintDefaults()
}

func main() {
	switch {
	case encode:
		embedMessage()
	case decode:
		extractMessage()
	case capacity:
		printCapacity()
	default:
		printUsage()
	}
}

func readImage() []byte {
	if imgPath == "" {
		system.PrintError("no input image, use -img to select it")
	}
	pic, err := os.ReadFile(imgPath) // #nosec
	system.CheckError(err)
	return pic
}

// progressLine prints a single updating progress line.
func progressLine(action string) steg.ProgressFunc {
	last := -1.0
	return func(percent float64) {
		p := math.Floor(percent)
		if p == last {
			return
		}
		last = p
		fmt.Printf("\r%s... %3.0f%%", action, p)
	}
}

func embedMessage() {
	defer security.CoverString(password)
	if message == "" {
		system.PrintError("no message, use -msg to set it")
	}
	pic := readImage()
	carrier, err := steg.EncodeToPNG(pic, message, password, progressLine("embed message"))
	fmt.Println()
	if errors.Is(err, steg.ErrCapacityExceeded) {
		cfg, cErr := png.DecodeConfig(bytes.NewReader(pic))
		system.CheckError(cErr)
		n := steg.Capacity(cfg.Width, cfg.Height)
		system.PrintErrorf("this image can only store a %s message\n",
			convert.StorageUnit(uint64(n)))
	}
	system.CheckError(err)
	err = system.WriteFile(output, carrier)
	system.CheckError(err)
	lg.Printf(logger.Info, "steg", "write carrier image to %s", output)
}

func extractMessage() {
	defer security.CoverString(password)
	pic := readImage()
	message, err := steg.DecodeFromPNG(pic, password, progressLine("extract message"))
	fmt.Println()
	if errors.Is(err, steg.ErrNoMessage) {
		lg.Print(logger.Warning, "steg", "no message embedded in this image")
		return
	}
	system.CheckError(err)
	fmt.Println(message)
}

func printCapacity() {
	pic := readImage()
	cfg, err := png.DecodeConfig(bytes.NewReader(pic))
	system.CheckError(err)
	n := steg.Capacity(cfg.Width, cfg.Height)
	fmt.Printf("%dx%d pixels, this image can store a %s message\n",
		cfg.Width, cfg.Height, convert.StorageUnit(uint64(n)))
}
