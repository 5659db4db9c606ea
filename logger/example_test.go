package logger_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mordilloSan/ddlog/logger"
)

func clock() time.Time {
	return time.Date(2024, time.March, 1, 9, 30, 15, 250_000_000, time.UTC)
}

// This example shows the default Warning threshold filtering out Info.
func ExampleNew() {
	log := logger.New(logger.WithClock(clock))
	log.AddSink(logger.NewWriterSink("stdout", os.Stdout))

	log.Errorf("oops: %v", "boom")
	log.Warnln("be careful")
	log.Infof("not shown")
	// Output:
	// [09:30:15.250] oops: boom
	// [09:30:15.250] be careful
}

// This example lowers the threshold to Info.
func ExampleLogger_SetLevel() {
	log := logger.New(logger.WithClock(clock))
	log.AddSink(logger.NewWriterSink("stdout", os.Stdout))

	log.SetLevel(logger.InfoLevel)
	log.Infof("ready")
	log.Log(logger.DebugLevel, "still hidden")
	// Output:
	// [09:30:15.250] ready
}

// This example writes the same records to standard output and a file.
func ExampleNewFileSink() {
	path := filepath.Join(os.TempDir(), "ddlog-example.log")
	defer os.Remove(path)

	file, err := logger.NewFileSink(path)
	if err != nil {
		fmt.Println(err)
		return
	}

	log := logger.New(logger.WithClock(clock))
	log.AddSink(logger.NewWriterSink("stdout", os.Stdout))
	log.AddSink(file)
	log.Errorf("written twice")
	if err := log.Close(); err != nil {
		fmt.Println(err)
		return
	}

	content, _ := os.ReadFile(path)
	fmt.Print(string(content))
	// Output:
	// [09:30:15.250] written twice
	// [09:30:15.250] written twice
}

// This example shows colorized console output. Each line is wrapped in the
// ANSI color of its severity; %q makes the escape codes visible here.
func ExampleWithColor() {
	var buf bytes.Buffer
	log := logger.New(logger.WithLevel(logger.DebugLevel), logger.WithClock(clock))
	log.AddSink(logger.NewConsoleSink(logger.WithOutput(&buf), logger.WithColor(true)))
	log.Infof("hello %s", "world")
	log.Errorf("oops: %v", "boom")

	fmt.Printf("%q\n", buf.String())
	// Output:
	// "\x1b[32m[09:30:15.250] hello world\x1b[0m\n\x1b[31m[09:30:15.250] oops: boom\x1b[0m\n"
}
