/*
 * pcsolver - four-wide perfect-clear reachability and search engine
 *
 * MIT License
 *
 * Copyright (c) 2026 pcsolver contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tmikkel/pcsolver/internal/api"
	"github.com/tmikkel/pcsolver/internal/config"
	"github.com/tmikkel/pcsolver/internal/logging"
	"github.com/tmikkel/pcsolver/internal/replay"
	"github.com/tmikkel/pcsolver/internal/types"
)

// binVersion is reported by -version. There is no release process yet, so
// this is a plain constant rather than a build-stamped value.
const binVersion = "0.1.0"

var out = message.NewPrinter(language.English)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	genLogLvl := flag.String("genloglvl", "", "PC-generation log level\n(critical|error|warning|notice|info|debug)")
	piecesPath := flag.String("pieces", "", "path to pieces.txt (defaults to config/data.pieces_file)")
	kicksPath := flag.String("kicks", "", "path to kicks.txt (defaults to config/data.kicks_file)")
	catalogPath := flag.String("catalog", "", "path to the persisted PC catalog (defaults to config/data.catalog_file)")
	queueLen := flag.Int("n", 0, "maximum PC-queue length to generate (defaults to config/gen.max_queue_len)")
	heightBound := flag.Int("height", 0, "board height bound for catalog generation (defaults to config/gen.height_bound)")
	workers := flag.Int64("workers", 0, "bounded concurrency for catalog generation (defaults to config/gen.workers)")
	regenerate := flag.Bool("regenerate", false, "ignore any persisted catalog and regenerate from scratch")
	queue := flag.String("queue", "", "a piece queue to run max_pcs against, using the generated/loaded catalog")
	doReplay := flag.Bool("replay", false, "independently verify the generated/loaded catalog by replay")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	config.ConfFile = *configFile
	config.Setup()

	if lvl, found := config.LogLevels[strings.ToUpper(*logLvl)]; found {
		config.LogLevel = lvl
	}
	if lvl, found := config.LogLevels[strings.ToUpper(*genLogLvl)]; found {
		config.GenLogLevel = lvl
	}
	logging.GetLog()
	logging.GetGenLog()

	if *piecesPath != "" {
		config.Settings.Data.PiecesFile = *piecesPath
	}
	if *kicksPath != "" {
		config.Settings.Data.KicksFile = *kicksPath
	}
	if *catalogPath != "" {
		config.Settings.Data.CatalogFile = *catalogPath
	}
	if *queueLen != 0 {
		config.Settings.Gen.MaxQueueLen = *queueLen
	}
	if *heightBound != 0 {
		config.Settings.Gen.HeightBound = *heightBound
	}
	if *workers != 0 {
		config.Settings.Gen.Workers = *workers
	}

	engine, err := api.NewEngine(config.Settings.Data.PiecesFile, config.Settings.Data.KicksFile, config.Settings.Gen.Workers)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	catalog, err := engine.GeneratePcCatalog(config.Settings.Data.CatalogFile, config.Settings.Gen.MaxQueueLen, config.Settings.Gen.HeightBound, *regenerate || config.Settings.Gen.ForceRegenerate)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	out.Printf("PC catalog ready: %d queues\n", len(catalog))

	if *doReplay {
		suite := replay.NewSuite(engine.Table)
		report := suite.Run(catalog)
		out.Println(report.String())
	}

	if *queue != "" {
		count, segments, err := engine.MaxPcs(types.Queue(*queue))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		out.Printf("max_pcs(%s) = %d\n", *queue, count)
		for i, s := range segments {
			out.Printf("  segment %d: %s\n", i+1, string(s))
		}
	}
}

func printVersionInfo() {
	out.Printf("pcsolver %s\n", binVersion)
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
