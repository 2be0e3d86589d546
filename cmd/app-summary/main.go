// WebsitePresentation - a hand-assembled one-page PDF summary
// Copyright (C) 2026  The WebsitePresentation Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// App-summary writes the one-page summary document to
// output/pdf/app-summary-one-page.pdf, relative to the current directory.
//
// Set APP_SUMMARY_DEBUG to a non-empty value to see debug output on stderr.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/PatrizioAcquadro/WebsitePresentation/logging"
	"github.com/PatrizioAcquadro/WebsitePresentation/summary"
)

func main() {
	err := run()
	if err != nil {
		log.Fatal(err)
	}
}

func run() error {
	level := slog.LevelWarn
	if os.Getenv("APP_SUMMARY_DEBUG") != "" {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logging.SetLogger(slog.New(handler))

	path, out, err := summary.WriteFile(nil)
	if err != nil {
		return err
	}

	fmt.Println(path)
	fmt.Printf("Final baseline y: %.2f\n", out.Y)
	return nil
}
