// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// RunScript applies every operation of script to s in order and
// stops at the first failing one. With opts.InsertOnly every other
// operation is skipped; with opts.Progress a bar is drawn on stderr.
func RunScript(s *Session, script *Script, opts DriverConfig) ([]Outcome, error) {
	var bar *progressbar.ProgressBar
	if opts.Progress {
		bar = newApplyBar(len(script.Operations), os.Stderr)
	}

	outcomes := make([]Outcome, 0, len(script.Operations))
	for _, op := range script.Operations {
		if opts.InsertOnly && op.Kind != OpInsert {
			s.logger.Debug().Str("step", op.Step).Str("operation", op.String()).Msg("skipping non-insert step")
			outcomes = append(outcomes, Outcome{Op: op, Skipped: true})
			if bar != nil {
				_ = bar.Add(1)
			}
			continue
		}
		outcome, err := s.Apply(op)
		if err != nil {
			return outcomes, fmt.Errorf("step %q: %w", op.Step, err)
		}
		outcomes = append(outcomes, outcome)
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	s.logger.Info().Int("operations", len(outcomes)).Int("skipped", countSkipped(outcomes)).Int("size", s.Tree().Size()).Int("height", s.Tree().Height()).Msg("script applied")
	return outcomes, nil
}

// loadSession builds a session from cfg and applies the script at path.
func loadSession(cfg *Config, path string) (*Session, error) {
	script, err := LoadScript(path, cfg.Driver)
	if err != nil {
		return nil, err
	}
	s := NewSession(cfg.Explore)
	if _, err := RunScript(s, script, cfg.Driver); err != nil {
		return nil, err
	}
	return s, nil
}

func countSkipped(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Skipped {
			n++
		}
	}
	return n
}

func newApplyBar(total int, w io.Writer) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("Applying operations..."),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
	)
}
