// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"

	"github.com/lockdiff/lockdiff/internal/lockfile"
	"github.com/lockdiff/lockdiff/internal/log"
)

// Raw writes a structural JSON diff of two lock documents to w. Only JSON
// lock files can be compared this way; TOML inputs are rejected rather than
// round-tripped through a lossy conversion.
func Raw(w io.Writer, format lockfile.Format, before, after []byte, color bool) error {
	if format != lockfile.FormatNPM {
		return fmt.Errorf("raw output requires JSON lock files, got %s", format)
	}

	log.Debugf("raw diff: %d vs %d bytes", len(before), len(after))

	d := gojsondiff.New()
	delta, err := d.Compare(before, after)
	if err != nil {
		return fmt.Errorf("failed to compare lock files: %w", err)
	}

	if !delta.Modified() {
		fmt.Fprintln(w, "The lock files are identical.")
		return nil
	}

	var jdoc map[string]interface{}
	if err := json.Unmarshal(before, &jdoc); err != nil {
		return fmt.Errorf("failed to unmarshal lock file: %w", err)
	}

	config := formatter.AsciiFormatterConfig{
		ShowArrayIndex: false,
		Coloring:       color,
	}

	f := formatter.NewAsciiFormatter(jdoc, config)
	diffString, err := f.Format(delta)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, diffString)
	return nil
}
