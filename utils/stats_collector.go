package utils

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

var samplesMu sync.Mutex

// AppendSamples appends one CSV line "label,v1,v2,..." to path, creating the
// file if needed. Values are written with full precision so raw trial times
// can be re-analysed offline.
func AppendSamples(path, label string, values []float64) error {
	samplesMu.Lock()
	defer samplesMu.Unlock()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open samples file: %w", err)
	}
	defer f.Close()

	var sb strings.Builder
	sb.WriteString(label)
	for _, v := range values {
		sb.WriteByte(',')
		sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	sb.WriteByte('\n')
	if _, err := f.WriteString(sb.String()); err != nil {
		return fmt.Errorf("write samples: %w", err)
	}
	return nil
}

// ClearSamples removes path. A missing file is not an error.
func ClearSamples(path string) error {
	samplesMu.Lock()
	defer samplesMu.Unlock()
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
