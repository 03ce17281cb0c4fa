package promo

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

// Validator validates storefront promo codes. A bloom filter answers the
// common "definitely not a code" case without touching the exact set;
// positives are confirmed against the set so there are no false accepts.
type Validator struct {
	filter *bloom.BloomFilter
	codes  map[string]struct{}
	mu     sync.RWMutex
}

const bloomFalsePositiveRate = 0.01

// defaultCodes seeds the validator when no code file is configured.
var defaultCodes = []string{
	"SMARTPL10",
	"ZAKUPY2024",
	"OBIADY15",
	"TANIEJ20",
	"WITAMY25",
}

// NewValidator creates an empty promo code validator.
func NewValidator() *Validator {
	return &Validator{
		codes: make(map[string]struct{}),
	}
}

// LoadDefaults loads the built-in seed codes.
func (v *Validator) LoadDefaults() {
	v.load(defaultCodes)
}

// LoadFromFile reads one code per line from path. Blank lines are ignored.
func (v *Validator) LoadFromFile(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open promo file: %w", err)
	}
	defer f.Close()

	codes, err := parseCodes(f)
	if err != nil {
		return err
	}
	v.load(codes)
	return nil
}

func (v *Validator) load(codes []string) {
	n := uint(len(codes))
	if n == 0 {
		n = 1
	}
	filter := bloom.NewWithEstimates(n, bloomFalsePositiveRate)
	set := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		filter.AddString(c)
		set[c] = struct{}{}
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.filter = filter
	v.codes = set
}

// parseCodes reads codes from a reader, one per line.
func parseCodes(r io.Reader) ([]string, error) {
	var codes []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			codes = append(codes, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading promo codes: %w", err)
	}
	return codes, nil
}

// IsValid checks a promo code. Valid codes have 8-10 characters and are
// present in the loaded set.
func (v *Validator) IsValid(ctx context.Context, code string) bool {
	if len(code) < 8 || len(code) > 10 {
		return false
	}

	v.mu.RLock()
	defer v.mu.RUnlock()

	if v.filter == nil || !v.filter.TestString(code) {
		return false
	}
	_, ok := v.codes[code]
	return ok
}

// Count returns the number of loaded codes.
func (v *Validator) Count() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.codes)
}
