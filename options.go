package schemaengine

import (
	"regexp"
	"sync"
)

// SchemaDetectionOptions is the per-call input to detectSchema, per §6.
type SchemaDetectionOptions struct {
	DataSourceID        string
	EndpointID          string
	SampleData          any
	MaxSampleSize       int
	DetectPagination    *bool // nil means default true
	DetectRelationships bool
	ExistingSchemas     []*Schema
	RequestParams       map[string]any
	ResponseHeaders     map[string]string
	PreserveManualEdits bool
}

func (o *SchemaDetectionOptions) effectiveMaxSampleSize() int {
	if o.MaxSampleSize <= 0 {
		return 100
	}
	return o.MaxSampleSize
}

func (o *SchemaDetectionOptions) effectiveDetectPagination() bool {
	if o.DetectPagination == nil {
		return true
	}
	return *o.DetectPagination
}

// FormatDef lets a caller register an additional semantic string pattern,
// mirroring the teacher's customFormats registry (§9 "Regex library").
type FormatDef struct {
	Name        string
	Matcher     *regexp.Regexp
	Type        FieldType
	Confidence  float64
}

// Option configures an Orchestrator at construction time. Instance
// configuration is write-once (§5 "Instance configuration objects ...
// are write-once at construction").
type Option func(*Orchestrator)

// WithEnumThresholds overrides the Enum Analyzer's default thresholds.
func WithEnumThresholds(th enumThresholds) Option {
	return func(o *Orchestrator) { o.enumThresholds = th }
}

// WithValidationThresholds overrides the Validation Analyzer's default
// thresholds.
func WithValidationThresholds(th validationThresholds) Option {
	return func(o *Orchestrator) { o.validationThresholds = th }
}

// WithMinSampleWarningThreshold overrides the sample count below which
// detectSchema adds a low-confidence warning (default 5, per §4.11 step 3).
func WithMinSampleWarningThreshold(n int) Option {
	return func(o *Orchestrator) { o.minSampleWarningThreshold = n }
}

// WithSampleSizeDampingK overrides k in adjustForSampleSize (default 20,
// per §4.11 step 4).
func WithSampleSizeDampingK(k int) Option {
	return func(o *Orchestrator) { o.sampleSizeDampingK = k }
}

// WithLocale sets the locale used for advisory/warning message
// localization (default "en").
func WithLocale(locale string) Option {
	return func(o *Orchestrator) { o.locale = locale }
}

// WithIDGenerator overrides the Orchestrator's ID generation function,
// primarily for deterministic tests.
func WithIDGenerator(gen func(prefix string) string) Option {
	return func(o *Orchestrator) { o.idGenerator = gen }
}

// Orchestrator coordinates the full detection pipeline end to end, per
// §4.11. Its thresholds are fixed at construction; custom formats can be
// added later through RegisterFormat, which is guarded by a mutex. All
// detection calls are safe to invoke concurrently from distinct callers (§5).
type Orchestrator struct {
	enumThresholds            enumThresholds
	validationThresholds      validationThresholds
	minSampleWarningThreshold int
	sampleSizeDampingK        int
	locale                    string
	idGenerator               func(prefix string) string

	customFormatsMu sync.RWMutex
	customFormats   map[string]*FormatDef
}

// NewOrchestrator builds an Orchestrator with sane defaults, applying opts
// in order.
func NewOrchestrator(opts ...Option) *Orchestrator {
	o := &Orchestrator{
		enumThresholds:            defaultEnumThresholds(),
		validationThresholds:      defaultValidationThresholds(),
		minSampleWarningThreshold: 5,
		sampleSizeDampingK:        20,
		locale:                    "en",
		idGenerator:               generateID,
		customFormats:             make(map[string]*FormatDef),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// RegisterFormat adds or replaces a custom format definition, usable by
// callers who need a domain-specific string pattern the built-in library
// doesn't cover. Safe for concurrent use.
func (o *Orchestrator) RegisterFormat(def *FormatDef) {
	o.customFormatsMu.Lock()
	defer o.customFormatsMu.Unlock()
	o.customFormats[def.Name] = def
}

// matchCustomFormat checks s against every registered custom format,
// returning the first match. Custom formats are consulted before the
// built-in pattern precedence list, mirroring the teacher's
// custom-format-first, built-in-fallback dispatch in format.go.
func (o *Orchestrator) matchCustomFormat(s string) (stringDetection, bool) {
	o.customFormatsMu.RLock()
	defer o.customFormatsMu.RUnlock()
	for _, def := range o.customFormats {
		if def.Matcher.MatchString(s) {
			return stringDetection{Type: def.Type, Confidence: def.Confidence, Pattern: def.Name}, true
		}
	}
	return stringDetection{}, false
}
