package gotemplate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"path"
	"reflect"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formsite/pkg/render/template"
)

// Option configures the pongo2 adapter before construction.
type Option func(*config)

type config struct {
	templates  fs.FS
	globalData map[string]any
}

// WithFS loads templates from an fs.FS.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// WithGlobalData seeds global context values available to every template.
func WithGlobalData(data map[string]any) Option {
	return func(cfg *config) {
		if len(data) == 0 {
			return
		}
		if cfg.globalData == nil {
			cfg.globalData = make(map[string]any, len(data))
		}
		for key, value := range data {
			cfg.globalData[strings.TrimSpace(key)] = value
		}
	}
}

// Engine satisfies template.TemplateRenderer using a pongo2 template set
// addressed by slash-separated names relative to the template root.
type Engine struct {
	mu sync.RWMutex

	files       fs.FS
	templateSet *pongo2.TemplateSet
	templates   map[string]*pongo2.Template
}

// Ensure Engine implements the TemplateRenderer interface.
var _ template.TemplateRenderer = (*Engine)(nil)

// New constructs an Engine using the provided configuration options.
func New(options ...Option) (*Engine, error) {
	cfg := &config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	if cfg.templates == nil {
		return nil, errors.New("gotemplate: template fs.FS is required")
	}

	engine := &Engine{
		files:       cfg.templates,
		templateSet: pongo2.NewSet("formsite", pongo2.NewFSLoader(cfg.templates)),
		templates:   make(map[string]*pongo2.Template),
	}
	registerDefaultFilters()

	if err := engine.GlobalContext(cfg.globalData); err != nil {
		return nil, fmt.Errorf("gotemplate: apply global data: %w", err)
	}

	return engine, nil
}

// Exists reports whether name is present in template storage.
func (e *Engine) Exists(name string) bool {
	if e == nil || e.files == nil {
		return false
	}
	info, err := fs.Stat(e.files, cleanName(name))
	return err == nil && !info.IsDir()
}

// Resolve returns the first candidate present in template storage, or
// template.Empty when none is. A candidate that exists but cannot be read
// fails with template.ErrMissingTemplate.
func (e *Engine) Resolve(candidates ...string) (template.Template, error) {
	if e == nil || e.templateSet == nil {
		return nil, errors.New("gotemplate: engine is nil")
	}
	for _, candidate := range candidates {
		name := cleanName(candidate)
		if !e.Exists(name) {
			continue
		}
		tmpl, err := e.getTemplate(name)
		if err != nil {
			return nil, err
		}
		return &compiled{name: name, tpl: tmpl, engine: e}, nil
	}
	return template.Empty, nil
}

// RenderTemplate resolves name and executes it. A missing template renders
// to an empty string.
func (e *Engine) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	tmpl, err := e.Resolve(name)
	if err != nil {
		return "", err
	}
	return tmpl.Execute(data, out...)
}

// RenderString parses templateContent and executes it.
func (e *Engine) RenderString(templateContent string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.templateSet == nil {
		return "", errors.New("gotemplate: engine is nil")
	}

	tmpl, err := e.templateSet.FromString(templateContent)
	if err != nil {
		return "", fmt.Errorf("gotemplate: parse template string: %w", err)
	}
	return e.execute(tmpl, "template string", data, out...)
}

// RegisterFilter registers a template filter.
func (e *Engine) RegisterFilter(name string, fn func(input any, param any) (any, error)) error {
	if strings.TrimSpace(name) == "" || fn == nil {
		return errors.New("gotemplate: filter name and function required")
	}

	filter := func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		var paramVal any
		if param != nil {
			paramVal = param.Interface()
		}
		result, err := fn(in.Interface(), paramVal)
		if err != nil {
			return nil, &pongo2.Error{Sender: "custom_filter", OrigError: err}
		}
		return pongo2.AsValue(result), nil
	}

	if pongo2.FilterExists(name) {
		return fmt.Errorf("gotemplate: filter %q already exists", name)
	}
	return pongo2.RegisterFilter(name, filter)
}

// GlobalContext seeds global data visible to every template.
func (e *Engine) GlobalContext(data any) error {
	if e == nil || e.templateSet == nil {
		return errors.New("gotemplate: engine is nil")
	}
	if data == nil {
		return nil
	}

	globalCtx, err := convertToContext(data)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.templateSet.Globals == nil {
		e.templateSet.Globals = make(pongo2.Context)
	}
	e.templateSet.Globals.Update(globalCtx)
	return nil
}

type compiled struct {
	name   string
	tpl    *pongo2.Template
	engine *Engine
}

func (c *compiled) Name() string {
	return c.name
}

func (c *compiled) Execute(data any, out ...io.Writer) (string, error) {
	return c.engine.execute(c.tpl, c.name, data, out...)
}

func (e *Engine) execute(tmpl *pongo2.Template, name string, data any, out ...io.Writer) (string, error) {
	viewContext, err := convertToContext(data)
	if err != nil {
		return "", fmt.Errorf("gotemplate: convert data: %w", err)
	}

	var buf bytes.Buffer

	e.mu.RLock()
	err = tmpl.ExecuteWriter(viewContext, &buf)
	e.mu.RUnlock()

	if err != nil {
		return "", fmt.Errorf("gotemplate: execute template %q: %w", name, err)
	}

	rendered := buf.String()
	for _, w := range out {
		if _, err := io.WriteString(w, rendered); err != nil {
			return "", err
		}
	}
	return rendered, nil
}

func (e *Engine) getTemplate(name string) (*pongo2.Template, error) {
	e.mu.RLock()
	if tmpl, ok := e.templates[name]; ok {
		e.mu.RUnlock()
		return tmpl, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if tmpl, ok := e.templates[name]; ok {
		return tmpl, nil
	}

	source, err := fs.ReadFile(e.files, name)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: read %q: %w: %w", name, template.ErrMissingTemplate, err)
	}
	tmpl, err := e.templateSet.FromBytes(source)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: parse template %q: %w", name, err)
	}

	e.templates[name] = tmpl
	return tmpl, nil
}

func cleanName(name string) string {
	cleaned := strings.TrimPrefix(path.Clean("/"+strings.TrimSpace(name)), "/")
	if cleaned == "" {
		return "."
	}
	return cleaned
}

func isCallable(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	return rv.IsValid() && rv.Kind() == reflect.Func
}

func convertToContext(data any) (pongo2.Context, error) {
	switch v := data.(type) {
	case nil:
		return pongo2.Context{}, nil
	case pongo2.Context:
		return convertMapToContext(map[string]any(v))
	case map[string]any:
		return convertMapToContext(v)
	default:
		m, err := jsonToMap(v)
		if err != nil {
			return nil, err
		}
		return convertMapToContext(m)
	}
}

func convertMapToContext(in map[string]any) (pongo2.Context, error) {
	out := make(pongo2.Context, len(in))
	for key, value := range in {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		converted, err := convertValue(value)
		if err != nil {
			return nil, err
		}
		out[key] = converted
	}
	return out, nil
}

// convertValue flattens structs into maps keyed by their JSON tags so
// templates address fields the same way the data file names them.
func convertValue(value any) (any, error) {
	if value == nil {
		return nil, nil
	}
	if isCallable(value) {
		return value, nil
	}

	switch v := value.(type) {
	case pongo2.Context:
		return convertMap(map[string]any(v))
	case map[string]any:
		return convertMap(v)
	case []any:
		return convertSlice(v)
	case string, bool, int:
		return v, nil
	case float64:
		return normalizeNumber(v), nil
	default:
		raw, err := jsonToAny(v)
		if err != nil {
			return nil, err
		}
		switch decoded := raw.(type) {
		case map[string]any:
			return convertMap(decoded)
		case []any:
			return convertSlice(decoded)
		case float64:
			return normalizeNumber(decoded), nil
		default:
			return decoded, nil
		}
	}
}

func convertMap(in map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(in))
	for key, value := range in {
		converted, err := convertValue(value)
		if err != nil {
			return nil, err
		}
		out[key] = converted
	}
	return out, nil
}

func convertSlice(in []any) ([]any, error) {
	out := make([]any, 0, len(in))
	for _, value := range in {
		converted, err := convertValue(value)
		if err != nil {
			return nil, err
		}
		out = append(out, converted)
	}
	return out, nil
}

// normalizeNumber keeps whole numbers integral after the JSON round trip so
// question numbers print as "3" rather than "3.000000".
func normalizeNumber(v float64) any {
	if v == math.Trunc(v) && math.Abs(v) < 1<<53 {
		return int(v)
	}
	return v
}

func jsonToMap(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := map[string]any{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func jsonToAny(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

var (
	sanitizePolicyOnce sync.Once
	sanitizePolicy     *bluemonday.Policy
)

func registerDefaultFilters() {
	if !pongo2.FilterExists("trim") {
		_ = pongo2.RegisterFilter("trim", filterTrim)
	}
	if !pongo2.FilterExists("sanitize") {
		_ = pongo2.RegisterFilter("sanitize", filterSanitize)
	}
	if !pongo2.FilterExists("liquid") {
		_ = pongo2.RegisterFilter("liquid", filterLiquid)
	}
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

// filterSanitize strips any markup from scraped labels. The policy output is
// already escaped, so it is marked safe to avoid double escaping.
func filterSanitize(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	sanitizePolicyOnce.Do(func() {
		sanitizePolicy = bluemonday.StrictPolicy()
	})
	return pongo2.AsSafeValue(strings.TrimSpace(sanitizePolicy.Sanitize(in.String()))), nil
}

// filterLiquid wraps an expression in Liquid output delimiters so generated
// Jekyll files can carry expressions evaluated at site build time.
func filterLiquid(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	expr := strings.TrimSpace(in.String())
	if expr == "" {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsSafeValue("{{ " + expr + " }}"), nil
}
