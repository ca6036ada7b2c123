// Package locale loads the localized lock screen strings and carrier name tables.
//
// Catalogs are YAML files, one per locale. The en-US catalog is the base: any message a
// locale leaves blank falls back to it, and requests for locales without a catalog of
// their own resolve to it.
package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"carriertext/internal/carrier/models"
	"carriertext/pkg/platform/sentinel"
)

// BaseLocale is the fallback catalog every other locale is merged over.
const BaseLocale = "en-US"

//go:embed locales/*.yaml
var embeddedFS embed.FS

type catalogFile struct {
	Locale       string            `yaml:"locale"`
	Messages     models.Messages   `yaml:"messages"`
	CarrierNames map[string]string `yaml:"carrier_names"`
}

type snapshot struct {
	resources map[string]models.Resources
	tags      []language.Tag
	matcher   language.Matcher
}

// Catalog resolves locale identifiers to resources. It is safe for concurrent use and
// can be replaced in place by Replace.
type Catalog struct {
	mu   sync.RWMutex
	snap *snapshot
}

// LoadEmbedded loads the catalogs compiled into the binary.
func LoadEmbedded() (*Catalog, error) {
	embedded, err := fs.Sub(embeddedFS, "locales")
	if err != nil {
		return nil, fmt.Errorf("open embedded catalogs: %w", err)
	}
	return load(embedded)
}

// LoadDir loads the embedded catalogs and merges the *.yaml files in dir over them.
// Files for locales that are not embedded add new locales.
func LoadDir(dir string) (*Catalog, error) {
	embedded, err := fs.Sub(embeddedFS, "locales")
	if err != nil {
		return nil, fmt.Errorf("open embedded catalogs: %w", err)
	}
	return load(embedded, os.DirFS(dir))
}

func load(layers ...fs.FS) (*Catalog, error) {
	files := map[string]catalogFile{}

	for _, layer := range layers {
		paths, err := fs.Glob(layer, "*.yaml")
		if err != nil {
			return nil, fmt.Errorf("glob catalogs: %w", err)
		}
		sort.Strings(paths)

		for _, path := range paths {
			file, err := readFile(layer, path)
			if err != nil {
				return nil, err
			}
			if existing, ok := files[file.Locale]; ok {
				file = mergeFile(existing, file)
			}
			files[file.Locale] = file
		}
	}

	snap, err := build(files)
	if err != nil {
		return nil, err
	}
	return &Catalog{snap: snap}, nil
}

func readFile(fsys fs.FS, path string) (catalogFile, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return catalogFile{}, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return catalogFile{}, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	raw := strings.TrimSpace(file.Locale)
	if raw == "" {
		return catalogFile{}, fmt.Errorf("catalog %s: locale is required", path)
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return catalogFile{}, fmt.Errorf("catalog %s: invalid locale %q: %w", path, raw, err)
	}
	file.Locale = tag.String()
	return file, nil
}

func build(files map[string]catalogFile) (*snapshot, error) {
	base, ok := files[BaseLocale]
	if !ok {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}

	locales := make([]string, 0, len(files))
	for locale := range files {
		if locale != BaseLocale {
			locales = append(locales, locale)
		}
	}
	sort.Strings(locales)
	// The base tag goes first so the matcher falls back to it.
	locales = append([]string{BaseLocale}, locales...)

	snap := &snapshot{
		resources: make(map[string]models.Resources, len(files)),
		tags:      make([]language.Tag, 0, len(files)),
	}
	for _, locale := range locales {
		file := files[locale]
		snap.resources[locale] = models.Resources{
			Locale:       locale,
			Messages:     mergeMessages(base.Messages, file.Messages),
			CarrierNames: file.CarrierNames,
		}
		snap.tags = append(snap.tags, language.MustParse(locale))
	}
	snap.matcher = language.NewMatcher(snap.tags)

	return snap, nil
}

// Resources returns the resources of the best matching locale. An empty locale
// selects the base catalog, as does any locale without a close enough match.
func (c *Catalog) Resources(locale string) (models.Resources, error) {
	snap := c.current()

	if strings.TrimSpace(locale) == "" {
		return snap.resources[BaseLocale], nil
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return models.Resources{}, fmt.Errorf("%w: %q", sentinel.ErrUnknownLocale, locale)
	}

	_, index, _ := snap.matcher.Match(tag)
	return snap.resources[snap.tags[index].String()], nil
}

// Supports reports whether locale matches a catalog other than by fallback.
func (c *Catalog) Supports(locale string) bool {
	tag, err := language.Parse(locale)
	if err != nil {
		return false
	}
	_, _, confidence := c.current().matcher.Match(tag)
	return confidence != language.No
}

// Locales lists the loaded locales, base first.
func (c *Catalog) Locales() []string {
	snap := c.current()
	out := make([]string, 0, len(snap.tags))
	for _, tag := range snap.tags {
		out = append(out, tag.String())
	}
	return out
}

// Replace swaps in the contents of next. Callers holding c observe the new
// resources on their next lookup.
func (c *Catalog) Replace(next *Catalog) {
	snap := next.current()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap = snap
}

func (c *Catalog) current() *snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap
}

func mergeFile(base, override catalogFile) catalogFile {
	merged := catalogFile{
		Locale:       base.Locale,
		Messages:     mergeMessages(base.Messages, override.Messages),
		CarrierNames: make(map[string]string, len(base.CarrierNames)+len(override.CarrierNames)),
	}
	for from, to := range base.CarrierNames {
		merged.CarrierNames[from] = to
	}
	for from, to := range override.CarrierNames {
		merged.CarrierNames[from] = to
	}
	return merged
}

// mergeMessages fills every blank message of override from base.
func mergeMessages(base, override models.Messages) models.Messages {
	pick := func(b, o string) string {
		if o != "" {
			return o
		}
		return b
	}

	merged := models.Messages{
		NetworkLocked:      pick(base.NetworkLocked, override.NetworkLocked),
		SimLocked:          pick(base.SimLocked, override.SimLocked),
		SimPukLocked:       pick(base.SimPukLocked, override.SimPukLocked),
		PermDisabled:       pick(base.PermDisabled, override.PermDisabled),
		SimErrorShort:      pick(base.SimErrorShort, override.SimErrorShort),
		MissingSimShort:    pick(base.MissingSimShort, override.MissingSimShort),
		MissingSim:         pick(base.MissingSim, override.MissingSim),
		AirplaneMode:       pick(base.AirplaneMode, override.AirplaneMode),
		EmergencyCallsOnly: pick(base.EmergencyCallsOnly, override.EmergencyCallsOnly),
		CarrierDefault:     pick(base.CarrierDefault, override.CarrierDefault),
		RAT:                make(map[models.NetworkClass]string, len(base.RAT)),
	}
	for class, label := range base.RAT {
		merged.RAT[class] = label
	}
	for class, label := range override.RAT {
		if label != "" {
			merged.RAT[class] = label
		}
	}
	return merged
}
