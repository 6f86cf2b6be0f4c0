// Package config reads and writes the configuration file of a repository.
//
// The format is the familiar section-scoped one:
//
//  [core]
//  	repositoryformatversion = 0
//  	filemode = false
//  	bare = false
//
// Section and key names are case-insensitive and stored lower-cased.
// Values are strings; Int and Bool convert them on demand.
package config

import (
	"bytes"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-ini/ini"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/xxrBear/build-your-own-git/pkg/repo/status"
)

// Core section and the keys every repository carries
const (
	SectionCore = "core"

	KeyFormatVersion = "repositoryformatversion"
	KeyFileMode      = "filemode"
	KeyBare          = "bare"

	// FormatVersion is the only repository format version this build understands
	FormatVersion = 0
)

var loadOptions = ini.LoadOptions{
	Insensitive:        true,
	AllowBooleanKeys:   true,
	KeyValueDelimiters: "=",
}

// Config holds section -> key -> value settings.
//
// The zero value is not usable: get one from New, Default, Parse or Load.
type Config struct {
	file *ini.File
}

// New empty configuration
func New() *Config {
	return &Config{file: ini.Empty(loadOptions)}
}

// Default configuration for a new repository
func Default() *Config {
	c := New()
	c.set(SectionCore, KeyFormatVersion, cast.ToString(FormatVersion))
	c.set(SectionCore, KeyFileMode, "false")
	c.set(SectionCore, KeyBare, "false")
	return c
}

// Parse a configuration document
func Parse(data []byte) (*Config, error) {
	f, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, status.ErrConfigParse.Wrap(err)
	}
	for _, sec := range f.Sections() {
		if isDefault(sec) && len(sec.Keys()) > 0 {
			return nil, errors.WithMessagef(status.ErrConfigParse,
				"key %q outside of any section or in reserved section %q", sec.Keys()[0].Name(), sec.Name())
		}
	}
	return &Config{file: f}, nil
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func isDefault(sec *ini.Section) bool {
	return strings.EqualFold(sec.Name(), ini.DefaultSection)
}

// hasKey only looks at the section itself: go-ini would also look up
// a "parent" section cut at the last dot
func hasKey(sec *ini.Section, key string) bool {
	for _, k := range sec.KeyStrings() {
		if k == key {
			return true
		}
	}
	return false
}

func (c *Config) section(name string) *ini.Section {
	sec, err := c.file.GetSection(normalize(name))
	if err != nil {
		return nil
	}
	return sec
}

// Get a raw value
func (c *Config) Get(section, key string) (string, bool) {
	sec := c.section(section)
	if sec == nil || !hasKey(sec, normalize(key)) {
		return "", false
	}
	return sec.Key(normalize(key)).Value(), true
}

// Set a value, creating the section when needed.
//
// Names follow the usual rules: a section is made of letters, digits, '-' and '.',
// optionally followed by a quoted subsection; a key starts with a letter and
// goes on with letters, digits and '-'. Invalid names, and values which could
// not be read back as is, yield status.ErrConfigParse.
func (c *Config) Set(section, key, value string) error {
	section, key = normalize(section), normalize(key)
	if !sectionPattern.MatchString(section) || strings.EqualFold(section, ini.DefaultSection) {
		return errors.WithMessagef(status.ErrConfigParse, "invalid section name %q", section)
	}
	if !keyPattern.MatchString(key) {
		return errors.WithMessagef(status.ErrConfigParse, "invalid key name %q in section %q", key, section)
	}
	if _, ok := encodeValue(value); !ok {
		return errors.WithMessagef(status.ErrConfigParse, "value of %s.%s cannot be stored", section, key)
	}
	c.set(section, key, value)
	return nil
}

func (c *Config) set(section, key, value string) {
	c.file.Section(normalize(section)).Key(normalize(key)).SetValue(value)
}

// Unset removes a key. Sections left empty are removed too.
// It returns false when there was nothing to remove.
func (c *Config) Unset(section, key string) bool {
	sec := c.section(section)
	if sec == nil || !hasKey(sec, normalize(key)) {
		return false
	}
	sec.DeleteKey(normalize(key))
	if len(sec.Keys()) == 0 {
		c.file.DeleteSection(sec.Name())
	}
	return true
}

// Sections in file order
func (c *Config) Sections() []string {
	var names []string
	for _, sec := range c.file.Sections() {
		if isDefault(sec) {
			continue
		}
		names = append(names, sec.Name())
	}
	return names
}

// Keys of a section in file order
func (c *Config) Keys(section string) []string {
	sec := c.section(section)
	if sec == nil {
		return nil
	}
	return sec.KeyStrings()
}

// Int value of a key. A missing or non-integer value is a parse error.
func (c *Config) Int(section, key string) (int, error) {
	v, ok := c.Get(section, key)
	if !ok {
		return 0, errors.WithMessagef(status.ErrConfigParse, "missing %s.%s", section, key)
	}
	i, err := cast.ToIntE(strings.TrimSpace(v))
	if err != nil {
		return 0, errors.WithMessagef(status.ErrConfigParse.Wrap(err), "%s.%s", section, key)
	}
	return i, nil
}

// Bool value of a key. Besides true/false and 1/0, yes/no and on/off are accepted.
func (c *Config) Bool(section, key string) (bool, error) {
	v, ok := c.Get(section, key)
	if !ok {
		return false, errors.WithMessagef(status.ErrConfigParse, "missing %s.%s", section, key)
	}
	switch normalize(v) {
	case "yes", "on":
		return true, nil
	case "no", "off":
		return false, nil
	}
	b, err := cast.ToBoolE(normalize(v))
	if err != nil {
		return false, errors.WithMessagef(status.ErrConfigParse.Wrap(err), "%s.%s", section, key)
	}
	return b, nil
}

// Map copy of the settings, section -> key -> value
func (c *Config) Map() map[string]map[string]string {
	m := make(map[string]map[string]string)
	for _, section := range c.Sections() {
		keys := make(map[string]string)
		for _, key := range c.Keys(section) {
			keys[key], _ = c.Get(section, key)
		}
		m[section] = keys
	}
	return m
}

// MarshalYAML renders the settings as nested mappings
func (c *Config) MarshalYAML() (interface{}, error) {
	return c.Map(), nil
}

// MarshalJSON renders the settings as nested objects, with sorted keys
func (c *Config) MarshalJSON() ([]byte, error) {
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(c.Map())
}

// Equal tells if both configurations hold the same settings, regardless of order
func (c *Config) Equal(other *Config) bool {
	if c == nil || other == nil {
		return c == other
	}
	return reflect.DeepEqual(c.Map(), other.Map())
}

// Clone yields an independent copy
func (c *Config) Clone() *Config {
	clone := New()
	for _, section := range c.Sections() {
		for _, key := range c.Keys(section) {
			v, _ := c.Get(section, key)
			clone.set(section, key, v)
		}
	}
	return clone
}

// Validate checks that the configuration can be written and read back as is
func (c *Config) Validate() error {
	for _, sec := range c.file.Sections() {
		if isDefault(sec) {
			if len(sec.Keys()) > 0 {
				return errors.WithMessagef(status.ErrConfigParse, "key %q outside of any section", sec.Keys()[0].Name())
			}
			continue
		}
		if strings.ContainsAny(sec.Name(), "\r\n") {
			return errors.WithMessagef(status.ErrConfigParse, "invalid section name %q", sec.Name())
		}
		for _, key := range sec.Keys() {
			if !writableKey(key.Name()) {
				return errors.WithMessagef(status.ErrConfigParse, "invalid key name %q in section %q", key.Name(), sec.Name())
			}
			if _, ok := encodeValue(key.Value()); !ok {
				return errors.WithMessagef(status.ErrConfigParse, "value of %s.%s cannot be stored", sec.Name(), key.Name())
			}
		}
	}
	return nil
}

// Bytes serializes the configuration. Call Validate first to make sure it reads back the same.
func (c *Config) Bytes() []byte {
	var buf bytes.Buffer
	for _, section := range c.Sections() {
		buf.WriteString("[" + section + "]\n")
		for _, key := range c.Keys(section) {
			v, _ := c.Get(section, key)
			encoded, _ := encodeValue(v)
			buf.WriteString("\t" + key + " = " + encoded + "\n")
		}
	}
	return buf.Bytes()
}

func (c *Config) String() string {
	return string(c.Bytes())
}

var (
	sectionPattern = regexp.MustCompile(`^[a-z0-9.-]+( "[^"\]\r\n]*")?$`)
	keyPattern     = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
)

func writableKey(k string) bool {
	return k != "" && k == strings.TrimSpace(k) &&
		!strings.ContainsAny(k, "=\r\n") && !strings.ContainsAny(k[:1], "\"`#;[")
}

// encodeValue quotes v so that the parser returns it unchanged.
//
// A bare value is trimmed, loses quotes surrounding it, stops at # or ;
// and continues on the next line after a trailing backslash. A value between
// backticks is taken up to the last backtick of the line. A value between
// triple double quotes may span lines, up to the first line holding """ again.
func encodeValue(v string) (string, bool) {
	switch {
	case strings.Contains(v, "\n"):
		if strings.Contains(v, `"""`) {
			return `"""` + v + `"""`, false
		}
		return `"""` + v + `"""`, true
	case v == "":
		return v, true
	case strings.TrimSpace(v) != v,
		strings.ContainsAny(v, "#;\r"),
		strings.HasSuffix(v, `\`),
		strings.ContainsAny(v[:1], "\"'`"):
		return "`" + v + "`", true
	default:
		return v, true
	}
}
