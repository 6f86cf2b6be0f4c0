package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// Formatter renders data for a command's output
type Formatter interface {
	Format(io.Writer, interface{}) error
}

// FormatterFunc is a function that implements Formatter
type FormatterFunc func(io.Writer, interface{}) error

// Format implements Formatter
func (f FormatterFunc) Format(w io.Writer, data interface{}) error {
	return f(w, data)
}

var (
	yamlFormatter = FormatterFunc(func(w io.Writer, data interface{}) error {
		b, err := yaml.Marshal(data)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	})

	jsonFormatter = FormatterFunc(func(w io.Writer, data interface{}) error {
		b, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(data, "", "  ")
		if err != nil {
			return err
		}
		_, err = w.Write(append(b, '\n'))
		return err
	})
)

// outputFormat is the value of a --output flag
type outputFormat struct {
	name        string
	defaultName string
	formatters  map[string]Formatter
}

func (o *outputFormat) String() string {
	return o.name
}

func (o *outputFormat) Set(name string) error {
	if _, ok := o.formatters[name]; !ok {
		return fmt.Errorf("unsupported output format %q, expected one of: %s", name, strings.Join(o.names(), ", "))
	}
	o.name = name
	return nil
}

func (o *outputFormat) Type() string {
	return "format"
}

func (o *outputFormat) names() []string {
	names := make([]string, 0, len(o.formatters))
	for name := range o.formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (o *outputFormat) reset() {
	o.name = o.defaultName
}

func (o *outputFormat) Format(w io.Writer, data interface{}) error {
	return o.formatters[o.name].Format(w, data)
}

// addFormatFlag adds --output to a command. The yaml and json formats are always available.
func addFormatFlag(cmd *cobra.Command, defaultFormat string, formatters map[string]Formatter) *outputFormat {
	all := map[string]Formatter{
		"yaml": yamlFormatter,
		"json": jsonFormatter,
	}
	for name, formatter := range formatters {
		all[name] = formatter
	}
	o := &outputFormat{name: defaultFormat, defaultName: defaultFormat, formatters: all}
	cmd.Flags().VarP(o, "output", "o", "Output format: "+strings.Join(o.names(), ", "))
	return o
}
