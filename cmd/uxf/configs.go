package main

import (
	"fmt"
	"io"
	"os"

	"github.com/uxf-format/go-uxf/convert"
	"github.com/uxf-format/go-uxf/encode"
	"github.com/uxf-format/go-uxf/format"
	"github.com/uxf-format/go-uxf/token"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color     bool `cli:"name=color desc='output with color'"`
	TrueFalse bool `cli:"name=tf desc='render booleans as true/false'"`
	Verbose   bool `cli:"name=v desc='log what is being done'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command

	nat *token.Naturalizer
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// inFormat returns the format for reading file, guessing from its name
// when no format was given.
func (cfg *MainConfig) inFormat(file string) format.Format {
	switch {
	case cfg.InFormat != nil:
		return *cfg.InFormat
	case cfg.Y:
		return format.YAMLFormat
	case cfg.J:
		return format.JSONFormat
	}
	return format.FromSuffix(file)
}

func (cfg *MainConfig) outFormat() format.Format {
	switch {
	case cfg.OutFormat != nil:
		return *cfg.OutFormat
	case cfg.Y:
		return format.YAMLFormat
	}
	if cfg.Out != "" && cfg.Out != "-" {
		return format.FromSuffix(cfg.Out)
	}
	return format.JSONFormat
}

// naturalizer returns the naturalizer shared by a command run, building
// it on first use once the options are parsed.
func (cfg *MainConfig) naturalizer() *token.Naturalizer {
	if cfg.nat != nil {
		return cfg.nat
	}
	if cfg.Verbose {
		cfg.nat = token.New(token.WithLogger(theLog))
	} else {
		cfg.nat = token.New()
	}
	return cfg.nat
}

func (cfg *MainConfig) convOpts() []convert.Option {
	return []convert.Option{convert.WithNaturalizer(cfg.naturalizer())}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.UseTrueFalse(cfg.TrueFalse),
		encode.WithNaturalizer(cfg.naturalizer()),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type NatConfig struct {
	*MainConfig
	Rule bool `cli:"name=rule desc='print the rule which classified each token'"`

	Nat *cli.Command
}

type ConvConfig struct {
	*MainConfig
	Sort   bool   `cli:"name=sort desc='sort plain object keys'"`
	Indent string `cli:"name=indent desc='json indentation'"`

	Conv *cli.Command
}

type ShowConfig struct {
	*MainConfig
	Comments bool `cli:"name=c desc='include comments'"`

	Show *cli.Command
}

type CmpConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='only set the exit status'"`

	Cmp *cli.Command
}

type CheckConfig struct {
	*MainConfig
	List bool `cli:"name=l aliases=list desc='list the table schemas found'"`

	Check *cli.Command
}
