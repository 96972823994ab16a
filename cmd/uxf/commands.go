package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "uxf").
		WithSynopsis("uxf [opts] command [opts]").
		WithDescription("uxf is a tool for inspecting UXF values.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return uxfMain(cfg, cc, args)
		}).
		WithSubs(
			NatCommand(cfg),
			ConvCommand(cfg),
			ShowCommand(cfg),
			CmpCommand(cfg),
			CheckCommand(cfg))
}

func NatCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &NatConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Nat, "nat").
		WithAliases("n").
		WithSynopsis("nat [opts] [tokens]").
		WithDescription(natDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return nat(cfg, cc, args)
		})
}

const natDescription = `nat naturalizes tokens.

Each argument, or each line of standard input when there are no arguments,
is classified as a UXF scalar and printed as

  kind<TAB>rendered

where rendered is the canonical token for the value.  With -rule the
classification rule which matched is printed as a third column.`

func ConvCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Conv, "conv").
		WithAliases("c").
		WithSynopsis("conv [opts] [files]").
		WithDescription("convert values between the JSON and YAML interop forms").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return conv(cfg, cc, args)
		})
}

func ShowCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ShowConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Show, "show").
		WithAliases("s").
		WithSynopsis("show [opts] [files]").
		WithDescription("show an outline of values with their kinds").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return show(cfg, cc, args)
		})
}

func CmpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CmpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Cmp, "cmp").
		WithAliases("diff", "d").
		WithSynopsis("cmp [opts] a b").
		WithDescription("compare two values and list their differences").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return cmpFiles(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithSynopsis("check [opts] [files]").
		WithDescription("check that tables with the same name agree on their fields").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}
