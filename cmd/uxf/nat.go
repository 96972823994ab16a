package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/uxf-format/go-uxf/encode"

	"github.com/scott-cotton/cli"
)

func nat(cfg *NatConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Nat.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	if len(args) != 0 {
		for _, tok := range args {
			if err := natToken(cfg, cc.Out, opts, tok); err != nil {
				return err
			}
		}
		return nil
	}
	scanner := bufio.NewScanner(cc.In)
	for scanner.Scan() {
		if err := natToken(cfg, cc.Out, opts, scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading tokens: %w", err)
	}
	return nil
}

func natToken(cfg *NatConfig, w io.Writer, opts []encode.EncodeOption, tok string) error {
	v, rule := cfg.naturalizer().Classify(tok)
	s, err := encode.Scalar(v, opts...)
	if err != nil {
		return fmt.Errorf("error rendering %q: %w", tok, err)
	}
	if cfg.Rule {
		_, err = fmt.Fprintf(w, "%s\t%s\t%s\n", v.TypeName(), s, rule)
	} else {
		_, err = fmt.Fprintf(w, "%s\t%s\n", v.TypeName(), s)
	}
	return err
}
