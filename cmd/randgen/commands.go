package main

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/kit/cmd/flags"
	"github.com/prysmaticlabs/kit/config/params"
	"github.com/prysmaticlabs/kit/crypto/rand"
	"github.com/urfave/cli/v2"
)

func commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "string",
			Usage: "Generates strings of a fixed length or of a length in [min-length, max-length)",
			Flags: []cli.Flag{
				flags.LengthFlag,
				flags.MinLengthFlag,
				flags.MaxLengthFlag,
				flags.CompositionFlag(),
			},
			Action: stringAction,
		},
		{
			Name:   "char",
			Usage:  "Generates single characters",
			Flags:  []cli.Flag{flags.CompositionFlag()},
			Action: charAction,
		},
		{
			Name:   "int",
			Usage:  "Generates integers in [min, max)",
			Flags:  []cli.Flag{flags.MinFlag, flags.MaxFlag},
			Action: intAction,
		},
		{
			Name:  "bool",
			Usage: "Generates booleans",
			Action: func(ctx *cli.Context) error {
				return generate(ctx, "bool", func(g rand.Generator) (string, error) {
					return strconv.FormatBool(g.NextBool()), nil
				})
			},
		},
		{
			Name:  "byte",
			Usage: "Generates bytes, printed in decimal",
			Action: func(ctx *cli.Context) error {
				return generate(ctx, "byte", func(g rand.Generator) (string, error) {
					return strconv.Itoa(int(g.NextByte())), nil
				})
			},
		},
		{
			Name:   "bytes",
			Usage:  "Generates hex encoded byte strings",
			Flags:  []cli.Flag{flags.LengthFlag},
			Action: bytesAction,
		},
		{
			Name:  "short",
			Usage: "Generates integers in [0, 32767]",
			Action: func(ctx *cli.Context) error {
				return generate(ctx, "short", func(g rand.Generator) (string, error) {
					return strconv.Itoa(int(g.NextShort())), nil
				})
			},
		},
		{
			Name:  "long",
			Usage: "Generates non-negative 64-bit integers",
			Action: func(ctx *cli.Context) error {
				return generate(ctx, "long", func(g rand.Generator) (string, error) {
					return strconv.FormatInt(g.NextLong(), 10), nil
				})
			},
		},
		{
			Name:  "decimal",
			Usage: "Generates 96-bit decimals with a scale in [0, 28]",
			Action: func(ctx *cli.Context) error {
				return generate(ctx, "decimal", func(g rand.Generator) (string, error) {
					return g.NextDecimal().String(), nil
				})
			},
		},
		{
			Name:  "double",
			Usage: "Generates floating point numbers in [0, 1]",
			Action: func(ctx *cli.Context) error {
				return generate(ctx, "double", func(g rand.Generator) (string, error) {
					return strconv.FormatFloat(g.NextDouble(), 'g', -1, 64), nil
				})
			},
		},
		{
			Name:   "pool",
			Usage:  "Prints the characters a composition draws from",
			Flags:  []cli.Flag{flags.CompositionFlag()},
			Action: poolAction,
		},
	}
}

// composition returns the composition flag of the command, or the configured
// default when it is not set.
func composition(ctx *cli.Context) (rand.Composition, error) {
	if ctx.IsSet(flags.CompositionFlagName) {
		v, ok := ctx.Generic(flags.CompositionFlagName).(*flags.CompositionValue)
		if !ok {
			return rand.None, errors.New("composition flag has an unexpected type")
		}
		return v.Composition, nil
	}
	return rand.ParseComposition(params.ActiveRandConfig().StringComposition)
}

func stringAction(ctx *cli.Context) error {
	c, err := composition(ctx)
	if err != nil {
		return err
	}
	if ctx.IsSet(flags.LengthFlag.Name) {
		if ctx.IsSet(flags.MinLengthFlag.Name) || ctx.IsSet(flags.MaxLengthFlag.Name) {
			return fmt.Errorf("--%s cannot be combined with --%s or --%s",
				flags.LengthFlag.Name, flags.MinLengthFlag.Name, flags.MaxLengthFlag.Name)
		}
		length := ctx.Int(flags.LengthFlag.Name)
		return generate(ctx, "string", func(g rand.Generator) (string, error) {
			return g.NextString(length, c)
		})
	}
	conf := params.ActiveRandConfig()
	minLength, maxLength := conf.MinStringLength, conf.MaxStringLength
	if ctx.IsSet(flags.MinLengthFlag.Name) {
		minLength = ctx.Int(flags.MinLengthFlag.Name)
	}
	if ctx.IsSet(flags.MaxLengthFlag.Name) {
		maxLength = ctx.Int(flags.MaxLengthFlag.Name)
	}
	return generate(ctx, "string", func(g rand.Generator) (string, error) {
		return g.NextStringRange(minLength, maxLength, c)
	})
}

func charAction(ctx *cli.Context) error {
	c, err := composition(ctx)
	if err != nil {
		return err
	}
	return generate(ctx, "char", func(g rand.Generator) (string, error) {
		r, err := g.NextChar(c)
		if err != nil {
			return "", err
		}
		return string(r), nil
	})
}

func intAction(ctx *cli.Context) error {
	min, max := ctx.Int(flags.MinFlag.Name), ctx.Int(flags.MaxFlag.Name)
	return generate(ctx, "int", func(g rand.Generator) (string, error) {
		v, err := g.IntRange(min, max)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(v), nil
	})
}

func bytesAction(ctx *cli.Context) error {
	length := params.ActiveRandConfig().BytesLength
	if ctx.IsSet(flags.LengthFlag.Name) {
		length = ctx.Int(flags.LengthFlag.Name)
	}
	return generate(ctx, "bytes", func(g rand.Generator) (string, error) {
		b, err := g.NextBytes(length)
		if err != nil {
			return "", err
		}
		return hex.EncodeToString(b), nil
	})
}

func poolAction(ctx *cli.Context) error {
	c, err := composition(ctx)
	if err != nil {
		return err
	}
	p, err := rand.Pool(c)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.App.Writer, p)
	return err
}
