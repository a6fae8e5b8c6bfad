// Copyright (c) 2026 bigint contributors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/nullring/bigint"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bigcalc",
		Short: "Arbitrary-precision signed integer calculator",
	}

	var radix int
	rootCmd.PersistentFlags().IntVar(&radix, "radix", 10, "Radix for parsing operands and printing results (2..36)")

	addCmd := &cobra.Command{
		Use:   "add A B",
		Short: "Print A + B",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parsePair(args, radix)
			if err != nil {
				return err
			}
			fmt.Println(bigint.Add(a, b).ToTextRadix(radix))
			return nil
		},
	}

	subCmd := &cobra.Command{
		Use:   "sub A B",
		Short: "Print A - B",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parsePair(args, radix)
			if err != nil {
				return err
			}
			fmt.Println(bigint.Subtract(a, b).ToTextRadix(radix))
			return nil
		},
	}

	mulCmd := &cobra.Command{
		Use:   "mul A B",
		Short: "Print A * B",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parsePair(args, radix)
			if err != nil {
				return err
			}
			fmt.Println(bigint.Multiply(a, b).ToTextRadix(radix))
			return nil
		},
	}

	divCmd := &cobra.Command{
		Use:   "div A B",
		Short: "Print A / B and its remainder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parsePair(args, radix)
			if err != nil {
				return err
			}
			q, err := bigint.Divide(a, b)
			if err != nil {
				return err
			}
			fmt.Printf("%s remainder %s\n", q.ToTextRadix(radix), q.GetRemainder().ToTextRadix(radix))
			return nil
		},
	}

	modCmd := &cobra.Command{
		Use:   "mod A M",
		Short: "Print A mod M, in [0, M)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, m, err := parsePair(args, radix)
			if err != nil {
				return err
			}
			r, err := bigint.Mod(a, m)
			if err != nil {
				return err
			}
			fmt.Println(r.ToTextRadix(radix))
			return nil
		},
	}

	gcdCmd := &cobra.Command{
		Use:   "gcd A B",
		Short: "Print gcd(A, B)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parsePair(args, radix)
			if err != nil {
				return err
			}
			fmt.Println(bigint.GCD(a, b).ToTextRadix(radix))
			return nil
		},
	}

	pow10Cmd := &cobra.Command{
		Use:   "pow10 A N",
		Short: "Print A * 10^N (N may be negative)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bigint.Parse(args[0], radix)
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid exponent %q: %w", args[1], err)
			}
			fmt.Println(a.E(n).ToTextRadix(radix))
			return nil
		},
	}

	invCmd := &cobra.Command{
		Use:   "inv A M",
		Short: "Print the multiplicative inverse of A modulo M",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, m, err := parsePair(args, radix)
			if err != nil {
				return err
			}
			var result *bigint.Value
			var recipErr error
			if err := bigint.WithModulus(m, func() {
				result, recipErr = bigint.Reciprocal(a)
			}); err != nil {
				return err
			}
			if recipErr != nil {
				return recipErr
			}
			fmt.Println(result.ToTextRadix(radix))
			return nil
		},
	}

	rootCmd.AddCommand(addCmd, subCmd, mulCmd, divCmd, modCmd, gcdCmd, pow10Cmd, invCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// parsePair parses two operands in the given radix.
func parsePair(args []string, radix int) (*bigint.Value, *bigint.Value, error) {
	a, err := bigint.Parse(args[0], radix)
	if err != nil {
		return nil, nil, fmt.Errorf("operand %q: %w", args[0], err)
	}
	b, err := bigint.Parse(args[1], radix)
	if err != nil {
		return nil, nil, fmt.Errorf("operand %q: %w", args[1], err)
	}
	return a, b, nil
}
