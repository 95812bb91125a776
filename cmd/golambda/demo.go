package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gitrdm/golambda/pkg/church"
	"github.com/gitrdm/golambda/pkg/lambda"
)

// maxSteps bounds every reduction the driver performs. Demo terms all
// normalize quickly; the bound exists so a typo while extending the
// demo cannot hang the process.
var maxSteps int

var demoCmd = &cobra.Command{
	Use:   "demo [booleans|arithmetic|pairs|all]",
	Short: "Print sample reductions",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDemo,
}

func init() {
	demoCmd.Flags().IntVar(&maxSteps, "max-steps", 10000, "reduction pass limit per term")
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	section := "all"
	if len(args) == 1 {
		section = args[0]
	}

	switch section {
	case "booleans":
		demoBooleans()
	case "arithmetic":
		demoArithmetic()
	case "pairs":
		demoPairs()
	case "all":
		demoBasics()
		demoBooleans()
		demoArithmetic()
		demoPairs()
	default:
		return fmt.Errorf("unknown demo section %q", section)
	}
	return nil
}

// reduce normalizes under the step bound, logging if the bound ran out.
func reduce(term lambda.Term) lambda.Term {
	out, normal := lambda.NormalizeBounded(term, maxSteps)
	if !normal {
		slog.Warn("step limit reached before normal form", "term", term.String(), "max_steps", maxSteps)
	}
	return out
}

// equivalent checks semantic equality, treating an open term as a
// driver bug.
func equivalent(a, b lambda.Term) bool {
	eq, err := lambda.Equivalent(a, b)
	if err != nil {
		slog.Error("equivalence check failed", "error", err)
		return false
	}
	return eq
}

func demoBasics() {
	fmt.Println("=== Terms and reduction ===")

	id := lambda.NewAbs("x", lambda.NewVar("x"))
	fmt.Printf("identity:           %s\n", id)

	redex := lambda.NewApp(id, lambda.NewVar("y"))
	fmt.Printf("redex:              %s\n", redex)
	fmt.Printf("free variables:     %v\n", lambda.FreeVariables(redex))
	fmt.Printf("one step:           %s\n", lambda.ReduceStep(redex))

	nameless, err := lambda.ToNameless(lambda.NewApp(id, id))
	if err != nil {
		slog.Error("nameless conversion failed", "error", err)
		return
	}
	fmt.Printf("de Bruijn form:     %s\n", nameless)
	fmt.Println()
}

func demoBooleans() {
	fmt.Println("=== Church booleans ===")
	fmt.Printf("true:  %s\n", church.True())
	fmt.Printf("false: %s\n", church.False())

	booleans := []struct {
		name string
		term lambda.Term
	}{
		{"true", church.True()},
		{"false", church.False()},
	}

	for _, a := range booleans {
		for _, b := range booleans {
			and := lambda.Apply(church.And(), a.term, b.term)
			or := lambda.Apply(church.Or(), a.term, b.term)
			fmt.Printf("and(%s, %s) ≡ true: %v\n", a.name, b.name, equivalent(and, church.True()))
			fmt.Printf("or(%s, %s)  ≡ true: %v\n", a.name, b.name, equivalent(or, church.True()))
		}
	}

	fmt.Printf("not(true)  ≡ false: %v\n", equivalent(lambda.NewApp(church.Not(), church.True()), church.False()))
	fmt.Printf("not(false) ≡ true:  %v\n", equivalent(lambda.NewApp(church.Not(), church.False()), church.True()))
	fmt.Println()
}

func demoArithmetic() {
	fmt.Println("=== Church numerals ===")

	five := church.FromInt(5)
	seven := church.FromInt(7)
	fmt.Printf("five:  %s\n", five)
	fmt.Printf("seven: %s\n", seven)

	succ := reduce(lambda.NewApp(church.Succ(), five))
	printNumeral("succ(5)", succ)

	sum := reduce(lambda.Apply(church.Add(), five, seven))
	printNumeral("5 + 7", sum)

	two := lambda.NewApp(church.Succ(), lambda.NewApp(church.Succ(), church.FromInt(0)))
	three := lambda.NewApp(church.Succ(), two)
	product := reduce(lambda.Apply(church.Mul(), lambda.Apply(church.Mul(), two, two), three))
	printNumeral("(2 * 2) * 3", product)
	fmt.Println()
}

func demoPairs() {
	fmt.Println("=== Church pairs ===")

	pair := church.Pair(church.FromInt(12), lambda.Apply(church.Mul(), church.FromInt(3), church.FromInt(4)))
	fmt.Printf("pair: %s\n", pair)

	printNumeral("first", reduce(lambda.NewApp(church.First(), pair)))
	printNumeral("second", reduce(lambda.NewApp(church.Second(), pair)))
	fmt.Println()
}

// printNumeral decodes a normal form and prints both renderings.
func printNumeral(label string, term lambda.Term) {
	n, err := church.ToInt(term)
	if err != nil {
		slog.Error("numeral decode failed", "label", label, "error", err)
		return
	}
	fmt.Printf("%-12s = %d    %s\n", label, n, term)
}
