// Command numjit is a diagnostic tool for the typing template and overload
// resolution core, not part of its public contract (SPEC_FULL.md section A).
// It reads one call per line from stdin, shaped
//
//	op_key type1 type2 ...
//
// and prints the resolved signature, or the error. Recognised type tokens
// are the numeric tower names (int32, uint64, float64, complex128, ...)
// plus intp, boolean, none, slice2_type and slice3_type.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/Postur/numba/internal/numtypes"
	"github.com/Postur/numba/pkg/numjit"
)

var scalarTypes = map[string]numtypes.Type{
	"uint8": numtypes.Uint8, "uint16": numtypes.Uint16, "uint32": numtypes.Uint32, "uint64": numtypes.Uint64,
	"int8": numtypes.Int8, "int16": numtypes.Int16, "int32": numtypes.Int32, "int64": numtypes.Int64,
	"float32": numtypes.Float32, "float64": numtypes.Float64,
	"complex64": numtypes.Complex64, "complex128": numtypes.Complex128,
	"intp": numtypes.Intp, "boolean": numtypes.Boolean, "none": numtypes.None,
	"slice2_type": numtypes.Slice2Type, "slice3_type": numtypes.Slice3Type,
}

func main() {
	useColor := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		useColor = false
	}

	vm, err := numjit.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, "numjit: starting VM:", err)
		os.Exit(1)
	}
	defer vm.Close()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		opKey := fields[0]

		args := make([]numtypes.Type, 0, len(fields)-1)
		ok := true
		for _, tok := range fields[1:] {
			t, found := scalarTypes[tok]
			if !found {
				printError(useColor, fmt.Sprintf("unrecognised type token %q", tok))
				ok = false
				break
			}
			args = append(args, t)
		}
		if !ok {
			continue
		}

		sig, err := vm.ResolveFunction(opKey, args)
		switch {
		case err != nil:
			printError(useColor, err.Error())
		case sig == nil:
			printInfo(useColor, fmt.Sprintf("%s%s: no matching overload", opKey, numtypes.TypeListString(args)))
		default:
			printOK(useColor, sig.Describe())
		}
	}
}

func printOK(color bool, s string) {
	if color {
		fmt.Printf("\033[32m%s\033[0m\n", s)
		return
	}
	fmt.Println(s)
}

func printInfo(color bool, s string) {
	if color {
		fmt.Printf("\033[33m%s\033[0m\n", s)
		return
	}
	fmt.Println(s)
}

func printError(color bool, s string) {
	if color {
		fmt.Fprintf(os.Stderr, "\033[31m%s\033[0m\n", s)
		return
	}
	fmt.Fprintln(os.Stderr, s)
}
