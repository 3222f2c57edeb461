package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"time"

	"github.com/vilosource/vfwidgets-theme/internal/overrides"
	"github.com/vilosource/vfwidgets-theme/internal/storage"
	"github.com/vilosource/vfwidgets-theme/internal/theme"
	"github.com/vilosource/vfwidgets-theme/internal/tokens"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: vftheme [flags] <command> [args]

Commands:
  tokens [prefix]          List known color tokens, optionally under a prefix
  validate <file>          Validate a theme file (.json or .toml)
  show <file> [token]      Resolve and print theme colors
  contrast <file>          Run the accessibility contrast report
  overrides <db>           Dump persisted color overrides

Flags:
`)
	flag.PrintDefaults()
}

func main() {
	debugMode := flag.Bool("debug", false, "Enable debug logging to stderr")
	flag.Usage = usage
	flag.Parse()

	if *debugMode {
		log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	} else {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	var err error
	switch args[0] {
	case "tokens":
		prefix := ""
		if len(args) > 1 {
			prefix = args[1]
		}
		err = runTokens(prefix)
	case "validate":
		if len(args) < 2 {
			err = fmt.Errorf("validate requires a theme file")
		} else {
			err = runValidate(args[1])
		}
	case "show":
		if len(args) < 2 {
			err = fmt.Errorf("show requires a theme file")
		} else {
			token := ""
			if len(args) > 2 {
				token = args[2]
			}
			err = runShow(args[1], token)
		}
	case "contrast":
		if len(args) < 2 {
			err = fmt.Errorf("contrast requires a theme file")
		} else {
			err = runContrast(args[1])
		}
	case "overrides":
		if len(args) < 2 {
			err = fmt.Errorf("overrides requires a database path")
		} else {
			err = runOverrides(args[1])
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTokens(prefix string) error {
	var names []string
	if prefix == "" {
		names = tokens.AllNames()
	} else {
		names = tokens.NamesWithPrefix(prefix)
	}

	fmt.Printf("Known tokens (%d):\n", len(names))
	for _, name := range names {
		tok, _ := tokens.Get(name)
		fmt.Printf("  %-40s light=%s dark=%s  %s\n", name, tok.DefaultLight, tok.DefaultDark, tok.Description)
	}
	return nil
}

func runValidate(path string) error {
	t, err := theme.LoadThemeFromFile(path)
	if err != nil {
		return err
	}

	fmt.Printf("✓ %s (%s, %d colors)\n", t.Name(), t.Type(), t.ColorCount())
	return nil
}

func runShow(path, token string) error {
	t, err := theme.LoadThemeFromFile(path)
	if err != nil {
		return err
	}

	resolver, err := theme.NewResolver(t)
	if err != nil {
		return err
	}

	if token != "" {
		value, err := resolver.Color(token)
		if err != nil {
			validator := theme.NewValidator()
			fmt.Fprintln(os.Stderr, validator.FormatError(token, err.Error()))
			os.Exit(1)
		}
		fmt.Println(value)
		return nil
	}

	names := make([]string, 0, t.ColorCount())
	for name := range t.Colors() {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("%s (%s):\n", t.Name(), t.Type())
	for _, name := range names {
		value, err := resolver.Color(name)
		if err != nil {
			fmt.Printf("  %-40s <error: %v>\n", name, err)
			continue
		}
		fmt.Printf("  %-40s %s\n", name, value)
	}
	return nil
}

func runContrast(path string) error {
	t, err := theme.LoadThemeFromFile(path)
	if err != nil {
		return err
	}

	validator := theme.NewValidator()
	report := validator.ValidateAccessibility(t)

	if report.IsValid && len(report.Warnings) == 0 {
		fmt.Printf("✓ %s passes all contrast checks\n", t.Name())
		return nil
	}

	for _, w := range report.Warnings {
		fmt.Printf("  warning: %s\n", w)
	}
	for _, e := range report.Errors {
		fmt.Printf("  error:   %s\n", e)
	}
	if !report.IsValid {
		return fmt.Errorf("%s fails WCAG contrast requirements", t.Name())
	}
	return nil
}

func runOverrides(dbPath string) error {
	store, err := storage.OpenOverrideStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	reg, err := store.Load(ctx)
	if err != nil {
		return err
	}

	layerMap := reg.ToMap()
	for _, layer := range []string{overrides.LayerApp, overrides.LayerUser} {
		values := layerMap[layer]
		names := make([]string, 0, len(values))
		for name := range values {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Printf("%s (%d):\n", layer, len(names))
		for _, name := range names {
			fmt.Printf("  %-40s %s\n", name, values[name])
		}
	}
	return nil
}
