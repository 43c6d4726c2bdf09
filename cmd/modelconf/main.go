// Command modelconf inspects resolved model configurations.
//
// Usage:
//
//	modelconf -model claude-sonnet-4
//	modelconf -model gpt-4o -context-env MYAPP_LEAD_CONTEXT_LIMIT
//	modelconf -file model.toml
//	modelconf -limits
//	modelconf -schema
//
// A .env file in the working directory is loaded into the environment
// before resolution, so overrides can be kept alongside the project.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/joho/godotenv"

	"github.com/randalmurphal/modelconf/configfile"
	"github.com/randalmurphal/modelconf/model"
)

func main() {
	modelName := flag.String("model", "", "model name to resolve")
	contextEnv := flag.String("context-env", "", "purpose-specific context-limit environment variable")
	file := flag.String("file", "", "resolve from a TOML or YAML config file")
	limits := flag.Bool("limits", false, "print the known-limits table and exit")
	schema := flag.Bool("schema", false, "print the ModelConfig JSON schema and exit")
	flag.Parse()

	// Best effort; a missing .env is fine
	_ = godotenv.Load()

	switch {
	case *limits:
		printLimits()
	case *schema:
		printJSON(model.ConfigSchema())
	case *file != "":
		cfg, err := configfile.Load(*file)
		if err != nil {
			log.Fatal(err)
		}
		printJSON(cfg)
	case *modelName != "":
		printJSON(model.NewWithContextEnv(*modelName, *contextEnv))
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func printLimits() {
	limits := model.AllModelLimits()
	sort.Slice(limits, func(i, j int) bool {
		return limits[i].Pattern < limits[j].Pattern
	})
	for _, l := range limits {
		fmt.Printf("%-12s %d\n", l.Pattern, l.ContextLimit)
	}
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(out))
}
