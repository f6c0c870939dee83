package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"reflex-remapper/internal/classpath"
	"reflex-remapper/internal/diagnostic"
	"reflex-remapper/internal/mapping"
)

func requireArgs(c *cli.Context, n int) error {
	if c.NArg() < n {
		return fmt.Errorf("%s: expected %s", c.Command.Name, c.Command.ArgsUsage)
	}

	return nil
}

// fieldCommand resolves one field name.
func fieldCommand(c *cli.Context) error {
	if err := requireArgs(c, 2); err != nil {
		return err
	}

	env, err := setup(c)
	if err != nil {
		return err
	}

	r, err := env.resolver()
	if err != nil {
		return err
	}

	owner, name := c.Args().Get(0), c.Args().Get(1)

	if c.Bool("explain") {
		fmt.Fprintln(c.App.Writer, r.ExplainField(owner, name))
		return nil
	}

	fmt.Fprintln(c.App.Writer, r.ResolveField(owner, name))

	return nil
}

// methodCommand resolves one method name for the argument classes given
// after owner and name.
func methodCommand(c *cli.Context) error {
	if err := requireArgs(c, 2); err != nil {
		return err
	}

	env, err := setup(c)
	if err != nil {
		return err
	}

	r, err := env.resolver()
	if err != nil {
		return err
	}

	owner, name := c.Args().Get(0), c.Args().Get(1)

	args, err := classpath.LoadAll(env.loader, c.Args().Slice()[2:]...)
	if err != nil {
		return fmt.Errorf("failed to load argument classes: %w", err)
	}

	if c.Bool("explain") {
		res, err := r.ExplainMethod(owner, name, args)
		if err != nil {
			return err
		}

		fmt.Fprintln(c.App.Writer, res)

		return nil
	}

	resolved, err := r.ResolveMethod(owner, name, args)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.App.Writer, resolved)

	return nil
}

// classCommand translates a class name and prints the scheme pair.
func classCommand(c *cli.Context) error {
	if err := requireArgs(c, 1); err != nil {
		return err
	}

	env, err := setup(c)
	if err != nil {
		return err
	}

	r, err := env.resolver()
	if err != nil {
		return err
	}

	name := c.Args().First()

	fmt.Fprintln(c.App.Writer, r.TranslateClassName(name))

	intermediate, canonical, ok := r.Disambiguate(name)
	if !ok {
		fmt.Fprintf(c.App.Writer, "intermediate: %s\ncanonical:    (unmapped)\n", intermediate)
		return nil
	}

	fmt.Fprintf(c.App.Writer, "intermediate: %s\ncanonical:    %s\n", intermediate, canonical)

	return nil
}

// checkCommand validates every mapping file and the merged table.
func checkCommand(c *cli.Context) error {
	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	paths, err := mapping.Expand(cfg.Mapping.Files...)
	if err != nil {
		return err
	}

	all := &diagnostic.Diagnostics{}
	sources := make([]mapping.Source, 0, len(paths))

	for _, path := range paths {
		f, err := mapping.LoadFile(path)
		if err != nil {
			all.AddError("unreadable_file", err.Error(), path, "")
			continue
		}

		all.Merge(*mapping.Validate(f, path))
		sources = append(sources, mapping.Source{Name: path, File: f})
	}

	_, merged := mapping.Build(sources...)
	all.Merge(*merged)

	for _, d := range all.All() {
		fmt.Fprintf(c.App.Writer, "%s: %s\n", d.Severity, d)
	}

	if all.HasErrors() {
		return fmt.Errorf("mapping check failed: %d errors in %d files", len(all.Errors), len(paths))
	}

	fmt.Fprintf(c.App.Writer, "ok: %d files, %d warnings\n", len(paths), len(all.Warnings))

	return nil
}
