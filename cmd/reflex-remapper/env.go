package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"reflex-remapper/internal/analyze"
	"reflex-remapper/internal/classpath"
	"reflex-remapper/internal/config"
	"reflex-remapper/internal/mapping"
	"reflex-remapper/internal/remap"
)

// environment is what every command works with.
type environment struct {
	cfg    config.Config
	log    *logrus.Logger
	loader classpath.Loader
}

// loadConfigWithOverrides loads the config file and applies global flags.
func loadConfigWithOverrides(c *cli.Context) (config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return cfg, err
	}

	if files := c.StringSlice("mapping"); len(files) > 0 {
		cfg.Mapping.Files = files
	}

	if classes := c.String("classes"); classes != "" {
		cfg.Mapping.Classes = classes
	}

	if level := c.String("log-level"); level != "" {
		cfg.Log.Level = level
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	if len(cfg.Mapping.Files) == 0 {
		return cfg, fmt.Errorf("no mapping files configured (use --mapping or [mapping] files)")
	}

	return cfg, nil
}

func setup(c *cli.Context) (*environment, error) {
	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := cfg.NewLogger(c.App.ErrWriter)
	if err != nil {
		return nil, err
	}

	loader, err := newLoader(cfg, c.StringSlice("packages"))
	if err != nil {
		return nil, err
	}

	return &environment{cfg: cfg, log: log, loader: loader}, nil
}

// newLoader chains the class hierarchy with the go/types index, if any.
func newLoader(cfg config.Config, packages []string) (classpath.Loader, error) {
	var chain classpath.Chain

	if cfg.Mapping.Classes != "" {
		h, err := classpath.LoadHierarchyFile(cfg.Mapping.Classes)
		if err != nil {
			return nil, err
		}

		chain = append(chain, h)
	} else {
		chain = append(chain, classpath.NewHierarchy(cfg.Mapping.Root))
	}

	if len(packages) > 0 {
		idx, err := analyze.NewAnalyzer("").LoadPackages(packages...)
		if err != nil {
			return nil, err
		}

		chain = append(chain, idx)
	}

	return chain, nil
}

// resolver loads the configured mapping files and builds a resolver for
// the configured version.
func (env *environment) resolver() (*remap.Resolver, error) {
	set := remap.NewSet(func(version string) (*mapping.Table, classpath.Loader, error) {
		table, diags, err := mapping.LoadGlob(env.cfg.Mapping.Files...)
		if err != nil {
			return nil, nil, err
		}

		for _, d := range diags.Warnings {
			env.log.WithField("code", d.Code).Warn(d.String())
		}

		env.log.WithFields(logrus.Fields{
			"version": version,
			"classes": table.Classes.Len(),
			"members": table.Intermediate.Len() + table.Runtime.Len(),
		}).Debug("mappings loaded")

		return table, env.loader, nil
	}, env.cfg.Resolver(env.log))

	return set.Get(env.cfg.Mapping.Version)
}
