/*
Copyright © 2018 the InMAP authors.
This file is part of InMAP.

InMAP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

InMAP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with InMAP.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package crsutil holds the commands of the crs command-line interface.
package crsutil

import (
	"fmt"
	"strings"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/spatialmodel/crs"
	"github.com/spatialmodel/crs/geodesy"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var logger *logrus.Logger

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	logger = logrus.StandardLogger()
	logrus.SetFormatter(&logrus.TextFormatter{
		ForceColors:    true,
		FullTimestamp:  true,
		DisableSorting: true,
	})

	// Options are the configuration options available to the crs commands.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "json",
			usage: `
              json specifies whether convert should print the result as a
              JSON object instead of a PROJ.4 string.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{convertCmd.Flags()},
		},
		{
			name: "ulp",
			usage: `
              ulp is the floating point tolerance, in units in the last
              place, used when comparing spatial references.`,
			defaultVal: 2,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("CRS")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				set.String(option.name, option.defaultVal.(string), option.usage)
			case bool:
				set.Bool(option.name, option.defaultVal.(bool), option.usage)
			case int:
				set.Int(option.name, option.defaultVal.(int), option.usage)
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(convertCmd)
	Root.AddCommand(epsgCmd)
	Root.AddCommand(infoCmd)
	Root.AddCommand(wktCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("crs: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "crs",
	Short: "A coordinate reference system conversion tool.",
	Long: `crs converts between the PROJ.4 string, EPSG shorthand, and JSON
notations for describing coordinate reference systems, and answers
classification queries about them.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'CRS_var' where 'var' is
the name of the variable to be set.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of crs.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("CRS v%s\n", crs.Version)
	},
	DisableAutoGenTag: true,
}

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a CRS description to canonical form.",
	Long: `convert decodes a PROJ.4 string, a JSON document, or an "EPSG:n"
shorthand code and prints the canonical PROJ.4 representation. With --json,
it prints a JSON object instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := parseArgs(args)
		if err != nil {
			return err
		}
		if cast.ToBool(Cfg.Get("json")) {
			out, err := marshalJSON(c)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), c.String())
		return nil
	},
	DisableAutoGenTag: true,
}

var epsgCmd = &cobra.Command{
	Use:   "epsg [code]",
	Short: "Create a CRS from an EPSG code.",
	Long: `epsg creates a coordinate reference system referring to the given
EPSG code and prints its canonical PROJ.4 representation. The code is not
checked against the EPSG registry.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("crs: epsg requires one argument; got %d", len(args))
		}
		code, err := cast.ToIntE(args[0])
		if err != nil {
			return &crs.Error{Kind: crs.KindInvalidEPSGCode, Input: args[0], Err: err}
		}
		c, err := crs.FromEPSG(code)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), c.String())
		return nil
	},
	DisableAutoGenTag: true,
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Classify a CRS description.",
	Long: `info decodes a CRS description and reports whether it describes a
geographic or a projected coordinate system.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := parseArgs(args)
		if err != nil {
			return err
		}
		logger.WithField("definition", c.String()).Debug("classifying spatial reference")
		g := newGeodesy()
		geographic, err := c.IsGeographic(g)
		if err != nil {
			return err
		}
		projected, err := c.IsProjected(g)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "definition: %s\n", c.String())
		fmt.Fprintf(w, "geographic: %v\n", geographic)
		fmt.Fprintf(w, "projected: %v\n", projected)
		fmt.Fprintf(w, "valid: %v\n", geographic || projected)
		fmt.Fprintf(w, "epsg code: %v\n", c.IsEPSGCode())
		return nil
	},
	DisableAutoGenTag: true,
}

var wktCmd = &cobra.Command{
	Use:   "wkt",
	Short: "Export a CRS description as Well-Known Text.",
	Long: `wkt decodes a CRS description and prints its Well-Known
Text representation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := parseArgs(args)
		if err != nil {
			return err
		}
		out, err := c.WKT(newGeodesy())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
	DisableAutoGenTag: true,
}

func newGeodesy() *geodesy.Proj {
	g := geodesy.New()
	if ulp, err := cast.ToIntE(Cfg.Get("ulp")); err == nil && ulp >= 0 {
		g.ULP = uint(ulp)
	}
	return g
}

// parseArgs joins the command arguments into one CRS description and
// decodes it.
func parseArgs(args []string) (*crs.CRS, error) {
	return crs.Parse(strings.Join(args, " "))
}
